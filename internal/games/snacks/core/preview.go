package core

// OffscreenPos parks an inactive preview far outside any board.
var OffscreenPos = WorldPos{X: -1e6, Y: -1e6}

// PreviewState is a snapshot of the floating preview.
type PreviewState struct {
	Position  WorldPos
	SpriteID  string
	HasSprite bool
	Opacity   int // 0 or 1
}

// PreviewMotion is the floating copy of the focused item that follows the pointer.
type PreviewMotion struct {
	state PreviewState
}

// NewPreviewMotion returns an inactive preview parked off screen.
func NewPreviewMotion() *PreviewMotion {
	return &PreviewMotion{state: PreviewState{Position: OffscreenPos}}
}

// Activate shows the preview at start with the given sprite.
func (p *PreviewMotion) Activate(start WorldPos, spriteID string) {
	p.state = PreviewState{
		Position:  start,
		SpriteID:  spriteID,
		HasSprite: true,
		Opacity:   1,
	}
}

// Deactivate hides the preview and parks it off screen.
// The sprite id is kept so a late draw still has something valid to name.
func (p *PreviewMotion) Deactivate() {
	p.state.Opacity = 0
	p.state.Position = OffscreenPos
}

// Step moves the preview toward target by min(1, speed*dt) of the remaining
// distance. It runs whether or not the preview is visible.
func (p *PreviewMotion) Step(target WorldPos, dt, speed float64) {
	factor := speed * dt
	if factor > 1 {
		factor = 1
	}
	if !(factor > 0) {
		return
	}
	p.state.Position = p.state.Position.Add(target.Sub(p.state.Position).Scale(factor))
}

// Visible reports whether the preview should be drawn.
func (p *PreviewMotion) Visible() bool {
	return p.state.Opacity == 1
}

// Position returns the current preview position.
func (p *PreviewMotion) Position() WorldPos {
	return p.state.Position
}

// State returns a snapshot of the preview.
func (p *PreviewMotion) State() PreviewState {
	return p.state
}
