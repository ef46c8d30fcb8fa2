package core

import "fmt"

// SceneConfig describes a board and how its preview moves.
type SceneConfig struct {
	Board        Board
	Sprites      []string // Sprite pool dealt onto the board
	PreviewSpeed float64  // Interpolation rate per second
}

// Scene owns one dealt board and the interaction on it. The host registers
// Draw, Update, PointerDown and PointerUp once and calls them from a single
// frame loop.
type Scene struct {
	board      Board
	grid       *ItemGrid
	preview    *PreviewMotion
	controller *InteractionController
	speed      float64
}

// NewScene deals a board using rng.
func NewScene(cfg SceneConfig, rng Chooser) (*Scene, error) {
	if cfg.PreviewSpeed < 0 {
		return nil, fmt.Errorf("%w: preview speed must not be negative, got %v", ErrInvalidConfig, cfg.PreviewSpeed)
	}

	grid, err := NewItemGrid(cfg.Board, cfg.Sprites, rng)
	if err != nil {
		return nil, fmt.Errorf("deal board: %w", err)
	}

	preview := NewPreviewMotion()
	return &Scene{
		board:      cfg.Board,
		grid:       grid,
		preview:    preview,
		controller: NewInteractionController(grid, preview),
		speed:      cfg.PreviewSpeed,
	}, nil
}

// Draw draws every visible item, then the preview on top if it is shown.
func (s *Scene) Draw(d Drawer) {
	s.grid.Draw(d)
	if s.preview.Visible() {
		st := s.preview.State()
		d.DrawSprite(st.SpriteID, st.Position)
	}
}

// Update advances the preview by dt seconds so its centre tracks pointer.
func (s *Scene) Update(pointer WorldPos, dt float64) {
	s.preview.Step(pointer.Sub(s.board.HalfCell()), dt, s.speed)
}

// PointerDown forwards a press to the controller.
func (s *Scene) PointerDown(pos WorldPos) PressOutcome {
	return s.controller.OnPointerDown(pos)
}

// PointerUp forwards a release to the controller.
func (s *Scene) PointerUp(pos WorldPos) ReleaseOutcome {
	return s.controller.OnPointerUp(pos)
}

// Board returns the scene's board.
func (s *Scene) Board() Board {
	return s.board
}

// Grid returns the scene's item grid.
func (s *Scene) Grid() *ItemGrid {
	return s.grid
}

// Preview returns the scene's preview.
func (s *Scene) Preview() *PreviewMotion {
	return s.preview
}

// Interaction returns the current interaction state.
func (s *Scene) Interaction() InteractionState {
	return s.controller.State()
}
