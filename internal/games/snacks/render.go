package snacks

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-snacks/internal/core"
	"github.com/vovakirdan/tui-snacks/internal/games/snacks/core"
)

// Visual characters for rendering
const (
	TileChar   = '▓'
	BoardChar  = ' '
	CursorChar = '+'
)

// screenDrawer draws sprites onto a screen through the viewport.
type screenDrawer struct {
	dst      *platformcore.Screen
	view     Viewport
	sprites  SpriteSet
	cellSize float64
}

// DrawSprite fills the tile-sized block at pos with the sprite and puts its
// glyph in the middle. The last column is left blank as a gutter.
func (d screenDrawer) DrawSprite(spriteID string, pos core.WorldPos) {
	sp, _ := d.sprites.Lookup(spriteID)
	r := d.view.Span(pos, d.cellSize)
	w := platformcore.Max(r.W-1, 1)
	h := platformcore.Max(r.H, 1)

	d.dst.DrawRect(platformcore.NewRect(r.X, r.Y, w, h), TileChar, sp.Color)
	d.dst.SetColor(r.X+w/2, r.Y+h/2, sp.Glyph, platformcore.ColorBrightWhite)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.scene == nil {
		dst.DrawTextCentered(dst.Height()/2, "Snack Board could not start")
		if g.loadErr != nil {
			dst.DrawTextCentered(dst.Height()/2+1, g.loadErr.Error())
		}
		return
	}

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		b := g.scene.Board()
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need room for a %dx%d board", b.Cols, b.Rows))
		return
	}

	g.renderCanvas(dst)

	drawer := screenDrawer{
		dst:      dst,
		view:     g.view,
		sprites:  g.sprites,
		cellSize: g.scene.Board().CellSize,
	}
	g.scene.Draw(drawer)

	// Outline the floating preview so it reads as lifted off the board.
	if p := g.scene.Preview(); p.Visible() {
		r := g.view.Span(p.Position(), g.scene.Board().CellSize)
		dst.DrawBox(platformcore.NewRect(r.X-1, r.Y-1, r.W+1, r.H+2), platformcore.ColorBrightWhite)
	}

	g.renderCursor(dst)
	g.renderHUD(dst)
	if g.inspect {
		g.renderInspector(dst)
	}
}

// renderCanvas fills the canvas backdrop and clears the board area.
func (g *Game) renderCanvas(dst *platformcore.Screen) {
	bg, _ := platformcore.ParseColor(g.cfg.Render.Background)
	backdrop := ' '
	for _, r := range g.cfg.Render.Backdrop {
		backdrop = r
		break
	}
	dst.DrawRect(g.view.Canvas(), backdrop, bg)

	b := g.scene.Board()
	x0, y0 := g.view.ToScreen(b.Origin)
	x1, y1 := g.view.ToScreen(b.Origin.Add(core.W(b.Width(), b.Height())))
	dst.DrawRect(platformcore.NewRect(x0, y0, x1-x0, y1-y0), BoardChar, platformcore.ColorDefault)
}

// renderCursor marks the pointer cell when nothing is held.
func (g *Game) renderCursor(dst *platformcore.Screen) {
	if _, held := g.scene.Interaction().Focused(); held {
		return
	}
	x, y := g.view.ToScreen(g.pointer)
	dst.SetColor(x, y, CursorChar, platformcore.ColorBrightWhite)
}

// renderHUD draws the title and status lines above the canvas.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawTextColor(1, 0, g.title, platformcore.ColorBrightYellow)

	status := "Press a snack and drag it around"
	switch {
	case g.paused:
		status = "PAUSED"
	case g.lastMsg != "":
		status = g.lastMsg
	}
	dst.DrawText(1, 1, status)

	if g.loadErr != nil {
		dst.DrawTextColor(len([]rune(g.title))+3, 0, "config: "+g.loadErr.Error(), platformcore.ColorRed)
	}
}

// renderInspector draws pointer and board diagnostics on the bottom rows.
func (g *Game) renderInspector(dst *platformcore.Screen) {
	b := g.scene.Board()
	tile := b.TileOf(g.pointer)
	index := "-"
	if b.Contains(tile) {
		index = fmt.Sprintf("%d", b.IndexOf(tile))
	}

	mode := "Idle"
	if idx, held := g.scene.Interaction().Focused(); held {
		mode = fmt.Sprintf("Focused(%d)", idx)
	}
	p := g.scene.Preview().State()

	lines := []string{
		fmt.Sprintf("pointer %v tile %v index %s", g.pointer, tile, index),
		fmt.Sprintf("mode %s hidden %d preview %v opacity %d", mode, g.scene.Grid().HiddenCount(), p.Position, p.Opacity),
	}
	for i, line := range lines {
		dst.DrawTextColor(1, dst.Height()-len(lines)+i, line, platformcore.ColorCyan)
	}
}
