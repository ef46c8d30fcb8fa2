package snacks

import (
	"math"

	platformcore "github.com/vovakirdan/tui-snacks/internal/core"
	"github.com/vovakirdan/tui-snacks/internal/games/snacks/core"
)

// Viewport maps the pixel canvas onto terminal cells.
// A tile is CellW x CellH characters; CellW = 2*CellH keeps tiles roughly
// square in a typical terminal font.
type Viewport struct {
	CellW    int
	CellH    int
	PxPerCol float64
	PxPerRow float64
	OffsetX  int // Screen column of canvas x=0
	OffsetY  int // Screen row of canvas y=0
	Cols     int // Canvas width in screen columns
	Rows     int // Canvas height in screen rows
}

// NewViewport fits a canvas of canvasW x canvasH pixels, with tiles of
// cellSize pixels, into the screen below the top reserved lines.
// It reports false when the screen cannot hold the canvas at one line per tile.
func NewViewport(canvasW, canvasH, cellSize float64, screenW, screenH, top, maxCellH int) (Viewport, bool) {
	availRows := screenH - top
	if availRows <= 0 || screenW <= 0 || canvasW <= 0 || canvasH <= 0 || cellSize <= 0 {
		return Viewport{}, false
	}

	cellH := int(float64(availRows) * cellSize / canvasH)
	if maxCellH > 0 {
		cellH = platformcore.Min(cellH, maxCellH)
	}
	cellH = platformcore.Max(cellH, 1)

	for ; cellH >= 1; cellH-- {
		v := layout(canvasW, canvasH, cellSize, cellH)
		if v.Cols <= screenW && v.Rows <= availRows {
			v.OffsetX = (screenW - v.Cols) / 2
			v.OffsetY = top + (availRows-v.Rows)/2
			return v, true
		}
	}
	return Viewport{}, false
}

func layout(canvasW, canvasH, cellSize float64, cellH int) Viewport {
	v := Viewport{
		CellW: 2 * cellH,
		CellH: cellH,
	}
	v.PxPerCol = cellSize / float64(v.CellW)
	v.PxPerRow = cellSize / float64(v.CellH)
	v.Cols = int(math.Ceil(canvasW / v.PxPerCol))
	v.Rows = int(math.Ceil(canvasH / v.PxPerRow))
	return v
}

// ToWorld returns the world position at the centre of screen cell (col, row).
func (v Viewport) ToWorld(col, row int) core.WorldPos {
	return core.WorldPos{
		X: (float64(col-v.OffsetX) + 0.5) * v.PxPerCol,
		Y: (float64(row-v.OffsetY) + 0.5) * v.PxPerRow,
	}
}

// ToScreen returns the screen cell containing a world position.
func (v Viewport) ToScreen(p core.WorldPos) (int, int) {
	return v.OffsetX + int(math.Floor(p.X/v.PxPerCol)),
		v.OffsetY + int(math.Floor(p.Y/v.PxPerRow))
}

// Span returns the screen rectangle covered by a square of size pixels
// whose top-left corner is at p.
func (v Viewport) Span(p core.WorldPos, size float64) platformcore.Rect {
	x0, y0 := v.ToScreen(p)
	x1, y1 := v.ToScreen(p.Add(core.W(size, size)))
	return platformcore.NewRect(x0, y0, x1-x0, y1-y0)
}

// Pick resolves a press on screen cell (col, row) against the board.
// A cell inside a tile's Span maps to that tile's centre and reports true,
// so a press lands on whatever tile is drawn there. Any other cell maps
// through ToWorld and reports false.
func (v Viewport) Pick(b core.Board, col, row int) (core.WorldPos, bool) {
	for i := range b.Size() {
		corner := b.WorldOf(b.TileAt(i))
		if v.Span(corner, b.CellSize).Contains(col, row) {
			return corner.Add(b.HalfCell()), true
		}
	}
	return v.ToWorld(col, row), false
}

// Canvas returns the screen rectangle of the whole canvas.
func (v Viewport) Canvas() platformcore.Rect {
	return platformcore.NewRect(v.OffsetX, v.OffsetY, v.Cols, v.Rows)
}
