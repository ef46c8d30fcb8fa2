// Package core provides the board logic for the Snacks tile game:
// coordinate transforms, the item grid, the press/release state machine
// and the floating preview. It is UI-agnostic and deterministic.
package core

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrIndexOutOfRange is returned when an item index is outside the grid.
	ErrIndexOutOfRange = errors.New("item index out of range")

	// ErrEmptySpritePool is returned when a grid is dealt from no sprites.
	ErrEmptySpritePool = errors.New("sprite pool is empty")

	// ErrInvalidConfig is returned when a board or scene is misconfigured.
	ErrInvalidConfig = errors.New("invalid board config")
)

// TileCoord identifies a grid cell by column and row.
type TileCoord struct {
	Col int
	Row int
}

// T is a convenience constructor for TileCoord.
func T(col, row int) TileCoord {
	return TileCoord{Col: col, Row: row}
}

// String returns a string representation of the tile.
func (t TileCoord) String() string {
	return fmt.Sprintf("(%d,%d)", t.Col, t.Row)
}

// WorldPos is a position in pixel space, origin at the canvas top-left.
type WorldPos struct {
	X float64
	Y float64
}

// W is a convenience constructor for WorldPos.
func W(x, y float64) WorldPos {
	return WorldPos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p WorldPos) String() string {
	return fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y)
}

// Add returns the component-wise sum.
func (p WorldPos) Add(o WorldPos) WorldPos {
	return WorldPos{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference.
func (p WorldPos) Sub(o WorldPos) WorldPos {
	return WorldPos{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale multiplies both components by k.
func (p WorldPos) Scale(k float64) WorldPos {
	return WorldPos{X: p.X * k, Y: p.Y * k}
}

// Dist returns the Euclidean distance to another position.
func (p WorldPos) Dist(o WorldPos) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Drawer is the draw primitive supplied by the rendering host.
type Drawer interface {
	DrawSprite(spriteID string, pos WorldPos)
}

// DrawFunc adapts a plain function to the Drawer interface.
type DrawFunc func(spriteID string, pos WorldPos)

// DrawSprite calls f(spriteID, pos).
func (f DrawFunc) DrawSprite(spriteID string, pos WorldPos) {
	f(spriteID, pos)
}

// Chooser picks a uniform index in [0, n). *rand.Rand satisfies it.
type Chooser interface {
	Intn(n int) int
}
