package core

import (
	"fmt"
	"math"
)

// Board is the immutable transform between world space and tile space.
// Tiles are indexed in row-major order: index = row*Cols + col.
type Board struct {
	Origin   WorldPos // Top-left corner of tile (0,0)
	CellSize float64  // Width and height of one tile in pixels
	Cols     int
	Rows     int
}

// NewBoard creates a board, rejecting empty dimensions or a non-positive cell size.
func NewBoard(origin WorldPos, cellSize float64, cols, rows int) (Board, error) {
	b := Board{Origin: origin, CellSize: cellSize, Cols: cols, Rows: rows}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// CenteredBoard creates a board centred on a canvas of the given size.
func CenteredBoard(canvasW, canvasH, cellSize float64, cols, rows int) (Board, error) {
	origin := WorldPos{
		X: (canvasW - cellSize*float64(cols)) / 2,
		Y: (canvasH - cellSize*float64(rows)) / 2,
	}
	return NewBoard(origin, cellSize, cols, rows)
}

// Validate checks the board dimensions.
func (b Board) Validate() error {
	if b.Cols <= 0 || b.Rows <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, b.Cols, b.Rows)
	}
	if !(b.CellSize > 0) || math.IsInf(b.CellSize, 0) {
		return fmt.Errorf("%w: cell size must be positive, got %v", ErrInvalidConfig, b.CellSize)
	}
	return nil
}

// TileOf returns the tile containing a world position.
// The result may lie outside the board; check it with Contains.
func (b Board) TileOf(world WorldPos) TileCoord {
	return TileCoord{
		Col: int(math.Floor((world.X - b.Origin.X) / b.CellSize)),
		Row: int(math.Floor((world.Y - b.Origin.Y) / b.CellSize)),
	}
}

// WorldOf returns the world position of a tile's top-left corner.
func (b Board) WorldOf(tile TileCoord) WorldPos {
	return WorldPos{
		X: b.Origin.X + float64(tile.Col)*b.CellSize,
		Y: b.Origin.Y + float64(tile.Row)*b.CellSize,
	}
}

// IndexOf returns the linear index of a tile. Not range-checked.
func (b Board) IndexOf(tile TileCoord) int {
	return tile.Row*b.Cols + tile.Col
}

// TileAt is the inverse of IndexOf for indices in [0, Size()).
func (b Board) TileAt(index int) TileCoord {
	return TileCoord{Col: index % b.Cols, Row: index / b.Cols}
}

// Contains reports whether the tile lies on the board.
func (b Board) Contains(tile TileCoord) bool {
	return tile.Col >= 0 && tile.Col < b.Cols && tile.Row >= 0 && tile.Row < b.Rows
}

// Size returns the number of tiles on the board.
func (b Board) Size() int {
	return b.Cols * b.Rows
}

// Width returns the board width in pixels.
func (b Board) Width() float64 {
	return float64(b.Cols) * b.CellSize
}

// Height returns the board height in pixels.
func (b Board) Height() float64 {
	return float64(b.Rows) * b.CellSize
}

// HalfCell returns the offset from a tile's corner to its centre.
func (b Board) HalfCell() WorldPos {
	return WorldPos{X: b.CellSize / 2, Y: b.CellSize / 2}
}
