package core

import "fmt"

// Item is a single covered tile on the board.
type Item struct {
	Tile     TileCoord
	WorldPos WorldPos // Always Board.WorldOf(Tile)
	SpriteID string
	Visible  bool
}

// ItemGrid owns one Item per board cell, stored row-major.
// Its shape is fixed at construction; only visibility flags change.
type ItemGrid struct {
	board Board
	items []Item
}

// NewItemGrid deals a sprite from pool to every cell of the board.
// Sprites are chosen uniformly with rng so a seeded source gives a repeatable deal.
func NewItemGrid(board Board, pool []string, rng Chooser) (*ItemGrid, error) {
	if err := board.Validate(); err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrEmptySpritePool
	}

	g := &ItemGrid{
		board: board,
		items: make([]Item, 0, board.Size()),
	}
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			tile := T(col, row)
			g.items = append(g.items, Item{
				Tile:     tile,
				WorldPos: board.WorldOf(tile),
				SpriteID: pool[rng.Intn(len(pool))],
				Visible:  true,
			})
		}
	}
	return g, nil
}

// Board returns the board the grid was dealt on.
func (g *ItemGrid) Board() Board {
	return g.board
}

// Len returns the number of items.
func (g *ItemGrid) Len() int {
	return len(g.items)
}

// Get returns the item at index.
func (g *ItemGrid) Get(index int) (Item, error) {
	if index < 0 || index >= len(g.items) {
		return Item{}, fmt.Errorf("get %d of %d: %w", index, len(g.items), ErrIndexOutOfRange)
	}
	return g.items[index], nil
}

// SetVisible shows or hides the item at index.
func (g *ItemGrid) SetVisible(index int, visible bool) error {
	if index < 0 || index >= len(g.items) {
		return fmt.Errorf("set visible %d of %d: %w", index, len(g.items), ErrIndexOutOfRange)
	}
	g.items[index].Visible = visible
	return nil
}

// HiddenCount returns the number of hidden items.
func (g *ItemGrid) HiddenCount() int {
	n := 0
	for _, it := range g.items {
		if !it.Visible {
			n++
		}
	}
	return n
}

// Items returns a copy of all items in index order.
func (g *ItemGrid) Items() []Item {
	out := make([]Item, len(g.items))
	copy(out, g.items)
	return out
}

// Draw issues one draw call per visible item. Hidden items are skipped.
func (g *ItemGrid) Draw(d Drawer) {
	for _, it := range g.items {
		if !it.Visible {
			continue
		}
		d.DrawSprite(it.SpriteID, it.WorldPos)
	}
}
