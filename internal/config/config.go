// Package config provides YAML-based configuration loading for the
// snack board: canvas, board geometry, preview motion, sprites and the
// named board variants.
package config

// SnacksConfig contains all configuration for the Snacks game.
type SnacksConfig struct {
	Canvas   CanvasConfig           `yaml:"canvas"`
	Board    BoardConfig            `yaml:"board"`
	Preview  PreviewConfig          `yaml:"preview"`
	Render   RenderConfig           `yaml:"render"`
	Sprites  []SpriteConfig         `yaml:"sprites"`
	Variants map[string]BoardConfig `yaml:"variants"`
}

// CanvasConfig is the size of the world the board lives on, in pixels.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BoardConfig defines board geometry.
// A nil Origin centres the board on the canvas.
type BoardConfig struct {
	Cols     int          `yaml:"cols"`
	Rows     int          `yaml:"rows"`
	CellSize float64      `yaml:"cell_size"`
	Origin   *PointConfig `yaml:"origin,omitempty"`
}

// PointConfig is a world position.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PreviewConfig defines how the floating preview follows the pointer.
type PreviewConfig struct {
	Speed float64 `yaml:"speed"` // Fraction of remaining distance covered per second
}

// RenderConfig defines terminal layout parameters.
type RenderConfig struct {
	HUDHeight  int    `yaml:"hud_height"` // Lines reserved above the canvas
	MaxCellH   int    `yaml:"max_cell_h"` // Upper bound on tile height in lines
	Background string `yaml:"background"` // Canvas fill color name
	Backdrop   string `yaml:"backdrop"`   // Canvas fill rune
}

// SpriteConfig maps a sprite id to how it is drawn in the terminal.
type SpriteConfig struct {
	ID    string `yaml:"id"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// SpriteIDs returns the ids of all configured sprites in order.
func (c SnacksConfig) SpriteIDs() []string {
	ids := make([]string, 0, len(c.Sprites))
	for _, s := range c.Sprites {
		ids = append(ids, s.ID)
	}
	return ids
}

// Variant returns the board for a named variant, with unset fields taken
// from the base board. The empty name returns the base board.
func (c SnacksConfig) Variant(name string) (BoardConfig, bool) {
	if name == "" {
		return c.Board, true
	}
	v, ok := c.Variants[name]
	if !ok {
		return BoardConfig{}, false
	}

	merged := c.Board
	if v.Cols != 0 {
		merged.Cols = v.Cols
	}
	if v.Rows != 0 {
		merged.Rows = v.Rows
	}
	if v.CellSize != 0 {
		merged.CellSize = v.CellSize
	}
	// A variant resizing the board without its own origin is re-centred.
	merged.Origin = v.Origin
	return merged, true
}
