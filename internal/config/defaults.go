package config

import (
	_ "embed"
)

//go:embed defaults/snacks.yaml
var defaultSnacksYAML []byte

// DefaultSnacksConfig returns the default Snacks configuration.
// It mirrors defaults/snacks.yaml and is used if the embedded file fails to parse.
func DefaultSnacksConfig() SnacksConfig {
	return SnacksConfig{
		Canvas: CanvasConfig{
			Width:  400,
			Height: 600,
		},
		Board: BoardConfig{
			Cols:     5,
			Rows:     8,
			CellSize: 64,
		},
		Preview: PreviewConfig{
			Speed: 12,
		},
		Render: RenderConfig{
			HUDHeight:  2,
			MaxCellH:   3,
			Background: "yellow",
			Backdrop:   "·",
		},
		Sprites: []SpriteConfig{
			{ID: "apple", Glyph: "A", Color: "bright_red"},
			{ID: "bread", Glyph: "B", Color: "brown"},
			{ID: "cookie", Glyph: "C", Color: "orange"},
			{ID: "croissant", Glyph: "R", Color: "bright_yellow"},
			{ID: "donut", Glyph: "D", Color: "bright_magenta"},
			{ID: "orange", Glyph: "O", Color: "orange"},
		},
		Variants: map[string]BoardConfig{
			"compact": {
				Rows:   6,
				Origin: &PointConfig{X: 40, Y: 100},
			},
		},
	}
}
