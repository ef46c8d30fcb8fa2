package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var embedded SnacksConfig
	if err := yaml.Unmarshal(defaultSnacksYAML, &embedded); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if err := embedded.Validate(); err != nil {
		t.Fatalf("embedded default is invalid: %v", err)
	}

	def := DefaultSnacksConfig()
	if embedded.Canvas != def.Canvas {
		t.Errorf("canvas: embedded %v, hardcoded %v", embedded.Canvas, def.Canvas)
	}
	if embedded.Board.Cols != def.Board.Cols || embedded.Board.Rows != def.Board.Rows || embedded.Board.CellSize != def.Board.CellSize {
		t.Errorf("board: embedded %+v, hardcoded %+v", embedded.Board, def.Board)
	}
	if embedded.Preview != def.Preview || embedded.Render != def.Render {
		t.Errorf("preview/render differ: %+v %+v vs %+v %+v", embedded.Preview, embedded.Render, def.Preview, def.Render)
	}
	if len(embedded.Sprites) != len(def.Sprites) {
		t.Fatalf("sprites: embedded %d, hardcoded %d", len(embedded.Sprites), len(def.Sprites))
	}
	for i := range def.Sprites {
		if embedded.Sprites[i] != def.Sprites[i] {
			t.Errorf("sprite %d: embedded %+v, hardcoded %+v", i, embedded.Sprites[i], def.Sprites[i])
		}
	}
}

func TestLoadSnacksCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snacks.yaml")
	data := `
canvas: {width: 200, height: 200}
board: {cols: 3, rows: 2, cell_size: 32}
preview: {speed: 4}
render: {hud_height: 1, max_cell_h: 2}
sprites:
  - {id: apple, glyph: "A", color: red}
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnacks(path)
	if err != nil {
		t.Fatalf("LoadSnacks: %v", err)
	}
	if cfg.Board.Cols != 3 || cfg.Board.Rows != 2 || cfg.Board.CellSize != 32 {
		t.Errorf("unexpected board %+v", cfg.Board)
	}
	if ids := cfg.SpriteIDs(); len(ids) != 1 || ids[0] != "apple" {
		t.Errorf("unexpected sprites %v", ids)
	}
}

func TestLoadSnacksCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnacks(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnacks(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("canvas: {width: 1, height: 1}\nboard: {cols: 0, rows: 1, cell_size: 1}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnacks(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *SnacksConfig)
	}{
		{"zero canvas", func(c *SnacksConfig) { c.Canvas.Width = 0 }},
		{"empty board", func(c *SnacksConfig) { c.Board.Rows = 0 }},
		{"bad cell size", func(c *SnacksConfig) { c.Board.CellSize = -1 }},
		{"bad variant", func(c *SnacksConfig) { c.Variants["tiny"] = BoardConfig{CellSize: -4} }},
		{"negative speed", func(c *SnacksConfig) { c.Preview.Speed = -1 }},
		{"no sprites", func(c *SnacksConfig) { c.Sprites = nil }},
		{"duplicate sprite", func(c *SnacksConfig) { c.Sprites = append(c.Sprites, c.Sprites[0]) }},
		{"empty glyph", func(c *SnacksConfig) { c.Sprites[0].Glyph = "" }},
		{"long glyph", func(c *SnacksConfig) { c.Sprites[0].Glyph = "AB" }},
		{"unknown color", func(c *SnacksConfig) { c.Sprites[0].Color = "chartreuse" }},
		{"unknown background", func(c *SnacksConfig) { c.Render.Background = "plaid" }},
	}

	if err := DefaultSnacksConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSnacksConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestVariant(t *testing.T) {
	cfg := DefaultSnacksConfig()

	base, ok := cfg.Variant("")
	if !ok || base.Rows != 8 || base.Origin != nil {
		t.Errorf("base board: %+v ok=%v", base, ok)
	}

	compact, ok := cfg.Variant("compact")
	if !ok {
		t.Fatal("compact variant missing")
	}
	if compact.Cols != 5 || compact.Rows != 6 || compact.CellSize != 64 {
		t.Errorf("compact board: %+v", compact)
	}
	if compact.Origin == nil || *compact.Origin != (PointConfig{X: 40, Y: 100}) {
		t.Errorf("compact origin: %+v", compact.Origin)
	}

	if _, ok := cfg.Variant("nope"); ok {
		t.Error("unknown variant should not resolve")
	}
}
