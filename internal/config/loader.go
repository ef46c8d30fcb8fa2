package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snacks/internal/core"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid snacks config")

// LoadSnacks loads Snacks configuration.
// Search order: customPath -> ~/.snacks/configs/snacks.yaml -> ./configs/snacks.yaml -> embedded default
func LoadSnacks(customPath string) (SnacksConfig, error) {
	var cfg SnacksConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snacks.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "snacks.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnacksYAML, &cfg); err != nil {
		return DefaultSnacksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads and validates a config file, reporting false on any failure.
func tryLoad(path string) (SnacksConfig, bool) {
	var cfg SnacksConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snacks", "configs", filename)
}

// Validate checks that the config describes a playable board.
func (c SnacksConfig) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas must be positive, got %vx%v", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	}
	if err := validateBoard("board", c.Board); err != nil {
		return err
	}
	for name := range c.Variants {
		b, _ := c.Variant(name)
		if err := validateBoard("variant "+name, b); err != nil {
			return err
		}
	}
	if c.Preview.Speed < 0 {
		return fmt.Errorf("%w: preview speed must not be negative, got %v", ErrInvalid, c.Preview.Speed)
	}
	if c.Render.HUDHeight < 0 || c.Render.MaxCellH < 0 {
		return fmt.Errorf("%w: render sizes must not be negative", ErrInvalid)
	}
	if _, ok := core.ParseColor(c.Render.Background); !ok {
		return fmt.Errorf("%w: unknown background color %q", ErrInvalid, c.Render.Background)
	}
	if utf8.RuneCountInString(c.Render.Backdrop) > 1 {
		return fmt.Errorf("%w: backdrop must be a single rune, got %q", ErrInvalid, c.Render.Backdrop)
	}

	if len(c.Sprites) == 0 {
		return fmt.Errorf("%w: at least one sprite is required", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Sprites))
	for _, s := range c.Sprites {
		if s.ID == "" {
			return fmt.Errorf("%w: sprite with empty id", ErrInvalid)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate sprite %q", ErrInvalid, s.ID)
		}
		seen[s.ID] = true
		if utf8.RuneCountInString(s.Glyph) != 1 {
			return fmt.Errorf("%w: sprite %q glyph must be a single rune, got %q", ErrInvalid, s.ID, s.Glyph)
		}
		if _, ok := core.ParseColor(s.Color); !ok {
			return fmt.Errorf("%w: sprite %q has unknown color %q", ErrInvalid, s.ID, s.Color)
		}
	}
	return nil
}

func validateBoard(what string, b BoardConfig) error {
	if b.Cols <= 0 || b.Rows <= 0 {
		return fmt.Errorf("%w: %s must be at least 1x1, got %dx%d", ErrInvalid, what, b.Cols, b.Rows)
	}
	if b.CellSize <= 0 {
		return fmt.Errorf("%w: %s cell size must be positive, got %v", ErrInvalid, what, b.CellSize)
	}
	return nil
}
