package snacks

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-snacks/internal/core"
	"github.com/vovakirdan/tui-snacks/internal/config"
)

// Sprite is how one sprite id looks in the terminal.
type Sprite struct {
	Glyph rune
	Color platformcore.Color
}

// unknownSprite is drawn for ids missing from the set.
var unknownSprite = Sprite{Glyph: '?', Color: platformcore.ColorGray}

// SpriteSet resolves sprite ids to drawable sprites.
type SpriteSet struct {
	ids     []string
	sprites map[string]Sprite
}

// NewSpriteSet builds a sprite set from config entries.
func NewSpriteSet(entries []config.SpriteConfig) (SpriteSet, error) {
	set := SpriteSet{
		ids:     make([]string, 0, len(entries)),
		sprites: make(map[string]Sprite, len(entries)),
	}
	for _, e := range entries {
		glyph, size := utf8.DecodeRuneInString(e.Glyph)
		if size == 0 || glyph == utf8.RuneError {
			return SpriteSet{}, fmt.Errorf("sprite %q: bad glyph %q", e.ID, e.Glyph)
		}
		color, ok := platformcore.ParseColor(e.Color)
		if !ok {
			return SpriteSet{}, fmt.Errorf("sprite %q: unknown color %q", e.ID, e.Color)
		}
		if _, dup := set.sprites[e.ID]; dup {
			return SpriteSet{}, fmt.Errorf("sprite %q defined twice", e.ID)
		}
		set.ids = append(set.ids, e.ID)
		set.sprites[e.ID] = Sprite{Glyph: glyph, Color: color}
	}
	return set, nil
}

// IDs returns the sprite pool in config order.
func (s SpriteSet) IDs() []string {
	return s.ids
}

// Lookup returns the sprite for id, or a placeholder if it is unknown.
func (s SpriteSet) Lookup(id string) (Sprite, bool) {
	sp, ok := s.sprites[id]
	if !ok {
		return unknownSprite, false
	}
	return sp, true
}
