package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snacks/internal/core"
)

func TestPaletteRenderPlainText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColor(0, 0, "apple", core.ColorBrightRed)
	s.DrawTextColor(6, 0, "bread", core.ColorBrown)
	s.DrawText(0, 2, "hud")

	// A renderer writing to a non-terminal has no colour profile, so only
	// the text survives.
	p := NewPalette(lipgloss.NewRenderer(io.Discard))
	if got, want := p.Render(s), s.String(); got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestPaletteCoversEveryColor(t *testing.T) {
	p := NewPalette(nil)
	for c := core.ColorRed; c <= core.ColorBrown; c++ {
		if _, ok := p.styles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
	if got := p.Render(core.NewScreen(0, 0)); strings.TrimSpace(got) != "" {
		t.Errorf("empty screen rendered %q", got)
	}
}
