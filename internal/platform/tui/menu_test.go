package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snacks/internal/core"
	"github.com/vovakirdan/tui-snacks/internal/registry"
)

func init() {
	registry.Register("tui_test_board", func() registry.Game { return &recordingGame{} })
}

func menuCursorTo(t *testing.T, m MenuModel, id string) MenuModel {
	t.Helper()
	for i := 0; i < len(m.items); i++ {
		if m.items[m.table.Cursor()].GameID == id {
			return m
		}
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	t.Fatalf("%s not found in menu", id)
	return m
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	m = menuCursorTo(t, m, "tui_test_board")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if cmd == nil {
		t.Error("select should end the menu")
	}
	if m.Selected() == nil || m.Selected().GameID != "tui_test_board" {
		t.Errorf("selected %+v", m.Selected())
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	next, cmd := m.Update(runeKey("q"))
	if cmd == nil || !next.(MenuModel).IsQuitting() {
		t.Error("q should quit the menu")
	}
}

func TestMenuResizeKeepsCursor(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	m = menuCursorTo(t, m, "tui_test_board")
	cursor := m.table.Cursor()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(MenuModel)
	if m.table.Cursor() != cursor {
		t.Errorf("cursor %d after resize, want %d", m.table.Cursor(), cursor)
	}
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config %dx%d, want 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestSessionMenuToBoardAndBack(t *testing.T) {
	s := NewSessionModel(core.DefaultConfig(), nil)
	s.menu = menuCursorTo(t, s.menu, "tui_test_board")

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.gameModel == nil {
		t.Fatal("selecting a board should start it")
	}
	if !s.gameModel.embedded {
		t.Error("session boards should return to the menu on back")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.gameModel != nil {
		t.Fatal("back should return to the menu")
	}
	if s.menu.Selected() != nil {
		t.Error("menu should start fresh")
	}
}
