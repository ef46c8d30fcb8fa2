package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snacks/internal/platform/tui"
	"github.com/vovakirdan/tui-snacks/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a board picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a board.
Leaving a board (Esc/B) returns to the menu.

Examples:
  snacks menu
  snacks menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig()
	seeded := flagSeed != 0

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		// Update config with any size changes
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create board", "game", menuResult.GameID, "error", err)
			continue
		}

		// A fixed --seed deals the same board every time; otherwise each round is new.
		if !seeded {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, cfg, logger); err != nil {
			return fmt.Errorf("running board: %w", err)
		}
	}
}
