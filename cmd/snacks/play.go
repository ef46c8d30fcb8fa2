package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snacks/internal/core"
	"github.com/vovakirdan/tui-snacks/internal/platform/tui"
	"github.com/vovakirdan/tui-snacks/internal/registry"
)

const defaultBoard = "snacks"

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the specified board (default: snacks).

Controls:
  Mouse          - Press a snack to lift it, release anywhere to drop it
  Arrows/hjkl    - Move the keyboard cursor one tile
  Space/Enter    - Lift or drop at the keyboard cursor
  P              - Pause
  I              - Inspector overlay
  R              - New deal
  ?              - Show all keys
  Q/Ctrl+C       - Quit

Examples:
  snacks play
  snacks play snacks_compact
  snacks play --seed 42
  snacks play --config ./my-snacks.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultBoard
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown board %q (run 'snacks list' to see available boards)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating board: %w", err)
	}

	if err := tui.Run(game, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
