// snacks is a terminal tile board: press a snack to lift it off the board,
// drag it around with the mouse or keyboard, and release it to put it back.
//
// Usage:
//
//	snacks list              - List available boards
//	snacks play [board]      - Play a board (default: snacks)
//	snacks menu              - Pick boards interactively
//	snacks serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for a reproducible deal
//	--config <path>     - Board config YAML
//	--log-file <path>   - Write logs to a file
//	--debug             - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snacks/internal/games/snacks"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

// logger is set up by the root command before any subcommand runs.
var logger = log.New(io.Discard)

// logFile is the --log-file handle, closed when the command finishes.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	// PersistentPostRunE is skipped when a command fails.
	closeLogging(nil, nil) //nolint:errcheck // nothing left to report it to
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snacks",
	Short: "Snacks - a tile board in your terminal",
	Long: `Snacks deals a board of food tiles in your terminal. Press a tile to
lift it off the board; it follows the pointer until you let go, then
drops back into its place.

Available commands:
  list     - Show all available boards
  play     - Play a board directly
  menu     - Interactive board picker
  serve    - Start SSH server for remote play

Examples:
  snacks list
  snacks play
  snacks play snacks_compact --seed 42
  snacks menu --log-file snacks.log --debug
  snacks serve --ssh :2222`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// setupLogging builds the shared logger and hands it to the boards.
// The TUI owns the terminal, so logs only go somewhere when --log-file is set.
func setupLogging(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "snacks",
		})
	}
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	snacks.SetLogger(logger)
	snacks.SetConfigPath(flagConfig)
	logger.Debug("starting", "command", cmd.Name(), "fps", flagFPS, "seed", flagSeed, "config", flagConfig)
	return nil
}

// closeLogging closes the log file, if one was opened. Safe to call twice.
func closeLogging(_ *cobra.Command, _ []string) error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	if err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}
	return nil
}
