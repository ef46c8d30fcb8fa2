package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/tui-snacks/internal/core"
	"github.com/vovakirdan/tui-snacks/internal/games/snacks"
)

func TestPort(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:2022", "2022"},
		{"nonsense", "nonsense"},
	}
	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			if got := port(tt.addr); got != tt.want {
				t.Errorf("port(%q) = %q, want %q", tt.addr, got, tt.want)
			}
		})
	}
}

// resetFlags restores the globals the root command touches.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagFPS = 60
		flagLogFile = ""
		flagDebug = false
		logger = log.New(io.Discard)
		snacks.SetLogger(nil)
	})
}

func TestServeLoggingReachesBoards(t *testing.T) {
	resetFlags(t)
	flagDebug = true

	var buf bytes.Buffer
	serveLogging(&buf)

	g := snacks.New("snacks_compact", "Snack Board (compact)", "compact")
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	if !strings.Contains(buf.String(), "board dealt") {
		t.Errorf("board debug lines missing from server log:\n%s", buf.String())
	}
}

func TestLogFileClosed(t *testing.T) {
	resetFlags(t)
	flagFPS = 60
	flagLogFile = filepath.Join(t.TempDir(), "snacks.log")

	if err := setupLogging(rootCmd, nil); err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	f := logFile
	if f == nil {
		t.Fatal("log file not kept")
	}

	if err := closeLogging(rootCmd, nil); err != nil {
		t.Fatalf("closeLogging: %v", err)
	}
	if logFile != nil {
		t.Error("log file handle not cleared")
	}
	if _, err := f.WriteString("x"); !errors.Is(err, os.ErrClosed) {
		t.Errorf("write after close: %v, want os.ErrClosed", err)
	}
	if err := closeLogging(rootCmd, nil); err != nil {
		t.Errorf("second close: %v", err)
	}
}
