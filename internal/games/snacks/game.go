// Package snacks provides the Snack Board tile game for the terminal.
// Snacks are dealt face up on a board; pressing one lifts it off the board
// as a floating preview that follows the pointer until it is released.
package snacks

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/tui-snacks/internal/core"
	"github.com/vovakirdan/tui-snacks/internal/config"
	"github.com/vovakirdan/tui-snacks/internal/games/snacks/core"
	"github.com/vovakirdan/tui-snacks/internal/registry"
)

// Package-level variables for configuration
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used by every board. Nil restores the discard logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register("snacks", func() registry.Game {
		return New("snacks", "Snack Board", "")
	})
	registry.Register("snacks_compact", func() registry.Game {
		return New("snacks_compact", "Snack Board (compact)", "compact")
	})
}

// Game implements the Snack Board game.
type Game struct {
	id      string
	title   string
	variant string // Config variant name, "" for the base board

	cfg     config.SnacksConfig
	sprites SpriteSet
	scene   *core.Scene
	loadErr error // Config problem shown in the HUD

	// Screen layout
	screenW  int
	screenH  int
	view     Viewport
	tooSmall bool

	// Pointer in world space: last mouse position or keyboard cursor
	pointer core.WorldPos

	paused  bool
	inspect bool
	lastMsg string
}

// New creates a game for a board variant.
func New(id, title, variant string) *Game {
	return &Game{
		id:      id,
		title:   title,
		variant: variant,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset loads config and deals a fresh board.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.paused = false
	g.lastMsg = ""
	g.loadErr = nil

	scfg, err := config.LoadSnacks(configPath)
	if err != nil {
		logger.Error("could not load config, using defaults", "error", err)
		g.loadErr = err
		scfg = config.DefaultSnacksConfig()
	}
	g.cfg = scfg

	scene, err := g.buildScene(cfg.Seed)
	if err != nil {
		logger.Error("could not build board, using defaults", "variant", g.variant, "error", err)
		g.loadErr = err
		g.cfg = config.DefaultSnacksConfig()
		if scene, err = g.buildScene(cfg.Seed); err != nil {
			g.scene = nil
			return
		}
	}
	g.scene = scene

	b := scene.Board()
	g.pointer = b.WorldOf(b.TileAt(0)).Add(b.HalfCell())

	g.Resize(cfg.ScreenW, cfg.ScreenH)
	logger.Debug("board dealt", "game", g.id, "cols", b.Cols, "rows", b.Rows, "origin", b.Origin, "seed", cfg.Seed)
}

// buildScene turns the loaded config into a dealt scene.
func (g *Game) buildScene(seed int64) (*core.Scene, error) {
	sprites, err := NewSpriteSet(g.cfg.Sprites)
	if err != nil {
		return nil, err
	}
	board, err := g.board()
	if err != nil {
		return nil, err
	}
	scene, err := core.NewScene(core.SceneConfig{
		Board:        board,
		Sprites:      sprites.IDs(),
		PreviewSpeed: g.cfg.Preview.Speed,
	}, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	g.sprites = sprites
	return scene, nil
}

// board resolves the variant's board geometry.
func (g *Game) board() (core.Board, error) {
	bc, ok := g.cfg.Variant(g.variant)
	if !ok {
		logger.Warn("unknown board variant, using base board", "variant", g.variant)
		bc = g.cfg.Board
	}
	if bc.Origin != nil {
		return core.NewBoard(core.W(bc.Origin.X, bc.Origin.Y), bc.CellSize, bc.Cols, bc.Rows)
	}
	return core.CenteredBoard(g.cfg.Canvas.Width, g.cfg.Canvas.Height, bc.CellSize, bc.Cols, bc.Rows)
}

// Resize re-lays out the board for a new screen size without re-dealing.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.scene == nil {
		return
	}
	view, ok := NewViewport(
		g.cfg.Canvas.Width, g.cfg.Canvas.Height, g.scene.Board().CellSize,
		w, h, g.cfg.Render.HUDHeight, g.cfg.Render.MaxCellH,
	)
	g.view = view
	g.tooSmall = !ok
}

// Step applies this tick's input, then advances the preview by the frame time.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionDebug) {
		g.inspect = !g.inspect
	}
	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.scene == nil {
		return platformcore.StepResult{State: g.State()}
	}
	if g.paused || g.tooSmall {
		// A release still resolves a held item; nothing else gets through.
		for _, ev := range in.Pointer {
			if ev.Kind == platformcore.PointerUp {
				g.release()
			}
		}
		return platformcore.StepResult{State: g.State()}
	}

	for _, ev := range in.Pointer {
		if ev.Kind == platformcore.PointerDown {
			pos, onTile := g.view.Pick(g.scene.Board(), ev.X, ev.Y)
			g.pointer = pos
			if onTile {
				g.press()
			} else {
				logger.Debug("press ignored", "reason", core.PressOutOfBounds, "col", ev.X, "row", ev.Y)
			}
			continue
		}
		g.pointer = g.view.ToWorld(ev.X, ev.Y)
		if ev.Kind == platformcore.PointerUp {
			g.release()
		}
	}

	g.handleKeyboardPointer(in)

	g.scene.Update(g.pointer, in.Seconds())

	return platformcore.StepResult{State: g.State()}
}

// handleKeyboardPointer moves the keyboard cursor a tile at a time and
// turns the press key into press/release.
func (g *Game) handleKeyboardPointer(in platformcore.InputFrame) {
	step := g.scene.Board().CellSize
	moved := false
	if in.Has(platformcore.ActionLeft) {
		g.pointer.X -= step
		moved = true
	}
	if in.Has(platformcore.ActionRight) {
		g.pointer.X += step
		moved = true
	}
	if in.Has(platformcore.ActionUp) {
		g.pointer.Y -= step
		moved = true
	}
	if in.Has(platformcore.ActionDown) {
		g.pointer.Y += step
		moved = true
	}
	if moved {
		g.pointer.X = platformcore.ClampF(g.pointer.X, 0, g.cfg.Canvas.Width-1)
		g.pointer.Y = platformcore.ClampF(g.pointer.Y, 0, g.cfg.Canvas.Height-1)
	}

	if in.Has(platformcore.ActionPress) {
		if _, held := g.scene.Interaction().Focused(); held {
			g.release()
		} else {
			g.press()
		}
	}
}

func (g *Game) press() {
	out := g.scene.PointerDown(g.pointer)
	tile := g.scene.Board().TileOf(g.pointer)
	if out != core.PressFocused {
		logger.Debug("press ignored", "reason", out, "pointer", g.pointer, "tile", tile)
		return
	}
	st := g.scene.Interaction()
	item, _ := g.scene.Grid().Get(st.Index)
	g.lastMsg = "Holding " + item.SpriteID
	logger.Debug("focus", "index", st.Index, "tile", tile, "sprite", item.SpriteID)
}

func (g *Game) release() {
	st := g.scene.Interaction()
	out := g.scene.PointerUp(g.pointer)
	if out != core.ReleaseRestored {
		logger.Debug("release ignored", "pointer", g.pointer)
		return
	}
	g.lastMsg = ""
	logger.Debug("restore", "index", st.Index, "pointer", g.pointer)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Paused:   g.paused,
		TooSmall: g.tooSmall,
	}
	if g.scene != nil {
		_, st.Focused = g.scene.Interaction().Focused()
		st.Hidden = g.scene.Grid().HiddenCount()
	}
	return st
}

// Scene exposes the board state for inspection.
func (g *Game) Scene() *core.Scene {
	return g.scene
}

// Viewport returns the current screen layout.
func (g *Game) Viewport() Viewport {
	return g.view
}
