package core

// Mode is the interaction state: nothing pressed, or one item focused.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeFocused
)

// String returns the string representation of a mode.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeFocused:
		return "Focused"
	default:
		return "Unknown"
	}
}

// InteractionState is a snapshot of the controller.
// Index is meaningful only when Mode is ModeFocused.
type InteractionState struct {
	Mode  Mode
	Index int
}

// Focused returns the focused index and true, or -1 and false when idle.
func (s InteractionState) Focused() (int, bool) {
	if s.Mode != ModeFocused {
		return -1, false
	}
	return s.Index, true
}

// PressOutcome tells the caller what a pointer-down did.
type PressOutcome uint8

const (
	PressFocused     PressOutcome = iota // Item hidden, preview shown
	PressOutOfBounds                     // Pointer was off the board
	PressHidden                          // Item under the pointer is already hidden
	PressBusy                            // Another item is still focused
	PressInvalid                         // Index lookup failed
)

// String returns the string representation of a press outcome.
func (o PressOutcome) String() string {
	switch o {
	case PressFocused:
		return "focused"
	case PressOutOfBounds:
		return "out of bounds"
	case PressHidden:
		return "already hidden"
	case PressBusy:
		return "busy"
	case PressInvalid:
		return "invalid index"
	default:
		return "unknown"
	}
}

// ReleaseOutcome tells the caller what a pointer-up did.
type ReleaseOutcome uint8

const (
	ReleaseRestored ReleaseOutcome = iota // Focused item shown again
	ReleaseIgnored                        // Nothing was focused
)

// String returns the string representation of a release outcome.
func (o ReleaseOutcome) String() string {
	switch o {
	case ReleaseRestored:
		return "restored"
	case ReleaseIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// InteractionController turns pointer presses and releases into grid
// visibility changes and preview activation.
type InteractionController struct {
	board   Board
	grid    *ItemGrid
	preview *PreviewMotion

	mode    Mode
	focused int
}

// NewInteractionController creates an idle controller over grid and preview.
func NewInteractionController(grid *ItemGrid, preview *PreviewMotion) *InteractionController {
	return &InteractionController{
		board:   grid.Board(),
		grid:    grid,
		preview: preview,
		mode:    ModeIdle,
		focused: -1,
	}
}

// OnPointerDown focuses the visible item under pos.
// Presses off the board, on a hidden item or while another item is
// focused leave every piece of state untouched.
func (c *InteractionController) OnPointerDown(pos WorldPos) PressOutcome {
	if c.mode == ModeFocused {
		return PressBusy
	}

	tile := c.board.TileOf(pos)
	if !c.board.Contains(tile) {
		return PressOutOfBounds
	}

	index := c.board.IndexOf(tile)
	item, err := c.grid.Get(index)
	if err != nil {
		return PressInvalid
	}
	if !item.Visible {
		return PressHidden
	}

	if err := c.grid.SetVisible(index, false); err != nil {
		return PressInvalid
	}
	c.preview.Activate(item.WorldPos, item.SpriteID)
	c.mode = ModeFocused
	c.focused = index
	return PressFocused
}

// OnPointerUp restores the focused item, wherever the pointer is.
func (c *InteractionController) OnPointerUp(_ WorldPos) ReleaseOutcome {
	if c.mode != ModeFocused {
		return ReleaseIgnored
	}

	//nolint:errcheck // focused is always an index the grid handed out
	c.grid.SetVisible(c.focused, true)
	c.preview.Deactivate()
	c.mode = ModeIdle
	c.focused = -1
	return ReleaseRestored
}

// State returns the current interaction state.
func (c *InteractionController) State() InteractionState {
	return InteractionState{Mode: c.mode, Index: c.focused}
}

// Focused returns the focused index, if any.
func (c *InteractionController) Focused() (int, bool) {
	return c.State().Focused()
}
