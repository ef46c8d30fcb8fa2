package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move the keyboard pointer up
	ActionDown           // S, J, Down arrow - move the keyboard pointer down
	ActionLeft           // A, H, Left arrow - move the keyboard pointer left
	ActionRight          // D, L, Right arrow - move the keyboard pointer right
	ActionPress          // Space, Enter - press or release at the keyboard pointer
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - deal a fresh board
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P key - pause/unpause game
	ActionDebug          // I key - toggle the inspector overlay
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPress:
		return "Press"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionDebug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes pointer events.
type PointerKind uint8

const (
	PointerMove PointerKind = iota
	PointerDown
	PointerUp
)

// String returns the name of the pointer event kind.
func (k PointerKind) String() string {
	switch k {
	case PointerMove:
		return "Move"
	case PointerDown:
		return "Down"
	case PointerUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// PointerEvent is a mouse event in screen cells.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions triggered during this frame, the pointer events in
// arrival order and the time elapsed since the previous tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer holds mouse events in the order they arrived.
	// Order matters: a press and release within one frame must both apply.
	Pointer []PointerEvent

	// Elapsed is the frame clock: time since the previous tick.
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer appends a pointer event.
func (f *InputFrame) AddPointer(kind PointerKind, x, y int) {
	f.Pointer = append(f.Pointer, PointerEvent{Kind: kind, X: x, Y: y})
}

// Seconds returns Elapsed in seconds.
func (f InputFrame) Seconds() float64 {
	return f.Elapsed.Seconds()
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
	f.Elapsed = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = append([]PointerEvent(nil), f.Pointer...)
	clone.Elapsed = f.Elapsed
	return clone
}
