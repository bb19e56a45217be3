package core

// Action represents a semantic hotkey action, abstracted from physical key presses.
// Front ends map their own keys onto these.
type Action int

const (
	ActionNone       Action = iota
	ActionFullscreen        // F1 - toggle fullscreen
	ActionBack              // Escape - back to menu / close help / quit from menu
	ActionQuit              // Ctrl+C, window close - leave immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFullscreen:
		return "Fullscreen"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input sampled once at the start of a frame.
// All controllers of the frame read the same InputFrame.
type InputFrame struct {
	// Pointer is the current pointer position in window pixels.
	Pointer Vec2

	// Released is true when the primary pointer button was released this frame.
	Released bool

	// Resized is true when the window changed size since the previous frame.
	Resized bool

	// Actions holds hotkeys released this frame.
	Actions map[Action]bool
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

// Clear resets edge events for the next frame. The pointer position is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Released = false
	f.Resized = false
}
