package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionUp             // W, Up arrow - move up the ground band
	ActionDown           // S, Down arrow - move down the ground band
	ActionSprint         // Shift modifier - run instead of walk
	ActionFire           // Space, F - shoot
	ActionReload         // E - reload the magazine
	ActionRestart        // R key - restart game after death
	ActionQuit           // Q, Esc - exit after death
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionSprint:
		return "Sprint"
	case ActionFire:
		return "Fire"
	case ActionReload:
		return "Reload"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for the player during one simulation tick.
// Held actions are active for the whole frame (movement, fire, sprint);
// Pressed actions fired once this frame (reload, restart, pause).
type InputFrame struct {
	Held    map[Action]bool
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Press marks an action as pressed this frame. A press also counts as held.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Hold(a)
}

// IsHeld returns true if the action is held during this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// WasPressed returns true if the action was pressed during this frame.
func (f InputFrame) WasPressed(a Action) bool {
	return f.Pressed[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Held)
	clear(f.Pressed)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	return clone
}
