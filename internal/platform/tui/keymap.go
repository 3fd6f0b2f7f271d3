package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rainstorm/internal/core"
)

// KeyMap holds the key bindings for a running game.
// Shifted arrows and uppercase WASD move while sprinting.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	SprintLeft  key.Binding
	SprintRight key.Binding
	SprintUp    key.Binding
	SprintDown  key.Binding
	Fire        key.Binding
	Reload      key.Binding
	Restart     key.Binding
	Quit        key.Binding
	Pause       key.Binding
	ForceQuit   key.Binding
	Screenshot  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:        key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("arrows/wasd", "move")),
		Right:       key.NewBinding(key.WithKeys("right", "d")),
		Up:          key.NewBinding(key.WithKeys("up", "w")),
		Down:        key.NewBinding(key.WithKeys("down", "s")),
		SprintLeft:  key.NewBinding(key.WithKeys("shift+left", "A"), key.WithHelp("shift", "sprint")),
		SprintRight: key.NewBinding(key.WithKeys("shift+right", "D")),
		SprintUp:    key.NewBinding(key.WithKeys("shift+up", "W")),
		SprintDown:  key.NewBinding(key.WithKeys("shift+down", "S")),
		Fire:        key.NewBinding(key.WithKeys(" ", "f"), key.WithHelp("space", "fire")),
		Reload:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "reload")),
		Restart:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "exit")),
		Pause:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
		Screenshot:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "snap")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.SprintLeft, k.Fire, k.Reload, k.Pause}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.SprintLeft},
		{k.Fire, k.Reload},
		{k.Pause, k.Restart, k.Quit, k.Screenshot},
	}
}

// KeyInput is what a single key message means to the game.
type KeyInput struct {
	Held    []core.Action // Actions to treat as held for the hold window
	Pressed []core.Action // One-shot actions for the next tick
}

// Map translates a key message into game actions.
func (k KeyMap) Map(msg tea.KeyMsg) KeyInput {
	switch {
	case key.Matches(msg, k.Left):
		return KeyInput{Held: []core.Action{core.ActionLeft}}
	case key.Matches(msg, k.Right):
		return KeyInput{Held: []core.Action{core.ActionRight}}
	case key.Matches(msg, k.Up):
		return KeyInput{Held: []core.Action{core.ActionUp}}
	case key.Matches(msg, k.Down):
		return KeyInput{Held: []core.Action{core.ActionDown}}
	case key.Matches(msg, k.SprintLeft):
		return KeyInput{Held: []core.Action{core.ActionLeft, core.ActionSprint}}
	case key.Matches(msg, k.SprintRight):
		return KeyInput{Held: []core.Action{core.ActionRight, core.ActionSprint}}
	case key.Matches(msg, k.SprintUp):
		return KeyInput{Held: []core.Action{core.ActionUp, core.ActionSprint}}
	case key.Matches(msg, k.SprintDown):
		return KeyInput{Held: []core.Action{core.ActionDown, core.ActionSprint}}
	case key.Matches(msg, k.Fire):
		return KeyInput{Held: []core.Action{core.ActionFire}}
	case key.Matches(msg, k.Reload):
		return KeyInput{Pressed: []core.Action{core.ActionReload}}
	case key.Matches(msg, k.Restart):
		return KeyInput{Pressed: []core.Action{core.ActionRestart}}
	case key.Matches(msg, k.Quit):
		return KeyInput{Pressed: []core.Action{core.ActionQuit}}
	case key.Matches(msg, k.Pause):
		return KeyInput{Pressed: []core.Action{core.ActionPause}}
	}
	return KeyInput{}
}
