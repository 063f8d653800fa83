package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Task picker
	Up     key.Binding
	Down   key.Binding
	Select key.Binding

	// Timer controls
	Pause     key.Binding
	Skip      key.Binding
	BreakFlow key.Binding

	// Finish prompt
	Yes key.Binding
	No  key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Task picker
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start session"),
		),

		// Timer controls
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause/resume"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip phase"),
		),
		BreakFlow: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "end flow, take break"),
		),

		// Finish prompt
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "task finished"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "keep task open"),
		),

		// General
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns short help bindings (for status bar)
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Skip, k.Quit}
}

// FullHelp returns full help bindings (for help view)
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Skip, k.BreakFlow},
		{k.Up, k.Down, k.Select},
		{k.Yes, k.No},
		{k.Help, k.Quit},
	}
}
