package launcher

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings for the launcher TUI.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Focus key.Binding
	// Actions
	Select      key.Binding
	StartStop   key.Binding
	ClearRecent key.Binding
	Refresh     key.Binding
	// Help and quit
	Help key.Binding
	Quit key.Binding
}

// defaultKeyMap is the default keymap for the launcher TUI.
var defaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next pane"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	StartStop: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "start/stop server"),
	),
	ClearRecent: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "clear recent"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "refresh folder"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}

// shortHelp returns the bindings surfaced in the footer.
func (k KeyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Select, k.StartStop, k.ClearRecent, k.Quit}
}
