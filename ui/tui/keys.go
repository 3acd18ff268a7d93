package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the picker key bindings. Printable keys, left and right are
// never bound here; they belong to the search field.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Select key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "pgdown"),
			key.WithHelp("tab", "next banner"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "pgup"),
			key.WithHelp("shift+tab", "prev banner"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Select, k.Cancel, k.Quit}
}
