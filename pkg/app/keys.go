package app

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the application-level bindings.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding
}

// DefaultKeyMap returns q/ctrl+c to quit and ? to toggle full help.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// helpKeys merges the application bindings with the widget's for the help
// bar. It implements help.KeyMap.
type helpKeys struct {
	app    KeyMap
	widget []key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(h.widget)+2)
	out = append(out, h.widget...)
	return append(out, h.app.Help, h.app.Quit)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	groups := [][]key.Binding{}
	if len(h.widget) > 0 {
		groups = append(groups, h.widget)
	}
	return append(groups, []key.Binding{h.app.Help, h.app.Quit})
}
