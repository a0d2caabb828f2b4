package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Widget is the content hosted inside the application frame.
//
// Update and HandleKey mutate the widget in place, so implementations are
// expected to be pointer types.
type Widget interface {
	// ID returns a stable identifier, used for logging and zone names.
	ID() string

	// Title is drawn in the frame's top border.
	Title() string

	// Init returns the widget's own startup commands, if any.
	Init() tea.Cmd

	// Update receives every message the application does not consume.
	Update(msg tea.Msg) tea.Cmd

	// View renders into exactly width x height cells.
	View(width, height int) string

	// MinSize is the smallest area the widget can render into.
	MinSize() (minW, minH int)

	// HandleKey receives key presses that are not global bindings.
	HandleKey(key tea.KeyMsg) tea.Cmd
}

// KeyBinder is implemented by widgets that want their bindings listed in
// the help bar.
type KeyBinder interface {
	KeyBindings() []key.Binding
}
