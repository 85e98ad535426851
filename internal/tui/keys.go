package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the application-wide key bindings. The app shell matches
// the first five against whatever capabilities the top screen declares; the
// rest are handled by the owning screen.
type keyMap struct {
	Quit     key.Binding
	Save     key.Binding
	Run      key.Binding
	Open     key.Binding
	Focus    key.Binding
	Settings key.Binding
	Back     key.Binding
	Help     key.Binding

	CopyPath   key.Binding
	CopyOutput key.Binding
	Search     key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
	Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Run:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "run")),
	Open:     key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "open")),
	Focus:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "switch focus")),
	Settings: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "settings")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Help:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),

	CopyPath:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy path")),
	CopyOutput: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "copy output")),
	Search:     key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "search history")),
}

// helpEntry formats one binding for the footer help line
func helpEntry(b key.Binding) string {
	return b.Help().Key + " " + b.Help().Desc
}
