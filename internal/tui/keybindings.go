package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the canvas and modal bindings. Modal bindings only apply while
// a prompt is open.
type keyMap struct {
	Fill      key.Binding
	Reset     key.Binding
	Wipe      key.Binding
	Focus     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	Toggle  key.Binding
	Choose  key.Binding
	Yes     key.Binding
	No      key.Binding
	Dismiss key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Fill: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "fill"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear"),
		),
		Wipe: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "wipe"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus input"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("left", "right", "h", "l", "tab", "shift+tab"),
			key.WithHelp("←/→", "select"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "choose"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "abort"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fill, k.Reset, k.Wipe, k.Focus, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fill, k.Reset, k.Wipe, k.Focus, k.Quit},
		{k.Toggle, k.Choose, k.Yes, k.No, k.Dismiss},
	}
}
