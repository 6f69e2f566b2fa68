package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings shared by every screen
type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	Select        key.Binding
	Back          key.Binding
	NextTab       key.Binding
	PrevTab       key.Binding
	FocusSidebar  key.Binding
	ToggleSidebar key.Binding
	Ask           key.Binding
	Charter       key.Binding
	Quit          key.Binding
	ForceQuit     key.Binding
}

var keys = keyMap{
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
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab/1-9", "switch tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev tab"),
	),
	FocusSidebar: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "sidebar"),
	),
	ToggleSidebar: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "minimize"),
	),
	Ask: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "analyze health"),
	),
	Charter: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "charter"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// listKeys are the arrow-only bindings used while a filter box has focus
var listKeys = struct {
	Up   key.Binding
	Down key.Binding
}{
	Up:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
}
