package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the swatch browser's key bindings.
type KeyMap struct {
	NextTheme      key.Binding
	ToggleDefault  key.Binding
	CycleTransform key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTheme: key.NewBinding(
			key.WithKeys("t", "tab"),
			key.WithHelp("t", "next theme"),
		),
		ToggleDefault: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle default theme"),
		),
		CycleTransform: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "cycle transform"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTheme, k.ToggleDefault, k.CycleTransform, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTheme, k.ToggleDefault},
		{k.CycleTransform, k.Help, k.Quit},
	}
}
