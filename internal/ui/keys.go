package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains the cook screen shortcuts
type KeyMap struct {
	Finish  key.Binding
	Help    key.Binding
	LidOpen key.Binding
	NewCook key.Binding
	Quit    key.Binding
	Reading key.Binding
	Refresh key.Binding
	Toggle  key.Binding
	Wrap    key.Binding
}

// NewKeyMap creates the default bindings
func NewKeyMap() KeyMap {
	return KeyMap{
		Finish: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "finish cook"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "more keys"),
		),
		LidOpen: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "lid opened"),
		),
		NewCook: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new cook"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Reading: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "log reading"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "refresh status"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("d", "tab"),
			key.WithHelp("d", "summary/detailed"),
		),
		Wrap: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "wrap"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reading, k.Wrap, k.Toggle, k.Finish, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reading, k.LidOpen, k.Wrap, k.Finish},
		{k.Toggle, k.Refresh, k.NewCook},
		{k.Help, k.Quit},
	}
}

// reportKeys are the only bindings active on the report screen
func (k KeyMap) reportKeys() []key.Binding {
	return []key.Binding{k.NewCook, k.Quit}
}
