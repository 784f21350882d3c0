package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the main-screen keybindings, one per saver operation
// plus clipboard and help.
type keyMap struct {
	Quicksave  key.Binding
	Quickload  key.Binding
	CreateSave key.Binding
	LoadSave   key.Binding
	SelectGame key.Binding
	CopyPath   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quicksave: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quicksave"),
		),
		Quickload: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "quickload"),
		),
		CreateSave: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "create save"),
		),
		LoadSave: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "load save"),
		),
		SelectGame: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "select game"),
		),
		CopyPath: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy saves dir"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quicksave, k.Quickload, k.CreateSave, k.LoadSave, k.SelectGame, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quicksave, k.Quickload},
		{k.CreateSave, k.LoadSave, k.SelectGame},
		{k.CopyPath, k.Help, k.Quit},
	}
}
