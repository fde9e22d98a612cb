package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Help  key.Binding
	Yank  key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Yank:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy selection")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c", "q", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Yank, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
