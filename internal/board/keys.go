package board

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left, Right, Up, Down key.Binding
	Grab, Cancel          key.Binding
	Move, Overview, Quit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "zone")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "zone")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "card")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "card")),
		Grab:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "pick up/drop")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Move:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move to…")),
		Overview: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "all items")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.Grab, k.Cancel, k.Move, k.Overview, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Grab, k.Cancel, k.Move},
		{k.Overview, k.Quit},
	}
}
