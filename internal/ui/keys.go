package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Open  key.Binding
	Close key.Binding
	Home  key.Binding
	End   key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:  key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "back")),
		Right: key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "next")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "open/down")),
		Open:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Home:  key.NewBinding(key.WithKeys("home", "pgup"), key.WithHelp("home", "first")),
		End:   key.NewBinding(key.WithKeys("end", "pgdown"), key.WithHelp("end", "last")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is part of the help.KeyMap interface.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Down, k.Open, k.Close, k.Quit}
}

// FullHelp is part of the help.KeyMap interface.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Open, k.Close, k.Home, k.End, k.Quit},
	}
}
