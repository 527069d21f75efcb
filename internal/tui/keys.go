package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	SelectAll   key.Binding
	Clear       key.Binding
	Slide       key.Binding
	Orientation key.Binding
	Behavior    key.Binding
	Leave       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "left", "h"),
			key.WithHelp("↑/k", "scroll back"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "right", "l"),
			key.WithHelp("↓/j", "scroll forward"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("pgup", "page back"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("pgdn", "page forward"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select all"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Slide: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "slide select"),
		),
		Orientation: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "orientation"),
		),
		Behavior: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "behavior"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave select"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Slide, k.SelectAll, k.Clear, k.Orientation, k.Behavior, k.Leave, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Slide, k.SelectAll, k.Clear, k.Leave},
		{k.Orientation, k.Behavior},
		{k.Help, k.Quit},
	}
}
