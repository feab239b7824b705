package exercise

import "github.com/charmbracelet/bubbles/v2/key"

type keyMap struct {
	Start   key.Binding
	Pause   key.Binding
	Reset   key.Binding
	Skip    key.Binding
	Pattern key.Binding
	Up      key.Binding
	Down    key.Binding
	Longer  key.Binding
	Shorter key.Binding
	Voice   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Start:   key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "start")),
		Pause:   key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "pause/resume")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Skip:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next phase")),
		Pattern: key.NewBinding(key.WithKeys("tab", "p"), key.WithHelp("tab", "pattern")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "select phase")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "select phase")),
		Longer:  key.NewBinding(key.WithKeys("+", "=", "right", "l"), key.WithHelp("+", "longer")),
		Shorter: key.NewBinding(key.WithKeys("-", "left", "h"), key.WithHelp("-", "shorter")),
		Voice:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "voice")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Reset, k.Pattern, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Reset, k.Skip},
		{k.Pattern, k.Up, k.Down, k.Longer, k.Shorter},
		{k.Voice, k.Help, k.Quit},
	}
}
