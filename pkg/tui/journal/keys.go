package journal

import "github.com/charmbracelet/bubbles/v2/key"

type keyMap struct {
	Save       key.Binding
	Prompt     key.Binding
	HidePrompt key.Binding
	Mood       key.Binding
	MoodPick   key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save entry")),
		Prompt:     key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "new prompt")),
		HidePrompt: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "hide prompt")),
		Mood:       key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "mood")),
		MoodPick: key.NewBinding(
			key.WithKeys("alt+0", "alt+1", "alt+2", "alt+3", "alt+4", "alt+5"),
			key.WithHelp("alt+1..5", "pick mood"),
		),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Prompt, k.HidePrompt, k.Mood, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.MoodPick}}
}
