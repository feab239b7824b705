// Package journal is the Bubble Tea journal editor. Every keystroke goes to
// the draft store, which persists the draft after typing pauses; ctrl+s
// commits the draft to the entries log.
package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/textarea"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/calm/pkg/content"
	"tableflip.dev/calm/pkg/glyph"
	"tableflip.dev/calm/pkg/journal"
	"tableflip.dev/calm/pkg/tui/theme"
)

const (
	statusInterval = 250 * time.Millisecond
	defaultWidth   = 72
	editorHeight   = 10
)

type statusMsg time.Time

// Options configures a Model.
type Options struct {
	Store *journal.Store
	Theme theme.Theme
	// Prompt draws journal prompts; nil uses content.RandomPrompt.
	Prompt func() string
}

// Model implements tea.Model.
type Model struct {
	store  *journal.Store
	theme  theme.Theme
	prompt func() string
	keys   keyMap
	help   help.Model
	editor textarea.Model

	current    string
	showPrompt bool
	mood       glyph.Mood
	saved      journal.SaveStatus
	saveErr    error
	notice     string
	committed  int

	width int
}

func New(opts Options) *Model {
	m := &Model{
		store:  opts.Store,
		theme:  opts.Theme,
		prompt: opts.Prompt,
		keys:   defaultKeys(),
		help:   help.New(),
		width:  defaultWidth,
	}
	if m.prompt == nil {
		m.prompt = content.RandomPrompt
	}
	m.current = m.prompt()
	m.showPrompt = true

	m.editor = textarea.New()
	m.editor.Placeholder = "Start writing your thoughts here..."
	m.editor.ShowLineNumbers = false
	m.editor.SetWidth(m.width - 4)
	m.editor.SetHeight(editorHeight)

	d := m.store.Draft()
	m.editor.SetValue(d.Text)
	m.mood = d.Mood
	m.saved = m.store.Status()
	m.saveErr = m.store.Err()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.editor.Focus(), pollStatus())
}

func pollStatus() tea.Cmd {
	return tea.Tick(statusInterval, func(t time.Time) tea.Msg { return statusMsg(t) })
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor.SetWidth(msg.Width - 4)
		return m, nil
	case statusMsg:
		m.refreshStatus()
		return m, pollStatus()
	case tea.KeyPressMsg:
		if cmd, handled := m.handleKey(msg); handled {
			m.refreshStatus()
			return m, cmd
		}
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if after := m.editor.Value(); after != before {
		m.notice = ""
		m.store.UpdateText(after)
		m.refreshStatus()
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.Save):
		m.commit()
		return nil, true
	case key.Matches(msg, m.keys.Prompt):
		m.current = m.prompt()
		m.showPrompt = true
		return nil, true
	case key.Matches(msg, m.keys.HidePrompt):
		m.showPrompt = false
		return nil, true
	case key.Matches(msg, m.keys.Mood):
		m.setMood(nextMood(m.mood))
		return nil, true
	case key.Matches(msg, m.keys.MoodPick):
		if k := strings.TrimPrefix(msg.String(), "alt+"); k == "0" {
			m.setMood(glyph.NoMood)
		} else if mood, err := glyph.ParseMood(k); err == nil {
			m.setMood(mood)
		}
		return nil, true
	}
	return nil, false
}

func (m *Model) setMood(mood glyph.Mood) {
	m.mood = mood
	m.store.SetMood(mood)
	m.notice = ""
}

func (m *Model) commit() {
	e, err := m.store.Commit()
	switch {
	case errors.Is(err, journal.ErrEmptyEntry):
		m.notice = "Write something before saving."
		return
	case err != nil:
		m.notice = fmt.Sprintf("Could not save entry: %v", err)
		return
	}
	m.committed++
	m.editor.Reset()
	m.mood = glyph.NoMood
	m.notice = fmt.Sprintf("Entry saved %s.", e.Timestamp.Local().Format("15:04"))
}

func (m *Model) refreshStatus() {
	m.saved = m.store.Status()
	m.saveErr = m.store.Err()
}

// nextMood cycles none, then every mood, then back to none.
func nextMood(cur glyph.Mood) glyph.Mood {
	moods := glyph.Moods()
	for i, mood := range moods {
		if mood == cur {
			if i == len(moods)-1 {
				return glyph.NoMood
			}
			return moods[i+1]
		}
	}
	return moods[0]
}

// Committed reports how many entries were saved in this session.
func (m *Model) Committed() int { return m.committed }

// View implements tea.Model.
func (m *Model) View() string {
	th := m.theme
	var parts []string

	parts = append(parts, th.Panel.Title.Render("Journal"))
	if m.showPrompt {
		parts = append(parts, th.Journal.Prompt.Render(wordwrap.String(m.current, m.width-6)))
	}
	parts = append(parts, m.editor.View())

	mood := "Mood: none"
	if m.mood != glyph.NoMood {
		mood = "Mood: " + lipgloss.NewStyle().Foreground(theme.MoodColor(m.mood)).Render(m.mood.String())
	}
	parts = append(parts, th.Journal.Mood.Render(mood)+"   "+m.statusView())

	if m.notice != "" {
		parts = append(parts, th.Footer.Status.Render(m.notice))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) statusView() string {
	th := m.theme.Journal
	switch m.saved {
	case journal.Pending:
		return th.Pending.Render(m.saved.String())
	case journal.Failed:
		text := m.saved.String()
		if m.saveErr != nil {
			text += ": " + m.saveErr.Error()
		}
		return th.Failed.Render(text)
	}
	return th.Saved.Render(m.saved.String())
}
