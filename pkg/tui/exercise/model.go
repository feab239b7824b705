// Package exercise is the Bubble Tea view of a running exercise: the current
// instruction, a countdown, a phase progress bar and the editable list of
// phase durations.
package exercise

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/progress"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/calm/pkg/engine"
	ex "tableflip.dev/calm/pkg/exercise"
	"tableflip.dev/calm/pkg/narration"
	"tableflip.dev/calm/pkg/timeutil"
	"tableflip.dev/calm/pkg/tui/components/panel"
	"tableflip.dev/calm/pkg/tui/theme"
)

const (
	refreshInterval = 100 * time.Millisecond
	encourageFor    = 3 * time.Second
	defaultWidth    = 60
)

// PhaseMsg carries an engine phase change into the program.
type PhaseMsg struct{ State engine.State }

// CycleMsg carries a completed cycle count into the program.
type CycleMsg struct{ Cycles int }

type refreshMsg time.Time

type spokenMsg struct{ err error }

// Hooks adapts engine notifications to program messages. send is usually
// (*tea.Program).Send.
func Hooks(send func(tea.Msg)) (onPhase func(engine.State), onCycle func(int)) {
	return func(st engine.State) { send(PhaseMsg{State: st}) },
		func(n int) { send(CycleMsg{Cycles: n}) }
}

// Options configures a Model.
type Options struct {
	Engine *engine.Engine
	// Patterns are cycled through with tab. The engine's pattern is
	// selected first when it is in the list.
	Patterns []ex.Pattern
	Narrator narration.Narrator
	Voice    narration.Voice
	// Speak starts with narration on when the narrator is available.
	Speak bool
	Theme theme.Theme
	Now   func() time.Time
}

// Model implements tea.Model.
type Model struct {
	eng      *engine.Engine
	patterns []ex.Pattern
	current  int

	narrator narration.Narrator
	voice    narration.Voice
	speak    bool

	theme theme.Theme
	keys  keyMap
	help  help.Model
	bar   progress.Model
	panel panel.Model
	now   func() time.Time

	state    engine.State
	selected int

	encouragement  string
	encourageUntil time.Time
	status         string
	statusErr      bool

	width  int
	height int
}

func New(opts Options) *Model {
	m := &Model{
		eng:      opts.Engine,
		patterns: opts.Patterns,
		narrator: opts.Narrator,
		voice:    opts.Voice,
		theme:    opts.Theme,
		keys:     defaultKeys(),
		help:     help.New(),
		panel:    panel.New(opts.Theme.Panel),
		now:      opts.Now,
		width:    defaultWidth,
	}
	if m.narrator == nil {
		m.narrator = narration.NoOp{}
	}
	m.speak = opts.Speak && m.narrator.Available()
	if m.now == nil {
		m.now = time.Now
	}
	if len(m.patterns) == 0 {
		m.patterns = []ex.Pattern{opts.Engine.Pattern()}
	}
	active := opts.Engine.Pattern().Name
	for i, p := range m.patterns {
		if p.Name == active {
			m.current = i
		}
	}
	m.keys.Voice.SetEnabled(m.narrator.Available())
	m.resizeBar()
	m.state = m.eng.State()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return refresh()
}

func refresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return refreshMsg(t) })
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeBar()
	case refreshMsg:
		m.state = m.eng.State()
		if m.encouragement != "" && !m.now().Before(m.encourageUntil) {
			m.encouragement = ""
		}
		return m, refresh()
	case PhaseMsg:
		// The message may trail a pattern change; the engine is the source
		// of truth for what is shown.
		m.state = m.eng.State()
		return m, m.say(msg.State.Phase.Text())
	case CycleMsg:
		if text, ok := ex.Encouragement(msg.Cycles); ok {
			m.encouragement = text
			m.encourageUntil = m.now().Add(encourageFor)
		}
	case spokenMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.setError(msg.err)
		}
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	m.status, m.statusErr = "", false
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Start):
		if err := m.eng.Start(); err != nil && !errors.Is(err, engine.ErrAlreadyStarted) {
			m.setError(err)
		}
	case key.Matches(msg, m.keys.Pause):
		if err := m.eng.TogglePause(); errors.Is(err, engine.ErrNotStarted) {
			m.status = "Press enter to begin."
		}
	case key.Matches(msg, m.keys.Reset):
		m.eng.Reset()
		m.encouragement = ""
	case key.Matches(msg, m.keys.Skip):
		if err := m.eng.Skip(); err != nil {
			m.status = "Press enter to begin."
		}
	case key.Matches(msg, m.keys.Pattern):
		m.current = (m.current + 1) % len(m.patterns)
		if err := m.eng.SelectPattern(m.patterns[m.current]); err != nil {
			m.setError(err)
		}
		m.selected = 0
		m.encouragement = ""
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.eng.Pattern().Phases)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Longer):
		m.adjust(time.Second)
	case key.Matches(msg, m.keys.Shorter):
		m.adjust(-time.Second)
	case key.Matches(msg, m.keys.Voice):
		m.speak = !m.speak
		if m.speak {
			m.status = "Voice guidance on."
		} else {
			m.status = "Voice guidance off."
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.state = m.eng.State()
	return nil
}

func (m *Model) adjust(delta time.Duration) {
	p := m.eng.Pattern()
	if m.selected >= len(p.Phases) {
		return
	}
	err := m.eng.SetPhaseDuration(m.selected, p.Phases[m.selected].Duration+delta)
	switch {
	case errors.Is(err, engine.ErrRunning):
		m.status = "Pause to change durations."
	case errors.Is(err, engine.ErrOutOfRange):
		lo, hi := m.eng.Bounds()
		m.status = fmt.Sprintf("Durations stay between %s and %s.", timeutil.Format(lo), timeutil.Format(hi))
	case err != nil:
		m.setError(err)
	}
}

func (m *Model) say(text string) tea.Cmd {
	if !m.speak || text == "" {
		return nil
	}
	n, v := m.narrator, m.voice
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return spokenMsg{err: n.Speak(ctx, text, v)}
	}
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m *Model) resizeBar() {
	w := m.width - 8
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	m.bar = progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(w),
		progress.WithoutPercentage(),
	)
}

// Speaking reports whether narration is on.
func (m *Model) Speaking() bool { return m.speak }

// View implements tea.Model.
func (m *Model) View() string {
	p := m.eng.Pattern()
	st := m.state
	th := m.theme

	var b strings.Builder
	switch st.Status() {
	case engine.NotStarted:
		b.WriteString(th.Phase.Instruction.Render("Press enter to begin."))
		b.WriteString("\n\n")
	default:
		next := p.Phases[(st.PhaseIndex+1)%len(p.Phases)].Name
		accent := th.Phase.Instruction.Foreground(theme.PhaseColor(st.Phase.Name, next, st.Progress))
		b.WriteString(accent.Render(wordwrap.String(st.Phase.Text(), m.width-6)))
		b.WriteString("  ")
		b.WriteString(th.Phase.Countdown.Render(timeutil.Countdown(st.Remaining())))
		if st.Status() == engine.Paused {
			b.WriteString(th.Phase.Muted.Render("  paused"))
		}
		b.WriteString("\n")
		b.WriteString(m.bar.ViewAs(st.Progress))
		b.WriteString("\n")
	}

	b.WriteString(th.Phase.Muted.Render(fmt.Sprintf("Cycles %d  set %d/%d", st.Cycles, ex.SetProgress(st.Cycles), ex.SetSize)))
	b.WriteString("\n")
	if m.encouragement != "" {
		b.WriteString(th.Phase.Encourage.Render(m.encouragement))
	}
	b.WriteString("\n\n")

	for i, ph := range p.Phases {
		line := fmt.Sprintf("%-8s %5s", ph.Name, timeutil.Format(ph.Duration))
		style := th.Phase.Step
		marker := "  "
		if i == m.selected {
			marker = "› "
			style = th.Phase.Selected
		}
		if i == st.PhaseIndex {
			line += "  ●"
		}
		b.WriteString(style.Render(marker + line))
		b.WriteString("\n")
	}

	m.panel.SetContent(p.Title, p.Rhythm(), strings.TrimRight(b.String(), "\n"))
	body, _ := m.panel.View()

	footer := m.help.View(m.keys)
	if m.status != "" {
		style := th.Footer.Status
		if m.statusErr {
			style = th.Footer.Error
		}
		footer = style.Render(m.status) + "\n" + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}
