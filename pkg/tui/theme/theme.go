package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/calm/pkg/exercise"
	"tableflip.dev/calm/pkg/glyph"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Panel   PanelTheme
	Footer  FooterTheme
	Phase   PhaseTheme
	Journal JournalTheme
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
}

// FooterTheme groups styles used by the bottom status and help line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PhaseTheme styles the exercise view.
type PhaseTheme struct {
	Instruction lipgloss.Style
	Countdown   lipgloss.Style
	Encourage   lipgloss.Style
	Step        lipgloss.Style
	Selected    lipgloss.Style
	Muted       lipgloss.Style
}

// JournalTheme styles the journal editor.
type JournalTheme struct {
	Prompt  lipgloss.Style
	Mood    lipgloss.Style
	Saved   lipgloss.Style
	Pending lipgloss.Style
	Failed  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title:    lipgloss.NewStyle().Bold(true),
			Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
			Body:     lipgloss.NewStyle(),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Phase: PhaseTheme{
			Instruction: lipgloss.NewStyle().Bold(true),
			Countdown:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
			Encourage:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Italic(true),
			Step:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Journal: JournalTheme{
			Prompt: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(lipgloss.Color("111")).
				PaddingLeft(1).
				Italic(true),
			Mood:    lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
			Saved:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
			Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
			Failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
	}
}

// Each breathing phase fades from its own color toward the next one's, the
// way the on-screen guide swells and shrinks.
var phaseColors = map[string]colorful.Color{
	exercise.Inhale: mustHex("#7fb3ff"),
	exercise.Hold:   mustHex("#b79cff"),
	exercise.Exhale: mustHex("#7fe0b8"),
}

var stepColor = mustHex("#ffc98a")

// PhaseColor is the accent for a phase at progress in [0, 1], blending
// toward the color of next.
func PhaseColor(current, next string, progress float64) color.Color {
	from, ok := phaseColors[current]
	if !ok {
		from = stepColor
	}
	to, ok := phaseColors[next]
	if !ok {
		to = stepColor
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return from.BlendLuv(to, progress).Clamped()
}

// MoodColor tints a mood label.
func MoodColor(m glyph.Mood) color.Color {
	switch m {
	case glyph.Happy:
		return lipgloss.Color("221")
	case glyph.Sad:
		return lipgloss.Color("110")
	case glyph.Angry:
		return lipgloss.Color("203")
	case glyph.Calm:
		return lipgloss.Color("114")
	case glyph.Anxious:
		return lipgloss.Color("180")
	}
	return lipgloss.Color("244")
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
