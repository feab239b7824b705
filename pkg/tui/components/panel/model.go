// Package panel renders a framed block with a heading, used by the full
// screen views.
package panel

import (
	"strings"

	"tableflip.dev/calm/pkg/tui/theme"
)

// Model renders a titled panel around body text.
type Model struct {
	title    string
	subtitle string
	body     string
	th       theme.PanelTheme
}

// New returns an empty panel drawn with th.
func New(th theme.PanelTheme) Model {
	return Model{th: th}
}

// SetContent updates the heading and the pre-rendered body.
func (m *Model) SetContent(title, subtitle, body string) {
	m.title = title
	m.subtitle = subtitle
	m.body = body
}

// Reset clears panel content.
func (m *Model) Reset() {
	m.title = ""
	m.subtitle = ""
	m.body = ""
}

// View returns the rendered panel and its height in lines.
func (m Model) View() (string, int) {
	var head []string
	if m.title != "" {
		head = append(head, m.th.Title.Render(m.title))
	}
	if m.subtitle != "" {
		head = append(head, m.th.Subtitle.Render(m.subtitle))
	}
	content := m.th.Body.Render(m.body)
	if len(head) > 0 {
		content = strings.Join(head, "  ") + "\n\n" + content
	}
	view := m.th.Frame.Render(content)
	return view, strings.Count(view, "\n") + 1
}
