package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/circuitspace/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D"}

// MultiChoice is a multiple-choice selector. It does not know the answer;
// the owner calls Reveal once the choice has been graded.
type MultiChoice struct {
	Question  string
	Options   []string
	Selected  int
	Submitted bool
	Chosen    int

	correct int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
		Chosen:   -1,
		correct:  -1,
	}
}

// Update handles navigation and selection. Letters and digits pick an
// option directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, nil
	case "enter":
		m.submit(m.Selected)
		return m, nil
	}

	if idx := optionIndex(key); idx >= 0 && idx < len(m.Options) {
		m.Selected = idx
		m.submit(idx)
	}
	return m, nil
}

func (m *MultiChoice) submit(i int) {
	m.Submitted = true
	m.Chosen = i
}

// Reveal marks the correct option for display.
func (m *MultiChoice) Reveal(correct int) {
	m.correct = correct
}

func optionIndex(key string) int {
	if len(key) != 1 {
		return -1
	}
	switch c := key[0]; {
	case c >= 'a' && c <= 'd':
		return int(c - 'a')
	case c >= '1' && c <= '4':
		return int(c - '1')
	}
	return -1
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, optionLabels[i%len(optionLabels)], opt)

		var style lipgloss.Style
		switch {
		case m.Submitted && i == m.correct:
			style = theme.Correct
		case m.Submitted && i == m.Chosen:
			style = theme.Incorrect
		case m.Submitted:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
