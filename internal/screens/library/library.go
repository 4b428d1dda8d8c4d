package library

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/circuitspace/internal/catalog"
	"github.com/abhisek/circuitspace/internal/circuit"
	"github.com/abhisek/circuitspace/internal/progress"
	qz "github.com/abhisek/circuitspace/internal/quiz"
	"github.com/abhisek/circuitspace/internal/router"
	"github.com/abhisek/circuitspace/internal/screen"
	quizscreen "github.com/abhisek/circuitspace/internal/screens/quiz"
	"github.com/abhisek/circuitspace/internal/ui/components"
	"github.com/abhisek/circuitspace/internal/ui/layout"
	"github.com/abhisek/circuitspace/internal/ui/theme"
	"github.com/abhisek/circuitspace/internal/workspace"
)

// LibraryScreen lists catalog components with the learner's level on each
// and starts quizzes.
type LibraryScreen struct {
	ctl      *workspace.Controller
	parts    []catalog.Component
	selected int
	showPins bool
	errMsg   string
}

var (
	_ screen.Screen          = (*LibraryScreen)(nil)
	_ screen.KeyHintProvider = (*LibraryScreen)(nil)
)

// New creates the component library screen.
func New(ctl *workspace.Controller) *LibraryScreen {
	var parts []catalog.Component
	for _, cat := range catalog.Categories() {
		parts = append(parts, catalog.ByCategory(cat)...)
	}
	return &LibraryScreen{ctl: ctl, parts: parts}
}

func (s *LibraryScreen) Init() tea.Cmd { return nil }

func (s *LibraryScreen) Title() string { return "Components" }

func (s *LibraryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Quiz"},
		{Key: "P", Description: "Pins"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
			s.errMsg = ""
		}
	case "down", "j":
		if s.selected < len(s.parts)-1 {
			s.selected++
			s.errMsg = ""
		}
	case "p":
		s.showPins = !s.showPins
	case "enter":
		return s, s.startQuiz()
	}
	return s, nil
}

func (s *LibraryScreen) startQuiz() tea.Cmd {
	if len(s.parts) == 0 {
		return nil
	}
	part := s.parts[s.selected]
	sess, err := s.ctl.StartQuiz(part.ID)
	switch {
	case errors.Is(err, qz.ErrDailyLimit):
		s.errMsg = fmt.Sprintf("You've taken today's %d quizzes on %s. Come back tomorrow!",
			s.ctl.Progress().DailyLimit(), part.Name)
		return nil
	case err != nil:
		s.errMsg = "No quiz is available for " + part.Name + " yet."
		return nil
	}
	s.errMsg = ""
	next := quizscreen.New(s.ctl, part, sess)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *LibraryScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	listWidth := max(30, cw/2)

	list := s.renderList(listWidth)
	detail := s.renderDetail(max(24, cw-listWidth))

	out := lipgloss.JoinHorizontal(lipgloss.Top,
		components.Panel("", list, listWidth),
		components.Panel("", detail, max(24, cw-listWidth)),
	)
	if s.errMsg != "" {
		out += "\n" + theme.Incorrect.Render("  "+s.errMsg)
	}
	return layout.Centered(out, width)
}

func (s *LibraryScreen) renderList(width int) string {
	prog := s.ctl.Progress()
	var b strings.Builder
	category := ""
	for i, part := range s.parts {
		if part.Category != category {
			category = part.Category
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(theme.Hint.Render(strings.ToUpper(category)))
			b.WriteString("\n")
		}
		p := prog.Progress(part.ID)
		line := fmt.Sprintf("%s  Lv %d", part.Name, p.Level)
		style := theme.Unselected
		prefix := "  "
		if i == s.selected {
			style = theme.Selected
			prefix = "▸ "
		}
		b.WriteString(style.Width(width - 4).Render(prefix + line))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *LibraryScreen) renderDetail(width int) string {
	if len(s.parts) == 0 {
		return theme.Hint.Render("No components")
	}
	part := s.parts[s.selected]
	prog := s.ctl.Progress()
	p := prog.Progress(part.ID)

	var b strings.Builder
	b.WriteString(theme.Selected.Render(part.Name))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%s · %s", part.Category, part.Difficulty)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width - 4).Render(part.Description))
	b.WriteString("\n\n")
	b.WriteString(components.NewLevelBar(p.Level, progress.ProgressPercentage(p.Experience, p.Level), width-4).View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d XP · %d quizzes taken", p.Experience, p.QuizzesTaken)))
	b.WriteString("\n")
	if !prog.CanTakeQuiz(part.ID) {
		b.WriteString(theme.SystemNote.Render("Daily quiz limit reached"))
		b.WriteString("\n")
	}

	if s.showPins {
		b.WriteString("\n")
		b.WriteString(renderPins(part.ID))
	}
	return b.String()
}

func renderPins(componentID string) string {
	cfg, ok := circuit.Pins(componentID)
	if !ok {
		return theme.Hint.Render("No pin diagram for this part")
	}
	var b strings.Builder
	b.WriteString(theme.Selected.Render("Pins"))
	b.WriteString("\n")
	for _, pin := range cfg.Pins {
		b.WriteString(fmt.Sprintf("%-8s %-8s %s\n", pin.Name, pin.Type, pin.Description))
	}
	return b.String()
}
