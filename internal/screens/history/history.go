package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/circuitspace/internal/catalog"
	"github.com/abhisek/circuitspace/internal/router"
	"github.com/abhisek/circuitspace/internal/screen"
	"github.com/abhisek/circuitspace/internal/store"
	"github.com/abhisek/circuitspace/internal/ui/layout"
	"github.com/abhisek/circuitspace/internal/ui/theme"
)

const historyLimit = 50

type historyLoadedMsg struct {
	Quizzes []store.QuizEventRecord
	Err     error
}

// HistoryScreen lists past quiz results.
type HistoryScreen struct {
	eventRepo store.EventRepo
	quizzes   []store.QuizEventRecord
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		quizzes, err := s.eventRepo.QueryQuizEvents(context.Background(), store.QueryOpts{Limit: historyLimit})
		return historyLoadedMsg{Quizzes: quizzes, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Quiz History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.quizzes = msg.Quizzes
		}
		s.loaded = true
		return s, nil

	case screen.RefreshMsg:
		return s, s.Init()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.quizzes)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading history...")
	}
	if len(s.quizzes) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).Render("\n\n  No quizzes yet. Pick a component and test yourself!")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Keep the selection on screen.
	rows := max(1, height-2)
	start := max(0, min(s.selected-rows/2, len(s.quizzes)-rows))
	end := min(len(s.quizzes), start+rows)

	for i := start; i < end; i++ {
		q := s.quizzes[i]
		name := q.ComponentID
		if c, ok := catalog.Get(q.ComponentID); ok {
			name = c.Name
		}

		var accuracy float64
		if q.Total > 0 {
			accuracy = float64(q.Correct) / float64(q.Total) * 100
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %-22s  %d/%d  %3.0f%%  +%d XP  Lv %d",
			prefix, q.Timestamp.Local().Format("Jan 02 15:04"), name,
			q.Correct, q.Total, accuracy, q.ExperienceGained, q.NewLevel)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
