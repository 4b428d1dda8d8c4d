package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/circuitspace/internal/catalog"
	"github.com/abhisek/circuitspace/internal/progress"
	qz "github.com/abhisek/circuitspace/internal/quiz"
	"github.com/abhisek/circuitspace/internal/router"
	"github.com/abhisek/circuitspace/internal/screen"
	"github.com/abhisek/circuitspace/internal/ui/components"
	"github.com/abhisek/circuitspace/internal/ui/layout"
	"github.com/abhisek/circuitspace/internal/ui/theme"
)

// Finisher records a completed quiz session.
type Finisher interface {
	FinishQuiz(ctx context.Context, s *qz.Session) (qz.Summary, bool)
}

// QuizScreen runs one component quiz: question, feedback, result.
type QuizScreen struct {
	finisher Finisher
	part     catalog.Component
	session  *qz.Session
	choice   components.MultiChoice
	feedback *qz.Feedback
	summary  *qz.Summary
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
)

// New creates a quiz screen for a started session.
func New(f Finisher, part catalog.Component, s *qz.Session) *QuizScreen {
	q := &QuizScreen{finisher: f, part: part, session: s}
	q.loadQuestion()
	return q
}

func (s *QuizScreen) loadQuestion() {
	q, ok := s.session.Current()
	if !ok {
		return
	}
	s.choice = components.NewMultiChoice(q.Question, q.Options[:])
	s.feedback = nil
}

func (s *QuizScreen) Init() tea.Cmd { return nil }

func (s *QuizScreen) Title() string { return s.part.Name + " Quiz" }

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.summary != nil:
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	case s.feedback != nil:
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "A-D", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit quiz"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case s.summary != nil:
		if kmsg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case s.feedback != nil:
		if kmsg.String() == "enter" || kmsg.String() == "space" {
			s.advance()
		}
		return s, nil
	}

	s.choice, _ = s.choice.Update(kmsg)
	if s.choice.Submitted {
		fb, err := s.session.Answer(s.choice.Chosen)
		if err != nil {
			return s, nil
		}
		s.choice.Reveal(fb.CorrectIndex)
		s.feedback = &fb
	}
	return s, nil
}

func (s *QuizScreen) advance() {
	if s.session.Next() {
		s.loadQuestion()
		return
	}
	sum, _ := s.finisher.FinishQuiz(context.Background(), s.session)
	s.summary = &sum
	s.feedback = nil
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if s.summary != nil {
		return layout.Centered(renderSummary(*s.summary, cw), width)
	}

	correct, total := s.session.Score()
	current, _ := s.session.Streak()

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Question %d of %d · %d correct · streak %d",
		s.session.Index()+1, len(s.session.Questions), correct, current)))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", float64(total)/float64(max(1, len(s.session.Questions))), false, cw).View())
	b.WriteString("\n\n")
	b.WriteString(s.choice.View())

	if fb := s.feedback; fb != nil {
		b.WriteString("\n")
		if fb.Correct {
			b.WriteString(theme.Correct.Render("Correct! +" + fmt.Sprint(progress.ExperiencePerCorrect) + " XP"))
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite."))
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Render(fb.Explanation))
	}
	return layout.Centered(b.String(), width)
}

func renderSummary(sum qz.Summary, cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Quiz complete!"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Score: %d / %d", sum.Correct, sum.Total)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Best streak: %d", sum.BestStreak)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Time: %d:%02d", int(sum.Duration.Minutes()), int(sum.Duration.Seconds())%60)))
	b.WriteString("\n\n")

	r := sum.Result
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("+%d XP", r.ExperienceGained)))
	b.WriteString("\n")
	b.WriteString(components.NewLevelBar(r.NewLevel, progress.ProgressPercentage(r.NewExperience, r.NewLevel), cw).View())
	b.WriteString("\n")
	if r.LevelUp != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("Level up! Level %d → %d", r.LevelUp.From, r.LevelUp.To)))
		b.WriteString("\n")
	}
	return b.String()
}
