package quiz

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/circuitspace/internal/catalog"
	"github.com/abhisek/circuitspace/internal/logger"
	"github.com/abhisek/circuitspace/internal/progress"
	"github.com/abhisek/circuitspace/internal/store"
)

var (
	// ErrDailyLimit is returned when the component's daily quiz limit is used up.
	ErrDailyLimit = errors.New("daily quiz limit reached")

	// ErrNoQuestions is returned for components without a question bank.
	ErrNoQuestions = errors.New("no questions for component")
)

// ProgressRecorder is the part of the progress service a quiz needs.
type ProgressRecorder interface {
	CanTakeQuiz(componentID string) bool
	SubmitQuizResult(ctx context.Context, componentID string, correct, total int) progress.QuizResult
}

// Summary is the outcome of a finished quiz.
type Summary struct {
	ComponentID string
	Correct     int
	Total       int
	BestStreak  int
	Duration    time.Duration
	Result      progress.QuizResult
}

// Manager starts quizzes and reports finished ones to the progress engine.
type Manager struct {
	bank     Bank
	progress ProgressRecorder
	events   store.EventRepo
	log      *logger.Logger
	size     int
	shuffle  ShuffleFunc
	now      func() time.Time
}

// NewManager creates a quiz manager. events may be nil. size is clamped to
// (0, DefaultQuizSize].
func NewManager(bank Bank, rec ProgressRecorder, events store.EventRepo, log *logger.Logger, size int) *Manager {
	if size <= 0 || size > DefaultQuizSize {
		size = DefaultQuizSize
	}
	return &Manager{
		bank:     bank,
		progress: rec,
		events:   events,
		log:      logger.OrNop(log),
		size:     size,
		now:      time.Now,
	}
}

// Start begins a quiz for a component.
func (m *Manager) Start(componentID string) (*Session, error) {
	if !m.progress.CanTakeQuiz(componentID) {
		return nil, ErrDailyLimit
	}
	qs := m.draw(componentID)
	if len(qs) == 0 {
		return nil, ErrNoQuestions
	}
	return newSession(componentID, qs, m.now()), nil
}

func (m *Manager) draw(componentID string) []catalog.QuizQuestion {
	if m.shuffle != nil {
		return selectQuestions(m.bank, componentID, m.size, m.shuffle)
	}
	return Questions(m.bank, componentID, m.size)
}

// Finish submits the session's score. Finishing a session twice returns
// false the second time and records nothing.
func (m *Manager) Finish(ctx context.Context, s *Session) (Summary, bool) {
	if s.finished {
		return Summary{}, false
	}
	s.finished = true
	s.phase = PhaseDone

	correct, total := s.Score()
	res := m.progress.SubmitQuizResult(ctx, s.ComponentID, correct, total)

	if m.events != nil {
		err := m.events.AppendQuizEvent(ctx, store.QuizEventData{
			ComponentID:      s.ComponentID,
			Correct:          correct,
			Total:            total,
			ExperienceGained: res.ExperienceGained,
			NewLevel:         res.NewLevel,
		})
		if err != nil {
			m.log.Warn("failed to record quiz event", "component", s.ComponentID, "error", err)
		}
	}

	_, best := s.Streak()
	return Summary{
		ComponentID: s.ComponentID,
		Correct:     correct,
		Total:       total,
		BestStreak:  best,
		Duration:    m.now().Sub(s.StartedAt),
		Result:      res,
	}, true
}
