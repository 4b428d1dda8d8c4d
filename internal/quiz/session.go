package quiz

import (
	"errors"
	"time"

	"github.com/abhisek/circuitspace/internal/catalog"
	"github.com/google/uuid"
)

var (
	// ErrAlreadyAnswered is returned when the current question was answered.
	ErrAlreadyAnswered = errors.New("question already answered")

	// ErrInvalidOption is returned for an option index outside 0..3.
	ErrInvalidOption = errors.New("invalid option")

	// ErrSessionDone is returned when the session has no current question.
	ErrSessionDone = errors.New("quiz finished")
)

// Phase is the position of a session in its question/feedback cycle.
type Phase int

const (
	PhaseQuestion Phase = iota // Waiting for an answer
	PhaseFeedback              // Showing feedback for the last answer
	PhaseDone                  // All questions answered
)

// Feedback describes the result of one answer.
type Feedback struct {
	Correct      bool
	Chosen       int
	CorrectIndex int
	Explanation  string
	Streak       int
}

// Session is one in-progress quiz for a single component.
type Session struct {
	ID          string
	ComponentID string
	Questions   []catalog.QuizQuestion
	StartedAt   time.Time

	index      int
	phase      Phase
	answers    []int
	correct    int
	streak     int
	bestStreak int
	finished   bool
}

func newSession(componentID string, questions []catalog.QuizQuestion, now time.Time) *Session {
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = -1
	}
	return &Session{
		ID:          uuid.NewString(),
		ComponentID: componentID,
		Questions:   questions,
		StartedAt:   now,
		answers:     answers,
	}
}

// Current returns the question being asked, or false when the quiz is done.
func (s *Session) Current() (catalog.QuizQuestion, bool) {
	if s.phase == PhaseDone || s.index >= len(s.Questions) {
		return catalog.QuizQuestion{}, false
	}
	return s.Questions[s.index], true
}

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Answer grades chosen against the current question.
func (s *Session) Answer(chosen int) (Feedback, error) {
	q, ok := s.Current()
	if !ok {
		return Feedback{}, ErrSessionDone
	}
	if s.phase == PhaseFeedback {
		return Feedback{}, ErrAlreadyAnswered
	}
	if chosen < 0 || chosen >= len(q.Options) {
		return Feedback{}, ErrInvalidOption
	}

	s.answers[s.index] = chosen
	correct := IsCorrect(q, chosen)
	if correct {
		s.correct++
		s.streak++
		s.bestStreak = max(s.bestStreak, s.streak)
	} else {
		s.streak = 0
	}
	s.phase = PhaseFeedback

	return Feedback{
		Correct:      correct,
		Chosen:       chosen,
		CorrectIndex: q.CorrectIndex,
		Explanation:  q.Explanation,
		Streak:       s.streak,
	}, nil
}

// Next leaves the feedback phase and moves to the following question.
// It returns false once every question has been answered.
func (s *Session) Next() bool {
	if s.phase != PhaseFeedback {
		return s.phase != PhaseDone
	}
	s.index++
	if s.index >= len(s.Questions) {
		s.phase = PhaseDone
		return false
	}
	s.phase = PhaseQuestion
	return true
}

// Done reports whether all questions have been answered.
func (s *Session) Done() bool { return s.phase == PhaseDone }

// Score returns the number of correct answers and the number of questions.
func (s *Session) Score() (correct, total int) {
	return s.correct, len(s.Questions)
}

// Streak returns the current and best streak of consecutive correct answers.
func (s *Session) Streak() (current, best int) {
	return s.streak, s.bestStreak
}

// Answers returns the chosen option per question, -1 where unanswered.
func (s *Session) Answers() []int {
	out := make([]int, len(s.answers))
	copy(out, s.answers)
	return out
}
