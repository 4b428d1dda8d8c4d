package quiz

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/circuitspace/internal/catalog"
	"github.com/abhisek/circuitspace/internal/progress"
	"github.com/abhisek/circuitspace/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

type fakeBank map[string][]catalog.QuizQuestion

func (b fakeBank) QuestionBank(id string) []catalog.QuizQuestion { return b[id] }

func makeBank(id string, n int) fakeBank {
	qs := make([]catalog.QuizQuestion, n)
	for i := range qs {
		qs[i] = catalog.QuizQuestion{
			Question:     fmt.Sprintf("Q%d", i),
			Options:      [4]string{"a", "b", "c", "d"},
			CorrectIndex: i % 4,
			Explanation:  fmt.Sprintf("because %d", i),
		}
	}
	return fakeBank{id: qs}
}

func TestQuestions_CapsAtSizeWithoutDuplicates(t *testing.T) {
	bank := makeBank("led", 8)
	for i := 0; i < 20; i++ {
		qs := Questions(bank, "led", 5)
		require.Len(t, qs, 5)
		seen := map[string]bool{}
		for _, q := range qs {
			assert.False(t, seen[q.Question], "duplicate %q", q.Question)
			seen[q.Question] = true
		}
	}
}

func TestQuestions_SmallBankReturnsAll(t *testing.T) {
	bank := makeBank("led", 3)
	qs := Questions(bank, "led", 5)
	assert.Len(t, qs, 3)
}

func TestQuestions_UnknownComponent(t *testing.T) {
	qs := Questions(makeBank("led", 3), "nope", 5)
	assert.NotNil(t, qs)
	assert.Empty(t, qs)
}

func TestQuestions_DoesNotMutateBank(t *testing.T) {
	bank := makeBank("led", 6)
	reverse := func(n int, swap func(i, j int)) {
		for i := 0; i < n/2; i++ {
			swap(i, n-1-i)
		}
	}
	qs := selectQuestions(bank, "led", 5, reverse)
	assert.Equal(t, "Q5", qs[0].Question)
	assert.Equal(t, "Q0", bank["led"][0].Question)
}

func TestQuestions_ShuffleReachesEveryQuestion(t *testing.T) {
	bank := makeBank("led", 8)
	seen := map[string]bool{}
	for i := 0; i < 200 && len(seen) < 8; i++ {
		for _, q := range Questions(bank, "led", 5) {
			seen[q.Question] = true
		}
	}
	assert.Len(t, seen, 8)
}

func TestQuestions_SizeNeverExceedsFive(t *testing.T) {
	bank := makeBank("led", 12)
	assert.Len(t, Questions(bank, "led", 50), DefaultQuizSize)

	m := NewManager(bank, &fakeProgress{allowed: true}, nil, nil, 9)
	s, err := m.Start("led")
	require.NoError(t, err)
	assert.Len(t, s.Questions, DefaultQuizSize)
}

func TestQuestions_CatalogLibrary(t *testing.T) {
	qs := Questions(catalog.Library{}, "potentiometer", DefaultQuizSize)
	assert.Len(t, qs, 5)
}

func TestSession_AnswerFlow(t *testing.T) {
	bank := makeBank("led", 3)
	s := newSession("led", bank["led"], testNow)

	q, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "Q0", q.Question)

	fb, err := s.Answer(0)
	require.NoError(t, err)
	assert.True(t, fb.Correct)
	assert.Equal(t, 1, fb.Streak)
	assert.Equal(t, PhaseFeedback, s.Phase())

	_, err = s.Answer(0)
	assert.ErrorIs(t, err, ErrAlreadyAnswered)

	require.True(t, s.Next())
	_, err = s.Answer(7)
	assert.ErrorIs(t, err, ErrInvalidOption)

	fb, err = s.Answer(0) // Q1 correct index is 1
	require.NoError(t, err)
	assert.False(t, fb.Correct)
	assert.Equal(t, 1, fb.CorrectIndex)
	assert.Equal(t, 0, fb.Streak)

	require.True(t, s.Next())
	_, err = s.Answer(2)
	require.NoError(t, err)
	assert.False(t, s.Next())
	assert.True(t, s.Done())

	_, err = s.Answer(0)
	assert.ErrorIs(t, err, ErrSessionDone)

	correct, total := s.Score()
	assert.Equal(t, 2, correct)
	assert.Equal(t, 3, total)
	assert.Equal(t, []int{0, 0, 2}, s.Answers())
	_, best := s.Streak()
	assert.Equal(t, 1, best)
}

type fakeProgress struct {
	allowed   bool
	submitted []string
}

func (f *fakeProgress) CanTakeQuiz(string) bool { return f.allowed }

func (f *fakeProgress) SubmitQuizResult(_ context.Context, id string, correct, total int) progress.QuizResult {
	f.submitted = append(f.submitted, fmt.Sprintf("%s:%d/%d", id, correct, total))
	return progress.QuizResult{NewLevel: 1, NewExperience: correct * 20, ExperienceGained: correct * 20, QuizzesTaken: 1}
}

func TestManager_StartDenied(t *testing.T) {
	m := NewManager(makeBank("led", 5), &fakeProgress{allowed: false}, nil, nil, 5)
	_, err := m.Start("led")
	assert.ErrorIs(t, err, ErrDailyLimit)
}

func TestManager_StartNoQuestions(t *testing.T) {
	m := NewManager(makeBank("led", 5), &fakeProgress{allowed: true}, nil, nil, 5)
	_, err := m.Start("resistor")
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestManager_FinishSubmitsOnce(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open("file:quiz_manager?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	rec := &fakeProgress{allowed: true}
	m := NewManager(makeBank("led", 5), rec, st.EventRepo(), nil, 2)
	s, err := m.Start("led")
	require.NoError(t, err)
	require.Len(t, s.Questions, 2)

	for {
		q, ok := s.Current()
		if !ok {
			break
		}
		_, err := s.Answer(q.CorrectIndex)
		require.NoError(t, err)
		s.Next()
	}

	sum, ok := m.Finish(ctx, s)
	require.True(t, ok)
	assert.Equal(t, 2, sum.Correct)
	assert.Equal(t, 40, sum.Result.ExperienceGained)
	assert.Equal(t, 2, sum.BestStreak)

	_, ok = m.Finish(ctx, s)
	assert.False(t, ok)
	assert.Equal(t, []string{"led:2/2"}, rec.submitted)

	events, err := st.EventRepo().QueryQuizEvents(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 40, events[0].ExperienceGained)
}

func TestManager_WithRealProgress(t *testing.T) {
	ctx := context.Background()
	svc := progress.NewService(ctx, store.NewMemoryKV(), catalog.Library{})
	m := NewManager(catalog.Library{}, svc, nil, nil, DefaultQuizSize)

	for i := 0; i < progress.DefaultDailyQuizLimit; i++ {
		s, err := m.Start("led")
		require.NoError(t, err)
		m.Finish(ctx, s)
	}
	_, err := m.Start("led")
	assert.ErrorIs(t, err, ErrDailyLimit)
}
