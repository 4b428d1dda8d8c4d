package quiz

import (
	"math/rand/v2"

	"github.com/abhisek/circuitspace/internal/catalog"
)

// DefaultQuizSize is the maximum number of questions drawn for one quiz.
const DefaultQuizSize = 5

// Bank supplies the question bank for a component.
type Bank interface {
	QuestionBank(componentID string) []catalog.QuizQuestion
}

// ShuffleFunc permutes n elements using swap, like rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

// Questions returns up to size questions, never more than DefaultQuizSize, from the component's bank in a
// uniformly random order. Unknown components yield an empty slice. Each call
// draws independently.
func Questions(bank Bank, componentID string, size int) []catalog.QuizQuestion {
	return selectQuestions(bank, componentID, size, rand.Shuffle)
}

func selectQuestions(bank Bank, componentID string, size int, shuffle ShuffleFunc) []catalog.QuizQuestion {
	pool := bank.QuestionBank(componentID)
	if len(pool) == 0 {
		return []catalog.QuizQuestion{}
	}
	if size <= 0 || size > DefaultQuizSize {
		size = DefaultQuizSize
	}
	// Shuffle a private copy of the pool and take a prefix, so questions are
	// never repeated within a quiz.
	out := make([]catalog.QuizQuestion, len(pool))
	copy(out, pool)
	shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if len(out) > size {
		out = out[:size]
	}
	return out
}

// IsCorrect reports whether chosen is the correct option of q.
func IsCorrect(q catalog.QuizQuestion, chosen int) bool {
	return chosen == q.CorrectIndex
}
