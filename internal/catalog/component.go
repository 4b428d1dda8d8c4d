package catalog

// Difficulty describes how advanced a component is for a beginner.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Component is one entry of the electronics component library.
type Component struct {
	ID          string
	Name        string
	Category    string
	Difficulty  Difficulty
	Description string
	Quiz        []QuizQuestion
}

// QuizQuestion is a multiple-choice question with exactly four options.
type QuizQuestion struct {
	Question     string
	Options      [4]string
	CorrectIndex int
	Explanation  string
}

// Answer returns the text of the correct option.
func (q QuizQuestion) Answer() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}
