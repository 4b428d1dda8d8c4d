package progress

import "time"

const (
	// ExperiencePerCorrect is awarded for every correct quiz answer.
	ExperiencePerCorrect = 20

	// ExperiencePerLevel is the width of one component level band.
	ExperiencePerLevel = 100

	// MaxLevel caps component levels.
	MaxLevel = 5

	// DefaultDailyQuizLimit is the number of quizzes allowed per component per
	// calendar day.
	DefaultDailyQuizLimit = 5

	// ExperiencePerPlayerLevel is the width of one player level band.
	ExperiencePerPlayerLevel = 500
)

// ComponentProgress is the persisted learning state for one component.
type ComponentProgress struct {
	Level        int        `json:"level"`
	Experience   int        `json:"experience"`
	QuizzesTaken int        `json:"quizzesTaken"`
	LastQuizDate *time.Time `json:"lastQuizDate,omitempty"`
}

// DefaultProgress is the state of a component with no recorded quizzes.
func DefaultProgress() ComponentProgress {
	return ComponentProgress{Level: 1}
}

// QuizResult describes the outcome of submitting a quiz.
type QuizResult struct {
	NewLevel         int
	NewExperience    int
	QuizzesTaken     int
	ExperienceGained int

	// LevelUp is set when the submission moved the component to a new level.
	LevelUp *LevelChange
}

// LevelChange records a component level transition for display.
type LevelChange struct {
	ComponentID string
	From        int
	To          int
}

// LevelFor returns the component level for an experience total.
func LevelFor(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return min(MaxLevel, experience/ExperiencePerLevel+1)
}

// PlayerLevelFor returns the overall player level for a total experience.
// Unlike component levels it has no cap.
func PlayerLevelFor(total int) int {
	if total < 0 {
		total = 0
	}
	return total/ExperiencePerPlayerLevel + 1
}

// ProgressPercentage returns how far experience has advanced within the
// band of the given level, clamped to [0, 100].
func ProgressPercentage(experience, level int) float64 {
	pct := float64(experience-(level-1)*ExperiencePerLevel) * 100 / ExperiencePerLevel
	return max(0, min(100, pct))
}

// sameDay reports whether a and b fall on the same calendar day in b's
// location.
func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
