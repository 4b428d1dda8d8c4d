package tutorial

import "sync"

// Step is one stage of a code tutorial. Code holds the whole sketch as it
// stands after this step.
type Step struct {
	ID          string
	Title       string
	Description string
	Code        string
	Explanation string
}

// Stepper is a bounded cursor over an ordered, immutable list of steps.
type Stepper struct {
	mu     sync.RWMutex
	steps  []Step
	index  int
	active bool
}

// NewStepper creates an inactive stepper at index 0.
func NewStepper(steps []Step) *Stepper {
	return &Stepper{steps: steps}
}

// Start activates the tutorial at the first step.
func (s *Stepper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = 0
	s.active = true
}

// Next moves forward unless already on the last step.
func (s *Stepper) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index >= len(s.steps)-1 {
		return false
	}
	s.index++
	return true
}

// Previous moves back unless already on the first step.
func (s *Stepper) Previous() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index <= 0 {
		return false
	}
	s.index--
	return true
}

// Finish deactivates the tutorial and rewinds it.
func (s *Stepper) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
	s.index = 0
}

func (s *Stepper) Index() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

func (s *Stepper) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *Stepper) Len() int { return len(s.steps) }

// Current returns the step under the cursor.
func (s *Stepper) Current() (Step, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.steps) == 0 {
		return Step{}, false
	}
	return s.steps[s.index], true
}

// IsLast reports whether the cursor is on the final step.
func (s *Stepper) IsLast() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index == len(s.steps)-1
}

// FullArtifact returns the code of the final step, which by convention
// contains everything earlier steps introduced.
func (s *Stepper) FullArtifact() string {
	if len(s.steps) == 0 {
		return ""
	}
	return s.steps[len(s.steps)-1].Code
}
