package conversation

import (
	"slices"
	"time"
)

// Role identifies who authored a step.
type Role string

const (
	RoleAI     Role = "ai"
	RoleUser   Role = "user"
	RoleSystem Role = "system"
)

// ButtonFlag marks a step as offering a UI action.
type ButtonFlag string

const (
	ButtonContinueProject ButtonFlag = "continueProject"
	ButtonWorkspaceChoice ButtonFlag = "workspaceChoice"
	ButtonTutorialLaunch  ButtonFlag = "tutorialLaunch"
	ButtonRealTable       ButtonFlag = "realTable"
)

// DelayedSubStep is narrative content revealed a fixed time after its parent
// step becomes current.
type DelayedSubStep struct {
	ID      string        `json:"id"`
	Content string        `json:"content"`
	Delay   time.Duration `json:"delay"`
}

// Step is one node of a scripted conversation.
type Step struct {
	ID              string           `json:"id"`
	Role            Role             `json:"role"`
	Content         string           `json:"content"`
	NextStepIDs     []string         `json:"nextStepIds,omitempty"`
	Completed       bool             `json:"completed"`
	DelayedSubSteps []DelayedSubStep `json:"delayedSubSteps,omitempty"`
	Buttons         []ButtonFlag     `json:"buttons,omitempty"`

	// ComponentIDs lists catalog components the step presents.
	ComponentIDs []string `json:"componentIds,omitempty"`
}

// HasButton reports whether the step offers the given action.
func (s Step) HasButton(b ButtonFlag) bool {
	return slices.Contains(s.Buttons, b)
}

// Conversation is a scripted dialogue instantiated from a template.
type Conversation struct {
	ID          string   `json:"id"`
	ProjectType string   `json:"projectType"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Components  []string `json:"components"`
	Steps       []Step   `json:"steps"`
	CurrentStep int      `json:"currentStep"`
	Completed   bool     `json:"completed"`
}

// StepIndex returns the index of the step with the given id, or -1.
func (c Conversation) StepIndex(stepID string) int {
	return slices.IndexFunc(c.Steps, func(s Step) bool { return s.ID == stepID })
}

// Current returns the step under the cursor.
func (c Conversation) Current() Step {
	return c.Steps[c.CurrentStep]
}

// Clone returns a deep copy.
func (c Conversation) Clone() Conversation {
	c.Components = slices.Clone(c.Components)
	steps := make([]Step, len(c.Steps))
	for i, s := range c.Steps {
		s.NextStepIDs = slices.Clone(s.NextStepIDs)
		s.DelayedSubSteps = slices.Clone(s.DelayedSubSteps)
		s.Buttons = slices.Clone(s.Buttons)
		s.ComponentIDs = slices.Clone(s.ComponentIDs)
		steps[i] = s
	}
	c.Steps = steps
	return c
}
