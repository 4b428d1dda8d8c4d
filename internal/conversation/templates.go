package conversation

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// LeonardoLEDDimmer is the ID of the built-in LED dimmer walkthrough.
const LeonardoLEDDimmer = "leonardo-led-dimmer"

// Step IDs of the LED dimmer walkthrough referenced by UI actions.
const (
	StepComponentAnalysis       = "component-analysis"
	StepUserConfirmsComponents  = "user-confirms-components"
	StepCodePreparation         = "code-preparation"
	StepStartCoding             = "start-coding"
	StepCircuitDesignerPath     = "circuit-designer-path"
	StepCircuitDesignerComplete = "circuit-designer-complete"
	StepRealTablePath           = "real-table-path"
	StepBuildComplete           = "build-complete"
	StepProjectQuestion         = "project-question"
	StepProjectComplete         = "project-complete"
)

var templates = map[string]Conversation{}

func init() {
	for _, c := range []Conversation{leonardoLEDDimmer} {
		if err := validateTemplate(c); err != nil {
			panic(err)
		}
		templates[c.ID] = c
	}
}

// Template returns a copy of the template with the given id.
func Template(id string) (Conversation, bool) {
	c, ok := templates[id]
	if !ok {
		return Conversation{}, false
	}
	return c.Clone(), true
}

// TemplateIDs returns all registered template ids, sorted.
func TemplateIDs() []string {
	ids := make([]string, 0, len(templates))
	for id := range templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// validateTemplate checks step ids are unique and non-empty, that next-step
// references resolve, and that delays are non-negative.
func validateTemplate(c Conversation) error {
	var errs []string
	if len(c.Steps) == 0 {
		errs = append(errs, "no steps")
	}
	ids := make(map[string]bool, len(c.Steps))
	for _, s := range c.Steps {
		if s.ID == "" {
			errs = append(errs, "step with empty id")
		}
		if ids[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate step id %q", s.ID))
		}
		ids[s.ID] = true
	}
	for _, s := range c.Steps {
		for _, next := range s.NextStepIDs {
			if !ids[next] {
				errs = append(errs, fmt.Sprintf("step %q references unknown step %q", s.ID, next))
			}
		}
		for _, sub := range s.DelayedSubSteps {
			if sub.Delay < 0 {
				errs = append(errs, fmt.Sprintf("step %q sub-step %q has negative delay", s.ID, sub.ID))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("conversation %q is invalid:\n  %s", c.ID, strings.Join(errs, "\n  "))
	}
	return nil
}

func seconds(n int) time.Duration { return time.Duration(n) * time.Second }

var leonardoLEDDimmer = Conversation{
	ID:          LeonardoLEDDimmer,
	ProjectType: "led-dimmer",
	Title:       "Arduino Leonardo LED Dimmer",
	Description: "Build an LED brightness controller using an Arduino Leonardo, a potentiometer and an LED.",
	Components:  []string{"leonardo-keyestudio", "breadboard", "led", "resistor", "potentiometer", "jumper-cable"},
	Steps: []Step{
		{
			ID:   StepComponentAnalysis,
			Role: RoleAI,
			Content: `Perfect! For this LED dimmer project with an Arduino Leonardo you need the following parts:

  • Arduino Leonardo (Keyestudio): the main controller
  • Breadboard: for building the circuit
  • LED: the light we are going to dim
  • Resistor: protects the LED (220Ω recommended)
  • Potentiometer: sets the brightness
  • Jumper cables: connect everything

The Leonardo reads the analog value of the potentiometer and turns it into a PWM signal that dims the LED smoothly.`,
			ComponentIDs: []string{"leonardo-keyestudio", "breadboard", "led", "resistor", "potentiometer", "jumper-cable"},
			NextStepIDs:  []string{StepUserConfirmsComponents},
		},
		{
			ID:          StepUserConfirmsComponents,
			Role:        RoleUser,
			Content:     "Okay, I have all the components.",
			NextStepIDs: []string{StepCodePreparation},
		},
		{
			ID:   StepCodePreparation,
			Role: RoleAI,
			Content: `Excellent! Everything is ready, so we can start programming step by step.

What we will write:
  1. Pin configuration: define the potentiometer and LED pins
  2. Setup: initialise the hardware
  3. Analog input: read the potentiometer
  4. PWM output: set the LED brightness
  5. Mapping and debugging: convert values and watch them

Shall we start with the code?`,
			Buttons:     []ButtonFlag{ButtonTutorialLaunch},
			NextStepIDs: []string{StepStartCoding},
		},
		{
			ID:   StepStartCoding,
			Role: RoleAI,
			Content: `The sketch is finished and ready to upload to your Arduino Leonardo.

Next you can either:
  • Circuit designer: build and check the circuit virtually first
  • Real table: go straight to building it on your desk

How would you like to continue?`,
			Buttons:     []ButtonFlag{ButtonWorkspaceChoice},
			NextStepIDs: []string{StepCircuitDesignerPath, StepRealTablePath},
		},
		{
			ID:   StepCircuitDesignerPath,
			Role: RoleAI,
			Content: `Let's wire the circuit in the designer. Connect:

  • Leonardo 5V and GND to the breadboard power rails
  • Leonardo D9 to the LED anode (+)
  • LED cathode (-) through the 220Ω resistor to GND
  • Potentiometer outer pins to 5V and GND, wiper to A0

I'll check every connection as you go.`,
			NextStepIDs: []string{StepCircuitDesignerComplete},
		},
		{
			ID:   StepCircuitDesignerComplete,
			Role: RoleAI,
			Content: `All connections are correct. Your virtual LED dimmer works!

Ready to build it for real?`,
			Buttons:     []ButtonFlag{ButtonRealTable},
			NextStepIDs: []string{StepRealTablePath},
		},
		{
			ID:   StepRealTablePath,
			Role: RoleAI,
			Content: `Great, let's build it on the real table. Plug in your Leonardo and start placing the parts.
I'm watching the workbench and will tell you what I detect.`,
			DelayedSubSteps: []DelayedSubStep{
				{ID: "detect-board", Delay: seconds(2), Content: "✓ Arduino Leonardo detected on USB."},
				{ID: "detect-breadboard", Delay: seconds(4), Content: "✓ Breadboard power rails connected to 5V and GND."},
				{ID: "detect-led", Delay: seconds(6), Content: "✓ LED placed, anode wired to pin D9."},
				{ID: "detect-resistor", Delay: seconds(8), Content: "✓ 220Ω resistor between the LED cathode and GND."},
				{ID: "detect-potentiometer", Delay: seconds(10), Content: "✓ Potentiometer wiper connected to A0."},
				{ID: "detect-wiring", Delay: seconds(12), Content: "✓ Wiring check passed, no short circuits found."},
				{ID: "detect-upload", Delay: seconds(14), Content: "✓ Sketch uploaded, serial monitor running at 9600 baud."},
				{ID: "detect-dimming", Delay: seconds(16), Content: "✓ Turning the potentiometer changes the LED brightness."},
			},
			NextStepIDs: []string{StepBuildComplete},
		},
		{
			ID:   StepBuildComplete,
			Role: RoleAI,
			Content: `Your LED dimmer is built and working!

Would you like to finish the project, or do you have a question about it?`,
			Buttons:     []ButtonFlag{ButtonContinueProject},
			NextStepIDs: []string{StepProjectComplete, StepProjectQuestion},
		},
		{
			ID:   StepProjectQuestion,
			Role: RoleAI,
			Content: `Sure! Ask me anything about the circuit, the code or the components.
When you're done, continue to finish the project.`,
			Buttons:     []ButtonFlag{ButtonContinueProject},
			NextStepIDs: []string{StepProjectComplete},
		},
		{
			ID:   StepProjectComplete,
			Role: RoleAI,
			Content: `Congratulations, the project is complete! 🎉

You learned how to read an analog input and drive an LED with PWM.
Test your knowledge in the component quizzes to earn XP.`,
		},
	},
}
