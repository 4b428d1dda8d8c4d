package tutorial

import (
	"strings"
	"testing"
)

func TestStepper_Bounds(t *testing.T) {
	s := NewStepper(LeonardoDimmer)
	if s.Active() {
		t.Fatal("new stepper should be inactive")
	}

	s.Start()
	if !s.Active() || s.Index() != 0 {
		t.Fatalf("after Start: active=%v index=%d", s.Active(), s.Index())
	}
	if s.Previous() {
		t.Error("Previous at index 0 should be a no-op")
	}

	for i := 0; i < 10; i++ {
		s.Next()
	}
	if s.Index() != s.Len()-1 {
		t.Errorf("index = %d, want %d", s.Index(), s.Len()-1)
	}
	if !s.IsLast() {
		t.Error("expected IsLast on final step")
	}
	if s.Next() {
		t.Error("Next on last step should report false")
	}

	if !s.Previous() || s.Index() != s.Len()-2 {
		t.Errorf("Previous: index = %d", s.Index())
	}

	s.Finish()
	if s.Active() || s.Index() != 0 {
		t.Errorf("after Finish: active=%v index=%d", s.Active(), s.Index())
	}
}

func TestStepper_Current(t *testing.T) {
	s := NewStepper(LeonardoDimmer)
	s.Start()
	s.Next()
	step, ok := s.Current()
	if !ok || step.ID != "step-2-pins" {
		t.Errorf("Current = %q, %v", step.ID, ok)
	}

	empty := NewStepper(nil)
	if _, ok := empty.Current(); ok {
		t.Error("empty stepper should have no current step")
	}
	if empty.FullArtifact() != "" {
		t.Error("empty stepper artifact should be empty")
	}
}

func TestFullArtifactIsFinalStep(t *testing.T) {
	s := NewStepper(LeonardoDimmer)
	got := s.FullArtifact()
	if got != LeonardoDimmer[len(LeonardoDimmer)-1].Code {
		t.Fatal("FullArtifact must return the final step's code")
	}
	for _, want := range []string{"analogRead(potPin)", "analogWrite(ledPin, brightness)", "Serial.begin(9600)", "delay(50)"} {
		if !strings.Contains(got, want) {
			t.Errorf("artifact missing %q", want)
		}
	}
}

func TestLeonardoDimmerIsCumulative(t *testing.T) {
	// Each step builds on the one before it.
	for i := 1; i < len(LeonardoDimmer); i++ {
		prev, cur := LeonardoDimmer[i-1], LeonardoDimmer[i]
		if len(cur.Code) <= len(prev.Code) {
			t.Errorf("step %s is not longer than %s", cur.ID, prev.ID)
		}
		if !strings.HasPrefix(cur.Code, sketchHeader) {
			t.Errorf("step %s does not start with the header", cur.ID)
		}
	}
	ids := map[string]bool{}
	for _, s := range LeonardoDimmer {
		if ids[s.ID] {
			t.Errorf("duplicate step id %q", s.ID)
		}
		ids[s.ID] = true
	}
}
