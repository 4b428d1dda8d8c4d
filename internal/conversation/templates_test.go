package conversation

import (
	"strings"
	"testing"
	"time"
)

func TestTemplate_LeonardoIsValid(t *testing.T) {
	c, ok := Template(LeonardoLEDDimmer)
	if !ok {
		t.Fatal("leonardo template missing")
	}
	if err := validateTemplate(c); err != nil {
		t.Fatal(err)
	}
	if c.CurrentStep != 0 || c.Completed {
		t.Errorf("template should start at step 0, not completed")
	}

	idx := c.StepIndex(StepRealTablePath)
	if idx < 0 {
		t.Fatal("real-table-path missing")
	}
	subs := c.Steps[idx].DelayedSubSteps
	if len(subs) != 8 {
		t.Fatalf("real-table-path has %d sub-steps, want 8", len(subs))
	}
	for i, s := range subs {
		if want := time.Duration(i+1) * 2 * time.Second; s.Delay != want {
			t.Errorf("sub-step %d delay = %v, want %v", i, s.Delay, want)
		}
	}
}

func TestTemplate_ReturnsDeepCopy(t *testing.T) {
	a, _ := Template(LeonardoLEDDimmer)
	a.Steps[0].Completed = true
	a.Steps[0].NextStepIDs[0] = "mutated"

	b, _ := Template(LeonardoLEDDimmer)
	if b.Steps[0].Completed || b.Steps[0].NextStepIDs[0] == "mutated" {
		t.Error("Template must not share state between calls")
	}
}

func TestTemplate_Unknown(t *testing.T) {
	if _, ok := Template("nope"); ok {
		t.Error("expected unknown template to be missing")
	}
	if ids := TemplateIDs(); len(ids) != 1 || ids[0] != LeonardoLEDDimmer {
		t.Errorf("TemplateIDs = %v", ids)
	}
}

func TestValidateTemplate(t *testing.T) {
	tests := []struct {
		name string
		conv Conversation
		want string
	}{
		{"empty", Conversation{ID: "x"}, "no steps"},
		{"duplicate", Conversation{ID: "x", Steps: []Step{{ID: "a"}, {ID: "a"}}}, "duplicate"},
		{"dangling", Conversation{ID: "x", Steps: []Step{{ID: "a", NextStepIDs: []string{"b"}}}}, "unknown step"},
		{"negative delay", Conversation{ID: "x", Steps: []Step{{ID: "a", DelayedSubSteps: []DelayedSubStep{{ID: "s", Delay: -1}}}}}, "negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTemplate(tt.conv)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("validateTemplate = %v, want error mentioning %q", err, tt.want)
			}
		})
	}
}
