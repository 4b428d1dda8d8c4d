package conversation

import (
	"strings"

	"golang.org/x/text/cases"
)

// intentRule maps keyword sets to a project template. A rule matches when the
// input mentions a subject and at least one modifier, intent or hardware term.
type intentRule struct {
	projectID string
	subjects  []string
	modifiers []string
	intents   []string
	hardware  []string
}

var intentRules = []intentRule{
	{
		projectID: LeonardoLEDDimmer,
		subjects:  []string{"led", "diode", "leuchtdiode"},
		modifiers: []string{"dimmer", "dim", "brightness", "bright", "potentiometer", "poti", "helligkeit", "regulieren", "fade"},
		intents:   []string{"project", "build", "create", "make", "projekt", "bauen", "erstellen"},
		hardware:  []string{"leonardo"},
	},
}

var folder = cases.Fold()

// DetectProjectType maps free text to a conversation template id. Keywords
// are matched as case-insensitive substrings, so "LEDdimmer" matches both
// "led" and "dimmer".
func DetectProjectType(input string) (string, bool) {
	text := normalize(input)
	if text == "" {
		return "", false
	}
	for _, r := range intentRules {
		if !containsAny(text, r.subjects) {
			continue
		}
		if containsAny(text, r.modifiers) || containsAny(text, r.intents) || containsAny(text, r.hardware) {
			return r.projectID, true
		}
	}
	return "", false
}

// normalize case-folds input and trims surrounding space.
func normalize(input string) string {
	return strings.TrimSpace(folder.String(input))
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
