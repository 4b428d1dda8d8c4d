package catalog

import (
	"fmt"
	"strings"
)

// Validate checks the built-in library.
func Validate() error {
	return validateComponents(seedComponents)
}

// validateComponents performs all structural checks on the given library.
// Returns a combined error describing all problems found, or nil if valid.
func validateComponents(components []Component) error {
	var errs []string

	ids := make(map[string]bool, len(components))
	for _, c := range components {
		if c.ID == "" {
			errs = append(errs, fmt.Sprintf("component %q has empty ID", c.Name))
		}
		if ids[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate component ID: %q", c.ID))
		}
		ids[c.ID] = true

		switch c.Difficulty {
		case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		default:
			errs = append(errs, fmt.Sprintf("component %q: unknown difficulty %q", c.ID, c.Difficulty))
		}

		seen := make(map[string]bool, len(c.Quiz))
		for i, q := range c.Quiz {
			prefix := fmt.Sprintf("component %q question %d", c.ID, i)
			if strings.TrimSpace(q.Question) == "" {
				errs = append(errs, prefix+": empty question text")
			}
			if seen[q.Question] {
				errs = append(errs, fmt.Sprintf("%s: duplicate question %q", prefix, q.Question))
			}
			seen[q.Question] = true
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				errs = append(errs, fmt.Sprintf("%s: correct index %d out of range", prefix, q.CorrectIndex))
			}
			for j, opt := range q.Options {
				if strings.TrimSpace(opt) == "" {
					errs = append(errs, fmt.Sprintf("%s: option %d is empty", prefix, j))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("component catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
