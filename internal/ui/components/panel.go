package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/circuitspace/internal/ui/theme"
)

// ContentWidth returns the inner width used for boxed sections.
func ContentWidth(frameWidth int) int {
	return min(72, max(20, frameWidth-6))
}

// Panel wraps content in a rounded-border card at the given content width.
func Panel(title, content string, cw int) string {
	body := content
	if title != "" {
		body = theme.Selected.Render(title) + "\n\n" + content
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Padding(0, 1).
		Render(body)
}
