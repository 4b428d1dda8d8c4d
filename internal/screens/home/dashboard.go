package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/circuitspace/internal/ui/theme"
)

// stats is the dashboard summary shown above the menu.
type stats struct {
	level      int
	experience int
	levelled   int
	project    string
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(s stats, cw int, compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	xpStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	partStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	var line string
	if compact {
		line = fmt.Sprintf("%s %s %s",
			levelStyle.Render(fmt.Sprintf("Lv%d", s.level)),
			xpStyle.Render(fmt.Sprintf("⚡%d", s.experience)),
			partStyle.Render(fmt.Sprintf("◈%d", s.levelled)),
		)
	} else {
		line = fmt.Sprintf("%s  %s  %s",
			levelStyle.Render(fmt.Sprintf("LEVEL %d", s.level)),
			xpStyle.Render(fmt.Sprintf("⚡ %d XP", s.experience)),
			partStyle.Render(fmt.Sprintf("◈ %d PARTS LEVELLED", s.levelled)),
		)
	}

	project := theme.Hint.Render("Project: " + s.project)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line + "\n" + project)
}

// renderAssistantNote renders a hint when no LLM key is configured.
func renderAssistantNote(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key to ask free-form questions (see circuitspace --help)")
}

// renderCabinetFrame wraps content in a double-border frame, centering it
// within the given dimensions.
func renderCabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
