package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/circuitspace/internal/ui/theme"
)

const bannerArt = `┌─┐┬┬─┐┌─┐┬ ┬┬┌┬┐┌─┐┌─┐┌─┐┌─┐┌─┐
│  │├┬┘│  │ ││ │ └─┐├─┘├─┤│  ├┤ 
└─┘┴┴└─└─┘└─┘┴ ┴ └─┘┴  ┴ ┴└─┘└─┘`

const bannerCompact = "C I R C U I T S P A C E"

// RenderBanner returns the banner styled in the primary color, falling back
// to spaced letters on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
