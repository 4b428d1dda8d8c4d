package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/circuitspace/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle     MascotVariant = iota // Unlit LED
	MascotBuilding                      // Walkthrough in progress
	MascotLit                           // A walkthrough was completed
)

const mascotIdle = ` ╭───╮
 │ ◦ │
 ╰┬─┬╯
  │ │`

const mascotBuilding = ` ╭───╮
 │ ◉ │ ~
 ╰┬─┬╯
  │ │`

const mascotLit = `\ ╭───╮ /
  │ ★ │
 ╰┬─┬╯
  │ │`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.TextDim

	switch v {
	case MascotBuilding:
		art = mascotBuilding
		fg = theme.Accent
	case MascotLit:
		art = mascotLit
		fg = theme.Error
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
