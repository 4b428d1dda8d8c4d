package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/circuitspace/internal/ui/theme"
)

// Button is a single action in a ButtonRow.
type Button struct {
	Label   string
	OnPress func() tea.Cmd
}

// ButtonRow is a horizontal set of buttons. Tab and the arrow keys move the
// focus; enter presses the focused button.
type ButtonRow struct {
	Buttons []Button
	Focused int
}

// NewButtonRow creates a row with the first button focused.
func NewButtonRow(buttons ...Button) ButtonRow {
	return ButtonRow{Buttons: buttons}
}

// Empty reports whether the row has no buttons.
func (r ButtonRow) Empty() bool { return len(r.Buttons) == 0 }

// Update handles key events.
func (r ButtonRow) Update(msg tea.Msg) (ButtonRow, tea.Cmd) {
	if r.Empty() {
		return r, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "left", "shift+tab":
		r.Focused = (r.Focused - 1 + len(r.Buttons)) % len(r.Buttons)
	case "right", "tab":
		r.Focused = (r.Focused + 1) % len(r.Buttons)
	case "enter":
		if b := r.Buttons[r.Focused]; b.OnPress != nil {
			return r, b.OnPress()
		}
	}
	return r, nil
}

// View renders the buttons side by side.
func (r ButtonRow) View() string {
	parts := make([]string, len(r.Buttons))
	for i, b := range r.Buttons {
		if i == r.Focused {
			parts[i] = theme.ButtonActive.Render("▸ " + b.Label)
		} else {
			parts[i] = theme.ButtonInactive.Render(b.Label)
		}
	}
	return strings.Join(parts, "  ")
}
