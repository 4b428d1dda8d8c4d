package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput for single-line prompts.
type TextInput struct {
	Model textinput.Model
}

// NewTextInput creates a focused text input. limit caps the number of
// characters; zero means unlimited.
func NewTextInput(placeholder string, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.Focus()
	if limit > 0 {
		ti.CharLimit = limit
	}
	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	return t.Model.View()
}

// SetWidth sets the visible width.
func (t *TextInput) SetWidth(w int) {
	t.Model.SetWidth(w)
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit returns the trimmed value and clears the input. It reports false
// when there was nothing to send.
func (t *TextInput) Submit() (string, bool) {
	v := strings.TrimSpace(t.Model.Value())
	t.Model.Reset()
	return v, v != ""
}
