package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/circuitspace/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens with a focused text field. While
// it reports true the app does not treat Esc as "back".
type InputCapturer interface {
	CapturingInput() bool
}

// RefreshMsg is broadcast to every screen when shared state changed outside
// the event loop, e.g. a delayed reveal fired or an assistant reply arrived.
type RefreshMsg struct {
	Err error
}
