package chat

import "github.com/abhisek/circuitspace/internal/screen"

// actionDoneMsg reports the outcome of a button press. next, when set, is
// pushed once the action succeeded.
type actionDoneMsg struct {
	Err  error
	Next screen.Screen
}
