package circuit

import (
	"fmt"
	"sync"
)

// Endpoint is a pin on a component.
type Endpoint struct {
	Component string
	Pin       string
}

func (e Endpoint) String() string { return e.Component + "." + e.Pin }

// Rule is a connection a circuit must contain.
type Rule struct {
	From        Endpoint
	To          Endpoint
	Description string
	Required    bool
}

// matches reports whether a wire between a and b satisfies the rule in
// either direction.
func (r Rule) matches(a, b Endpoint) bool {
	return (r.From == a && r.To == b) || (r.From == b && r.To == a)
}

// LEDDimmerRules wires the LED dimmer: PWM pin D9 drives the LED, the
// potentiometer wiper feeds A0.
var LEDDimmerRules = []Rule{
	{Endpoint{"leonardo-keyestudio", "GND"}, Endpoint{"breadboard", "Power-"}, "Leonardo GND to the negative rail", true},
	{Endpoint{"leonardo-keyestudio", "5V"}, Endpoint{"breadboard", "Power+"}, "Leonardo 5V to the positive rail", true},
	{Endpoint{"leonardo-keyestudio", "D9"}, Endpoint{"led", "+"}, "Leonardo D9 (PWM) to the LED anode", true},
	{Endpoint{"leonardo-keyestudio", "A0"}, Endpoint{"potentiometer", "Wiper"}, "Leonardo A0 to the potentiometer wiper", true},
	{Endpoint{"led", "-"}, Endpoint{"resistor", "Pin1"}, "LED cathode to the resistor", true},
	{Endpoint{"resistor", "Pin2"}, Endpoint{"breadboard", "Power-"}, "Resistor to GND", true},
	{Endpoint{"potentiometer", "VCC"}, Endpoint{"breadboard", "Power+"}, "Potentiometer VCC to 5V", true},
	{Endpoint{"potentiometer", "GND"}, Endpoint{"breadboard", "Power-"}, "Potentiometer GND to ground", true},
}

// Wire is a connection placed on a board.
type Wire struct {
	A, B Endpoint
}

// Board collects wires and checks them against a rule set.
type Board struct {
	mu    sync.Mutex
	rules []Rule
	wires []Wire
}

// NewBoard creates an empty board checked against rules.
func NewBoard(rules []Rule) *Board {
	return &Board{rules: rules}
}

// Connect places a wire. It fails when either pin does not exist, when both
// ends are the same pin, or when the wire is already present.
func (b *Board) Connect(from, to Endpoint) error {
	if !HasPin(from.Component, from.Pin) {
		return fmt.Errorf("unknown pin %s", from)
	}
	if !HasPin(to.Component, to.Pin) {
		return fmt.Errorf("unknown pin %s", to)
	}
	if from == to {
		return fmt.Errorf("cannot connect %s to itself", from)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, w := range b.wires {
		if (w.A == from && w.B == to) || (w.A == to && w.B == from) {
			return fmt.Errorf("%s and %s are already connected", from, to)
		}
	}
	b.wires = append(b.wires, Wire{A: from, B: to})
	return nil
}

// Disconnect removes a wire if present.
func (b *Board) Disconnect(from, to Endpoint) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, w := range b.wires {
		if (w.A == from && w.B == to) || (w.A == to && w.B == from) {
			b.wires = append(b.wires[:i], b.wires[i+1:]...)
			return
		}
	}
}

// Wires returns the placed wires.
func (b *Board) Wires() []Wire {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Wire, len(b.wires))
	copy(out, b.wires)
	return out
}

// Missing returns the required rules no wire satisfies yet.
func (b *Board) Missing() []Rule {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Rule
	for _, r := range b.rules {
		if r.Required && !b.satisfiedLocked(r) {
			out = append(out, r)
		}
	}
	return out
}

// Complete reports whether every required rule is satisfied.
func (b *Board) Complete() bool {
	return len(b.Missing()) == 0
}

func (b *Board) satisfiedLocked(r Rule) bool {
	for _, w := range b.wires {
		if r.matches(w.A, w.B) {
			return true
		}
	}
	return false
}
