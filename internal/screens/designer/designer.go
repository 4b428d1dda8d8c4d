package designer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/circuitspace/internal/catalog"
	"github.com/abhisek/circuitspace/internal/circuit"
	"github.com/abhisek/circuitspace/internal/screen"
	"github.com/abhisek/circuitspace/internal/ui/components"
	"github.com/abhisek/circuitspace/internal/ui/layout"
	"github.com/abhisek/circuitspace/internal/ui/theme"
	"github.com/abhisek/circuitspace/internal/workspace"
)

// Completer is told when every required wire has been placed.
type Completer interface {
	OnCircuitDesignerCompleted(ctx context.Context) error
}

// DesignerScreen lets the user wire the LED dimmer pin by pin.
type DesignerScreen struct {
	done      Completer
	board     *circuit.Board
	rules     []circuit.Rule
	endpoints []circuit.Endpoint
	cursor    int
	pending   *circuit.Endpoint
	showHints bool
	complete  bool
	status    string
	errMsg    string
}

var (
	_ screen.Screen          = (*DesignerScreen)(nil)
	_ screen.KeyHintProvider = (*DesignerScreen)(nil)
	_ screen.InputCapturer   = (*DesignerScreen)(nil)
)

// New creates a designer for the LED dimmer circuit.
func New(ctl *workspace.Controller) *DesignerScreen {
	return newScreen(ctl, circuit.LEDDimmerRules)
}

func newScreen(done Completer, rules []circuit.Rule) *DesignerScreen {
	return &DesignerScreen{
		done:      done,
		board:     circuit.NewBoard(rules),
		rules:     rules,
		endpoints: endpointsFor(rules),
	}
}

// endpointsFor lists every pin of the components the rules mention, in
// order of first appearance.
func endpointsFor(rules []circuit.Rule) []circuit.Endpoint {
	seen := map[string]bool{}
	var out []circuit.Endpoint
	add := func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true
		cfg, ok := circuit.Pins(id)
		if !ok {
			return
		}
		for _, p := range cfg.Pins {
			out = append(out, circuit.Endpoint{Component: id, Pin: p.Name})
		}
	}
	for _, r := range rules {
		add(r.From.Component)
		add(r.To.Component)
	}
	return out
}

func (s *DesignerScreen) Init() tea.Cmd { return nil }

func (s *DesignerScreen) Title() string { return "Circuit Designer" }

func (s *DesignerScreen) CapturingInput() bool { return s.pending != nil }

func (s *DesignerScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Pin"},
		{Key: "Enter", Description: "Wire"},
		{Key: "U", Description: "Undo"},
		{Key: "H", Description: "Hints"},
	}
	if s.pending != nil {
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Cancel wire"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *DesignerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.endpoints)-1 {
			s.cursor++
		}
	case "esc":
		s.pending = nil
		s.status = ""
	case "h":
		s.showHints = !s.showHints
	case "u":
		s.undo()
	case "enter":
		s.pick()
	}
	return s, nil
}

func (s *DesignerScreen) pick() {
	if len(s.endpoints) == 0 {
		return
	}
	ep := s.endpoints[s.cursor]
	if s.pending == nil {
		s.pending = &ep
		s.errMsg = ""
		s.status = fmt.Sprintf("Wiring from %s, pick the other end", label(ep))
		return
	}

	from := *s.pending
	s.pending = nil
	if err := s.board.Connect(from, ep); err != nil {
		s.errMsg = err.Error()
		s.status = ""
		return
	}
	s.errMsg = ""
	s.status = fmt.Sprintf("Connected %s to %s", label(from), label(ep))
	s.checkComplete()
}

func (s *DesignerScreen) undo() {
	wires := s.board.Wires()
	if len(wires) == 0 {
		return
	}
	last := wires[len(wires)-1]
	s.board.Disconnect(last.A, last.B)
	s.status = fmt.Sprintf("Removed %s to %s", label(last.A), label(last.B))
}

func (s *DesignerScreen) checkComplete() {
	if s.complete || !s.board.Complete() {
		return
	}
	s.complete = true
	s.status = "Circuit complete! Every required connection is in place."
	if s.done == nil {
		return
	}
	// Outside the walkthrough the designer is free practice.
	if err := s.done.OnCircuitDesignerCompleted(context.Background()); err != nil && !errors.Is(err, workspace.ErrNoAction) {
		s.errMsg = err.Error()
	}
}

func label(ep circuit.Endpoint) string {
	name := ep.Component
	if c, ok := catalog.Get(ep.Component); ok {
		name = c.Name
	}
	return name + " " + ep.Pin
}

func (s *DesignerScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	half := max(20, cw/2)

	pins := s.renderPins(max(5, height-8))
	wires := s.renderWires()

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		components.Panel("Pins", pins, half),
		components.Panel("Wires", wires, half),
	)

	var b strings.Builder
	b.WriteString(row)
	b.WriteString("\n")
	if s.status != "" {
		b.WriteString(theme.Body.Render("  " + s.status))
		b.WriteString("\n")
	}
	if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render("  " + s.errMsg))
		b.WriteString("\n")
	}
	return layout.Centered(b.String(), width)
}

func (s *DesignerScreen) renderPins(rows int) string {
	start := max(0, min(s.cursor-rows/2, len(s.endpoints)-rows))
	end := min(len(s.endpoints), start+rows)

	var b strings.Builder
	for i := start; i < end; i++ {
		ep := s.endpoints[i]
		line := label(ep)
		style := theme.Unselected
		prefix := "  "
		if s.pending != nil && *s.pending == ep {
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
			prefix = "● "
		}
		if i == s.cursor {
			style = theme.Selected
			prefix = "▸ "
		}
		b.WriteString(style.Render(prefix + line))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *DesignerScreen) renderWires() string {
	var b strings.Builder
	wires := s.board.Wires()
	missing := s.board.Missing()
	required := 0
	for _, r := range s.rules {
		if r.Required {
			required++
		}
	}

	bar := components.NewProgressBar("", float64(required-len(missing))/float64(max(1, required)), false, 24)
	b.WriteString(fmt.Sprintf("%d of %d connections\n%s\n\n", required-len(missing), required, bar.View()))

	if len(wires) == 0 {
		b.WriteString(theme.Hint.Render("No wires yet"))
		b.WriteString("\n")
	}
	for _, w := range wires {
		b.WriteString(fmt.Sprintf("%s ─ %s\n", label(w.A), label(w.B)))
	}

	if s.showHints && len(missing) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Selected.Render("Still needed"))
		b.WriteString("\n")
		for _, r := range missing {
			b.WriteString(theme.Hint.Render("• " + r.Description))
			b.WriteString("\n")
		}
	}
	return b.String()
}
