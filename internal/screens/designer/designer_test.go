package designer

import (
	"context"
	"slices"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/circuitspace/internal/circuit"
	"github.com/abhisek/circuitspace/internal/workspace"
)

type fakeCompleter struct {
	calls int
	err   error
}

func (f *fakeCompleter) OnCircuitDesignerCompleted(context.Context) error {
	f.calls++
	return f.err
}

var enter = tea.KeyPressMsg{Code: tea.KeyEnter}

func (s *DesignerScreen) moveTo(t *testing.T, ep circuit.Endpoint) {
	t.Helper()
	i := slices.Index(s.endpoints, ep)
	require.GreaterOrEqual(t, i, 0, "endpoint %s not listed", ep)
	s.cursor = i
}

func (s *DesignerScreen) wire(t *testing.T, r circuit.Rule) {
	t.Helper()
	s.moveTo(t, r.From)
	s.Update(enter)
	s.moveTo(t, r.To)
	s.Update(enter)
}

func TestEndpointsCoverEveryRule(t *testing.T) {
	eps := endpointsFor(circuit.LEDDimmerRules)
	for _, r := range circuit.LEDDimmerRules {
		assert.Contains(t, eps, r.From)
		assert.Contains(t, eps, r.To)
	}
}

func TestWiringAllRulesCompletes(t *testing.T) {
	done := &fakeCompleter{}
	s := newScreen(done, circuit.LEDDimmerRules)

	for i, r := range circuit.LEDDimmerRules {
		assert.False(t, s.complete, "complete before rule %d", i)
		s.wire(t, r)
		assert.Empty(t, s.errMsg)
	}

	assert.True(t, s.complete)
	assert.Equal(t, 1, done.calls)
	assert.Contains(t, s.View(100, 30), "8 of 8 connections")
}

func TestCompletionOutsideWalkthroughIsQuiet(t *testing.T) {
	done := &fakeCompleter{err: workspace.ErrNoAction}
	s := newScreen(done, circuit.LEDDimmerRules[:1])

	s.wire(t, circuit.LEDDimmerRules[0])

	assert.True(t, s.complete)
	assert.Empty(t, s.errMsg)
}

func TestSamePinRejected(t *testing.T) {
	s := newScreen(nil, circuit.LEDDimmerRules)
	s.Update(enter)
	s.Update(enter)

	assert.NotEmpty(t, s.errMsg)
	assert.Empty(t, s.board.Wires())
	assert.False(t, s.CapturingInput())
}

func TestEscCancelsPendingWire(t *testing.T) {
	s := newScreen(nil, circuit.LEDDimmerRules)
	s.Update(enter)
	require.True(t, s.CapturingInput())

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.False(t, s.CapturingInput())
}

func TestUndoRemovesLastWire(t *testing.T) {
	s := newScreen(nil, circuit.LEDDimmerRules)
	s.wire(t, circuit.LEDDimmerRules[0])
	require.Len(t, s.board.Wires(), 1)

	s.Update(tea.KeyPressMsg{Code: 'u', Text: "u"})
	assert.Empty(t, s.board.Wires())
}
