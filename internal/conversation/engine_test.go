package conversation

import (
	"sync"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) listen(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) revealedIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for _, ev := range r.events {
		if ev.Kind == EventSubStepRevealed {
			ids = append(ids, ev.SubStep.ID)
		}
	}
	return ids
}

func (r *recorder) count(kind EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func newTestEngine(t *testing.T) (*Engine, *clock.Mock, *recorder) {
	t.Helper()
	mock := clock.NewMock()
	e := NewEngine(mock, nil)
	rec := &recorder{}
	e.Subscribe(rec.listen)
	t.Cleanup(e.Close)
	return e, mock, rec
}

func currentID(t *testing.T, e *Engine) string {
	t.Helper()
	step, ok := e.State().CurrentStep()
	require.True(t, ok, "expected active conversation")
	return step.ID
}

func TestEngine_InitiallyInactive(t *testing.T) {
	e, _, rec := newTestEngine(t)
	_, ok := e.State().CurrentStep()
	assert.False(t, ok)

	e.Advance()
	assert.False(t, e.JumpToStep(StepStartCoding))
	e.MarkCompleted(StepStartCoding)
	e.Complete()
	assert.Empty(t, rec.events)
}

func TestEngine_StartUnknown(t *testing.T) {
	e, _, _ := newTestEngine(t)
	assert.False(t, e.Start("nope"))
	assert.False(t, e.State().Active)
}

func TestEngine_StartAndAdvance(t *testing.T) {
	e, _, rec := newTestEngine(t)
	require.True(t, e.Start(LeonardoLEDDimmer))
	assert.Equal(t, StepComponentAnalysis, currentID(t, e))
	assert.Equal(t, 1, rec.count(EventStarted))

	e.Advance()
	assert.Equal(t, StepUserConfirmsComponents, currentID(t, e))

	// Advancing past the last step is a no-op.
	steps := len(e.State().Conversation.Steps)
	for i := 0; i < steps+3; i++ {
		e.Advance()
	}
	st := e.State()
	assert.Equal(t, steps-1, st.Conversation.CurrentStep)
	assert.False(t, st.Conversation.Completed, "engine never completes on its own")
}

func TestEngine_JumpToStep(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.Start(LeonardoLEDDimmer)

	require.True(t, e.JumpToStep(StepCircuitDesignerPath))
	idx := e.State().Conversation.StepIndex(StepCircuitDesignerPath)
	assert.Equal(t, idx, e.State().Conversation.CurrentStep)

	assert.False(t, e.JumpToStep("nonexistent"))
	assert.Equal(t, idx, e.State().Conversation.CurrentStep)

	// Jumping backwards is allowed.
	require.True(t, e.JumpToStep(StepCodePreparation))
	assert.Equal(t, StepCodePreparation, currentID(t, e))
}

func TestEngine_MarkCompletedKeepsCursor(t *testing.T) {
	e, _, rec := newTestEngine(t)
	e.Start(LeonardoLEDDimmer)

	e.MarkCompleted(StepBuildComplete)
	e.MarkCompleted(StepBuildComplete)
	e.MarkCompleted("nonexistent")

	st := e.State()
	assert.Equal(t, 0, st.Conversation.CurrentStep)
	assert.True(t, st.Conversation.Steps[st.Conversation.StepIndex(StepBuildComplete)].Completed)
	assert.Equal(t, 1, rec.count(EventStepCompleted))
}

func TestEngine_Complete(t *testing.T) {
	e, _, rec := newTestEngine(t)
	e.Start(LeonardoLEDDimmer)
	e.Complete()
	e.Complete()
	assert.True(t, e.State().Conversation.Completed)
	assert.Equal(t, 1, rec.count(EventCompleted))
}

func TestEngine_DelayedSubStepsRevealInOrder(t *testing.T) {
	e, mock, rec := newTestEngine(t)
	e.Start(LeonardoLEDDimmer)
	require.True(t, e.JumpToStep(StepRealTablePath))

	mock.Add(1999 * time.Millisecond)
	assert.Empty(t, rec.revealedIDs())

	mock.Add(time.Millisecond)
	assert.Equal(t, []string{"detect-board"}, rec.revealedIDs())

	mock.Add(14 * time.Second)
	assert.Equal(t, []string{
		"detect-board", "detect-breadboard", "detect-led", "detect-resistor",
		"detect-potentiometer", "detect-wiring", "detect-upload", "detect-dimming",
	}, rec.revealedIDs())
	assert.Equal(t, 1, rec.count(EventSubStepsDone))
	assert.Len(t, e.State().Revealed, 8)
}

func TestEngine_ResetCancelsPendingReveals(t *testing.T) {
	e, mock, rec := newTestEngine(t)
	e.Start(LeonardoLEDDimmer)
	e.JumpToStep(StepRealTablePath)

	mock.Add(3 * time.Second)
	e.Reset()
	mock.Add(time.Minute)

	assert.Equal(t, []string{"detect-board"}, rec.revealedIDs())
	assert.False(t, e.State().Active)
	assert.Equal(t, 1, rec.count(EventReset))
}

func TestEngine_JumpAwayCancelsPendingReveals(t *testing.T) {
	e, mock, rec := newTestEngine(t)
	e.Start(LeonardoLEDDimmer)
	e.JumpToStep(StepRealTablePath)

	mock.Add(5 * time.Second)
	e.JumpToStep(StepBuildComplete)
	mock.Add(time.Minute)

	assert.Equal(t, []string{"detect-board", "detect-breadboard"}, rec.revealedIDs())
}

func TestEngine_ReentryReschedulesRemaining(t *testing.T) {
	e, mock, rec := newTestEngine(t)
	e.Start(LeonardoLEDDimmer)
	e.JumpToStep(StepRealTablePath)
	mock.Add(4 * time.Second)

	// Re-entering the step resumes after the last revealed sub-step.
	e.JumpToStep(StepRealTablePath)
	mock.Add(2 * time.Second)
	assert.Equal(t, []string{"detect-board", "detect-breadboard", "detect-led"}, rec.revealedIDs())
}

func TestEngine_CloseStopsTimers(t *testing.T) {
	e, mock, rec := newTestEngine(t)
	e.Start(LeonardoLEDDimmer)
	e.JumpToStep(StepRealTablePath)
	e.Close()
	mock.Add(time.Minute)

	assert.Empty(t, rec.revealedIDs())
	assert.False(t, e.Start(LeonardoLEDDimmer))
}

func TestEngine_StaleCallbackIsNoop(t *testing.T) {
	e, _, rec := newTestEngine(t)
	e.Start(LeonardoLEDDimmer)
	e.JumpToStep(StepRealTablePath)

	st := e.State()
	subs := st.Conversation.Current().DelayedSubSteps
	staleGen := e.gen - 1
	e.fire(staleGen, StepRealTablePath, subs)

	assert.Empty(t, rec.revealedIDs())
}

func TestEngine_Restore(t *testing.T) {
	e, mock, _ := newTestEngine(t)
	e.Start(LeonardoLEDDimmer)
	e.JumpToStep(StepRealTablePath)
	mock.Add(4 * time.Second)
	saved := e.State()
	e.Close()

	e2, mock2, rec2 := newTestEngine(t)
	require.True(t, e2.Restore(saved))
	assert.Equal(t, StepRealTablePath, currentID(t, e2))
	assert.Len(t, e2.State().Revealed, 2)

	mock2.Add(2 * time.Second)
	assert.Equal(t, []string{"detect-led"}, rec2.revealedIDs())

	assert.False(t, e2.Restore(State{}))
}

func TestEngine_StateIsSnapshot(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.Start(LeonardoLEDDimmer)
	st := e.State()
	st.Conversation.Steps[0].Completed = true
	assert.False(t, e.State().Conversation.Steps[0].Completed)
}

func TestEngine_ListenerCanCallBack(t *testing.T) {
	e, mock, _ := newTestEngine(t)
	e.Subscribe(func(ev Event) {
		if ev.Kind == EventSubStepsDone {
			e.Advance()
		}
	})
	e.Start(LeonardoLEDDimmer)
	e.JumpToStep(StepRealTablePath)
	mock.Add(20 * time.Second)
	assert.Equal(t, StepBuildComplete, currentID(t, e))
}

func TestEngine_Unsubscribe(t *testing.T) {
	e := NewEngine(clock.NewMock(), nil)
	defer e.Close()
	rec := &recorder{}
	unsub := e.Subscribe(rec.listen)
	unsub()
	e.Start(LeonardoLEDDimmer)
	assert.Empty(t, rec.events)
}
