package conversation

import (
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/abhisek/circuitspace/internal/logger"
	"github.com/facebookgo/clock"
)

// EventKind identifies what changed in the engine.
type EventKind int

const (
	EventStarted EventKind = iota
	EventStepChanged
	EventSubStepRevealed
	EventSubStepsDone
	EventStepCompleted
	EventCompleted
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventStepChanged:
		return "step-changed"
	case EventSubStepRevealed:
		return "sub-step-revealed"
	case EventSubStepsDone:
		return "sub-steps-done"
	case EventStepCompleted:
		return "step-completed"
	case EventCompleted:
		return "completed"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners after every state change.
type Event struct {
	Kind    EventKind
	StepID  string
	SubStep *DelayedSubStep
	State   State
}

// Listener receives engine events. Listeners run outside the engine lock and
// may call back into the engine. Reveal events arrive on the clock's timer
// goroutine.
type Listener func(Event)

// RevealedSubStep is a delayed sub-step that has become visible.
type RevealedSubStep struct {
	StepID  string
	SubStep DelayedSubStep
}

// State is a snapshot of the engine.
type State struct {
	Active       bool
	Conversation Conversation
	Revealed     []RevealedSubStep
}

// CurrentStep returns the step under the cursor, or false when inactive.
func (s State) CurrentStep() (Step, bool) {
	if !s.Active {
		return Step{}, false
	}
	return s.Conversation.Current(), true
}

// Engine runs one scripted conversation at a time. Delayed sub-steps of the
// current step are scheduled on the engine clock, one pending timer at a
// time. Every cursor move bumps a generation counter; a timer callback whose
// generation no longer matches is ignored.
type Engine struct {
	mu       sync.Mutex
	clock    clock.Clock
	log      *logger.Logger
	conv     *Conversation
	revealed []RevealedSubStep

	gen     uint64
	pending *clock.Timer

	listeners map[int]Listener
	nextID    int
	closed    bool
}

// NewEngine creates an engine. A nil clock uses the wall clock.
func NewEngine(clk clock.Clock, log *logger.Logger) *Engine {
	if clk == nil {
		clk = clock.New()
	}
	return &Engine{
		clock:     clk,
		log:       logger.OrNop(log),
		listeners: make(map[int]Listener),
	}
}

// Start instantiates the template for projectID at step 0. Unknown ids leave
// the engine unchanged and return false.
func (e *Engine) Start(projectID string) bool {
	tmpl, ok := Template(projectID)
	if !ok {
		e.log.Warn("unknown conversation template", "project", projectID)
		return false
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return false
	}
	e.conv = &tmpl
	e.revealed = nil
	e.activateLocked()
	ev := e.eventLocked(EventStarted, e.conv.Current().ID, nil)
	e.mu.Unlock()

	e.emit(ev)
	return true
}

// Restore resumes a previously captured state. Sub-steps already revealed
// stay revealed; the remaining ones of the current step are scheduled again
// relative to now.
func (e *Engine) Restore(st State) bool {
	if !st.Active || len(st.Conversation.Steps) == 0 {
		return false
	}
	conv := st.Conversation.Clone()
	if conv.CurrentStep < 0 || conv.CurrentStep >= len(conv.Steps) {
		conv.CurrentStep = 0
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return false
	}
	e.conv = &conv
	e.revealed = slices.Clone(st.Revealed)
	e.activateLocked()
	ev := e.eventLocked(EventStarted, conv.Current().ID, nil)
	e.mu.Unlock()

	e.emit(ev)
	return true
}

// Advance moves the cursor one step forward. It is a no-op on the last step
// or when no conversation is active.
func (e *Engine) Advance() {
	e.mu.Lock()
	if e.conv == nil || e.conv.CurrentStep >= len(e.conv.Steps)-1 {
		e.mu.Unlock()
		return
	}
	e.conv.CurrentStep++
	e.activateLocked()
	ev := e.eventLocked(EventStepChanged, e.conv.Current().ID, nil)
	e.mu.Unlock()

	e.emit(ev)
}

// JumpToStep moves the cursor to the step with stepID. Unknown ids leave the
// state unchanged and return false.
func (e *Engine) JumpToStep(stepID string) bool {
	e.mu.Lock()
	if e.conv == nil {
		e.mu.Unlock()
		return false
	}
	idx := e.conv.StepIndex(stepID)
	if idx < 0 {
		e.mu.Unlock()
		return false
	}
	e.conv.CurrentStep = idx
	e.activateLocked()
	ev := e.eventLocked(EventStepChanged, stepID, nil)
	e.mu.Unlock()

	e.emit(ev)
	return true
}

// MarkCompleted flags a step as completed without moving the cursor.
func (e *Engine) MarkCompleted(stepID string) {
	e.mu.Lock()
	if e.conv == nil {
		e.mu.Unlock()
		return
	}
	idx := e.conv.StepIndex(stepID)
	if idx < 0 || e.conv.Steps[idx].Completed {
		e.mu.Unlock()
		return
	}
	e.conv.Steps[idx].Completed = true
	ev := e.eventLocked(EventStepCompleted, stepID, nil)
	e.mu.Unlock()

	e.emit(ev)
}

// Complete marks the whole conversation as finished. The engine never does
// this on its own.
func (e *Engine) Complete() {
	e.mu.Lock()
	if e.conv == nil || e.conv.Completed {
		e.mu.Unlock()
		return
	}
	e.conv.Completed = true
	ev := e.eventLocked(EventCompleted, e.conv.Current().ID, nil)
	e.mu.Unlock()

	e.emit(ev)
}

// Reset clears the active conversation and cancels pending reveals.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.cancelLocked()
	wasActive := e.conv != nil
	e.conv = nil
	e.revealed = nil
	ev := e.eventLocked(EventReset, "", nil)
	e.mu.Unlock()

	if wasActive {
		e.emit(ev)
	}
}

// Close cancels pending reveals and stops accepting new conversations.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelLocked()
	e.closed = true
}

// State returns a snapshot of the engine.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

// Subscribe registers l for engine events. The returned function removes it.
func (e *Engine) Subscribe(l Listener) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.nextID
	e.nextID++
	e.listeners[id] = l
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.listeners, id)
	}
}

// activateLocked invalidates timers from the previous step and schedules the
// pending sub-steps of the current one.
func (e *Engine) activateLocked() {
	e.cancelLocked()

	step := e.conv.Current()
	var queue []DelayedSubStep
	for _, sub := range step.DelayedSubSteps {
		if !e.isRevealedLocked(step.ID, sub.ID) {
			queue = append(queue, sub)
		}
	}
	if len(queue) == 0 {
		return
	}
	sort.SliceStable(queue, func(i, j int) bool { return queue[i].Delay < queue[j].Delay })

	// Restored conversations resume relative to the last revealed delay.
	e.scheduleLocked(e.gen, step.ID, queue, e.lastRevealedDelayLocked(step))
}

// scheduleLocked arms a timer for queue[0]. Later entries are chained from
// the callback so reveals happen in delay order.
func (e *Engine) scheduleLocked(gen uint64, stepID string, queue []DelayedSubStep, elapsed time.Duration) {
	wait := max(0, queue[0].Delay-elapsed)
	e.pending = e.clock.AfterFunc(wait, func() {
		e.fire(gen, stepID, queue)
	})
}

func (e *Engine) fire(gen uint64, stepID string, queue []DelayedSubStep) {
	e.mu.Lock()
	if gen != e.gen || e.conv == nil || e.conv.Current().ID != stepID {
		e.mu.Unlock()
		return
	}
	sub := queue[0]
	e.revealed = append(e.revealed, RevealedSubStep{StepID: stepID, SubStep: sub})
	events := []Event{e.eventLocked(EventSubStepRevealed, stepID, &sub)}

	rest := queue[1:]
	if len(rest) > 0 {
		e.scheduleLocked(gen, stepID, rest, sub.Delay)
	} else {
		e.pending = nil
		events = append(events, e.eventLocked(EventSubStepsDone, stepID, nil))
	}
	e.mu.Unlock()

	for _, ev := range events {
		e.emit(ev)
	}
}

func (e *Engine) cancelLocked() {
	e.gen++
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}
}

func (e *Engine) isRevealedLocked(stepID, subID string) bool {
	for _, r := range e.revealed {
		if r.StepID == stepID && r.SubStep.ID == subID {
			return true
		}
	}
	return false
}

func (e *Engine) lastRevealedDelayLocked(step Step) time.Duration {
	var last time.Duration
	for _, r := range e.revealed {
		if r.StepID == step.ID {
			last = max(last, r.SubStep.Delay)
		}
	}
	return last
}

func (e *Engine) stateLocked() State {
	if e.conv == nil {
		return State{}
	}
	return State{
		Active:       true,
		Conversation: e.conv.Clone(),
		Revealed:     slices.Clone(e.revealed),
	}
}

func (e *Engine) eventLocked(kind EventKind, stepID string, sub *DelayedSubStep) Event {
	return Event{Kind: kind, StepID: stepID, SubStep: sub, State: e.stateLocked()}
}

func (e *Engine) emit(ev Event) {
	e.mu.Lock()
	listeners := make([]Listener, 0, len(e.listeners))
	ids := make([]int, 0, len(e.listeners))
	for id := range e.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		listeners = append(listeners, e.listeners[id])
	}
	e.mu.Unlock()

	for _, l := range listeners {
		l(ev)
	}
}
