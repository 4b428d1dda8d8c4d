package progress

import (
	"context"
	"encoding/json"
	"maps"
	"sync"
	"time"

	"github.com/abhisek/circuitspace/internal/logger"
	"github.com/abhisek/circuitspace/internal/store"
)

// ComponentSet reports which component IDs are known.
type ComponentSet interface {
	Exists(id string) bool
}

// Listener is notified after a component's progress changes.
type Listener func(componentID string, p ComponentProgress)

// Service owns per-component progress and persists it as one JSON document
// under store.KeyComponentProgress.
type Service struct {
	mu         sync.RWMutex
	kv         store.KV
	components ComponentSet
	log        *logger.Logger
	now        func() time.Time
	dailyLimit int
	records    map[string]ComponentProgress

	listeners map[int]Listener
	nextID    int
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the logger used for absorbed persistence failures.
func WithLogger(l *logger.Logger) Option {
	return func(s *Service) { s.log = logger.OrNop(l) }
}

// WithDailyLimit overrides the per-component daily quiz limit.
func WithDailyLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.dailyLimit = n
		}
	}
}

// NewService creates a progress service and loads persisted state from kv.
// Missing or unreadable state starts empty.
func NewService(ctx context.Context, kv store.KV, components ComponentSet, opts ...Option) *Service {
	s := &Service{
		kv:         kv,
		components: components,
		log:        logger.Nop(),
		now:        time.Now,
		dailyLimit: DefaultDailyQuizLimit,
		records:    make(map[string]ComponentProgress),
		listeners:  make(map[int]Listener),
	}
	for _, o := range opts {
		o(s)
	}
	s.load(ctx)
	return s
}

func (s *Service) load(ctx context.Context) {
	raw, ok, err := s.kv.Get(ctx, store.KeyComponentProgress)
	if err != nil {
		s.log.Warn("failed to read component progress", "error", err)
		return
	}
	if !ok || raw == "" {
		return
	}
	var records map[string]ComponentProgress
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.log.Warn("component progress is malformed, starting fresh", "error", err)
		return
	}
	for id, p := range records {
		p.Experience = max(0, p.Experience)
		p.QuizzesTaken = max(0, p.QuizzesTaken)
		p.Level = LevelFor(p.Experience)
		s.records[id] = p
	}
}

// Progress returns the record for a component, or the default record when
// none exists.
func (s *Service) Progress(componentID string) ComponentProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.records[componentID]; ok {
		return p
	}
	return DefaultProgress()
}

// All returns a copy of every stored record.
func (s *Service) All() map[string]ComponentProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.records)
}

// CanTakeQuiz reports whether another quiz is allowed for the component today.
func (s *Service) CanTakeQuiz(componentID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.records[componentID]
	if !ok || p.LastQuizDate == nil {
		return true
	}
	if !sameDay(*p.LastQuizDate, s.now()) {
		return true
	}
	return p.QuizzesTaken < s.dailyLimit
}

// DailyLimit returns the configured per-component daily quiz limit.
func (s *Service) DailyLimit() int {
	return s.dailyLimit
}

// SubmitQuizResult awards experience for correct answers and records the
// quiz. total is accepted for the record but does not affect the reward.
// Unknown components yield the default result and are not persisted.
func (s *Service) SubmitQuizResult(ctx context.Context, componentID string, correct, total int) QuizResult {
	if s.components != nil && !s.components.Exists(componentID) {
		return QuizResult{NewLevel: 1}
	}
	correct = max(0, correct)

	s.mu.Lock()
	now := s.now()
	p, ok := s.records[componentID]
	if !ok {
		p = DefaultProgress()
	}

	gained := correct * ExperiencePerCorrect
	oldLevel := p.Level
	p.Experience += gained
	p.Level = LevelFor(p.Experience)
	if p.LastQuizDate == nil || !sameDay(*p.LastQuizDate, now) {
		p.QuizzesTaken = 1
	} else {
		p.QuizzesTaken++
	}
	p.LastQuizDate = &now
	s.records[componentID] = p
	s.persist(ctx, s.records)
	listeners := s.listenerList()
	s.mu.Unlock()

	for _, l := range listeners {
		l(componentID, p)
	}

	res := QuizResult{
		NewLevel:         p.Level,
		NewExperience:    p.Experience,
		QuizzesTaken:     p.QuizzesTaken,
		ExperienceGained: gained,
	}
	if p.Level != oldLevel {
		res.LevelUp = &LevelChange{ComponentID: componentID, From: oldLevel, To: p.Level}
	}
	s.log.Debug("quiz result recorded",
		"component", componentID, "correct", correct, "total", total,
		"experience", p.Experience, "level", p.Level)
	return res
}

// TotalExperience sums experience over all components.
func (s *Service) TotalExperience() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, p := range s.records {
		total += p.Experience
	}
	return total
}

// PlayerLevel derives the overall player level from total experience.
func (s *Service) PlayerLevel() int {
	return PlayerLevelFor(s.TotalExperience())
}

// Subscribe registers l for progress changes. The returned function removes it.
func (s *Service) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Reset discards all progress.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.records = make(map[string]ComponentProgress)
	s.mu.Unlock()
	return s.kv.Delete(ctx, store.KeyComponentProgress)
}

// listenerList must be called with mu held.
func (s *Service) listenerList() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		out = append(out, l)
	}
	return out
}

// persist must be called with mu held.
func (s *Service) persist(ctx context.Context, records map[string]ComponentProgress) {
	b, err := json.Marshal(records)
	if err != nil {
		s.log.Warn("failed to encode component progress", "error", err)
		return
	}
	if err := s.kv.Set(ctx, store.KeyComponentProgress, string(b)); err != nil {
		s.log.Warn("failed to save component progress", "error", err)
	}
}
