package projects

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/abhisek/circuitspace/internal/conversation"
	"github.com/abhisek/circuitspace/internal/logger"
	"github.com/abhisek/circuitspace/internal/store"
	"github.com/google/uuid"
)

// Store holds the current project and persists every change under
// store.KeyProject.
type Store struct {
	mu      sync.Mutex
	kv      store.KV
	log     *logger.Logger
	now     func() time.Time
	project Project
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open loads the current project. A missing or unreadable document yields
// the default project.
func Open(ctx context.Context, kv store.KV, log *logger.Logger, opts ...Option) *Store {
	s := &Store{kv: kv, log: logger.OrNop(log), now: time.Now}
	for _, o := range opts {
		o(s)
	}
	s.project = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) Project {
	raw, ok, err := s.kv.Get(ctx, store.KeyProject)
	if err != nil {
		s.log.Warn("failed to read project", "error", err)
		return DefaultProject(s.now())
	}
	if !ok || raw == "" {
		return DefaultProject(s.now())
	}
	var p Project
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.log.Warn("project is malformed, using default", "error", err)
		return DefaultProject(s.now())
	}
	if p.ChatHistory == nil {
		p.ChatHistory = []ChatMessage{}
	}
	return p
}

// Project returns a copy of the current project.
func (s *Store) Project() Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProject(s.project)
}

// UpdateCode replaces the project sketch.
func (s *Store) UpdateCode(ctx context.Context, code string) {
	s.update(ctx, func(p *Project) { p.Code = code })
}

// Rename sets the project name.
func (s *Store) Rename(ctx context.Context, name string) {
	s.update(ctx, func(p *Project) { p.Name = name })
}

// AddComponent appends a part.
func (s *Store) AddComponent(ctx context.Context, part Part) {
	s.update(ctx, func(p *Project) { p.Components = append(p.Components, part) })
}

// RemoveComponent drops every part with the given id.
func (s *Store) RemoveComponent(ctx context.Context, id string) {
	s.update(ctx, func(p *Project) {
		p.Components = slices.DeleteFunc(p.Components, func(c Part) bool { return c.ID == id })
	})
}

// AddChatMessage appends a message, filling in ID and Timestamp when unset.
func (s *Store) AddChatMessage(ctx context.Context, msg ChatMessage) ChatMessage {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = s.now()
	}
	s.update(ctx, func(p *Project) { p.ChatHistory = append(p.ChatHistory, msg) })
	return msg
}

// SetConversation saves the walkthrough cursor; nil clears it.
func (s *Store) SetConversation(ctx context.Context, st *conversation.State) {
	s.update(ctx, func(p *Project) {
		if st == nil || !st.Active {
			p.Conversation = nil
			return
		}
		cp := *st
		p.Conversation = &cp
	})
}

// StartFromTemplate replaces the current project with a fresh copy of t.
func (s *Store) StartFromTemplate(ctx context.Context, t Template) Project {
	p := t.NewProject(uuid.NewString(), s.now())
	s.Replace(ctx, p)
	return p
}

// Replace swaps in a new project.
func (s *Store) Replace(ctx context.Context, p Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ChatHistory == nil {
		p.ChatHistory = []ChatMessage{}
	}
	s.project = cloneProject(p)
	s.saveLocked(ctx)
}

// Reset restores the default project and removes the saved document.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project = DefaultProject(s.now())
	return s.kv.Delete(ctx, store.KeyProject)
}

func (s *Store) update(ctx context.Context, fn func(p *Project)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.project)
	s.project.UpdatedAt = s.now()
	s.saveLocked(ctx)
}

func (s *Store) saveLocked(ctx context.Context) {
	b, err := json.Marshal(s.project)
	if err != nil {
		s.log.Warn("failed to encode project", "error", err)
		return
	}
	if err := s.kv.Set(ctx, store.KeyProject, string(b)); err != nil {
		s.log.Warn("failed to save project", "error", err)
	}
}

func cloneProject(p Project) Project {
	p.Components = slices.Clone(p.Components)
	p.ChatHistory = slices.Clone(p.ChatHistory)
	if p.Conversation != nil {
		cp := *p.Conversation
		cp.Conversation = cp.Conversation.Clone()
		cp.Revealed = slices.Clone(cp.Revealed)
		p.Conversation = &cp
	}
	return p
}
