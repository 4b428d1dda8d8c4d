// Package assistant answers free-form project questions with a language
// model when the scripted conversation does not recognise the input.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/abhisek/circuitspace/internal/catalog"
	"github.com/abhisek/circuitspace/internal/llm"
	"github.com/abhisek/circuitspace/internal/logger"
)

// Config holds generation settings.
type Config struct {
	MaxTokens       int
	Temperature     float64
	MaxHistoryChars int

	// Timeout bounds one Ask call. Zero means no limit beyond ctx.
	Timeout time.Duration
}

// DefaultConfig returns the settings used by the app.
func DefaultConfig() Config {
	return Config{MaxTokens: 600, Temperature: 0.4, MaxHistoryChars: 4000}
}

// Turn is one earlier chat message.
type Turn struct {
	FromAssistant bool
	Content       string
}

// Question is a user message with the context sent alongside it.
type Question struct {
	Input             string
	History           []Turn
	ProjectName       string
	ProjectComponents []string
}

// Reply is the assistant's answer.
type Reply struct {
	Text                string
	SuggestedComponents []string
}

// Callback receives the result of Ask. It runs on the request goroutine.
type Callback func(Reply, error)

// Service sends questions to the model.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *logger.Logger
}

// NewService creates an assistant backed by provider.
func NewService(provider llm.Provider, cfg Config, log *logger.Logger) *Service {
	return &Service{provider: provider, cfg: cfg, log: logger.OrNop(log)}
}

// Ask answers q in the background and reports the result to cb.
func (s *Service) Ask(ctx context.Context, q Question, cb Callback) {
	go func() {
		if s.cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
			defer cancel()
		}
		reply, err := s.Answer(ctx, q)
		if err != nil {
			s.log.Warn("assistant request failed", "error", err)
		}
		cb(reply, err)
	}()
}

// Answer answers q synchronously.
func (s *Service) Answer(ctx context.Context, q Question) (Reply, error) {
	if strings.TrimSpace(q.Input) == "" {
		return Reply{}, fmt.Errorf("empty question")
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeAssistant)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      buildSystemPrompt(catalog.All()),
		Messages:    buildMessages(q, s.cfg.MaxHistoryChars),
		Schema:      ReplySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("assistant reply: %w", err)
	}

	var out replyOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Reply{}, fmt.Errorf("parse assistant reply: %w", err)
	}

	reply := Reply{Text: strings.TrimSpace(out.Reply)}
	for _, id := range out.SuggestedComponents {
		if !catalog.Exists(id) {
			s.log.Debug("dropping unknown suggested component", "id", id)
			continue
		}
		if !slices.Contains(reply.SuggestedComponents, id) {
			reply.SuggestedComponents = append(reply.SuggestedComponents, id)
		}
	}
	return reply, nil
}
