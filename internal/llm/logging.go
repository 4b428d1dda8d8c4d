package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/circuitspace/internal/logger"
	"github.com/abhisek/circuitspace/internal/store"
	"github.com/facebookgo/clock"
)

// LoggingProvider records every request in the event log.
type LoggingProvider struct {
	inner    Provider
	provider string
	events   store.EventRepo
	log      *logger.Logger
	clk      clock.Clock
}

// WithLogging wraps p so each call is appended to events. Failures to
// record are logged and never fail the request.
func WithLogging(p Provider, provider string, events store.EventRepo, log *logger.Logger, clk clock.Clock) *LoggingProvider {
	if clk == nil {
		clk = clock.New()
	}
	return &LoggingProvider{inner: p, provider: provider, events: events, log: logger.OrNop(log), clk: clk}
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := l.clk.Now()
	resp, err := l.inner.Generate(ctx, req)
	latency := l.clk.Now().Sub(start)

	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   latency.Milliseconds(),
		Success:     err == nil,
		RequestBody: renderRequest(req),
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		l.log.Warn("llm request failed", "provider", l.provider, "model", data.Model, "purpose", data.Purpose, "error", err)
	} else {
		l.log.Debug("llm request", "provider", l.provider, "model", data.Model, "purpose", data.Purpose,
			"latency_ms", data.LatencyMs, "input_tokens", data.InputTokens, "output_tokens", data.OutputTokens)
	}

	if l.events != nil {
		if recErr := l.events.AppendLLMRequest(context.WithoutCancel(ctx), data); recErr != nil {
			l.log.Warn("failed to record llm request", "error", recErr)
		}
	}
	return resp, err
}

// renderRequest flattens a request into the readable form shown by
// `circuitspace llm view`.
func renderRequest(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
