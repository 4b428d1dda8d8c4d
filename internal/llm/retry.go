package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/facebookgo/clock"
)

// RetryProvider retries failed requests with exponential backoff.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
	clk   clock.Clock

	// jitter returns a factor in [-1, 1) applied as ±20% of the wait.
	jitter func() float64
}

// WithRetry wraps p. A nil clock uses the wall clock.
func WithRetry(p Provider, cfg RetryConfig, clk clock.Clock) *RetryProvider {
	if clk == nil {
		clk = clock.New()
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{
		inner:  p,
		cfg:    cfg,
		clk:    clk,
		jitter: func() float64 { return 2*rand.Float64() - 1 },
	}
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var err error
	retriedInvalid := false
	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !retryable(err, &retriedInvalid) || attempt == r.cfg.MaxAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-r.clk.After(r.wait(attempt, err)):
		}
	}
	return nil, err
}

// retryable reports whether another attempt may succeed. Invalid responses
// get a single retry.
func retryable(err error, retriedInvalid *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	kind, ok := KindOf(err)
	if !ok {
		return true
	}
	switch kind {
	case KindTruncated:
		return false
	case KindInvalidResponse:
		if *retriedInvalid {
			return false
		}
		*retriedInvalid = true
	}
	return true
}

func (r *RetryProvider) wait(attempt int, err error) time.Duration {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindRateLimited && e.RetryAfter > 0 {
		return e.RetryAfter
	}
	w := float64(r.cfg.InitialWait)
	for range attempt {
		w *= r.cfg.Multiplier
	}
	if r.cfg.MaxWait > 0 && w > float64(r.cfg.MaxWait) {
		w = float64(r.cfg.MaxWait)
	}
	w += w * 0.2 * r.jitter()
	return time.Duration(max(w, 0))
}
