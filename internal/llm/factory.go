package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/circuitspace/internal/logger"
	"github.com/abhisek/circuitspace/internal/store"
	"github.com/facebookgo/clock"
)

// NewProvider builds the provider named by cfg and wraps it so that calls
// are retried and every attempt is recorded in events.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, log *logger.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.Provider, err)
	}

	clk := clock.New()
	logged := WithLogging(base, cfg.Provider, events, log, clk)
	return WithRetry(logged, cfg.Retry, clk), nil
}
