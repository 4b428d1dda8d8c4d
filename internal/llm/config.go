package llm

import (
	"fmt"
	"time"

	"github.com/abhisek/circuitspace/internal/config"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// Config selects and configures the assistant's model provider.
type Config struct {
	Provider string `env:"CIRCUITSPACE_LLM_PROVIDER"`

	Anthropic  Endpoint `envPrefix:"CIRCUITSPACE_ANTHROPIC_"`
	OpenAI     Endpoint `envPrefix:"CIRCUITSPACE_OPENAI_"`
	Gemini     Endpoint `envPrefix:"CIRCUITSPACE_GEMINI_"`
	OpenRouter Endpoint `envPrefix:"CIRCUITSPACE_OPENROUTER_"`

	Retry RetryConfig

	// Timeout bounds one assistant request including retries.
	Timeout time.Duration `env:"CIRCUITSPACE_LLM_TIMEOUT"`
}

// Endpoint is the credentials and model for one provider.
type Endpoint struct {
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL"`
	BaseURL string `env:"BASE_URL"`
}

// RetryConfig controls exponential backoff between attempts.
type RetryConfig struct {
	MaxAttempts int `env:"CIRCUITSPACE_LLM_MAX_ATTEMPTS"`
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns defaults with no provider selected.
func DefaultConfig() Config {
	return Config{
		Anthropic:  Endpoint{Model: "claude-haiku"},
		OpenAI:     Endpoint{Model: "gpt-4o-mini"},
		Gemini:     Endpoint{Model: "gemini-flash"},
		OpenRouter: Endpoint{Model: "google/gemini-2.0-flash-001", BaseURL: defaultOpenRouterBaseURL},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 45 * time.Second,
	}
}

// vendorKeys are the API key variables the vendor SDKs document.
type vendorKeys struct {
	Gemini     string `env:"GEMINI_API_KEY"`
	OpenAI     string `env:"OPENAI_API_KEY"`
	Anthropic  string `env:"ANTHROPIC_API_KEY"`
	OpenRouter string `env:"OPENROUTER_API_KEY"`
}

// LoadConfig reads CIRCUITSPACE_* variables over the defaults. When no
// provider is named it falls back to the first vendor API key found, in the
// order Gemini, OpenAI, Anthropic, OpenRouter. ok is false when no provider
// could be chosen.
func LoadConfig() (cfg Config, ok bool, err error) {
	cfg = DefaultConfig()
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, false, err
	}
	if cfg.Provider != "" {
		return cfg, true, nil
	}

	var keys vendorKeys
	if err := config.ParseEnv(&keys); err != nil {
		return Config{}, false, err
	}
	switch {
	case keys.Gemini != "":
		cfg.Provider, cfg.Gemini.APIKey = ProviderGemini, keys.Gemini
	case keys.OpenAI != "":
		cfg.Provider, cfg.OpenAI.APIKey = ProviderOpenAI, keys.OpenAI
	case keys.Anthropic != "":
		cfg.Provider, cfg.Anthropic.APIKey = ProviderAnthropic, keys.Anthropic
	case keys.OpenRouter != "":
		cfg.Provider, cfg.OpenRouter.APIKey = ProviderOpenRouter, keys.OpenRouter
	default:
		return cfg, false, nil
	}
	return cfg, true, nil
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	var key, envName string
	switch c.Provider {
	case ProviderAnthropic:
		key, envName = c.Anthropic.APIKey, "CIRCUITSPACE_ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, envName = c.OpenAI.APIKey, "CIRCUITSPACE_OPENAI_API_KEY"
	case ProviderGemini:
		key, envName = c.Gemini.APIKey, "CIRCUITSPACE_GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, envName = c.OpenRouter.APIKey, "CIRCUITSPACE_OPENROUTER_API_KEY"
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", envName, c.Provider)
	}
	return nil
}
