package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/circuitspace/internal/store"
	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_ReplaysInOrder(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)
	ctx := context.Background()

	r1, err := m.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(r1.Content))
	assert.Equal(t, 10, r1.Usage.InputTokens)
	assert.Equal(t, "end", r1.StopReason)

	r2, err := m.Generate(ctx, Request{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":2}`, string(r2.Content))

	_, err = m.Generate(ctx, Request{})
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindUnavailable, kind)
	assert.Len(t, m.Calls(), 3)
	assert.Equal(t, "first", m.Calls()[0].Messages[0].Content)
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	m := NewMockProvider(MockResponse{Content: json.RawMessage(`{"name":"x"}`)})
	_, err := m.Generate(context.Background(), Request{Schema: testSchema()})
	kind, _ := KindOf(err)
	assert.Equal(t, KindInvalidResponse, kind)
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := fromStatus(429, cause)
	assert.ErrorIs(t, err, cause)
	kind, _ := KindOf(err)
	assert.Equal(t, KindRateLimited, kind)

	kind, _ = KindOf(fromStatus(503, cause))
	assert.Equal(t, KindUnavailable, kind)

	_, ok := KindOf(cause)
	assert.False(t, ok)
}

type recordingEvents struct {
	store.EventRepo
	got []store.LLMRequestEventData
	err error
}

func (r *recordingEvents) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	r.got = append(r.got, d)
	return r.err
}

// slowProvider advances the mock clock while serving a request.
type slowProvider struct {
	*MockProvider
	clk   *clock.Mock
	delay time.Duration
}

func (s slowProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	s.clk.Add(s.delay)
	return s.MockProvider.Generate(ctx, req)
}

func TestLoggingProvider_RecordsEvents(t *testing.T) {
	clk := clock.NewMock()
	events := &recordingEvents{}
	inner := slowProvider{
		MockProvider: NewMockProvider(
			MockResponse{Content: json.RawMessage(`{"ok":true}`), Usage: Usage{InputTokens: 7, OutputTokens: 3}},
			MockResponse{Err: &Error{Kind: KindRateLimited}},
		),
		clk:   clk,
		delay: 250 * time.Millisecond,
	}
	p := WithLogging(inner, "mock", events, nil, clk)
	ctx := WithPurpose(context.Background(), PurposeAssistant)

	_, err := p.Generate(ctx, Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	require.NoError(t, err)
	_, err = p.Generate(context.Background(), Request{})
	require.Error(t, err)

	require.Len(t, events.got, 2)
	ok := events.got[0]
	assert.Equal(t, "mock", ok.Provider)
	assert.Equal(t, "mock", ok.Model)
	assert.Equal(t, PurposeAssistant, ok.Purpose)
	assert.Equal(t, int64(250), ok.LatencyMs)
	assert.True(t, ok.Success)
	assert.Equal(t, 7, ok.InputTokens)
	assert.Equal(t, `{"ok":true}`, ok.ResponseBody)
	assert.Contains(t, ok.RequestBody, "[system]\nsys")
	assert.Contains(t, ok.RequestBody, "[user]\nhi")

	failed := events.got[1]
	assert.False(t, failed.Success)
	assert.Equal(t, PurposeUnknown, failed.Purpose)
	assert.Contains(t, failed.ErrorMessage, "rate limited")
}

func TestLoggingProvider_RecordFailureDoesNotFailRequest(t *testing.T) {
	events := &recordingEvents{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}), "mock", events, nil, nil)

	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
}

func TestRenderRequest_IncludesSchema(t *testing.T) {
	out := renderRequest(Request{Schema: testSchema()})
	assert.Contains(t, out, "[schema: test-part]")
	assert.Contains(t, out, `"required"`)
}

func TestNewProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	p, err := NewProvider(context.Background(), cfg, &recordingEvents{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	cfg.Provider = ProviderOpenRouter
	_, err = NewProvider(context.Background(), cfg, nil, nil)
	assert.ErrorContains(t, err, "CIRCUITSPACE_OPENROUTER_API_KEY")

	cfg.OpenRouter.APIKey = "k"
	p, err = NewProvider(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().OpenRouter.Model, p.ModelID())

	cfg.Provider = "bogus"
	_, err = NewProvider(context.Background(), cfg, nil, nil)
	assert.ErrorContains(t, err, "unknown LLM provider")
}

func TestLookupPrice(t *testing.T) {
	p, ok := LookupPrice("gpt-4o-mini")
	require.True(t, ok)
	assert.InDelta(t, 0.15+0.6, p.Cost(1_000_000, 1_000_000), 1e-9)

	_, ok = LookupPrice("google/gemini-2.0-flash-001")
	assert.True(t, ok)
	_, ok = LookupPrice("nope")
	assert.False(t, ok)
}

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CIRCUITSPACE_LLM_PROVIDER", "CIRCUITSPACE_ANTHROPIC_API_KEY", "CIRCUITSPACE_ANTHROPIC_MODEL",
		"CIRCUITSPACE_OPENAI_API_KEY", "CIRCUITSPACE_GEMINI_API_KEY", "CIRCUITSPACE_OPENROUTER_API_KEY",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Explicit(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("CIRCUITSPACE_LLM_PROVIDER", "anthropic")
	t.Setenv("CIRCUITSPACE_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("CIRCUITSPACE_ANTHROPIC_MODEL", "claude-sonnet")

	cfg, ok, err := LoadConfig()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ProviderAnthropic, cfg.Provider)
	assert.Equal(t, "sk-test", cfg.Anthropic.APIKey)
	assert.Equal(t, "claude-sonnet", cfg.Anthropic.Model)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model, "defaults survive")
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_DiscoversVendorKey(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-anthropic")

	cfg, ok, err := LoadConfig()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "sk-openai", cfg.OpenAI.APIKey)
}

func TestLoadConfig_NothingConfigured(t *testing.T) {
	clearLLMEnv(t)
	_, ok, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, ok)
}
