package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/circuitspace/internal/catalog"
	"github.com/abhisek/circuitspace/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswer_FiltersSuggestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"reply": "  Use a 220 ohm resistor in series with the LED. ",
		"suggested_components": ["resistor", "flux-capacitor", "led", "resistor"]
	}`)})
	svc := NewService(mock, DefaultConfig(), nil)

	reply, err := svc.Answer(context.Background(), Question{Input: "which resistor for an LED?", ProjectName: "Dimmer"})
	require.NoError(t, err)
	assert.Equal(t, "Use a 220 ohm resistor in series with the LED.", reply.Text)
	assert.Equal(t, []string{"resistor", "led"}, reply.SuggestedComponents)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, ReplySchema, calls[0].Schema)
	assert.Contains(t, calls[0].System, "- led:")
	last := calls[0].Messages[len(calls[0].Messages)-1]
	assert.Equal(t, llm.RoleUser, last.Role)
	assert.Contains(t, last.Content, "Current project: Dimmer")
	assert.Contains(t, last.Content, "which resistor for an LED?")
}

func TestAnswer_InvalidReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"reply": 3}`)})
	_, err := NewService(mock, DefaultConfig(), nil).Answer(context.Background(), Question{Input: "hi"})
	kind, ok := llm.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, llm.KindInvalidResponse, kind)
}

func TestAnswer_EmptyInput(t *testing.T) {
	mock := llm.NewMockProvider()
	_, err := NewService(mock, DefaultConfig(), nil).Answer(context.Background(), Question{Input: "  "})
	assert.Error(t, err)
	assert.Empty(t, mock.Calls())
}

func TestAsk_DeliversToCallback(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"reply":"ok","suggested_components":[]}`)},
		llm.MockResponse{Err: errors.New("offline")},
	)
	svc := NewService(mock, DefaultConfig(), nil)

	type result struct {
		reply Reply
		err   error
	}
	done := make(chan result, 2)
	cb := func(r Reply, err error) { done <- result{r, err} }

	svc.Ask(context.Background(), Question{Input: "one"}, cb)
	select {
	case r := <-done:
		require.NoError(t, r.err)
		assert.Equal(t, "ok", r.reply.Text)
	case <-time.After(5 * time.Second):
		t.Fatal("callback not called")
	}

	svc.Ask(context.Background(), Question{Input: "two"}, cb)
	select {
	case r := <-done:
		assert.ErrorContains(t, r.err, "offline")
	case <-time.After(5 * time.Second):
		t.Fatal("callback not called")
	}
}

func TestTrimHistory(t *testing.T) {
	history := []Turn{
		{Content: "aaaa"},
		{FromAssistant: true, Content: "bbbb"},
		{Content: "cccc"},
		{FromAssistant: true, Content: "dddd"},
	}
	assert.Equal(t, history, trimHistory(history, 100))
	assert.Equal(t, history[2:], trimHistory(history, 8))
	assert.Equal(t, history[2:], trimHistory(history, 12), "leading assistant turn dropped")
	assert.Empty(t, trimHistory(history, 3))
}

func TestBuildMessages_Roles(t *testing.T) {
	msgs := buildMessages(Question{
		Input:   "next?",
		History: []Turn{{Content: "hello"}, {FromAssistant: true, Content: "hi"}},
	}, 1000)
	require.Len(t, msgs, 3)
	assert.Equal(t, llm.RoleUser, msgs[0].Role)
	assert.Equal(t, llm.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "next?", msgs[2].Content)
}

func TestReplySchemaAcceptsCatalogIDs(t *testing.T) {
	ids := make([]string, 0)
	for _, c := range catalog.All() {
		ids = append(ids, c.ID)
	}
	b, err := json.Marshal(replyOutput{Reply: "x", SuggestedComponents: ids})
	require.NoError(t, err)
	mock := llm.NewMockProvider(llm.MockResponse{Content: b})
	reply, err := NewService(mock, DefaultConfig(), nil).Answer(context.Background(), Question{Input: "all"})
	require.NoError(t, err)
	assert.Equal(t, ids, reply.SuggestedComponents)
}
