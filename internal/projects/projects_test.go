package projects

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/abhisek/circuitspace/internal/conversation"
	"github.com/abhisek/circuitspace/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func clockAt(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestOpen_DefaultsWhenMissing(t *testing.T) {
	s := Open(context.Background(), store.NewMemoryKV(), nil, WithClock(clockAt(fixedNow)))

	p := s.Project()
	assert.Equal(t, "default", p.ID)
	assert.Equal(t, "Smart LED Controller", p.Name)
	assert.Len(t, p.Components, 2)
	assert.Contains(t, p.Code, "FastLED")
	assert.NotNil(t, p.ChatHistory)
	assert.Equal(t, fixedNow, p.CreatedAt)
}

func TestOpen_CorruptDocumentFallsBack(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, store.KeyProject, "{not json"))

	s := Open(ctx, kv, nil)
	assert.Equal(t, "default", s.Project().ID)
}

func TestStore_MutationsPersist(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	now := fixedNow
	s := Open(ctx, kv, nil, WithClock(func() time.Time { return now }))

	now = now.Add(time.Minute)
	s.UpdateCode(ctx, "void setup() {}")
	s.Rename(ctx, "Dimmer")
	s.AddComponent(ctx, Part{ID: "led", Name: "LED"})
	s.RemoveComponent(ctx, "arduino-uno")
	msg := s.AddChatMessage(ctx, ChatMessage{Role: conversation.RoleUser, Content: "hi"})

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, now, msg.Timestamp)

	reopened := Open(ctx, kv, nil).Project()
	assert.Equal(t, "Dimmer", reopened.Name)
	assert.Equal(t, "void setup() {}", reopened.Code)
	assert.Equal(t, now, reopened.UpdatedAt)
	require.Len(t, reopened.Components, 2)
	assert.Equal(t, "led-strip", reopened.Components[0].ID)
	assert.Equal(t, "led", reopened.Components[1].ID)
	require.Len(t, reopened.ChatHistory, 1)
	assert.Equal(t, "hi", reopened.ChatHistory[0].Content)
}

func TestStore_ChatMessageJSONShape(t *testing.T) {
	b, err := json.Marshal(ChatMessage{ID: "1", Role: conversation.RoleAI, Content: "x", StepID: "s"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "ai", m["type"])
	assert.Equal(t, "s", m["stepId"])
}

func TestStore_SetConversation(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := Open(ctx, kv, nil)

	conv, ok := conversation.Template(conversation.LeonardoLEDDimmer)
	require.True(t, ok)
	s.SetConversation(ctx, &conversation.State{Active: true, Conversation: conv})

	saved := Open(ctx, kv, nil).Project().Conversation
	require.NotNil(t, saved)
	assert.Equal(t, conversation.LeonardoLEDDimmer, saved.Conversation.ID)
	assert.Len(t, saved.Conversation.Steps, len(conv.Steps))

	s.SetConversation(ctx, &conversation.State{})
	assert.Nil(t, Open(ctx, kv, nil).Project().Conversation)
}

func TestStore_ProjectIsACopy(t *testing.T) {
	s := Open(context.Background(), store.NewMemoryKV(), nil)

	p := s.Project()
	p.Components[0].Name = "changed"
	assert.NotEqual(t, "changed", s.Project().Components[0].Name)
}

func TestStore_StartFromTemplateAndReset(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := Open(ctx, kv, nil, WithClock(clockAt(fixedNow)))

	tpl, ok := TemplateByID("temperature-monitor")
	require.True(t, ok)
	p := s.StartFromTemplate(ctx, tpl)
	assert.NotEqual(t, "default", p.ID)
	assert.Equal(t, tpl.Name, Open(ctx, kv, nil).Project().Name)

	require.NoError(t, s.Reset(ctx))
	_, found, _ := kv.Get(ctx, store.KeyProject)
	assert.False(t, found)
	assert.Equal(t, "default", s.Project().ID)
}

func TestStore_WriteFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := Open(ctx, kv, nil)
	kv.FailWrites = true

	s.Rename(ctx, "offline")
	assert.Equal(t, "offline", s.Project().Name)
}
