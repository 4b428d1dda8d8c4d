package chat

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/circuitspace/internal/catalog"
	"github.com/abhisek/circuitspace/internal/conversation"
	"github.com/abhisek/circuitspace/internal/progress"
	"github.com/abhisek/circuitspace/internal/projects"
	"github.com/abhisek/circuitspace/internal/quiz"
	"github.com/abhisek/circuitspace/internal/router"
	"github.com/abhisek/circuitspace/internal/store"
	"github.com/abhisek/circuitspace/internal/workspace"
)

func newController(t *testing.T) *workspace.Controller {
	t.Helper()
	ctx := context.Background()
	kv := store.NewMemoryKV()
	prog := progress.NewService(ctx, kv, catalog.Library{})
	ctl := workspace.New(workspace.Deps{
		Engine:   conversation.NewEngine(clock.NewMock(), nil),
		Project:  projects.Open(ctx, kv, nil),
		Progress: prog,
		Quizzes:  quiz.NewManager(catalog.Library{}, prog, nil, nil, 5),
	})
	t.Cleanup(ctl.Close)
	return ctl
}

func send(s *ChatScreen, text string) {
	s.input.Model.SetValue(text)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
}

func TestChatScreen_SendStartsWalkthrough(t *testing.T) {
	ctl := newController(t)
	s := New(ctl)
	assert.True(t, s.buttons.Empty())
	assert.Contains(t, s.View(100, 30), "LED dimmer")

	send(s, "I want to build an LED dimmer")

	step, ok := ctl.Conversation().CurrentStep()
	require.True(t, ok)
	assert.Equal(t, conversation.StepComponentAnalysis, step.ID)
	assert.Empty(t, s.input.Value())
	assert.Contains(t, s.View(100, 30), "You")
}

func TestChatScreen_TutorialButtonPushesTutorial(t *testing.T) {
	ctl := newController(t)
	s := New(ctl)
	send(s, "I want to build an LED dimmer")
	send(s, "got them all")

	require.False(t, s.buttons.Empty())
	assert.True(t, s.focusButtons)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	done := cmd()
	require.IsType(t, actionDoneMsg{}, done)
	assert.True(t, ctl.Tutorial().Active())

	_, cmd = s.Update(done)
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Code Tutorial", push.Screen.Title())
}

func TestChatScreen_TabTogglesFocus(t *testing.T) {
	ctl := newController(t)
	s := New(ctl)
	send(s, "I want to build an LED dimmer")
	send(s, "got them all")
	require.True(t, s.focusButtons)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.False(t, s.focusButtons)

	s.input.Model.SetValue("draft")
	assert.True(t, s.CapturingInput())
}
