package history

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/circuitspace/internal/router"
	"github.com/abhisek/circuitspace/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(openStore(t).EventRepo())
	assert.Contains(t, s.View(100, 20), "Loading history")

	load(t, s)
	assert.Contains(t, s.View(100, 20), "No quizzes yet")
}

func TestHistoryScreen_ListsQuizzes(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()
	require.NoError(t, st.EventRepo().AppendQuizEvent(ctx, store.QuizEventData{
		ComponentID: "led", Correct: 4, Total: 5, ExperienceGained: 80, NewLevel: 1,
	}))
	require.NoError(t, st.EventRepo().AppendQuizEvent(ctx, store.QuizEventData{
		ComponentID: "resistor", Correct: 5, Total: 5, ExperienceGained: 100, NewLevel: 2,
	}))

	s := New(st.EventRepo())
	load(t, s)

	require.Len(t, s.quizzes, 2)
	view := s.View(120, 20)
	assert.Contains(t, view, "+100 XP")
	assert.Contains(t, view, "80%")

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}
