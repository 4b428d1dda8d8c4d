package templates

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

func typeText(s *TemplatesScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestTemplatesScreen_ListsAll(t *testing.T) {
	s := New(newController(t))
	assert.Len(t, s.results, len(projects.Templates()))
	assert.False(t, s.CapturingInput())
}

func TestTemplatesScreen_SearchFilters(t *testing.T) {
	s := New(newController(t))
	typeText(s, "TEMPERATURE")

	require.NotEmpty(t, s.results)
	assert.Equal(t, "temperature-monitor", s.results[0].ID)
	assert.True(t, s.CapturingInput())

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Len(t, s.results, len(projects.Templates()))
}

func TestTemplatesScreen_NoMatches(t *testing.T) {
	s := New(newController(t))
	typeText(s, "zzzz")

	assert.Empty(t, s.results)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, s.View(100, 30), "No templates match")
}

func TestTemplatesScreen_EnterOpensProject(t *testing.T) {
	ctl := newController(t)
	s := New(ctl)
	typeText(s, "plant")
	require.NotEmpty(t, s.results)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, router.ReplaceScreenMsg{}, cmd())
	assert.Equal(t, s.results[0].Name, ctl.Project().Name)
}
