package tutorial

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
	"github.com/abhisek/circuitspace/internal/tutorial"
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

func TestTutorialScreen_Navigation(t *testing.T) {
	ctl := newController(t)
	s := New(ctl)
	s.Init()
	require.True(t, ctl.Tutorial().Active())

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, 1, ctl.Tutorial().Index())

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, 0, ctl.Tutorial().Index())

	view := s.View(100, 40)
	assert.Contains(t, view, "Step 1 of")
}

func TestTutorialScreen_FinishSavesSketch(t *testing.T) {
	ctl := newController(t)
	s := New(ctl)
	s.Init()

	for i := 0; i < len(tutorial.LeonardoDimmer); i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	require.True(t, ctl.Tutorial().IsLast())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
	assert.False(t, ctl.Tutorial().Active())
	assert.Equal(t, ctl.Tutorial().FullArtifact(), ctl.Project().Code)
}
