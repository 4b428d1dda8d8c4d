package app

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
	"github.com/abhisek/circuitspace/internal/screen"
	"github.com/abhisek/circuitspace/internal/store"
	"github.com/abhisek/circuitspace/internal/workspace"
)

func newTestModel(t *testing.T) (AppModel, *workspace.Controller) {
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
	return newAppModel(Deps{Workspace: ctl}), ctl
}

// step feeds msg through the model and then the message its command
// produces, if any.
func step(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	if out := cmd(); out != nil {
		next, _ = m.Update(out)
		m = next.(AppModel)
	}
	return m
}

type stubScreen struct {
	capturing bool
	refreshed int
}

func (s *stubScreen) Init() tea.Cmd        { return nil }
func (s *stubScreen) View(int, int) string { return "stub" }
func (s *stubScreen) Title() string        { return "Stub" }
func (s *stubScreen) CapturingInput() bool { return s.capturing }
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.RefreshMsg); ok {
		s.refreshed++
	}
	return s, nil
}

func TestWelcomeLeadsHome(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, "", m.router.Active().Title())

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "Home", m.router.Active().Title())
	assert.Equal(t, 1, m.router.Depth())
}

func TestEscPopsUnlessCapturing(t *testing.T) {
	m, _ := newTestModel(t)
	stub := &stubScreen{capturing: true}
	m.router.Push(stub)

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 2, m.router.Depth(), "capturing screen keeps Esc")

	stub.capturing = false
	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())
}

func TestNoticeBecomesRefresh(t *testing.T) {
	m, ctl := newTestModel(t)
	stub := &stubScreen{}
	m.router.Push(stub)

	_, ok := ctl.OpenTemplate(context.Background(), "temperature-monitor")
	require.True(t, ok)

	msg := listen(m.notices)()
	require.IsType(t, screen.RefreshMsg{}, msg)

	next, _ := m.Update(msg)
	m = next.(AppModel)
	assert.Equal(t, 1, stub.refreshed)
}

func TestBadgeTracksProgress(t *testing.T) {
	m, ctl := newTestModel(t)
	assert.Equal(t, 0, m.badge().Experience)

	ctl.OnQuizSubmitted(context.Background(), "led", 5, 5)
	assert.Equal(t, progress.ExperiencePerCorrect*5, m.badge().Experience)
	assert.GreaterOrEqual(t, m.badge().Level, 1)
}
