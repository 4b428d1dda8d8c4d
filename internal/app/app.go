package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/circuitspace/internal/logger"
	"github.com/abhisek/circuitspace/internal/router"
	"github.com/abhisek/circuitspace/internal/screen"
	"github.com/abhisek/circuitspace/internal/screens/home"
	"github.com/abhisek/circuitspace/internal/screens/welcome"
	"github.com/abhisek/circuitspace/internal/store"
	"github.com/abhisek/circuitspace/internal/ui/layout"
	"github.com/abhisek/circuitspace/internal/workspace"
)

// Deps holds the services the TUI drives.
type Deps struct {
	Workspace   *workspace.Controller
	Events      store.EventRepo // nil hides quiz history
	AssistantOn bool
	Logger      *logger.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	ctl     *workspace.Controller
	notices chan workspace.Notice
	log     *logger.Logger
	width   int
	height  int
}

// newAppModel creates a new AppModel starting at the welcome splash.
func newAppModel(deps Deps) AppModel {
	m := AppModel{
		ctl:     deps.Workspace,
		notices: make(chan workspace.Notice, 1),
		log:     logger.OrNop(deps.Logger),
	}

	homeFactory := func() screen.Screen {
		return home.New(deps.Workspace, deps.Events, deps.AssistantOn)
	}
	m.router = router.New(welcome.New(homeFactory))

	// Notices arrive from timer and assistant goroutines. A full channel
	// already holds a pending refresh, so extra notices are dropped.
	ch := m.notices
	deps.Workspace.Subscribe(func(n workspace.Notice) {
		select {
		case ch <- n:
		default:
		}
	})
	return m
}

// listen waits for the next workspace notice and turns it into a refresh.
func listen(ch <-chan workspace.Notice) tea.Cmd {
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return screen.RefreshMsg{Err: n.Err}
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), listen(m.notices))
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.RefreshMsg:
		if msg.Err != nil {
			m.log.Warn("workspace notice", "error", msg.Err)
		}
		return m, tea.Batch(m.router.Broadcast(msg), listen(m.notices))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 && !capturing(m.router.Active()) {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func capturing(s screen.Screen) bool {
	c, ok := s.(screen.InputCapturer)
	return ok && c.CapturingInput()
}

func (m AppModel) badge() layout.Badge {
	prog := m.ctl.Progress()
	return layout.Badge{
		Level:      prog.PlayerLevel(),
		Experience: prog.TotalExperience(),
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.badge(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(0, m.height-headerHeight-footerHeight)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, deps Deps) error {
	p := tea.NewProgram(newAppModel(deps), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
