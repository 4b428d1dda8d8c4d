package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/circuitspace/internal/router"
	"github.com/abhisek/circuitspace/internal/screen"
	"github.com/abhisek/circuitspace/internal/screens/chat"
	"github.com/abhisek/circuitspace/internal/screens/designer"
	"github.com/abhisek/circuitspace/internal/screens/history"
	"github.com/abhisek/circuitspace/internal/screens/library"
	"github.com/abhisek/circuitspace/internal/screens/templates"
	tutorialscreen "github.com/abhisek/circuitspace/internal/screens/tutorial"
	"github.com/abhisek/circuitspace/internal/screens/welcome"
	"github.com/abhisek/circuitspace/internal/store"
	"github.com/abhisek/circuitspace/internal/ui/components"
	"github.com/abhisek/circuitspace/internal/workspace"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	ctl         *workspace.Controller
	menu        components.Menu
	assistantOn bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. events may be nil, which hides the quiz
// history entry.
func New(ctl *workspace.Controller, events store.EventRepo, assistantOn bool) *HomeScreen {
	push := func(f func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: f()} }
		}
	}

	items := []components.MenuItem{
		{Label: "PROJECT CHAT", Description: "Plan and build with your guide",
			Action: push(func() screen.Screen { return chat.New(ctl) })},
		{Label: "COMPONENTS & QUIZZES", Description: "Level up your parts knowledge",
			Action: push(func() screen.Screen { return library.New(ctl) })},
		{Label: "CODE TUTORIAL", Description: "Write the LED dimmer sketch",
			Action: push(func() screen.Screen { return tutorialscreen.New(ctl) })},
		{Label: "PROJECT TEMPLATES", Description: "Start from a ready-made project",
			Action: push(func() screen.Screen { return templates.New(ctl) })},
		{Label: "CIRCUIT DESIGNER", Description: "Wire the dimmer on a virtual breadboard",
			Action: push(func() screen.Screen { return designer.New(ctl) })},
		{Label: "QUIZ HISTORY", Description: "Your recent results", Disabled: events == nil,
			Action: push(func() screen.Screen { return history.New(events) })},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		ctl:         ctl,
		menu:        components.NewMenu(items),
		assistantOn: assistantOn,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 22 || width < 100
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, welcome.RenderBanner(cw))
	if !compact {
		sections = append(sections, RenderMascot(h.mascot()))
	}
	sections = append(sections, renderStatsBar(h.stats(), cw, compact))
	if !h.assistantOn {
		sections = append(sections, renderAssistantNote(cw))
	}
	sections = append(sections, h.menu.View())

	return renderCabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) stats() stats {
	prog := h.ctl.Progress()
	levelled := 0
	for _, p := range prog.All() {
		if p.Level > 1 {
			levelled++
		}
	}
	return stats{
		level:      prog.PlayerLevel(),
		experience: prog.TotalExperience(),
		levelled:   levelled,
		project:    h.ctl.Project().Name,
	}
}

func (h *HomeScreen) mascot() MascotVariant {
	st := h.ctl.Conversation()
	switch {
	case st.Active && st.Conversation.Completed:
		return MascotLit
	case st.Active:
		return MascotBuilding
	}
	return MascotIdle
}
