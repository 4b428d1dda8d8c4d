package tutorial

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/circuitspace/internal/router"
	"github.com/abhisek/circuitspace/internal/screen"
	"github.com/abhisek/circuitspace/internal/ui/components"
	"github.com/abhisek/circuitspace/internal/ui/layout"
	"github.com/abhisek/circuitspace/internal/ui/theme"
	"github.com/abhisek/circuitspace/internal/workspace"
)

// TutorialScreen walks through the sketch one step at a time.
type TutorialScreen struct {
	ctl *workspace.Controller
}

var (
	_ screen.Screen          = (*TutorialScreen)(nil)
	_ screen.KeyHintProvider = (*TutorialScreen)(nil)
)

// New creates the tutorial screen.
func New(ctl *workspace.Controller) *TutorialScreen {
	return &TutorialScreen{ctl: ctl}
}

func (s *TutorialScreen) Init() tea.Cmd {
	if !s.ctl.Tutorial().Active() {
		s.ctl.OnTutorialLaunch(context.Background())
	}
	return nil
}

func (s *TutorialScreen) Title() string { return "Code Tutorial" }

func (s *TutorialScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "←→", Description: "Step"}}
	if s.ctl.Tutorial().IsLast() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Finish"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *TutorialScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "right", "l", "n":
		s.ctl.OnTutorialNav(workspace.DirectionNext)
	case "left", "h", "p":
		s.ctl.OnTutorialNav(workspace.DirectionPrevious)
	case "enter":
		if s.ctl.Tutorial().IsLast() {
			s.ctl.OnTutorialFinish(context.Background())
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.ctl.OnTutorialNav(workspace.DirectionNext)
	}
	return s, nil
}

func (s *TutorialScreen) View(width, height int) string {
	st := s.ctl.Tutorial()
	step, ok := st.Current()
	if !ok {
		return theme.Hint.Render("\n  No tutorial available.")
	}
	cw := components.ContentWidth(width)

	var b strings.Builder
	header := fmt.Sprintf("Step %d of %d · %s", st.Index()+1, st.Len(), step.Title)
	b.WriteString(theme.Selected.Render(header))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", float64(st.Index()+1)/float64(st.Len()), false, cw).View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Render(step.Description))
	b.WriteString("\n\n")

	code := step.Code
	maxLines := max(4, height-14)
	if lines := strings.Split(code, "\n"); len(lines) > maxLines {
		code = strings.Join(lines[len(lines)-maxLines:], "\n")
	}
	b.WriteString(theme.Code.Width(cw).Render(code))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(cw).Render(step.Explanation))

	if st.IsLast() {
		b.WriteString("\n\n")
		b.WriteString(theme.ButtonActive.Render("▸ Finish and save the sketch"))
	}
	return layout.Centered(b.String(), width)
}
