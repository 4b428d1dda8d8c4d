package templates

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/circuitspace/internal/projects"
	"github.com/abhisek/circuitspace/internal/router"
	"github.com/abhisek/circuitspace/internal/screen"
	"github.com/abhisek/circuitspace/internal/screens/chat"
	"github.com/abhisek/circuitspace/internal/ui/components"
	"github.com/abhisek/circuitspace/internal/ui/layout"
	"github.com/abhisek/circuitspace/internal/ui/theme"
	"github.com/abhisek/circuitspace/internal/workspace"
)

// TemplatesScreen browses and searches project templates.
type TemplatesScreen struct {
	ctl      *workspace.Controller
	search   components.TextInput
	results  []projects.Template
	selected int
	query    string
}

var (
	_ screen.Screen          = (*TemplatesScreen)(nil)
	_ screen.KeyHintProvider = (*TemplatesScreen)(nil)
	_ screen.InputCapturer   = (*TemplatesScreen)(nil)
)

// New creates the templates screen.
func New(ctl *workspace.Controller) *TemplatesScreen {
	return &TemplatesScreen{
		ctl:     ctl,
		search:  components.NewTextInput("Search templates...", 60),
		results: projects.Templates(),
	}
}

func (s *TemplatesScreen) Init() tea.Cmd { return s.search.Init() }

func (s *TemplatesScreen) Title() string { return "Project Templates" }

func (s *TemplatesScreen) CapturingInput() bool { return s.search.Value() != "" }

func (s *TemplatesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Type", Description: "Search"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start project"},
		{Key: "Esc", Description: "Clear/Back"},
	}
}

func (s *TemplatesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "esc":
			s.search.Model.Reset()
			s.refresh()
			return s, nil
		case "enter":
			return s, s.open()
		}
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.refresh()
	return s, cmd
}

func (s *TemplatesScreen) refresh() {
	q := strings.TrimSpace(s.search.Value())
	if q == s.query {
		return
	}
	s.query = q
	s.results = projects.SearchTemplates(q)
	s.selected = 0
}

func (s *TemplatesScreen) open() tea.Cmd {
	if len(s.results) == 0 {
		return nil
	}
	if _, ok := s.ctl.OpenTemplate(context.Background(), s.results[s.selected].ID); !ok {
		return nil
	}
	next := chat.New(s.ctl)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *TemplatesScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(s.search.View())
	b.WriteString("\n\n")

	if len(s.results) == 0 {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("No templates match %q", s.query)))
		return layout.Centered(components.Panel("", b.String(), cw), width)
	}

	for i, t := range s.results {
		line := fmt.Sprintf("%-28s %-13s %s", t.Name, t.Category, t.EstimatedTime)
		if i == s.selected {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderDetail(s.results[s.selected], cw-4))
	return layout.Centered(components.Panel("", b.String(), cw), width)
}

func renderDetail(t projects.Template, width int) string {
	var b strings.Builder
	b.WriteString(theme.Selected.Render(t.Name))
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  difficulty %d/5", t.Difficulty)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(t.Description))
	b.WriteString("\n")
	if len(t.LearningObjectives) > 0 {
		b.WriteString("\n")
		for _, o := range t.LearningObjectives {
			b.WriteString(theme.Body.Render("• " + o))
			b.WriteString("\n")
		}
	}
	names := make([]string, 0, len(t.Components))
	for _, p := range t.Components {
		names = append(names, p.Name)
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Width(width).Render("Parts: " + strings.Join(names, ", ")))
	if len(t.Tags) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Tags: " + strings.Join(t.Tags, ", ")))
	}
	return b.String()
}
