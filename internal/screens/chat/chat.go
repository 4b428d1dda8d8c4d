package chat

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/circuitspace/internal/catalog"
	"github.com/abhisek/circuitspace/internal/conversation"
	"github.com/abhisek/circuitspace/internal/projects"
	"github.com/abhisek/circuitspace/internal/router"
	"github.com/abhisek/circuitspace/internal/screen"
	"github.com/abhisek/circuitspace/internal/screens/designer"
	tutorialscreen "github.com/abhisek/circuitspace/internal/screens/tutorial"
	"github.com/abhisek/circuitspace/internal/ui/components"
	"github.com/abhisek/circuitspace/internal/ui/layout"
	"github.com/abhisek/circuitspace/internal/ui/theme"
	"github.com/abhisek/circuitspace/internal/workspace"
)

const inputLimit = 500

// ChatScreen is the project conversation: history, step buttons and a
// text prompt.
type ChatScreen struct {
	ctl          *workspace.Controller
	input        components.TextInput
	buttons      components.ButtonRow
	buttonStep   string
	focusButtons bool
	history      viewport.Model
	rendered     int
	width        int
	errMsg       string
}

var (
	_ screen.Screen          = (*ChatScreen)(nil)
	_ screen.KeyHintProvider = (*ChatScreen)(nil)
	_ screen.InputCapturer   = (*ChatScreen)(nil)
)

// New creates a chat screen for the open project.
func New(ctl *workspace.Controller) *ChatScreen {
	s := &ChatScreen{
		ctl:     ctl,
		input:   components.NewTextInput("Describe what you want to build, or ask a question...", inputLimit),
		history: viewport.New(),
	}
	s.syncButtons()
	return s
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	return s.ctl.Project().Name
}

func (s *ChatScreen) CapturingInput() bool {
	return !s.focusButtons && s.input.Value() != ""
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Send"}}
	if !s.buttons.Empty() {
		if s.focusButtons {
			hints = []layout.KeyHint{
				{Key: "←→", Description: "Choose"},
				{Key: "Enter", Description: "Press"},
			}
		}
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Buttons/Prompt"})
	}
	return append(hints,
		layout.KeyHint{Key: "PgUp/PgDn", Description: "Scroll"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.RefreshMsg:
		s.syncButtons()
		return s, nil

	case actionDoneMsg:
		s.syncButtons()
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		if msg.Next != nil {
			next := msg.Next
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			if !s.buttons.Empty() {
				s.focusButtons = !s.focusButtons
			}
			return s, nil
		case "pgup":
			s.history.PageUp()
			return s, nil
		case "pgdown":
			s.history.PageDown()
			return s, nil
		}

		if s.focusButtons {
			var cmd tea.Cmd
			s.buttons, cmd = s.buttons.Update(msg)
			return s, cmd
		}

		if msg.String() == "enter" {
			text, ok := s.input.Submit()
			if !ok {
				return s, nil
			}
			s.errMsg = ""
			s.ctl.HandleInput(context.Background(), text)
			s.syncButtons()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// syncButtons rebuilds the button row when the current step changed.
func (s *ChatScreen) syncButtons() {
	st := s.ctl.Conversation()
	step, ok := st.CurrentStep()
	key := ""
	if ok && !step.Completed {
		key = step.ID
	}
	if key == s.buttonStep {
		return
	}
	s.buttonStep = key
	if key == "" {
		s.buttons = components.NewButtonRow()
	} else {
		s.buttons = components.NewButtonRow(s.buttonsFor(step)...)
	}
	s.focusButtons = !s.buttons.Empty()
}

func (s *ChatScreen) buttonsFor(step conversation.Step) []components.Button {
	ctl := s.ctl
	act := func(label string, fn func(ctx context.Context) error, next func() screen.Screen) components.Button {
		return components.Button{Label: label, OnPress: func() tea.Cmd {
			return func() tea.Msg {
				err := fn(context.Background())
				if errors.Is(err, workspace.ErrNoAction) {
					err = errors.New("that option is no longer available")
				}
				var n screen.Screen
				if err == nil && next != nil {
					n = next()
				}
				return actionDoneMsg{Err: err, Next: n}
			}
		}}
	}
	openDesigner := func() screen.Screen { return designer.New(ctl) }
	openTutorial := func() screen.Screen { return tutorialscreen.New(ctl) }

	var out []components.Button
	if step.HasButton(conversation.ButtonTutorialLaunch) {
		out = append(out, act("Open code tutorial", func(ctx context.Context) error {
			ctl.OnTutorialLaunch(ctx)
			return nil
		}, openTutorial))
	}
	if step.HasButton(conversation.ButtonWorkspaceChoice) {
		out = append(out,
			act("Circuit designer", func(ctx context.Context) error {
				return ctl.OnWorkspaceButton(ctx, workspace.WorkspaceCircuitDesigner)
			}, openDesigner),
			act("Real table", func(ctx context.Context) error {
				return ctl.OnWorkspaceButton(ctx, workspace.WorkspaceRealTable)
			}, nil),
		)
	}
	if step.ID == conversation.StepCircuitDesignerPath {
		out = append(out, act("Open circuit designer", func(context.Context) error { return nil }, openDesigner))
	}
	if step.HasButton(conversation.ButtonRealTable) {
		out = append(out, act("Build it on the real table", func(ctx context.Context) error {
			return ctl.OnWorkspaceButton(ctx, workspace.WorkspaceRealTableAfterDesigner)
		}, nil))
	}
	if step.HasButton(conversation.ButtonContinueProject) {
		out = append(out,
			act("Finish project", func(ctx context.Context) error {
				return ctl.OnProjectButton(ctx, workspace.ProjectContinue)
			}, nil),
			act("I have a question", func(ctx context.Context) error {
				return ctl.OnProjectButton(ctx, workspace.ProjectQuestion)
			}, nil),
		)
	}
	return out
}

func (s *ChatScreen) View(width, height int) string {
	s.input.SetWidth(max(10, width-6))

	footer := s.input.View()
	if !s.buttons.Empty() {
		footer = s.buttons.View() + "\n\n" + footer
	}
	if s.errMsg != "" {
		footer = theme.Incorrect.Render(s.errMsg) + "\n" + footer
	}

	historyHeight := max(3, height-lipgloss.Height(footer)-1)
	msgs := s.ctl.Project().ChatHistory
	if width != s.width || len(msgs) != s.rendered || s.history.Height() != historyHeight {
		atBottom := s.history.AtBottom() || len(msgs) != s.rendered
		s.width = width
		s.rendered = len(msgs)
		s.history.SetWidth(width - 2)
		s.history.SetHeight(historyHeight)
		s.history.SetContent(renderMessages(msgs, width-4))
		if atBottom {
			s.history.GotoBottom()
		}
	}

	return s.history.View() + "\n" + lipgloss.NewStyle().PaddingLeft(2).Render(footer)
}

// renderMessages formats the chat history.
func renderMessages(msgs []projects.ChatMessage, width int) string {
	if len(msgs) == 0 {
		return theme.Hint.Render("  Try: \"I want to build an LED dimmer with an Arduino Leonardo\"")
	}
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(max(10, width-2))

	var b strings.Builder
	for _, m := range msgs {
		switch m.Role {
		case conversation.RoleUser:
			b.WriteString(theme.UserSpeaker.Render("You"))
		case conversation.RoleSystem:
			b.WriteString("  " + theme.SystemNote.Render(m.Content) + "\n")
			continue
		default:
			b.WriteString(theme.AISpeaker.Render("Circuitspace"))
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + m.Timestamp.Local().Format("15:04")))
		b.WriteString("\n")
		b.WriteString(body.Render(m.Content))
		b.WriteString("\n")
		if parts := partNames(m.ComponentSuggestions); parts != "" {
			b.WriteString(theme.Hint.Render("  Parts: " + parts))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func partNames(ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if c, ok := catalog.Get(id); ok {
			names = append(names, c.Name)
		} else {
			names = append(names, id)
		}
	}
	return strings.Join(names, ", ")
}
