// Package workspace is the event surface the UI drives. It ties the scripted
// conversation, tutorial, quizzes and assistant to the open project and
// keeps the project's chat history and conversation cursor up to date.
package workspace

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/abhisek/circuitspace/internal/assistant"
	"github.com/abhisek/circuitspace/internal/conversation"
	"github.com/abhisek/circuitspace/internal/logger"
	"github.com/abhisek/circuitspace/internal/progress"
	"github.com/abhisek/circuitspace/internal/projects"
	"github.com/abhisek/circuitspace/internal/quiz"
	"github.com/abhisek/circuitspace/internal/tutorial"
)

// FallbackReply is sent when no assistant is configured and the input does
// not start a walkthrough.
const FallbackReply = "I can guide you through building an LED dimmer with an Arduino Leonardo. " +
	"Try: \"I want to build an LED dimmer\". Set an LLM API key to ask me anything else."

// AssistantErrorReply is recorded when the assistant request fails.
const AssistantErrorReply = "Sorry, I couldn't reach the assistant right now. Please try again in a moment."

// ErrNoAction is returned when a button is pressed on a step that does not
// offer it.
var ErrNoAction = errors.New("action not available on the current step")

// ProjectAction is a choice offered by the continueProject button.
type ProjectAction string

const (
	ProjectContinue ProjectAction = "continue"
	ProjectQuestion ProjectAction = "question"
)

// WorkspaceAction is a choice offered by the workspace buttons.
type WorkspaceAction string

const (
	WorkspaceCircuitDesigner        WorkspaceAction = "circuitDesigner"
	WorkspaceRealTable              WorkspaceAction = "realTable"
	WorkspaceRealTableAfterDesigner WorkspaceAction = "realTableAfterDesigner"
)

// Direction moves the tutorial.
type Direction string

const (
	DirectionNext     Direction = "next"
	DirectionPrevious Direction = "previous"
)

// Asker answers free-form questions asynchronously.
type Asker interface {
	Ask(ctx context.Context, q assistant.Question, cb assistant.Callback)
}

// Notice tells the UI that something changed, possibly from a timer or
// request goroutine.
type Notice struct {
	Message *projects.ChatMessage
	Err     error
}

// Deps are the collaborators a Controller drives.
type Deps struct {
	Engine    *conversation.Engine
	Project   *projects.Store
	Progress  *progress.Service
	Quizzes   *quiz.Manager
	Tutorial  *tutorial.Stepper
	Assistant Asker // nil disables free-form answers
	Logger    *logger.Logger
}

// Controller routes UI events.
type Controller struct {
	engine    *conversation.Engine
	project   *projects.Store
	progress  *progress.Service
	quizzes   *quiz.Manager
	stepper   *tutorial.Stepper
	assistant Asker
	log       *logger.Logger

	mu        sync.Mutex
	restoring bool
	notify    []func(Notice)
	unsub     func()
}

// New creates a controller and resumes a walkthrough saved in the project.
func New(d Deps) *Controller {
	if d.Tutorial == nil {
		d.Tutorial = tutorial.NewStepper(tutorial.LeonardoDimmer)
	}
	c := &Controller{
		engine:    d.Engine,
		project:   d.Project,
		progress:  d.Progress,
		quizzes:   d.Quizzes,
		stepper:   d.Tutorial,
		assistant: d.Assistant,
		log:       logger.OrNop(d.Logger),
	}
	c.unsub = c.engine.Subscribe(c.onEngineEvent)

	if saved := c.project.Project().Conversation; saved != nil && saved.Active {
		c.mu.Lock()
		c.restoring = true
		c.mu.Unlock()
		if !c.engine.Restore(*saved) {
			c.log.Warn("saved conversation could not be restored")
		}
		c.mu.Lock()
		c.restoring = false
		c.mu.Unlock()
	}
	return c
}

// Subscribe registers fn for notices. Notices may arrive on any goroutine.
func (c *Controller) Subscribe(fn func(Notice)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notify = append(c.notify, fn)
}

// Close stops the conversation engine and its timers.
func (c *Controller) Close() {
	if c.unsub != nil {
		c.unsub()
	}
	c.engine.Close()
}

// Project returns the open project.
func (c *Controller) Project() projects.Project { return c.project.Project() }

// Conversation returns the walkthrough state.
func (c *Controller) Conversation() conversation.State { return c.engine.State() }

// Tutorial returns the code stepper.
func (c *Controller) Tutorial() *tutorial.Stepper { return c.stepper }

// Progress returns the progress service.
func (c *Controller) Progress() *progress.Service { return c.progress }

// HandleInput processes a line typed into the chat.
func (c *Controller) HandleInput(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	st := c.engine.State()
	if st.Active && !st.Conversation.Completed {
		if next, ok := nextStep(st.Conversation); ok && next.Role == conversation.RoleUser {
			c.addMessage(ctx, projects.ChatMessage{Role: conversation.RoleUser, Content: text, StepID: next.ID})
			c.engine.Advance()
			c.engine.MarkCompleted(next.ID)
			c.engine.Advance()
			return
		}
	}

	if !st.Active || st.Conversation.Completed {
		if id, ok := conversation.DetectProjectType(text); ok {
			if tpl, found := projects.TemplateByID(id); found {
				c.project.StartFromTemplate(ctx, tpl)
			}
			c.addMessage(ctx, projects.ChatMessage{Role: conversation.RoleUser, Content: text})
			c.engine.Start(id)
			return
		}
	}

	c.addMessage(ctx, projects.ChatMessage{Role: conversation.RoleUser, Content: text})
	c.ask(ctx, text)
}

func (c *Controller) ask(ctx context.Context, text string) {
	if c.assistant == nil {
		c.addMessage(ctx, projects.ChatMessage{Role: conversation.RoleAI, Content: FallbackReply})
		return
	}

	p := c.project.Project()
	q := assistant.Question{Input: text, ProjectName: p.Name}
	for _, part := range p.Components {
		q.ProjectComponents = append(q.ProjectComponents, part.Name)
	}
	// The last entry is the message being asked.
	history := p.ChatHistory[:max(0, len(p.ChatHistory)-1)]
	for _, m := range history {
		if m.Role == conversation.RoleSystem {
			continue
		}
		q.History = append(q.History, assistant.Turn{FromAssistant: m.Role == conversation.RoleAI, Content: m.Content})
	}

	ctx = context.WithoutCancel(ctx)
	c.assistant.Ask(ctx, q, func(r assistant.Reply, err error) {
		if err != nil {
			c.log.Warn("assistant failed", "error", err)
			msg := c.project.AddChatMessage(ctx, projects.ChatMessage{Role: conversation.RoleAI, Content: AssistantErrorReply})
			c.publish(Notice{Message: &msg, Err: err})
			return
		}
		c.addMessage(ctx, projects.ChatMessage{
			Role:                 conversation.RoleAI,
			Content:              r.Text,
			ComponentSuggestions: r.SuggestedComponents,
		})
	})
}

// OnProjectButton handles the continueProject button.
func (c *Controller) OnProjectButton(ctx context.Context, action ProjectAction) error {
	step, ok := c.engine.State().CurrentStep()
	if !ok || !step.HasButton(conversation.ButtonContinueProject) {
		return ErrNoAction
	}
	switch action {
	case ProjectContinue:
		c.engine.MarkCompleted(step.ID)
		if !c.engine.JumpToStep(conversation.StepProjectComplete) {
			return ErrNoAction
		}
		c.engine.MarkCompleted(conversation.StepProjectComplete)
		c.engine.Complete()
	case ProjectQuestion:
		if !c.engine.JumpToStep(conversation.StepProjectQuestion) {
			return ErrNoAction
		}
	default:
		return ErrNoAction
	}
	return nil
}

// OnWorkspaceButton handles the build path choice.
func (c *Controller) OnWorkspaceButton(ctx context.Context, action WorkspaceAction) error {
	step, ok := c.engine.State().CurrentStep()
	if !ok {
		return ErrNoAction
	}
	var target string
	switch {
	case action == WorkspaceCircuitDesigner && step.HasButton(conversation.ButtonWorkspaceChoice):
		target = conversation.StepCircuitDesignerPath
	case action == WorkspaceRealTable && step.HasButton(conversation.ButtonWorkspaceChoice):
		target = conversation.StepRealTablePath
	case action == WorkspaceRealTableAfterDesigner && step.HasButton(conversation.ButtonRealTable):
		target = conversation.StepRealTablePath
	default:
		return ErrNoAction
	}
	c.engine.MarkCompleted(step.ID)
	if !c.engine.JumpToStep(target) {
		return ErrNoAction
	}
	return nil
}

// OnCircuitDesignerCompleted is called when every required wire is placed.
func (c *Controller) OnCircuitDesignerCompleted(ctx context.Context) error {
	step, ok := c.engine.State().CurrentStep()
	if !ok || step.ID != conversation.StepCircuitDesignerPath {
		return ErrNoAction
	}
	c.engine.MarkCompleted(step.ID)
	c.engine.JumpToStep(conversation.StepCircuitDesignerComplete)
	return nil
}

// OnTutorialLaunch opens the code tutorial from the walkthrough.
func (c *Controller) OnTutorialLaunch(ctx context.Context) {
	c.stepper.Start()
	if step, ok := c.engine.State().CurrentStep(); ok && step.HasButton(conversation.ButtonTutorialLaunch) {
		c.engine.MarkCompleted(step.ID)
	}
}

// OnTutorialNav moves the tutorial and reports whether it moved.
func (c *Controller) OnTutorialNav(dir Direction) bool {
	switch dir {
	case DirectionNext:
		return c.stepper.Next()
	case DirectionPrevious:
		return c.stepper.Previous()
	}
	return false
}

// OnTutorialFinish closes the tutorial, stores the finished sketch in the
// project and moves the walkthrough on to the build choice.
func (c *Controller) OnTutorialFinish(ctx context.Context) {
	code := c.stepper.FullArtifact()
	c.stepper.Finish()
	if code != "" {
		c.project.UpdateCode(ctx, code)
	}
	if step, ok := c.engine.State().CurrentStep(); ok && step.ID == conversation.StepCodePreparation {
		c.engine.Advance()
	}
}

// StartQuiz begins a component quiz.
func (c *Controller) StartQuiz(componentID string) (*quiz.Session, error) {
	return c.quizzes.Start(componentID)
}

// FinishQuiz records a finished quiz session.
func (c *Controller) FinishQuiz(ctx context.Context, s *quiz.Session) (quiz.Summary, bool) {
	return c.quizzes.Finish(ctx, s)
}

// OnQuizSubmitted records a quiz result reported by the UI.
func (c *Controller) OnQuizSubmitted(ctx context.Context, componentID string, correct, total int) progress.QuizResult {
	return c.progress.SubmitQuizResult(ctx, componentID, correct, total)
}

// ResetConversation abandons the running walkthrough.
func (c *Controller) ResetConversation() {
	c.engine.Reset()
}

// OpenTemplate ends any running walkthrough and replaces the open project
// with a fresh copy of the template.
func (c *Controller) OpenTemplate(ctx context.Context, templateID string) (projects.Project, bool) {
	tpl, ok := projects.TemplateByID(templateID)
	if !ok {
		return projects.Project{}, false
	}
	if c.engine.State().Active {
		c.engine.Reset()
	}
	p := c.project.StartFromTemplate(ctx, tpl)
	c.publish(Notice{})
	return p, true
}

func (c *Controller) onEngineEvent(ev conversation.Event) {
	ctx := context.Background()

	c.mu.Lock()
	restoring := c.restoring
	c.mu.Unlock()

	switch ev.Kind {
	case conversation.EventStarted, conversation.EventStepChanged:
		if step, ok := ev.State.CurrentStep(); ok && !restoring && step.Role != conversation.RoleUser {
			c.addMessage(ctx, projects.ChatMessage{
				Role:                 step.Role,
				Content:              step.Content,
				StepID:               step.ID,
				ComponentSuggestions: step.ComponentIDs,
			})
		}
	case conversation.EventSubStepRevealed:
		if ev.SubStep != nil {
			c.addMessage(ctx, projects.ChatMessage{Role: conversation.RoleSystem, Content: ev.SubStep.Content, StepID: ev.StepID})
		}
	case conversation.EventSubStepsDone:
		if ev.StepID == conversation.StepRealTablePath {
			c.engine.MarkCompleted(ev.StepID)
			c.engine.Advance()
		}
	}

	st := c.engine.State()
	c.project.SetConversation(ctx, &st)
	c.publish(Notice{})
}

func (c *Controller) addMessage(ctx context.Context, msg projects.ChatMessage) {
	msg = c.project.AddChatMessage(ctx, msg)
	c.publish(Notice{Message: &msg})
}

func (c *Controller) publish(n Notice) {
	c.mu.Lock()
	fns := append([]func(Notice){}, c.notify...)
	c.mu.Unlock()
	for _, fn := range fns {
		fn(n)
	}
}

func nextStep(conv conversation.Conversation) (conversation.Step, bool) {
	i := conv.CurrentStep + 1
	if i >= len(conv.Steps) {
		return conversation.Step{}, false
	}
	return conv.Steps[i], true
}
