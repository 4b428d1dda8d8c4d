package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/circuitspace/internal/app"
	"github.com/abhisek/circuitspace/internal/assistant"
	"github.com/abhisek/circuitspace/internal/catalog"
	"github.com/abhisek/circuitspace/internal/conversation"
	"github.com/abhisek/circuitspace/internal/llm"
	"github.com/abhisek/circuitspace/internal/logger"
	"github.com/abhisek/circuitspace/internal/progress"
	"github.com/abhisek/circuitspace/internal/projects"
	"github.com/abhisek/circuitspace/internal/quiz"
	"github.com/abhisek/circuitspace/internal/store"
	"github.com/abhisek/circuitspace/internal/workspace"
	"github.com/facebookgo/clock"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	log, err := openLogger(cfg.LogMode, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Sync()

	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("component catalog: %w", err)
	}

	kv := st.KV()
	eventRepo := st.EventRepo()
	prog := progress.NewService(ctx, kv, catalog.Library{},
		progress.WithDailyLimit(cfg.DailyQuizLimit),
		progress.WithLogger(log))

	deps := workspace.Deps{
		Engine:   conversation.NewEngine(clock.New(), log),
		Project:  projects.Open(ctx, kv, log),
		Progress: prog,
		Quizzes:  quiz.NewManager(catalog.Library{}, prog, eventRepo, log, cfg.QuizSize),
		Logger:   log,
	}

	llmCfg, ok, err := llm.LoadConfig()
	switch {
	case err != nil:
		fmt.Fprintln(os.Stderr, "LLM configuration invalid:", err)
	case !ok:
		log.Info("no LLM provider configured, assistant disabled")
	default:
		provider, err := llm.NewProvider(ctx, llmCfg, eventRepo, log)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Free-form answers will be unavailable.")
			break
		}
		acfg := assistant.DefaultConfig()
		acfg.Timeout = llmCfg.Timeout
		deps.Assistant = assistant.NewService(provider, acfg, log)
	}

	ctl := workspace.New(deps)
	defer ctl.Close()

	return app.Run(ctx, app.Deps{
		Workspace:   ctl,
		Events:      eventRepo,
		AssistantOn: deps.Assistant != nil,
		Logger:      log,
	})
}

// openLogger writes to path, or to circuitspace.log in the data directory
// when path is empty. The TUI owns the terminal.
func openLogger(mode, path string) (*logger.Logger, error) {
	if path == "" {
		dir, err := store.DataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "circuitspace.log")
	}
	return logger.New(mode, path)
}
