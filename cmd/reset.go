package cmd

import (
	"errors"
	"fmt"

	"github.com/abhisek/circuitspace/internal/catalog"
	"github.com/abhisek/circuitspace/internal/progress"
	"github.com/abhisek/circuitspace/internal/projects"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset progress, the open project and saved projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return errors.New("this deletes all learner data; rerun with --yes to confirm")
		}
		ctx := cmd.Context()

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		kv := st.KV()
		if err := progress.NewService(ctx, kv, catalog.Library{}).Reset(ctx); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		if err := projects.Open(ctx, kv, nil).Reset(ctx); err != nil {
			return fmt.Errorf("reset project: %w", err)
		}
		if err := projects.OpenUserProjects(ctx, kv, nil).Clear(ctx); err != nil {
			return fmt.Errorf("clear saved projects: %w", err)
		}
		if err := st.EventRepo().PurgeQuizEvents(ctx); err != nil {
			return fmt.Errorf("purge quiz history: %w", err)
		}

		fmt.Println("All learner data has been reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
