package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/circuitspace/internal/projects"
	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage your saved projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		list := projects.OpenUserProjects(cmd.Context(), st.KV(), nil).List()
		if len(list) == 0 {
			fmt.Println("No saved projects. Use `circuitspace projects save` to keep the open project.")
			return nil
		}

		fmt.Printf("%-36s  %-28s  %-11s  %s\n", "ID", "Name", "Status", "Updated")
		fmt.Println(strings.Repeat("─", 96))
		for _, p := range list {
			fmt.Printf("%-36s  %-28s  %-11s  %s\n",
				p.ID, truncate(p.Name, 28), p.Status, p.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var projectsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the project open in the workspace to your library",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cur := projects.Open(ctx, st.KV(), nil).Project()
		ids := make([]string, 0, len(cur.Components))
		for _, c := range cur.Components {
			ids = append(ids, c.ID)
		}

		saved, err := projects.OpenUserProjects(ctx, st.KV(), nil).Add(ctx, projects.UserProject{
			Name:        cur.Name,
			Description: cur.Description,
			Components:  ids,
			Code:        cur.Code,
		})
		if err != nil {
			return fmt.Errorf("save project: %w", err)
		}
		fmt.Printf("Saved %q as %s\n", saved.Name, saved.ID)
		return nil
	},
}

var projectsStatusCmd = &cobra.Command{
	Use:   "status <id> <in-progress|done|paused>",
	Short: "Change the status of a saved project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := projects.Status(args[1])
		switch status {
		case projects.StatusInProgress, projects.StatusDone, projects.StatusPaused:
		default:
			return fmt.Errorf("invalid status %q", args[1])
		}

		ctx := cmd.Context()
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p, err := projects.OpenUserProjects(ctx, st.KV(), nil).Update(ctx, args[0], projects.UserProjectUpdate{Status: &status})
		if err != nil {
			return err
		}
		fmt.Printf("%s is now %s\n", p.Name, p.Status)
		return nil
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := projects.OpenUserProjects(ctx, st.KV(), nil).Delete(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}

func init() {
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsSaveCmd)
	projectsCmd.AddCommand(projectsStatusCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)
}
