package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/circuitspace/internal/projects"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates [query]",
	Short: "List or search project templates",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		list := projects.Templates()
		if len(args) == 1 {
			list = projects.SearchTemplates(args[0])
		}
		if category != "" {
			var filtered []projects.Template
			for _, t := range list {
				if string(t.Category) == category {
					filtered = append(filtered, t)
				}
			}
			list = filtered
		}

		if len(list) == 0 {
			fmt.Println("No templates match.")
			return nil
		}

		fmt.Printf("%-24s  %-28s  %-12s  %-5s  %s\n", "ID", "Name", "Category", "Diff", "Time")
		fmt.Println(strings.Repeat("─", 90))
		for _, t := range list {
			fmt.Printf("%-24s  %-28s  %-12s  %-5s  %s\n",
				t.ID, truncate(t.Name, 28), t.Category,
				strings.Repeat("★", t.Difficulty), t.EstimatedTime)
		}
		return nil
	},
}

func init() {
	templatesCmd.Flags().StringP("category", "c", "", "Filter by category (beginner, intermediate, advanced)")
}
