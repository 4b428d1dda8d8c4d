package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/circuitspace/internal/catalog"
	"github.com/abhisek/circuitspace/internal/circuit"
	"github.com/abhisek/circuitspace/internal/progress"
	"github.com/spf13/cobra"
)

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List the component library with your levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		prog := progress.NewService(cmd.Context(), st.KV(), catalog.Library{})

		for _, cat := range catalog.Categories() {
			fmt.Println(strings.ToUpper(cat))
			for _, c := range catalog.ByCategory(cat) {
				p := prog.Progress(c.ID)
				fmt.Printf("  %-20s  %-24s  %-12s  Lv %d  %4d XP\n",
					c.ID, truncate(c.Name, 24), c.Difficulty, p.Level, p.Experience)
			}
			fmt.Println()
		}
		return nil
	},
}

var componentsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show details and pinout for a component",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ok := catalog.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown component %q", args[0])
		}

		fmt.Printf("ID:          %s\n", c.ID)
		fmt.Printf("Name:        %s\n", c.Name)
		fmt.Printf("Category:    %s\n", c.Category)
		fmt.Printf("Difficulty:  %s\n", c.Difficulty)
		fmt.Printf("Questions:   %d\n", len(c.Quiz))
		fmt.Println()
		fmt.Println(c.Description)

		if pins, ok := circuit.Pins(c.ID); ok {
			fmt.Println()
			fmt.Println("Pins")
			fmt.Println(strings.Repeat("─", 60))
			for _, p := range pins.Pins {
				fmt.Printf("  %-8s  %-10s  %s\n", p.Name, p.Type, p.Description)
			}
		}
		return nil
	},
}

func init() {
	componentsCmd.AddCommand(componentsShowCmd)
}
