package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/circuitspace/internal/catalog"
	"github.com/abhisek/circuitspace/internal/progress"
	"github.com/abhisek/circuitspace/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		recent, _ := cmd.Flags().GetInt("recent")
		ctx := cmd.Context()

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		prog := progress.NewService(ctx, st.KV(), catalog.Library{})
		total := prog.TotalExperience()

		fmt.Printf("Player level:  %d\n", prog.PlayerLevel())
		fmt.Printf("Total XP:      %d\n", total)
		fmt.Println()

		records := prog.All()
		if len(records) == 0 {
			fmt.Println("No quizzes taken yet. Run `circuitspace` and open Components & Quizzes.")
			return nil
		}

		fmt.Printf("%-24s  %5s  %5s  %7s  %s\n", "Component", "Level", "XP", "Quizzes", "Progress")
		fmt.Println(strings.Repeat("─", 72))
		for _, c := range catalog.All() {
			p, ok := records[c.ID]
			if !ok {
				continue
			}
			pct := progress.ProgressPercentage(p.Experience, p.Level)
			fmt.Printf("%-24s  %5d  %5d  %7d  %s %5.1f%%\n",
				truncate(c.Name, 24), p.Level, p.Experience, p.QuizzesTaken, textBar(pct, 20), pct)
		}

		if recent <= 0 {
			return nil
		}
		quizzes, err := st.EventRepo().QueryQuizEvents(ctx, store.QueryOpts{Limit: recent})
		if err != nil {
			return fmt.Errorf("query quizzes: %w", err)
		}
		if len(quizzes) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("Recent quizzes")
		fmt.Println(strings.Repeat("─", 72))
		for _, q := range quizzes {
			name := q.ComponentID
			if c, ok := catalog.Get(q.ComponentID); ok {
				name = c.Name
			}
			fmt.Printf("%-19s  %-24s  %d/%d  +%d XP\n",
				q.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(name, 24), q.Correct, q.Total, q.ExperienceGained)
		}
		return nil
	},
}

// textBar renders pct as a fixed-width bar of block characters.
func textBar(pct float64, width int) string {
	filled := max(0, min(width, int(pct*float64(width)/100)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func init() {
	statsCmd.Flags().IntP("recent", "n", 10, "Number of recent quizzes to show")
}
