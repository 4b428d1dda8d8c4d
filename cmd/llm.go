package cmd

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/abhisek/circuitspace/internal/assistant"
	"github.com/abhisek/circuitspace/internal/catalog"
	"github.com/abhisek/circuitspace/internal/llm"
	"github.com/abhisek/circuitspace/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect questions sent to the build assistant",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent assistant questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		project, _ := cmd.Flags().GetString("project")

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		var shown int
		for _, e := range events {
			if limit > 0 && shown == limit {
				break
			}
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ex := assistant.ParseExchange(e.RequestBody, e.ResponseBody)
			if project != "" && !strings.EqualFold(ex.Project, project) {
				continue
			}
			if shown == 0 {
				fmt.Printf("%-5s  %-16s  %-22s  %-40s  %6s  %s\n",
					"ID", "Asked", "Project", "Question", "Tokens", "Status")
				fmt.Println(strings.Repeat("─", 100))
			}
			shown++

			status := "answered"
			if !e.Success {
				status = "failed"
			}
			fmt.Printf("%-5d  %-16s  %-22s  %-40s  %6d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04"),
				truncate(orDash(ex.Project), 22),
				truncate(oneLine(orDash(ex.Question)), 40),
				e.InputTokens+e.OutputTokens,
				status,
			)
		}
		if shown == 0 {
			fmt.Println("No assistant questions recorded.")
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one assistant question with its reply",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}
		raw, _ := cmd.Flags().GetBool("raw")

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}
		ex := assistant.ParseExchange(e.RequestBody, e.ResponseBody)

		fmt.Printf("Asked:     %s via %s (%s)\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.Provider, e.Model)
		fmt.Printf("Project:   %s\n", orDash(ex.Project))
		if len(ex.Parts) > 0 {
			fmt.Printf("Parts:     %s\n", strings.Join(partNames(ex.Parts), ", "))
		}
		fmt.Printf("Usage:     %d in / %d out tokens, %dms\n", e.InputTokens, e.OutputTokens, e.LatencyMs)

		fmt.Println()
		fmt.Println("Question")
		fmt.Println(indent(orDash(ex.Question)))
		fmt.Println()
		switch {
		case !e.Success:
			fmt.Println("Failed")
			fmt.Println(indent(e.ErrorMessage))
		case ex.Reply == "":
			fmt.Println("Reply (unreadable, use --raw)")
		default:
			fmt.Println("Reply")
			fmt.Println(indent(ex.Reply))
			if len(ex.Suggested) > 0 {
				fmt.Printf("\nSuggested parts: %s\n", strings.Join(partNames(ex.Suggested), ", "))
			}
		}

		if raw {
			sep := strings.Repeat("─", 60)
			fmt.Printf("\n%s\nREQUEST\n%s\n%s\n", sep, sep, orDash(e.RequestBody))
			fmt.Printf("%s\nRESPONSE\n%s\n%s\n", sep, sep, orDash(e.ResponseBody))
		}
		return nil
	},
}

// projectUsage sums assistant calls made while one project was open.
type projectUsage struct {
	name      string
	questions int
	failed    int
	tokens    int
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show assistant usage per project and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		events, err := s.EventRepo().QueryLLMEvents(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		byProject := map[string]*projectUsage{}
		suggested := map[string]int{}
		for _, e := range events {
			if e.Purpose != llm.PurposeAssistant {
				continue
			}
			ex := assistant.ParseExchange(e.RequestBody, e.ResponseBody)
			name := cmp.Or(ex.Project, "(no project)")
			u, ok := byProject[name]
			if !ok {
				u = &projectUsage{name: name}
				byProject[name] = u
			}
			u.questions++
			u.tokens += e.InputTokens + e.OutputTokens
			if !e.Success {
				u.failed++
			}
			for _, id := range ex.Suggested {
				suggested[id]++
			}
		}
		if len(byProject) == 0 {
			fmt.Println("No assistant questions recorded yet.")
			return nil
		}

		projects := make([]*projectUsage, 0, len(byProject))
		for _, u := range byProject {
			projects = append(projects, u)
		}
		slices.SortFunc(projects, func(a, b *projectUsage) int {
			return cmp.Or(cmp.Compare(b.questions, a.questions), cmp.Compare(a.name, b.name))
		})

		fmt.Println("Questions per Project")
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-32s  %9s  %6s  %10s\n", "Project", "Questions", "Failed", "Tokens")
		for _, u := range projects {
			fmt.Printf("%-32s  %9d  %6d  %10d\n", truncate(u.name, 32), u.questions, u.failed, u.tokens)
		}

		if len(suggested) > 0 {
			ids := make([]string, 0, len(suggested))
			for id := range suggested {
				ids = append(ids, id)
			}
			slices.SortFunc(ids, func(a, b string) int {
				return cmp.Or(cmp.Compare(suggested[b], suggested[a]), cmp.Compare(a, b))
			})
			fmt.Println()
			fmt.Println("Most Suggested Parts")
			fmt.Println(strings.Repeat("─", 64))
			for _, id := range ids[:min(5, len(ids))] {
				fmt.Printf("%-32s  %9d\n", truncate(partName(id), 32), suggested[id])
			}
		}

		models, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		var total float64
		var unpriced []string
		for _, mu := range models {
			price, ok := llm.LookupPrice(mu.Key)
			if !ok {
				unpriced = append(unpriced, mu.Key)
				continue
			}
			total += price.Cost(mu.InputTokens, mu.OutputTokens)
		}
		fmt.Println()
		fmt.Printf("Estimated cost: %s", formatCost(total))
		if len(unpriced) > 0 {
			fmt.Printf(" (no pricing for %s)", strings.Join(unpriced, ", "))
		}
		fmt.Println()
		return nil
	},
}

func partName(id string) string {
	if c, ok := catalog.Get(id); ok {
		return c.Name
	}
	return id
}

func partNames(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = partName(id)
	}
	return out
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of questions to show")
	llmListCmd.Flags().StringP("purpose", "p", llm.PurposeAssistant, "Only show events with this purpose (empty for all)")
	llmListCmd.Flags().String("project", "", "Only show questions asked while this project was open")
	llmViewCmd.Flags().Bool("raw", false, "Also print the full request and response bodies")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
