package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chemcat/chemcat/internal/llm"
	"github.com/chemcat/chemcat/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the model request log",
}

// withStore opens the state database for the log subcommands, which
// read events directly and never need a configured provider.
func withStore(cmd *cobra.Command, fn func(*store.Store) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()
	return fn(s)
}

const eventTimeLayout = "2006-01-02 15:04:05"

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent model requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		return withStore(cmd, func(s *store.Store) error {
			events, err := s.EventRepo().RecentLLMRequests(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}

			var shown int
			for _, e := range events {
				if purpose != "" && e.Purpose != purpose {
					continue
				}
				if shown == 0 {
					fmt.Printf("%-5s  %-19s  %-14s  %-28s  %-6s  %-6s  %-7s  %s\n",
						"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
					fmt.Println(strings.Repeat("─", 100))
				}
				shown++

				ok := "✓"
				if !e.Success {
					ok = "✗"
				}
				fmt.Printf("%-5d  %-19s  %-14s  %-28s  %-6d  %-6d  %-7d  %s\n",
					e.ID, e.Timestamp.Local().Format(eventTimeLayout), e.Purpose,
					truncate(e.Model, 28), e.InputTokens, e.OutputTokens, e.LatencyMs, ok)
			}
			if shown == 0 {
				fmt.Println("No model requests recorded.")
			}
			return nil
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one request in full, prompt and response included",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q", args[0])
		}

		return withStore(cmd, func(s *store.Store) error {
			e, err := s.EventRepo().GetLLMRequest(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("no request with ID %d", id)
			}

			fmt.Printf("ID:        %d\n", e.ID)
			fmt.Printf("Time:      %s\n", e.Timestamp.Local().Format(eventTimeLayout))
			fmt.Printf("Provider:  %s\n", e.Provider)
			fmt.Printf("Model:     %s\n", e.Model)
			fmt.Printf("Purpose:   %s\n", e.Purpose)
			fmt.Printf("Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
			fmt.Printf("Latency:   %dms\n", e.LatencyMs)
			fmt.Printf("Success:   %v\n", e.Success)
			if e.ErrorMessage != "" {
				fmt.Printf("Error:     %s\n", e.ErrorMessage)
			}

			printBody("REQUEST", e.RequestBody)
			printBody("RESPONSE", e.ResponseBody)
			return nil
		})
	},
}

func printBody(heading, body string) {
	sep := strings.Repeat("─", 60)
	fmt.Printf("\n%s\n%s\n%s\n", sep, heading, sep)
	if body == "" {
		body = "(not captured)"
	}
	fmt.Println(body)
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate token usage and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(s *store.Store) error {
			usage, err := s.EventRepo().LLMUsage(cmd.Context())
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			if len(usage) == 0 {
				fmt.Println("No model usage recorded yet.")
				return nil
			}

			rule := strings.Repeat("─", 82)
			fmt.Printf("%-32s  %6s  %6s  %10s  %10s  %9s\n",
				"Model", "Calls", "Fails", "Input", "Output", "Cost")
			fmt.Println(rule)

			var totalCost float64
			var unpriced []string
			for _, u := range usage {
				costStr := "?"
				if cost := llm.LookupCost(u.Model); cost != nil {
					c := cost.Cost(u.InputTokens, u.OutputTokens)
					totalCost += c
					costStr = formatCost(c)
				} else {
					unpriced = append(unpriced, u.Model)
				}
				fmt.Printf("%-32s  %6d  %6d  %10d  %10d  %9s\n",
					truncate(u.Model, 32), u.Requests, u.Failures,
					u.InputTokens, u.OutputTokens, costStr)
			}

			fmt.Println(rule)
			label := "TOTAL"
			if len(unpriced) > 0 {
				label = "TOTAL (partial)"
			}
			fmt.Printf("%-32s  %6s  %6s  %10s  %10s  %9s\n", label, "", "", "", "", formatCost(totalCost))
			if len(unpriced) > 0 {
				fmt.Printf("\nNo pricing data for: %s\n", strings.Join(unpriced, ", "))
			}
			return nil
		})
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (question-gen, chat, unit-review)")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
