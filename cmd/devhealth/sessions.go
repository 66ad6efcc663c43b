package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/session"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List detected coding sessions",
	Long: `List the coding sessions detected in the repository's commit
history, newest last. Commits separated by more than the configured
minimum break (default 5 minutes) start a new session.

Examples:
  devhealth sessions             # List all sessions
  devhealth sessions --limit 10  # List the 10 most recent sessions`,
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")

		ctx := context.Background()

		commits, err := reader.CommitTimes(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(commits) == 0 {
			fmt.Println("No commit data found.")
			return
		}

		sessions := session.Build(commits, cfg.MinBreak)

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Printf("\n%s\n\n", cyan(fmt.Sprintf("=== Coding Sessions (%d) ===", len(sessions))))

		start := 0
		if limit > 0 && len(sessions) > limit {
			start = len(sessions) - limit
			fmt.Printf("  (showing the %d most recent)\n\n", limit)
		}

		yellow := color.New(color.FgYellow).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		for _, s := range sessions[start:] {
			marker := " "
			if s.Duration() > cfg.LongSession {
				marker = yellow("⚠")
			}
			fmt.Printf("  %s %s – %s  %s  %s\n",
				marker,
				s.Start().Format("2006-01-02 15:04"),
				s.End().Format("15:04"),
				formatDuration(s.Duration()),
				gray(fmt.Sprintf("%d commit(s)", len(s.Commits))))
		}
		fmt.Println()
	},
}

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

func init() {
	sessionsCmd.Flags().Int("limit", 0, "Show only the N most recent sessions (0 = all)")
	rootCmd.AddCommand(sessionsCmd)
}
