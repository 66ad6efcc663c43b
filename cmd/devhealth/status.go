package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/checks"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show repository, event store, and checker status",
	Long:  `Display the monitored repository, stored event counts, and the last run time of each health checker.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		fmt.Printf("\n%s\n\n", cyan("=== Developer Health Monitor Status ==="))

		// Repository
		fmt.Printf("%s\n", yellow("Repository:"))
		fmt.Printf("  Path: %s\n", reader.Dir())
		if reader.IsRepo(ctx) {
			fmt.Printf("  %s git repository detected\n", green("✓"))
		} else {
			fmt.Printf("  %s not a git repository\n", gray("○"))
		}
		fmt.Println()

		// Workload vs limits
		fmt.Printf("%s\n", yellow("Workload:"))
		report, err := analyzeRepo(ctx)
		if err != nil {
			fmt.Printf("  %s analysis unavailable: %v\n", gray("○"), err)
		} else if report == nil {
			fmt.Printf("  %s no commit data found\n", gray("○"))
		} else {
			dailyMark, weeklyMark := green("✓"), green("✓")
			if report.OverDailyLimit() {
				dailyMark = color.RedString("✗")
			}
			if report.OverWeeklyLimit() {
				weeklyMark = color.RedString("✗")
			}
			fmt.Printf("  %s Today:     %s / %v\n", dailyMark, formatDuration(time.Duration(report.DailyMinutes)*time.Minute), cfg.DailyLimit)
			fmt.Printf("  %s This week: %s / %v\n", weeklyMark, formatDuration(time.Duration(report.WeeklyMinutes)*time.Minute), cfg.WeeklyLimit)
		}
		fmt.Println()

		// Event store
		fmt.Printf("%s\n", yellow("Event Store:"))
		fmt.Printf("  Database: %s\n", dbPath())
		count, err := store.CountEvents(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: counting events: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  Events:   %d\n", count)

		recent, err := store.GetRecentEvents(ctx, 1)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading events: %v\n", err)
			os.Exit(1)
		}
		if len(recent) > 0 {
			fmt.Printf("  Latest:   %s  %s\n",
				recent[0].CreatedAt.Format("2006-01-02 15:04"), recent[0].Title)
		}
		fmt.Println()

		// Checker state
		fmt.Printf("%s\n", yellow("Checkers:"))
		registry, err := checks.NewRegistry(statePath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading checker state: %v\n", err)
			os.Exit(1)
		}
		if err := checks.RegisterDefaults(registry, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: registering checkers: %v\n", err)
			os.Exit(1)
		}

		for _, name := range registry.Names() {
			state, ok := registry.GetState(name)
			if !ok || state.LastRun.IsZero() {
				fmt.Printf("  %s %-14s %s\n", gray("○"), name, gray("never run"))
				continue
			}
			fired := ""
			if !state.LastFired.IsZero() {
				fired = fmt.Sprintf("  last fired %s", state.LastFired.Format("2006-01-02 15:04"))
			}
			fmt.Printf("  %s %-14s last run %s%s\n",
				green("●"), name, state.LastRun.Format("2006-01-02 15:04"), gray(fired))
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
