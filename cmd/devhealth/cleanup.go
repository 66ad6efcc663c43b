package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/config"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/events"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete old health events",
	Long: `Delete health events older than the retention period. Deletion runs
in batches so large backlogs don't hold a long transaction.

Examples:
  devhealth cleanup               # Delete events older than 90 days
  devhealth cleanup --days 30     # Shorter retention
  devhealth cleanup --dry-run     # Preview without deleting`,
	Run: func(cmd *cobra.Command, args []string) {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		retention, err := config.RetentionConfigFromEnv()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("days") {
			retention.RetentionDays, _ = cmd.Flags().GetInt("days")
			if err := retention.Validate(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
		retentionDays := retention.RetentionDays

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		before, err := store.CountEvents(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: counting events: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Event retention: %d days\n", retentionDays)
		fmt.Printf("Events stored:   %d\n", before)

		if dryRun {
			cutoff := time.Now().AddDate(0, 0, -retentionDays)
			kept, err := store.GetEvents(ctx, events.EventFilter{Since: cutoff})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("\n%s\n", color.YellowString("DRY RUN MODE - No events will be deleted"))
			fmt.Printf("Would delete %d event(s) older than %s\n",
				before-len(kept), cutoff.Format("2006-01-02"))
			return
		}

		deleted, err := store.CleanupEventsByAge(ctx, retentionDays, retention.CleanupBatchSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cleanup failed: %v\n", err)
			os.Exit(1)
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("\n%s Deleted %d event(s)\n", green("✓"), deleted)
		fmt.Printf("  Events remaining: %d\n", before-deleted)
	},
}

func init() {
	cleanupCmd.Flags().Int("days", 90, "Delete events older than N days")
	cleanupCmd.Flags().Bool("dry-run", false, "Preview deletions without committing")
	rootCmd.AddCommand(cleanupCmd)
}
