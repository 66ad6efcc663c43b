package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/events"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show recent health events",
	Long: `Show the health events the monitor has recorded: alerts, reminders,
mood check-ins, and errors.

Examples:
  devhealth activity                       # The 20 most recent events
  devhealth activity --limit 50            # More history
  devhealth activity --severity warning    # Only warnings
  devhealth activity --type alert_sent     # Only alerts`,
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")
		typeFilter, _ := cmd.Flags().GetString("type")
		severityFilter, _ := cmd.Flags().GetString("severity")

		ctx := context.Background()

		filter := events.EventFilter{
			Type:     events.EventType(typeFilter),
			Severity: events.EventSeverity(severityFilter),
			Limit:    limit,
		}

		list, err := store.GetEvents(ctx, filter)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(list) == 0 {
			fmt.Println("No events recorded yet.")
			return
		}

		yellow := color.New(color.FgYellow).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		// Oldest first reads naturally in a terminal
		for i := len(list) - 1; i >= 0; i-- {
			e := list[i]
			title := cyan(e.Title)
			switch e.Severity {
			case events.SeverityWarning:
				title = yellow(e.Title)
			case events.SeverityError:
				title = red(e.Title)
			}
			fmt.Printf("  %s  %s %s\n",
				gray(e.CreatedAt.Format("2006-01-02 15:04")), title, e.Message)
		}
	},
}

func init() {
	activityCmd.Flags().Int("limit", 20, "Maximum number of events to show")
	activityCmd.Flags().String("type", "", "Filter by event type (alert_sent, reminder_sent, mood_checkin, ...)")
	activityCmd.Flags().String("severity", "", "Filter by severity (info, warning, error)")
	rootCmd.AddCommand(activityCmd)
}
