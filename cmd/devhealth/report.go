package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/checks"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/events"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/gitlog"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/session"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Analyze commit history and print a health summary",
	Long: `Analyze the repository's commit history once and print the health
summary: session counts, long sessions, skipped breaks, late-night
commits, and daily/weekly totals.

Examples:
  devhealth report                 # Analyze the current directory
  devhealth report --repo ~/src/x  # Analyze another repository
  devhealth report --notify        # Also send the summary popup`,
	Run: func(cmd *cobra.Command, args []string) {
		sendNotifications, _ := cmd.Flags().GetBool("notify")

		ctx := context.Background()

		report, err := analyzeRepo(ctx)
		if err != nil {
			if errors.Is(err, gitlog.ErrNotARepository) {
				fmt.Fprintf(os.Stderr, "Error: %s is not a git repository\n", reader.Dir())
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if report == nil {
			fmt.Println("No commit data found.")
			return
		}

		fmt.Println(report.Summary())

		summary := events.New(events.EventTypeSummaryGenerated, events.SeverityInfo,
			"Health Summary", fmt.Sprintf("%d session(s) analyzed", report.TotalSessions))
		if err := store.StoreEvent(ctx, summary); err != nil {
			fmt.Fprintf(os.Stderr, "Error: recording event: %v\n", err)
			os.Exit(1)
		}

		if !sendNotifications {
			return
		}

		alert := summaryAlert(*report)
		if err := buildNotifier(false).Notify(ctx, alert); err != nil {
			fmt.Fprintf(os.Stderr, "Error: sending notification: %v\n", err)
			os.Exit(1)
		}

		eventType := events.EventTypeReminderSent
		if alert.Severity == events.SeverityWarning {
			eventType = events.EventTypeAlertSent
		}
		e := events.New(eventType, alert.Severity, alert.Title, alert.Message)
		if err := store.StoreEvent(ctx, e); err != nil {
			fmt.Fprintf(os.Stderr, "Error: recording event: %v\n", err)
			os.Exit(1)
		}
	},
}

// analyzeRepo reads the commit history and builds a report. A nil report
// with nil error means the repository has no commits.
func analyzeRepo(ctx context.Context) (*session.Report, error) {
	commits, err := reader.CommitTimes(ctx)
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		return nil, nil
	}

	sessions := session.Build(commits, cfg.MinBreak)
	report := session.Analyze(sessions, session.Thresholds{
		LongSession:    cfg.LongSession,
		LateNightStart: cfg.LateNightStart,
		LateNightEnd:   cfg.LateNightEnd,
		DailyLimit:     cfg.DailyLimit,
		WeeklyLimit:    cfg.WeeklyLimit,
	}, time.Now())
	return &report, nil
}

// summaryAlert builds the single popup that accompanies the printed
// summary: long sessions and late-night commits fold into one alert,
// and a clean report still gets the healthy notification. The deeper
// checks (breaks, daily/weekly limits) belong to the watch loop.
func summaryAlert(report session.Report) checks.Alert {
	if report.LongSessions > 0 || report.LateNightCommits > 0 {
		var parts []string
		if report.LongSessions > 0 {
			parts = append(parts, fmt.Sprintf("You had %d long coding session(s). Remember to take breaks!", report.LongSessions))
		}
		if report.LateNightCommits > 0 {
			parts = append(parts, "You committed code late at night. Prioritize rest!")
		}
		return checks.Alert{
			Title:    "Developer Health Alert",
			Message:  strings.Join(parts, "\n"),
			Category: "summary",
			Severity: events.SeverityWarning,
		}
	}

	return checks.Alert{
		Title:    "Developer Health",
		Message:  "✅ Your coding habits look healthy!",
		Category: "summary",
		Severity: events.SeverityInfo,
	}
}

func init() {
	reportCmd.Flags().Bool("notify", false, "Also send the summary as a notification")
	rootCmd.AddCommand(reportCmd)
}
