package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/events"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/storage"
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record a mood and stress check-in",
	Long: `Record how you're feeling right now. Mood and stress are rated
1 (low) to 5 (high).

Examples:
  devhealth checkin --mood 4 --stress 2
  devhealth checkin --mood 3 --stress 4 --note "deadline week"
  devhealth checkin --list`,
	Run: func(cmd *cobra.Command, args []string) {
		listOnly, _ := cmd.Flags().GetBool("list")
		mood, _ := cmd.Flags().GetInt("mood")
		stress, _ := cmd.Flags().GetInt("stress")
		note, _ := cmd.Flags().GetString("note")

		ctx := context.Background()

		if listOnly {
			listCheckIns(ctx)
			return
		}

		if !cmd.Flags().Changed("mood") || !cmd.Flags().Changed("stress") {
			fmt.Fprintf(os.Stderr, "Error: --mood and --stress are required (or use --list)\n")
			os.Exit(1)
		}

		checkIn := &storage.CheckIn{Mood: mood, Stress: stress, Note: note}
		if err := store.RecordCheckIn(ctx, checkIn); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		e := events.New(events.EventTypeMoodCheckIn, events.SeverityInfo,
			"Mood Check-In", fmt.Sprintf("mood=%d stress=%d", mood, stress))
		if err := store.StoreEvent(ctx, e); err != nil {
			fmt.Fprintf(os.Stderr, "Error: recording event: %v\n", err)
			os.Exit(1)
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s Check-in recorded (mood=%d, stress=%d)\n", green("✓"), mood, stress)

		if stress >= 4 {
			yellow := color.New(color.FgYellow).SprintFunc()
			fmt.Printf("%s High stress noted. Consider a short walk or a break.\n", yellow("⚠"))
		}
	},
}

func listCheckIns(ctx context.Context) {
	checkIns, err := store.GetRecentCheckIns(ctx, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(checkIns) == 0 {
		fmt.Println("No check-ins recorded yet.")
		return
	}

	gray := color.New(color.FgHiBlack).SprintFunc()
	for i := len(checkIns) - 1; i >= 0; i-- {
		c := checkIns[i]
		line := fmt.Sprintf("  %s  mood %d/5, stress %d/5",
			gray(c.CreatedAt.Format("2006-01-02 15:04")), c.Mood, c.Stress)
		if c.Note != "" {
			line += "  " + gray(c.Note)
		}
		fmt.Println(line)
	}
}

func init() {
	checkinCmd.Flags().Int("mood", 0, "Mood rating, 1 (low) to 5 (high)")
	checkinCmd.Flags().Int("stress", 0, "Stress rating, 1 (low) to 5 (high)")
	checkinCmd.Flags().String("note", "", "Optional note")
	checkinCmd.Flags().Bool("list", false, "List recent check-ins instead of recording one")
	rootCmd.AddCommand(checkinCmd)
}
