package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/gitlog"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the environment is ready for monitoring",
	Long:  `Verify git availability, repository detection, the state directory, the event database, and the active configuration.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		fmt.Printf("\n%s\n\n", cyan("=== devhealth doctor ==="))

		failures := 0

		// git binary
		if gitlog.GitAvailable() {
			fmt.Printf("  %s git binary found\n", green("✓"))
		} else {
			fmt.Printf("  %s git binary not found in PATH\n", red("✗"))
			failures++
		}

		// repository
		if reader.IsRepo(ctx) {
			fmt.Printf("  %s git repository at %s\n", green("✓"), reader.Dir())
		} else {
			fmt.Printf("  %s %s is not a git repository (use --repo)\n", yellow("⚠"), reader.Dir())
		}

		// state directory
		stateDir := filepath.Dir(statePath())
		if err := os.MkdirAll(stateDir, 0o755); err != nil {
			fmt.Printf("  %s state directory %s not writable: %v\n", red("✗"), stateDir, err)
			failures++
		} else {
			fmt.Printf("  %s state directory %s writable\n", green("✓"), stateDir)
		}

		// event database (opened by the root command already)
		if _, err := store.CountEvents(ctx); err != nil {
			fmt.Printf("  %s event database unusable: %v\n", red("✗"), err)
			failures++
		} else {
			fmt.Printf("  %s event database at %s\n", green("✓"), dbPath())
		}

		// configuration
		if err := cfg.Validate(); err != nil {
			fmt.Printf("  %s configuration invalid: %v\n", red("✗"), err)
			failures++
		} else {
			fmt.Printf("  %s configuration valid (check interval %v)\n", green("✓"), cfg.CheckInterval)
		}

		// desktop notifications
		if cfg.DesktopNotifications {
			fmt.Printf("  %s desktop notifications enabled\n", green("✓"))
		} else {
			fmt.Printf("  %s desktop notifications disabled (console output only)\n", yellow("⚠"))
		}

		fmt.Println()
		if failures > 0 {
			fmt.Fprintf(os.Stderr, "Error: %d check(s) failed\n", failures)
			os.Exit(1)
		}
		fmt.Printf("%s All checks passed\n\n", green("✓"))
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
