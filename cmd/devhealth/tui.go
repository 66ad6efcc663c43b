package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the terminal dashboard",
	Long: `Open a full-screen terminal dashboard showing the current session
analysis, recent health events, and recent check-ins. Press r to
refresh and q to quit.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := tui.Run(context.Background(), tui.Deps{
			Store:  store,
			Source: reader,
			Config: cfg,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
