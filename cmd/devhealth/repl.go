package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive test shell",
	Long: `Start an interactive shell for exercising the monitor by hand:
fire every notification in sequence, print the current health summary,
or record a check-in.`,
	Run: func(cmd *cobra.Command, args []string) {
		consoleOnly, _ := cmd.Flags().GetBool("console-only")

		r, err := repl.New(&repl.Config{
			Store:    store,
			Notifier: buildNotifier(consoleOnly),
			Source:   reader,
			Config:   cfg,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := r.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	replCmd.Flags().Bool("console-only", false, "Disable desktop popups, print to the terminal only")
	rootCmd.AddCommand(replCmd)
}
