package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/checks"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/monitor"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the monitoring loop",
	Long: `Run the periodic monitoring loop. Every check interval (default 10
minutes) the repository's commit history is re-analyzed and due health
checks fire notifications: session warnings, hydration and movement
reminders, ergonomics tips, and mood check-ins.

Stop with Ctrl-C.

Examples:
  devhealth watch                 # Watch with desktop notifications
  devhealth watch --console-only  # Terminal output only
  devhealth watch --verbose       # Print the summary on every pass`,
	Run: func(cmd *cobra.Command, args []string) {
		consoleOnly, _ := cmd.Flags().GetBool("console-only")
		verbose, _ := cmd.Flags().GetBool("verbose")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		registry, err := checks.NewRegistry(statePath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading checker state: %v\n", err)
			os.Exit(1)
		}
		if err := checks.RegisterDefaults(registry, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: registering checkers: %v\n", err)
			os.Exit(1)
		}

		m, err := monitor.New(&monitor.Deps{
			Store:    store,
			Notifier: buildNotifier(consoleOnly),
			Registry: registry,
			Source:   reader,
			Config:   cfg,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		m.Verbose = verbose

		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			return m.Start(gctx)
		})
		g.Go(func() error {
			<-gctx.Done()
			m.Stop()
			return nil
		})

		if err := g.Wait(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	watchCmd.Flags().Bool("console-only", false, "Disable desktop popups, print to the terminal only")
	watchCmd.Flags().Bool("verbose", false, "Print the health summary on every monitoring pass")
	rootCmd.AddCommand(watchCmd)
}
