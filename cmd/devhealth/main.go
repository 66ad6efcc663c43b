// devhealth analyzes git commit history for unhealthy coding patterns
// and delivers local wellness notifications. All analysis is local.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/config"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/gitlog"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/notify"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/storage"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/storage/sqlite"
)

// Shared command state, initialized by rootCmd's PersistentPreRunE.
var (
	store  storage.Storage
	cfg    *config.Config
	reader *gitlog.Reader

	repoFlag   string
	dbFlag     string
	configFlag string
	stateFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "devhealth",
	Short: "Developer health monitor",
	Long: `devhealth watches your git commit history for unhealthy coding
patterns: marathon sessions, skipped breaks, late-night work, and
excessive daily or weekly hours. It sends local desktop notifications
and periodic wellness reminders.

All analysis is local. Your data never leaves your machine.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		cfg, err = config.Load(configFlag)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		reader, err = gitlog.NewReader(repoFlag)
		if err != nil {
			return fmt.Errorf("resolving repository: %w", err)
		}

		store, err = sqlite.New(dbPath())
		if err != nil {
			return fmt.Errorf("opening event database: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			_ = store.Close()
		}
	},
}

// dbPath resolves the database path, defaulting to ~/.devhealth/devhealth.db.
func dbPath() string {
	if dbFlag != "" {
		return dbFlag
	}
	return filepath.Join(dataDir(), "devhealth.db")
}

// statePath resolves the checker state path, defaulting to
// ~/.devhealth/checks_state.json.
func statePath() string {
	if stateFlag != "" {
		return stateFlag
	}
	return filepath.Join(dataDir(), "checks_state.json")
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".devhealth"
	}
	return filepath.Join(home, ".devhealth")
}

// buildNotifier assembles the notifier stack: console output, desktop
// popups when enabled, paced so popups don't pile up.
func buildNotifier(consoleOnly bool) notify.Notifier {
	notifiers := []notify.Notifier{notify.NewConsole()}
	if cfg.DesktopNotifications && !consoleOnly {
		notifiers = append(notifiers, notify.NewDesktop())
	}
	return notify.NewPaced(notify.NewMulti(notifiers...), cfg.NotifySpacing)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&repoFlag, "repo", "", "Path to the git repository to analyze (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Path to the event database (default: ~/.devhealth/devhealth.db)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to a YAML config file (default: built-in defaults + DEVHEALTH_* env)")
	rootCmd.PersistentFlags().StringVar(&stateFlag, "state", "", "Path to the checker state file (default: ~/.devhealth/checks_state.json)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
