// Package repl provides the interactive test shell: fire notifications
// on demand, inspect the current health summary, and record check-ins
// without waiting for the monitor loop.
package repl

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/checks"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/config"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/events"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/notify"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/session"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/storage"
)

// CommitSource supplies commit timestamps. Satisfied by *gitlog.Reader.
type CommitSource interface {
	CommitTimes(ctx context.Context) ([]time.Time, error)
}

// REPL is the interactive test shell.
type REPL struct {
	store    storage.Storage
	notifier notify.Notifier
	source   CommitSource
	config   *config.Config
	rl       *readline.Instance
	ctx      context.Context
	commands map[string]CommandHandler
}

// CommandHandler handles a specific command.
type CommandHandler func(args []string) error

// Config holds REPL configuration.
type Config struct {
	Store    storage.Storage
	Notifier notify.Notifier
	Source   CommitSource
	Config   *config.Config
}

// New creates a new REPL instance.
func New(cfg *Config) (*REPL, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("storage is required")
	}
	if cfg.Notifier == nil {
		return nil, fmt.Errorf("notifier is required")
	}
	if cfg.Source == nil {
		return nil, fmt.Errorf("commit source is required")
	}

	conf := cfg.Config
	if conf == nil {
		conf = config.DefaultConfig()
	}

	r := &REPL{
		store:    cfg.Store,
		notifier: cfg.Notifier,
		source:   cfg.Source,
		config:   conf,
		ctx:      context.Background(),
		commands: make(map[string]CommandHandler),
	}

	r.registerCommands()

	return r, nil
}

// Run starts the REPL loop.
func (r *REPL) Run(ctx context.Context) error {
	r.ctx = ctx

	cyan := color.New(color.FgCyan).SprintFunc()
	prompt := cyan("devhealth> ")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	r.rl = rl

	r.printWelcome()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			} else if err == io.EOF {
				fmt.Println("\nStay healthy!")
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := r.processInput(line); err != nil {
			if err == io.EOF {
				return nil
			}
			red := color.New(color.FgRed).SprintFunc()
			fmt.Printf("%s %v\n", red("Error:"), err)
		}
	}
}

// processInput processes a single line of input. Returns io.EOF when the
// user asked to exit.
func (r *REPL) processInput(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	command := parts[0]
	args := parts[1:]

	if handler, ok := r.commands[command]; ok {
		return handler(args)
	}

	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Printf("%s Unknown command %q. Use 'help' for available commands.\n", yellow("Note:"), command)
	return nil
}

// registerCommands registers all built-in commands.
func (r *REPL) registerCommands() {
	r.commands["help"] = r.cmdHelp
	r.commands["?"] = r.cmdHelp
	r.commands["pup-1"] = r.cmdTestPopups
	r.commands["summary"] = r.cmdSummary
	r.commands["checkin"] = r.cmdCheckIn
	r.commands["events"] = r.cmdEvents
	r.commands["exit"] = r.cmdExit
	r.commands["quit"] = r.cmdExit
}

// printWelcome prints the welcome message.
func (r *REPL) printWelcome() {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Printf("\n%s\n\n", cyan("Developer Health Monitor - test shell"))
	fmt.Println("Type 'pup-1' to trigger all popups in sequence. Type 'exit' to quit.")
	fmt.Println()
}

// TestAlerts returns one sample alert per notification the monitor can
// send, in delivery order.
func TestAlerts() []checks.Alert {
	return []checks.Alert{
		{Title: "Developer Health Alert", Message: "You had 2 long coding session(s). Remember to take breaks!", Category: "long_session", Severity: events.SeverityWarning},
		{Title: "Break Reminder", Message: "You've been coding for over 2 hours without a significant break. Please take a break!", Category: "no_break", Severity: events.SeverityWarning},
		{Title: "Night Owl Alert", Message: "You committed code late at night. Prioritize rest for better productivity.", Category: "night_owl", Severity: events.SeverityWarning},
		{Title: "Work Limit Warning", Message: "You've coded more than 8 hours today. Consider taking a longer break!", Category: "daily_limit", Severity: events.SeverityWarning},
		{Title: "Weekly Limit Warning", Message: "You've coded more than 40 hours this week. Watch for burnout!", Category: "weekly_limit", Severity: events.SeverityWarning},
		{Title: "Hydration Reminder", Message: "Time to drink some water!", Category: "hydration", Severity: events.SeverityInfo},
		{Title: "Activity Reminder", Message: "Stand up and stretch for a few minutes!", Category: "movement", Severity: events.SeverityInfo},
		{Title: "Ergonomics Tip", Message: "Check your posture and desk setup. 20-20-20 rule: every 20 minutes, look at something 20 feet away for 20 seconds.", Category: "ergonomics", Severity: events.SeverityInfo},
		{Title: "Mood Check-In", Message: "How are you feeling? Take a moment to reflect on your mood and stress level.", Category: "mood_check", Severity: events.SeverityInfo},
		{Title: "Great Job!", Message: "✅ Your coding habits look healthy! Keep it up!", Category: "encouragement", Severity: events.SeverityInfo},
	}
}

// cmdTestPopups fires every notification in delivery order.
func (r *REPL) cmdTestPopups(args []string) error {
	fmt.Println("Firing all notifications...")

	for _, alert := range TestAlerts() {
		if err := r.notifier.Notify(r.ctx, alert); err != nil {
			return fmt.Errorf("delivering %s: %w", alert.Category, err)
		}
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("%s All notifications sent\n", green("✓"))
	return nil
}

// cmdSummary analyzes the repository and prints the health summary.
func (r *REPL) cmdSummary(args []string) error {
	commits, err := r.source.CommitTimes(r.ctx)
	if err != nil {
		return err
	}
	if len(commits) == 0 {
		fmt.Println("No commit data found.")
		return nil
	}

	sessions := session.Build(commits, r.config.MinBreak)
	report := session.Analyze(sessions, session.Thresholds{
		LongSession:    r.config.LongSession,
		LateNightStart: r.config.LateNightStart,
		LateNightEnd:   r.config.LateNightEnd,
		DailyLimit:     r.config.DailyLimit,
		WeeklyLimit:    r.config.WeeklyLimit,
	}, time.Now())

	fmt.Println(report.Summary())
	return nil
}

// cmdCheckIn records a mood/stress check-in.
func (r *REPL) cmdCheckIn(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: checkin <mood 1-5> <stress 1-5> [note]")
	}

	mood, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid mood %q", args[0])
	}
	stress, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid stress %q", args[1])
	}

	checkIn := &storage.CheckIn{
		Mood:   mood,
		Stress: stress,
		Note:   strings.Join(args[2:], " "),
	}
	if err := r.store.RecordCheckIn(r.ctx, checkIn); err != nil {
		return err
	}

	e := events.New(events.EventTypeMoodCheckIn, events.SeverityInfo,
		"Mood Check-In", fmt.Sprintf("mood=%d stress=%d", mood, stress))
	if err := r.store.StoreEvent(r.ctx, e); err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("%s Check-in recorded (mood=%d, stress=%d)\n", green("✓"), mood, stress)
	return nil
}

// cmdEvents shows recent health events, oldest first.
func (r *REPL) cmdEvents(args []string) error {
	limit := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid limit %q", args[0])
		}
		limit = n
	}

	eventList, err := r.store.GetRecentEvents(r.ctx, limit)
	if err != nil {
		return err
	}
	if len(eventList) == 0 {
		fmt.Println("No events recorded yet.")
		return nil
	}

	for i := len(eventList) - 1; i >= 0; i-- {
		e := eventList[i]
		fmt.Printf("  %s  [%s] %s: %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.Type, e.Title, e.Message)
	}
	return nil
}

// cmdHelp shows help information.
func (r *REPL) cmdHelp(args []string) error {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("\n%s\n\n", cyan("Available Commands:"))

	commands := []struct {
		name string
		desc string
	}{
		{"pup-1", "Fire every notification in sequence (paced)"},
		{"summary", "Analyze the repository and print the health summary"},
		{"checkin", "Record a mood/stress check-in: checkin <mood> <stress> [note]"},
		{"events [n]", "Show the n most recent health events"},
		{"help, ?", "Show this help message"},
		{"exit, quit", "Exit the shell"},
	}

	for _, cmd := range commands {
		fmt.Printf("  %-12s %s\n", green(cmd.name), cmd.desc)
	}
	fmt.Println()

	return nil
}

// cmdExit exits the REPL.
func (r *REPL) cmdExit(args []string) error {
	fmt.Println("Stay healthy!")
	return io.EOF
}
