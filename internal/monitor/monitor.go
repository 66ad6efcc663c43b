// Package monitor runs the periodic health check loop: it re-reads the
// repository's commit history, analyzes coding sessions, and delivers
// whatever the due checkers find.
package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

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

// Monitor orchestrates the periodic health checks.
type Monitor struct {
	mu sync.RWMutex

	store    storage.Storage
	notifier notify.Notifier
	registry *checks.Registry
	source   CommitSource
	config   *config.Config

	// Verbose prints the health summary to stdout on every tick.
	Verbose bool

	// Control
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// State
	running   bool
	firstTick bool
}

// Deps holds dependencies for creating a Monitor.
type Deps struct {
	Store    storage.Storage
	Notifier notify.Notifier
	Registry *checks.Registry
	Source   CommitSource
	Config   *config.Config
}

// New creates a new monitor.
func New(deps *Deps) (*Monitor, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if deps.Notifier == nil {
		return nil, fmt.Errorf("notifier is required")
	}
	if deps.Registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if deps.Source == nil {
		return nil, fmt.Errorf("commit source is required")
	}

	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	return &Monitor{
		store:     deps.Store,
		notifier:  deps.Notifier,
		registry:  deps.Registry,
		source:    deps.Source,
		config:    cfg,
		firstTick: true,
	}, nil
}

// Start begins the monitoring loop. The first tick runs immediately.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return fmt.Errorf("monitor already running")
	}

	m.ctx, m.cancel = context.WithCancel(ctx)
	m.running = true

	m.wg.Add(1)
	go m.loop()

	fmt.Printf("Monitor: started (check_interval=%v)\n", m.config.CheckInterval)
	return nil
}

// Stop gracefully stops the monitor. The lock is released before waiting
// so an in-flight tick can finish.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}

	fmt.Println("Monitor: stopping...")
	m.cancel()
	m.running = false
	m.mu.Unlock()

	m.wg.Wait()
	fmt.Println("Monitor: stopped")
}

// loop is the main monitoring loop. Tick errors are reported but never
// stop the loop.
func (m *Monitor) loop() {
	defer m.wg.Done()

	timer := time.NewTimer(0) // first tick immediately
	defer timer.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return

		case <-timer.C:
			tickCtx, tickCancel := context.WithTimeout(m.ctx, time.Minute)
			if err := m.Tick(tickCtx); err != nil {
				fmt.Printf("Monitor: check failed: %v\n", err)
				m.recordError(tickCtx, err)
			}
			tickCancel()

			timer.Reset(m.config.CheckInterval)
		}
	}
}

// Tick runs a single monitoring pass at the current time.
func (m *Monitor) Tick(ctx context.Context) error {
	now := time.Now()

	if m.takeFirstTick() {
		return m.announceStart(ctx)
	}

	commits, err := m.source.CommitTimes(ctx)
	if err != nil {
		return fmt.Errorf("reading commit history: %w", err)
	}

	if len(commits) == 0 {
		alert := checks.Alert{
			Title:    "Developer Health Monitor",
			Message:  "No commit data found.",
			Category: "monitor",
			Severity: events.SeverityInfo,
		}
		if err := m.notifier.Notify(ctx, alert); err != nil {
			return fmt.Errorf("delivering no-data notice: %w", err)
		}
		return nil
	}

	sessions := session.Build(commits, m.config.MinBreak)
	report := session.Analyze(sessions, session.Thresholds{
		LongSession:    m.config.LongSession,
		LateNightStart: m.config.LateNightStart,
		LateNightEnd:   m.config.LateNightEnd,
		DailyLimit:     m.config.DailyLimit,
		WeeklyLimit:    m.config.WeeklyLimit,
	}, now)

	if m.Verbose {
		fmt.Println(report.Summary())
	}

	activity := checks.Activity{
		Report: report,
		Config: m.config,
		Now:    now,
	}

	alerts, err := m.registry.Run(ctx, activity)
	if err != nil {
		return fmt.Errorf("running checkers: %w", err)
	}

	return m.dispatch(ctx, alerts)
}

// dispatch delivers alerts in order and records each as an event.
func (m *Monitor) dispatch(ctx context.Context, alerts []checks.Alert) error {
	for _, alert := range alerts {
		if err := m.notifier.Notify(ctx, alert); err != nil {
			return fmt.Errorf("delivering %s alert: %w", alert.Category, err)
		}

		eventType := events.EventTypeReminderSent
		if alert.Severity == events.SeverityWarning {
			eventType = events.EventTypeAlertSent
		}

		e := events.New(eventType, alert.Severity, alert.Title, alert.Message)
		if err := m.store.StoreEvent(ctx, e); err != nil {
			return fmt.Errorf("recording %s event: %w", alert.Category, err)
		}
	}
	return nil
}

// announceStart sends the one-time startup notice.
func (m *Monitor) announceStart(ctx context.Context) error {
	minutes := int(m.config.CheckInterval.Minutes())
	alert := checks.Alert{
		Title:    "Developer Health Monitor",
		Message:  fmt.Sprintf("Monitoring started! You'll receive health notifications every %d minutes.", minutes),
		Category: "monitor",
		Severity: events.SeverityInfo,
	}

	if err := m.notifier.Notify(ctx, alert); err != nil {
		return fmt.Errorf("delivering startup notice: %w", err)
	}

	e := events.New(events.EventTypeMonitorStarted, events.SeverityInfo, alert.Title, alert.Message)
	if err := m.store.StoreEvent(ctx, e); err != nil {
		return fmt.Errorf("recording startup event: %w", err)
	}
	return nil
}

// takeFirstTick returns true exactly once.
func (m *Monitor) takeFirstTick() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.firstTick {
		m.firstTick = false
		return true
	}
	return false
}

// recordError stores a tick failure; storage errors here are best effort.
func (m *Monitor) recordError(ctx context.Context, tickErr error) {
	e := events.New(events.EventTypeError, events.SeverityError, "Monitoring error", tickErr.Error())
	if err := m.store.StoreEvent(ctx, e); err != nil {
		fmt.Printf("Monitor: failed to record error event: %v\n", err)
	}
}

// Running reports whether the loop is active.
func (m *Monitor) Running() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.running
}
