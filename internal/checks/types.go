// Package checks contains the wellness checkers: small units that look at
// recent coding activity (or just the clock) and decide whether the
// developer should be nudged.
package checks

import (
	"context"
	"time"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/config"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/events"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/session"
)

// Checker examines coding activity and produces alerts.
// Checkers are stateless; pacing is handled by the Registry.
type Checker interface {
	// Name returns the unique identifier for this checker.
	Name() string

	// Description returns a one-line human description.
	Description() string

	// Schedule returns when this checker should run.
	Schedule() Schedule

	// Check examines the activity snapshot and returns alerts to deliver.
	Check(ctx context.Context, activity Activity) []Alert
}

// Activity is the snapshot of coding activity handed to checkers.
type Activity struct {
	// Report is the session analysis for the repository.
	Report session.Report

	// Config carries the active thresholds.
	Config *config.Config

	// Now is the time of the current monitoring tick.
	Now time.Time
}

// Alert is a notification a checker wants delivered.
type Alert struct {
	Title    string
	Message  string
	Category string // checker name
	Severity events.EventSeverity
}

// ScheduleType determines when a checker runs.
type ScheduleType string

const (
	// ScheduleActivity runs on every monitoring tick; the checker alerts
	// only when an unhealthy pattern is present.
	ScheduleActivity ScheduleType = "activity"

	// ScheduleInterval runs when at least Interval has passed since the
	// checker last fired.
	ScheduleInterval ScheduleType = "interval"

	// ScheduleDaily runs at most once per calendar day.
	ScheduleDaily ScheduleType = "daily"
)

// Schedule defines when a checker should run.
type Schedule struct {
	Type     ScheduleType
	Interval time.Duration // only for ScheduleInterval
}
