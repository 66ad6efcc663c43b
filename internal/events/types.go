// Package events defines the health events recorded by the monitor.
package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of event recorded by the health monitor.
type EventType string

const (
	// EventTypeMonitorStarted indicates the monitoring loop started
	EventTypeMonitorStarted EventType = "monitor_started"
	// EventTypeMonitorStopped indicates the monitoring loop stopped
	EventTypeMonitorStopped EventType = "monitor_stopped"
	// EventTypeAlertSent indicates an unhealthy-pattern alert was delivered
	EventTypeAlertSent EventType = "alert_sent"
	// EventTypeReminderSent indicates a wellness reminder was delivered
	EventTypeReminderSent EventType = "reminder_sent"
	// EventTypeMoodCheckIn indicates the user recorded a mood/stress check-in
	EventTypeMoodCheckIn EventType = "mood_checkin"
	// EventTypeSummaryGenerated indicates a health summary was produced
	EventTypeSummaryGenerated EventType = "summary_generated"
	// EventTypeError indicates a monitoring error occurred
	EventTypeError EventType = "error"
)

// EventSeverity represents the severity of an event.
type EventSeverity string

const (
	SeverityInfo    EventSeverity = "info"
	SeverityWarning EventSeverity = "warning"
	SeverityError   EventSeverity = "error"
)

// Event is a single recorded health event.
type Event struct {
	ID        string        `json:"id"`
	Type      EventType     `json:"type"`
	Severity  EventSeverity `json:"severity"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	CreatedAt time.Time     `json:"created_at"`
}

// EventFilter narrows event queries.
type EventFilter struct {
	Type     EventType
	Severity EventSeverity
	Since    time.Time
	Limit    int
}

// New creates an event with a fresh ID and the current time.
func New(eventType EventType, severity EventSeverity, title, message string) *Event {
	return &Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Severity:  severity,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}
}

// Validate checks that the event is well-formed before storage.
func (e *Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event ID is required")
	}
	if e.Type == "" {
		return fmt.Errorf("event type is required")
	}
	switch e.Severity {
	case SeverityInfo, SeverityWarning, SeverityError:
	default:
		return fmt.Errorf("invalid severity: %s", e.Severity)
	}
	if e.Title == "" {
		return fmt.Errorf("event title is required")
	}
	return nil
}
