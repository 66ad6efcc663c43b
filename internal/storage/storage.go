// Package storage defines the persistence interface for health events
// and mood check-ins.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/events"
)

// CheckIn is a self-reported mood and stress entry.
type CheckIn struct {
	ID        int64     `json:"id"`
	Mood      int       `json:"mood"`   // 1 (low) to 5 (great)
	Stress    int       `json:"stress"` // 1 (calm) to 5 (overwhelmed)
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks mood and stress bounds.
func (c *CheckIn) Validate() error {
	if c.Mood < 1 || c.Mood > 5 {
		return fmt.Errorf("mood must be between 1 and 5, got %d", c.Mood)
	}
	if c.Stress < 1 || c.Stress > 5 {
		return fmt.Errorf("stress must be between 1 and 5, got %d", c.Stress)
	}
	return nil
}

// Storage defines the interface for health data backends.
type Storage interface {
	// Health events
	StoreEvent(ctx context.Context, event *events.Event) error
	GetEvents(ctx context.Context, filter events.EventFilter) ([]*events.Event, error)
	GetRecentEvents(ctx context.Context, limit int) ([]*events.Event, error)

	// Retention
	CleanupEventsByAge(ctx context.Context, retentionDays, batchSize int) (int, error)
	CountEvents(ctx context.Context) (int, error)

	// Mood check-ins
	RecordCheckIn(ctx context.Context, checkIn *CheckIn) error
	GetRecentCheckIns(ctx context.Context, limit int) ([]*CheckIn, error)

	Close() error
}
