package sqlite

import (
	"context"
	"fmt"
	"time"
)

// CleanupEventsByAge deletes events older than the retention period.
// Deletions are batched so a large backlog doesn't hold a long write lock.
// Returns the number of events deleted.
func (s *SQLiteStorage) CleanupEventsByAge(ctx context.Context, retentionDays, batchSize int) (int, error) {
	if retentionDays < 0 {
		return 0, fmt.Errorf("retention days cannot be negative")
	}
	if batchSize < 1 {
		return 0, fmt.Errorf("batch size must be at least 1")
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	totalDeleted := 0

	for {
		select {
		case <-ctx.Done():
			return totalDeleted, ctx.Err()
		default:
		}

		query := `
			DELETE FROM health_events
			WHERE id IN (
				SELECT id FROM health_events
				WHERE created_at < ?
				LIMIT ?
			)
		`

		result, err := s.db.ExecContext(ctx, query, cutoff, batchSize)
		if err != nil {
			return totalDeleted, fmt.Errorf("failed to delete old events: %w", err)
		}

		deleted, err := result.RowsAffected()
		if err != nil {
			return totalDeleted, fmt.Errorf("failed to get deleted count: %w", err)
		}

		totalDeleted += int(deleted)
		if deleted < int64(batchSize) {
			return totalDeleted, nil
		}
	}
}
