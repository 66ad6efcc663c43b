package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/storage"
)

// RecordCheckIn stores a mood/stress check-in.
func (s *SQLiteStorage) RecordCheckIn(ctx context.Context, checkIn *storage.CheckIn) error {
	if err := checkIn.Validate(); err != nil {
		return fmt.Errorf("invalid check-in: %w", err)
	}

	if checkIn.CreatedAt.IsZero() {
		checkIn.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO checkins (mood, stress, note, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		checkIn.Mood,
		checkIn.Stress,
		checkIn.Note,
		checkIn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record check-in: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get check-in ID: %w", err)
	}
	checkIn.ID = id

	return nil
}

// GetRecentCheckIns retrieves the most recent check-ins, newest first.
func (s *SQLiteStorage) GetRecentCheckIns(ctx context.Context, limit int) ([]*storage.CheckIn, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT id, mood, stress, note, created_at
		FROM checkins
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query check-ins: %w", err)
	}
	defer rows.Close()

	var result []*storage.CheckIn
	for rows.Next() {
		var c storage.CheckIn
		if err := rows.Scan(&c.ID, &c.Mood, &c.Stress, &c.Note, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan check-in row: %w", err)
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating check-in rows: %w", err)
	}

	return result, nil
}
