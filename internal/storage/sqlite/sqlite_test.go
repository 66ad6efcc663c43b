package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/events"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStorage {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "devhealth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreAndGetEvents(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	e := events.New(events.EventTypeReminderSent, events.SeverityInfo,
		"Hydration Reminder", "Time to drink some water!")
	require.NoError(t, store.StoreEvent(ctx, e))

	got, err := store.GetRecentEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, e.ID, got[0].ID)
	assert.Equal(t, events.EventTypeReminderSent, got[0].Type)
	assert.Equal(t, "Hydration Reminder", got[0].Title)
	assert.WithinDuration(t, e.CreatedAt, got[0].CreatedAt, time.Second)
}

func TestStoreEvent_Invalid(t *testing.T) {
	store := newTestStore(t)

	bad := &events.Event{ID: "x", Type: events.EventTypeError, Severity: "nope", Title: "t"}
	err := store.StoreEvent(context.Background(), bad)
	assert.Error(t, err)
}

func TestGetEvents_Filters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	reminder := events.New(events.EventTypeReminderSent, events.SeverityInfo, "Hydration Reminder", "water")
	alert := events.New(events.EventTypeAlertSent, events.SeverityWarning, "Night Owl Alert", "sleep")
	require.NoError(t, store.StoreEvent(ctx, reminder))
	require.NoError(t, store.StoreEvent(ctx, alert))

	warnings, err := store.GetEvents(ctx, events.EventFilter{Severity: events.SeverityWarning})
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, alert.ID, warnings[0].ID)

	reminders, err := store.GetEvents(ctx, events.EventFilter{Type: events.EventTypeReminderSent})
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, reminder.ID, reminders[0].ID)
}

func TestGetEvents_OrderAndLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		e := events.New(events.EventTypeReminderSent, events.SeverityInfo, "Reminder", "msg")
		e.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.StoreEvent(ctx, e))
	}

	got, err := store.GetRecentEvents(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Newest first
	assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))
	assert.True(t, got[1].CreatedAt.After(got[2].CreatedAt))
}

func TestCleanupEventsByAge(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	old := events.New(events.EventTypeReminderSent, events.SeverityInfo, "Old", "old")
	old.CreatedAt = time.Now().AddDate(0, 0, -120)
	recent := events.New(events.EventTypeReminderSent, events.SeverityInfo, "Recent", "recent")
	require.NoError(t, store.StoreEvent(ctx, old))
	require.NoError(t, store.StoreEvent(ctx, recent))

	deleted, err := store.CleanupEventsByAge(ctx, 90, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	count, err := store.CountEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCleanupEventsByAge_Batching(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		e := events.New(events.EventTypeReminderSent, events.SeverityInfo, "Old", "old")
		e.CreatedAt = time.Now().AddDate(0, 0, -100)
		require.NoError(t, store.StoreEvent(ctx, e))
	}

	deleted, err := store.CleanupEventsByAge(ctx, 30, 2)
	require.NoError(t, err)
	assert.Equal(t, 7, deleted)
}

func TestCleanupEventsByAge_InvalidArgs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.CleanupEventsByAge(ctx, -1, 10)
	assert.Error(t, err)

	_, err = store.CleanupEventsByAge(ctx, 30, 0)
	assert.Error(t, err)
}

func TestRecordAndGetCheckIns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c := &storage.CheckIn{Mood: 4, Stress: 2, Note: "good flow today"}
	require.NoError(t, store.RecordCheckIn(ctx, c))
	assert.NotZero(t, c.ID)

	got, err := store.GetRecentCheckIns(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].Mood)
	assert.Equal(t, 2, got[0].Stress)
	assert.Equal(t, "good flow today", got[0].Note)
}

func TestRecordCheckIn_Bounds(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.Error(t, store.RecordCheckIn(ctx, &storage.CheckIn{Mood: 0, Stress: 3}))
	assert.Error(t, store.RecordCheckIn(ctx, &storage.CheckIn{Mood: 3, Stress: 6}))
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devhealth.db")
	ctx := context.Background()

	store, err := New(path)
	require.NoError(t, err)
	e := events.New(events.EventTypeMonitorStarted, events.SeverityInfo, "Developer Health Monitor", "started")
	require.NoError(t, store.StoreEvent(ctx, e))
	require.NoError(t, store.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetRecentEvents(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, e.ID, got[0].ID)
}
