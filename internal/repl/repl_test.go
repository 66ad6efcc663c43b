package repl

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/checks"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/config"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/events"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/storage"
)

type memStore struct {
	mu       sync.Mutex
	events   []*events.Event
	checkIns []*storage.CheckIn
}

func (m *memStore) StoreEvent(ctx context.Context, e *events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
	return nil
}

func (m *memStore) GetEvents(ctx context.Context, filter events.EventFilter) ([]*events.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.events, nil
}

func (m *memStore) GetRecentEvents(ctx context.Context, limit int) ([]*events.Event, error) {
	return m.GetEvents(ctx, events.EventFilter{Limit: limit})
}

func (m *memStore) CleanupEventsByAge(ctx context.Context, retentionDays, batchSize int) (int, error) {
	return 0, nil
}

func (m *memStore) CountEvents(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events), nil
}

func (m *memStore) RecordCheckIn(ctx context.Context, c *storage.CheckIn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkIns = append(m.checkIns, c)
	return nil
}

func (m *memStore) GetRecentCheckIns(ctx context.Context, limit int) ([]*storage.CheckIn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.checkIns, nil
}

func (m *memStore) Close() error { return nil }

type fakeNotifier struct {
	mu     sync.Mutex
	alerts []checks.Alert
}

func (f *fakeNotifier) Notify(ctx context.Context, alert checks.Alert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, alert)
	return nil
}

type fakeSource struct {
	commits []time.Time
}

func (f *fakeSource) CommitTimes(ctx context.Context) ([]time.Time, error) {
	return f.commits, nil
}

func newTestREPL(t *testing.T) (*REPL, *memStore, *fakeNotifier) {
	t.Helper()

	store := &memStore{}
	notifier := &fakeNotifier{}

	r, err := New(&Config{
		Store:    store,
		Notifier: notifier,
		Source:   &fakeSource{},
		Config:   config.DefaultConfig(),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	return r, store, notifier
}

func TestNew_RequiresDeps(t *testing.T) {
	if _, err := New(&Config{}); err == nil {
		t.Error("expected error for missing dependencies")
	}
}

func TestTestAlerts_CoversAllNotifications(t *testing.T) {
	alerts := TestAlerts()
	if len(alerts) != 10 {
		t.Fatalf("expected 10 test alerts, got %d", len(alerts))
	}

	if alerts[0].Title != "Developer Health Alert" {
		t.Errorf("expected warnings first, got %q", alerts[0].Title)
	}
	if alerts[len(alerts)-1].Title != "Great Job!" {
		t.Errorf("expected encouragement last, got %q", alerts[len(alerts)-1].Title)
	}

	seen := make(map[string]bool)
	for _, a := range alerts {
		if seen[a.Category] {
			t.Errorf("duplicate category %q", a.Category)
		}
		seen[a.Category] = true
		if a.Title == "" || a.Message == "" {
			t.Errorf("alert %q has empty title or message", a.Category)
		}
	}
}

func TestProcessInput_TestPopups(t *testing.T) {
	r, _, notifier := newTestREPL(t)

	if err := r.processInput("pup-1"); err != nil {
		t.Fatalf("pup-1 failed: %v", err)
	}

	if len(notifier.alerts) != 10 {
		t.Errorf("expected 10 notifications, got %d", len(notifier.alerts))
	}
}

func TestProcessInput_CheckIn(t *testing.T) {
	r, store, _ := newTestREPL(t)

	if err := r.processInput("checkin 4 2 feeling good"); err != nil {
		t.Fatalf("checkin failed: %v", err)
	}

	if len(store.checkIns) != 1 {
		t.Fatalf("expected 1 check-in, got %d", len(store.checkIns))
	}
	c := store.checkIns[0]
	if c.Mood != 4 || c.Stress != 2 || c.Note != "feeling good" {
		t.Errorf("unexpected check-in: %+v", c)
	}

	if len(store.events) != 1 || store.events[0].Type != events.EventTypeMoodCheckIn {
		t.Error("expected a mood_checkin event to be recorded")
	}
}

func TestProcessInput_CheckInValidation(t *testing.T) {
	r, _, _ := newTestREPL(t)

	if err := r.processInput("checkin"); err == nil {
		t.Error("expected usage error for missing args")
	}
	if err := r.processInput("checkin abc 2"); err == nil {
		t.Error("expected error for non-numeric mood")
	}
}

func TestProcessInput_UnknownCommand(t *testing.T) {
	r, _, _ := newTestREPL(t)

	// Unknown commands print a note, they do not fail
	if err := r.processInput("bogus"); err != nil {
		t.Errorf("unknown command should not error, got %v", err)
	}
}

func TestProcessInput_Exit(t *testing.T) {
	r, _, _ := newTestREPL(t)

	if err := r.processInput("exit"); err != io.EOF {
		t.Errorf("expected io.EOF from exit, got %v", err)
	}
	if err := r.processInput("quit"); err != io.EOF {
		t.Errorf("expected io.EOF from quit, got %v", err)
	}
}

func TestProcessInput_Events(t *testing.T) {
	r, store, _ := newTestREPL(t)

	e := events.New(events.EventTypeReminderSent, events.SeverityInfo, "Hydration Reminder", "Time to drink some water!")
	if err := store.StoreEvent(context.Background(), e); err != nil {
		t.Fatal(err)
	}

	if err := r.processInput("events"); err != nil {
		t.Errorf("events failed: %v", err)
	}
	if err := r.processInput("events nope"); err == nil {
		t.Error("expected error for bad limit")
	}
}
