package tui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/config"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/events"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/session"
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

type fakeSource struct {
	commits []time.Time
}

func (f *fakeSource) CommitTimes(ctx context.Context) ([]time.Time, error) {
	return f.commits, nil
}

func newTestModel(source CommitSource) Model {
	return NewModel(Deps{
		Store:  &memStore{},
		Source: source,
		Config: config.DefaultConfig(),
	})
}

func TestRefresh_NoCommits(t *testing.T) {
	m := newTestModel(&fakeSource{})

	msg := m.refresh()()
	refresh, ok := msg.(refreshMsg)
	if !ok {
		t.Fatalf("expected refreshMsg, got %T", msg)
	}
	if refresh.err != nil {
		t.Fatalf("unexpected error: %v", refresh.err)
	}
	if refresh.report != nil {
		t.Error("expected nil report with no commits")
	}
}

func TestRefresh_WithCommits(t *testing.T) {
	base := time.Date(2024, 5, 14, 14, 0, 0, 0, time.Local)
	m := newTestModel(&fakeSource{commits: []time.Time{base, base.Add(20 * time.Minute)}})

	msg := m.refresh()()
	refresh := msg.(refreshMsg)
	if refresh.err != nil {
		t.Fatalf("unexpected error: %v", refresh.err)
	}
	if refresh.report == nil {
		t.Fatal("expected a report")
	}
	if refresh.report.TotalSessions != 1 {
		t.Errorf("expected 1 session, got %d", refresh.report.TotalSessions)
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	}
	for _, key := range keys {
		m := newTestModel(&fakeSource{})
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Errorf("key %q should quit", key.String())
		}
	}
}

func TestUpdate_RefreshKey(t *testing.T) {
	m := newTestModel(&fakeSource{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd == nil {
		t.Error("expected a refresh command")
	}
}

func TestView_RendersPanes(t *testing.T) {
	m := newTestModel(&fakeSource{})

	base := time.Date(2024, 5, 14, 14, 0, 0, 0, time.Local)
	sessions := session.Build([]time.Time{base, base.Add(30 * time.Minute)}, 5*time.Minute)
	report := session.Analyze(sessions, session.Thresholds{
		LongSession:    3 * time.Hour,
		LateNightStart: 22,
		LateNightEnd:   6,
		DailyLimit:     8 * time.Hour,
		WeeklyLimit:    40 * time.Hour,
	}, base.Add(time.Hour))

	e := events.New(events.EventTypeAlertSent, events.SeverityWarning, "Night Owl Alert", "sleep")
	updated, _ := m.Update(refreshMsg{
		report:    &report,
		events:    []*events.Event{e},
		checkIns:  []*storage.CheckIn{{Mood: 4, Stress: 2, CreatedAt: base}},
		refreshed: base,
	})

	view := updated.View()
	for _, want := range []string{"Developer Health Monitor", "Coding Sessions", "Recent Events", "Night Owl Alert", "Check-Ins"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_QuittingIsEmpty(t *testing.T) {
	m := newTestModel(&fakeSource{})
	m.quitting = true
	if m.View() != "" {
		t.Error("expected empty view when quitting")
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 0m"},
		{135, "2h 15m"},
	}
	for _, tc := range cases {
		if got := formatMinutes(tc.minutes); got != tc.want {
			t.Errorf("formatMinutes(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}
