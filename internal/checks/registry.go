package checks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// Registry manages checker registration, scheduling, and run-state
// persistence. State survives restarts so reminder pacing doesn't reset
// every time the monitor starts.
type Registry struct {
	mu        sync.RWMutex
	checkers  map[string]Checker
	order     []string // registration order, for stable iteration
	state     *State
	statePath string
}

// State tracks the execution history of all checkers.
// This is persisted to disk to survive restarts.
type State struct {
	Checkers map[string]*RunState `json:"checkers"`
}

// RunState tracks the execution history for a single checker.
type RunState struct {
	LastRun         time.Time `json:"last_run"`
	LastFired       time.Time `json:"last_fired"`
	LastAlertCount  int       `json:"last_alert_count"`
	RunsSinceEpoch  int       `json:"runs_since_epoch"`
	FiresSinceEpoch int       `json:"fires_since_epoch"`
}

// NewRegistry creates a checker registry backed by the given state file.
func NewRegistry(statePath string) (*Registry, error) {
	stateDir := filepath.Dir(statePath)
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	r := &Registry{
		checkers:  make(map[string]Checker),
		state:     &State{Checkers: make(map[string]*RunState)},
		statePath: statePath,
	}

	if err := r.loadState(); err != nil {
		// Missing state file is fine; it gets created on first save
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading checker state: %w", err)
		}
	}

	return r, nil
}

// Register adds a checker to the registry.
func (r *Registry) Register(c Checker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := c.Name()
	if _, exists := r.checkers[name]; exists {
		return fmt.Errorf("checker %q already registered", name)
	}

	r.checkers[name] = c
	r.order = append(r.order, name)

	if _, exists := r.state.Checkers[name]; !exists {
		r.state.Checkers[name] = &RunState{}
	}

	return nil
}

// Get returns a registered checker by name.
func (r *Registry) Get(name string) (Checker, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.checkers[name]
	return c, exists
}

// Names returns all registered checker names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Due returns the checkers that should run now, in registration order.
func (r *Registry) Due(now time.Time) []Checker {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var due []Checker
	for _, name := range r.order {
		c := r.checkers[name]
		if r.shouldRun(c.Schedule(), r.state.Checkers[name], now) {
			due = append(due, c)
		}
	}
	return due
}

// shouldRun decides whether a checker is due based on its schedule and
// when it last fired. Checkers that ran but produced no alerts stay due,
// so a daily checker keeps retrying until it actually fires.
func (r *Registry) shouldRun(schedule Schedule, state *RunState, now time.Time) bool {
	switch schedule.Type {
	case ScheduleActivity:
		return true

	case ScheduleInterval:
		if state == nil || state.LastFired.IsZero() {
			return true
		}
		// Strictly greater: at exactly Interval the checker waits one
		// more tick.
		return now.Sub(state.LastFired) > schedule.Interval

	case ScheduleDaily:
		if state == nil || state.LastFired.IsZero() {
			return true
		}
		return state.LastFired.Format("2006-01-02") != now.Format("2006-01-02")
	}

	return false
}

// RecordRun updates the state after a checker executed and persists it.
func (r *Registry) RecordRun(name string, now time.Time, alertCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, exists := r.state.Checkers[name]
	if !exists {
		state = &RunState{}
		r.state.Checkers[name] = state
	}

	state.LastRun = now
	state.LastAlertCount = alertCount
	state.RunsSinceEpoch++
	if alertCount > 0 {
		state.LastFired = now
		state.FiresSinceEpoch++
	}

	return r.saveState()
}

// GetState returns the run state for a checker.
func (r *Registry) GetState(name string) (RunState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, exists := r.state.Checkers[name]
	if !exists {
		return RunState{}, false
	}
	return *state, true
}

// Run executes all due checkers against the activity snapshot and records
// their runs. Alerts are returned in registration order.
func (r *Registry) Run(ctx context.Context, activity Activity) ([]Alert, error) {
	due := r.Due(activity.Now)

	var alerts []Alert
	for _, c := range due {
		found := c.Check(ctx, activity)
		alerts = append(alerts, found...)
		if err := r.RecordRun(c.Name(), activity.Now, len(found)); err != nil {
			return alerts, fmt.Errorf("recording run for %s: %w", c.Name(), err)
		}
	}
	return alerts, nil
}

// loadState loads checker state from disk.
func (r *Registry) loadState() error {
	data, err := os.ReadFile(r.statePath)
	if err != nil {
		return err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("parsing state file: %w", err)
	}

	r.state = &state
	if r.state.Checkers == nil {
		r.state.Checkers = make(map[string]*RunState)
	}

	return nil
}

// saveState persists checker state to disk.
// MUST be called with r.mu held.
func (r *Registry) saveState() error {
	data, err := json.MarshalIndent(r.state, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing state: %w", err)
	}

	// Write atomically using temp file + rename
	tmpPath := r.statePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}

	if err := os.Rename(tmpPath, r.statePath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("committing state file: %w", err)
	}

	return nil
}

// SortedNames returns checker names sorted alphabetically (for display).
func (r *Registry) SortedNames() []string {
	names := r.Names()
	sort.Strings(names)
	return names
}
