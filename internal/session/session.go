// Package session groups commit timestamps into coding sessions and
// analyzes them for unhealthy work patterns.
package session

import (
	"sort"
	"time"
)

// Session is a contiguous period of development activity, reconstructed
// from commit timestamps. Commits are always sorted ascending.
type Session struct {
	Commits []time.Time
}

// Start returns the first commit time of the session.
func (s Session) Start() time.Time {
	if len(s.Commits) == 0 {
		return time.Time{}
	}
	return s.Commits[0]
}

// End returns the last commit time of the session.
func (s Session) End() time.Time {
	if len(s.Commits) == 0 {
		return time.Time{}
	}
	return s.Commits[len(s.Commits)-1]
}

// Duration returns the span from first to last commit.
// A single-commit session has zero duration.
func (s Session) Duration() time.Duration {
	if len(s.Commits) == 0 {
		return 0
	}
	return s.End().Sub(s.Start())
}

// MaxGap returns the largest pause between consecutive commits in the
// session, or zero for sessions with fewer than two commits.
func (s Session) MaxGap() time.Duration {
	var max time.Duration
	for i := 1; i < len(s.Commits); i++ {
		if gap := s.Commits[i].Sub(s.Commits[i-1]); gap > max {
			max = gap
		}
	}
	return max
}

// Build groups commit times into sessions. Consecutive commits separated
// by more than minBreak start a new session; a gap of exactly minBreak
// stays in the same session. The input need not be sorted.
func Build(commits []time.Time, minBreak time.Duration) []Session {
	if len(commits) == 0 {
		return nil
	}

	sorted := make([]time.Time, len(commits))
	copy(sorted, commits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	var sessions []Session
	current := Session{Commits: []time.Time{sorted[0]}}

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) > minBreak {
			sessions = append(sessions, current)
			current = Session{Commits: []time.Time{sorted[i]}}
		} else {
			current.Commits = append(current.Commits, sorted[i])
		}
	}

	return append(sessions, current)
}
