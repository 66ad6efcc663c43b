package session

import (
	"fmt"
	"strings"
	"time"
)

// Thresholds for patterns the original tool hardcodes independently of
// the configurable long-session limit.
const (
	// noBreakMinDuration is the session length after which a session
	// without a significant pause counts as break-less.
	noBreakMinDuration = 2 * time.Hour

	// significantBreak is the intra-session pause that counts as a
	// real break.
	significantBreak = 60 * time.Minute
)

// Thresholds carries the analysis knobs so this package doesn't depend
// on the config package.
type Thresholds struct {
	LongSession    time.Duration
	LateNightStart int // hour 0-23, inclusive
	LateNightEnd   int // hour 0-23, exclusive
	DailyLimit     time.Duration
	WeeklyLimit    time.Duration
}

// Report summarizes the health analysis of a set of sessions.
type Report struct {
	TotalSessions    int
	LongSessions     int
	NoBreakSessions  int
	LateNightCommits int
	DailyMinutes     int
	WeeklyMinutes    int

	Thresholds Thresholds
	Sessions   []Session
}

// IsLateNight reports whether t falls in the late-night window
// [start, 24) ∪ [0, end).
func IsLateNight(t time.Time, start, end int) bool {
	h := t.Hour()
	return h >= start || h < end
}

// Analyze inspects sessions for unhealthy patterns relative to now.
// Daily and weekly totals are recomputed from scratch on every call, so
// repeated analysis never inflates them.
func Analyze(sessions []Session, th Thresholds, now time.Time) Report {
	report := Report{
		TotalSessions: len(sessions),
		Thresholds:    th,
		Sessions:      sessions,
	}

	today := now.Format("2006-01-02")
	year, week := now.ISOWeek()

	for _, s := range sessions {
		if s.Duration() > th.LongSession {
			report.LongSessions++
		}

		if s.Duration() > noBreakMinDuration && s.MaxGap() < significantBreak {
			report.NoBreakSessions++
		}

		for _, c := range s.Commits {
			if IsLateNight(c, th.LateNightStart, th.LateNightEnd) {
				report.LateNightCommits++
			}
		}

		if s.Start().Format("2006-01-02") == today {
			report.DailyMinutes += int(s.Duration().Minutes())
		}
		if sy, sw := s.Start().ISOWeek(); sy == year && sw == week {
			report.WeeklyMinutes += int(s.Duration().Minutes())
		}
	}

	return report
}

// OverDailyLimit reports whether today's coding time exceeds the limit.
func (r Report) OverDailyLimit() bool {
	return time.Duration(r.DailyMinutes)*time.Minute > r.Thresholds.DailyLimit
}

// OverWeeklyLimit reports whether this week's coding time exceeds the limit.
func (r Report) OverWeeklyLimit() bool {
	return time.Duration(r.WeeklyMinutes)*time.Minute > r.Thresholds.WeeklyLimit
}

// Healthy reports whether no unhealthy pattern was detected.
func (r Report) Healthy() bool {
	return r.LongSessions == 0 &&
		r.NoBreakSessions == 0 &&
		r.LateNightCommits == 0 &&
		!r.OverDailyLimit() &&
		!r.OverWeeklyLimit()
}

// Summary renders the plain-text health summary block.
func (r Report) Summary() string {
	var lines []string
	lines = append(lines, "--- Developer Health Summary ---\n")
	lines = append(lines, fmt.Sprintf("Total coding sessions: %d", r.TotalSessions))
	lines = append(lines, fmt.Sprintf("Long sessions (> %dh): %d",
		int(r.Thresholds.LongSession.Hours()), r.LongSessions))
	lines = append(lines, fmt.Sprintf("Late-night commits (%02d:00-%02d:00): %d",
		r.Thresholds.LateNightStart, r.Thresholds.LateNightEnd, r.LateNightCommits))

	if r.LongSessions > 0 {
		lines = append(lines, "\n⚠️  You had some long coding sessions. Remember to take breaks!")
	}
	if r.LateNightCommits > 0 {
		lines = append(lines, "\n⚠️  You committed code late at night. Prioritize rest for better productivity.")
	}
	if r.LongSessions == 0 && r.LateNightCommits == 0 {
		lines = append(lines, "\n✅ Your coding habits look healthy!")
	}

	lines = append(lines, "\nAll analysis is local. Your data never leaves your machine.")
	return strings.Join(lines, "\n")
}
