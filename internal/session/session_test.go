package session

import (
	"testing"
	"time"
)

// base is a Tuesday at 14:00 local time, safely outside the late-night window.
var base = time.Date(2024, 5, 14, 14, 0, 0, 0, time.Local)

func commits(offsets ...time.Duration) []time.Time {
	out := make([]time.Time, len(offsets))
	for i, off := range offsets {
		out[i] = base.Add(off)
	}
	return out
}

func TestBuild_Empty(t *testing.T) {
	if got := Build(nil, 5*time.Minute); len(got) != 0 {
		t.Errorf("expected no sessions, got %d", len(got))
	}
}

func TestBuild_SingleCommit(t *testing.T) {
	sessions := Build(commits(0), 5*time.Minute)
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].Duration() != 0 {
		t.Errorf("expected zero duration, got %v", sessions[0].Duration())
	}
}

func TestBuild_SplitsOnGap(t *testing.T) {
	// 3 commits close together, 10m gap, then 2 more
	input := commits(0, 2*time.Minute, 4*time.Minute, 14*time.Minute, 16*time.Minute)

	sessions := Build(input, 5*time.Minute)
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if len(sessions[0].Commits) != 3 {
		t.Errorf("expected 3 commits in first session, got %d", len(sessions[0].Commits))
	}
	if len(sessions[1].Commits) != 2 {
		t.Errorf("expected 2 commits in second session, got %d", len(sessions[1].Commits))
	}
}

func TestBuild_GapExactlyAtThresholdStaysTogether(t *testing.T) {
	input := commits(0, 5*time.Minute)

	sessions := Build(input, 5*time.Minute)
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session for gap == threshold, got %d", len(sessions))
	}
}

func TestBuild_SortsInput(t *testing.T) {
	input := commits(10*time.Minute, 0, 2*time.Minute)

	sessions := Build(input, 5*time.Minute)
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if !sessions[0].Start().Equal(base) {
		t.Errorf("expected first session to start at base, got %v", sessions[0].Start())
	}
}

func defaultThresholds() Thresholds {
	return Thresholds{
		LongSession:    3 * time.Hour,
		LateNightStart: 22,
		LateNightEnd:   6,
		DailyLimit:     8 * time.Hour,
		WeeklyLimit:    40 * time.Hour,
	}
}

func TestAnalyze_LongSession(t *testing.T) {
	// One session spanning 3.5h with commits every 4 minutes... use two
	// commits 3.5h apart grouped manually.
	s := Session{Commits: commits(0, 3*time.Hour+30*time.Minute)}

	report := Analyze([]Session{s}, defaultThresholds(), base)
	if report.LongSessions != 1 {
		t.Errorf("expected 1 long session, got %d", report.LongSessions)
	}
}

func TestAnalyze_LongSessionBoundary(t *testing.T) {
	// Exactly 3h is not "over" the threshold
	s := Session{Commits: commits(0, 3*time.Hour)}

	report := Analyze([]Session{s}, defaultThresholds(), base)
	if report.LongSessions != 0 {
		t.Errorf("session of exactly 3h should not count as long, got %d", report.LongSessions)
	}
}

func TestAnalyze_NoBreakSession(t *testing.T) {
	// 2.5h session with commits every 30m: no 60m gap anywhere
	s := Session{Commits: commits(0, 30*time.Minute, time.Hour, 90*time.Minute, 2*time.Hour, 2*time.Hour+30*time.Minute)}

	report := Analyze([]Session{s}, defaultThresholds(), base)
	if report.NoBreakSessions != 1 {
		t.Errorf("expected 1 no-break session, got %d", report.NoBreakSessions)
	}
}

func TestAnalyze_SessionWithRealBreakNotFlagged(t *testing.T) {
	// 2.5h span but includes a 70m pause (session gap threshold irrelevant
	// here, session constructed directly)
	s := Session{Commits: commits(0, 30*time.Minute, 30*time.Minute+70*time.Minute, 2*time.Hour+30*time.Minute)}

	report := Analyze([]Session{s}, defaultThresholds(), base)
	if report.NoBreakSessions != 0 {
		t.Errorf("session with a 70m pause should not be flagged, got %d", report.NoBreakSessions)
	}
}

func TestAnalyze_LateNightCommits(t *testing.T) {
	night := time.Date(2024, 5, 14, 23, 15, 0, 0, time.Local)
	early := time.Date(2024, 5, 15, 5, 45, 0, 0, time.Local)
	morning := time.Date(2024, 5, 15, 9, 0, 0, 0, time.Local)

	sessions := []Session{
		{Commits: []time.Time{night}},
		{Commits: []time.Time{early}},
		{Commits: []time.Time{morning}},
	}

	report := Analyze(sessions, defaultThresholds(), base)
	if report.LateNightCommits != 2 {
		t.Errorf("expected 2 late-night commits, got %d", report.LateNightCommits)
	}
}

func TestIsLateNight_WindowEdges(t *testing.T) {
	cases := []struct {
		hour int
		want bool
	}{
		{21, false},
		{22, true}, // window start is inclusive
		{23, true},
		{0, true},
		{5, true},
		{6, false}, // window end is exclusive
		{12, false},
	}

	for _, tc := range cases {
		ts := time.Date(2024, 5, 14, tc.hour, 0, 0, 0, time.Local)
		if got := IsLateNight(ts, 22, 6); got != tc.want {
			t.Errorf("hour %d: expected %v, got %v", tc.hour, tc.want, got)
		}
	}
}

func TestAnalyze_DailyAndWeeklyMinutes(t *testing.T) {
	now := base

	today := Session{Commits: commits(0, 2*time.Hour)}
	// Previous day, same ISO week (Monday)
	yesterday := Session{Commits: []time.Time{
		base.AddDate(0, 0, -1),
		base.AddDate(0, 0, -1).Add(time.Hour),
	}}
	// Previous week
	lastWeek := Session{Commits: []time.Time{
		base.AddDate(0, 0, -8),
		base.AddDate(0, 0, -8).Add(4 * time.Hour),
	}}

	report := Analyze([]Session{today, yesterday, lastWeek}, defaultThresholds(), now)

	if report.DailyMinutes != 120 {
		t.Errorf("expected 120 daily minutes, got %d", report.DailyMinutes)
	}
	if report.WeeklyMinutes != 180 {
		t.Errorf("expected 180 weekly minutes, got %d", report.WeeklyMinutes)
	}
}

func TestAnalyze_RepeatedCallsDoNotAccumulate(t *testing.T) {
	sessions := []Session{{Commits: commits(0, time.Hour)}}

	first := Analyze(sessions, defaultThresholds(), base)
	second := Analyze(sessions, defaultThresholds(), base)

	if first.DailyMinutes != second.DailyMinutes {
		t.Errorf("daily minutes changed between calls: %d vs %d", first.DailyMinutes, second.DailyMinutes)
	}
}

func TestReport_Healthy(t *testing.T) {
	report := Analyze([]Session{{Commits: commits(0, time.Hour)}}, defaultThresholds(), base)
	if !report.Healthy() {
		t.Error("one-hour afternoon session should be healthy")
	}

	over := Analyze([]Session{{Commits: commits(0, 9*time.Hour)}}, defaultThresholds(), base)
	if over.Healthy() {
		t.Error("9h day should not be healthy")
	}
	if !over.OverDailyLimit() {
		t.Error("9h day should exceed the daily limit")
	}
}

func TestReport_Summary(t *testing.T) {
	report := Analyze([]Session{{Commits: commits(0, time.Hour)}}, defaultThresholds(), base)
	summary := report.Summary()

	for _, want := range []string{
		"--- Developer Health Summary ---",
		"Total coding sessions: 1",
		"Long sessions (> 3h): 0",
		"Late-night commits (22:00-06:00): 0",
		"✅ Your coding habits look healthy!",
		"All analysis is local. Your data never leaves your machine.",
	} {
		if !containsLine(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestReport_SummaryWarnings(t *testing.T) {
	night := time.Date(2024, 5, 14, 23, 0, 0, 0, time.Local)
	sessions := []Session{
		{Commits: commits(0, 4*time.Hour)},
		{Commits: []time.Time{night}},
	}

	summary := Analyze(sessions, defaultThresholds(), base).Summary()

	if !containsLine(summary, "⚠️  You had some long coding sessions. Remember to take breaks!") {
		t.Errorf("summary missing long-session warning:\n%s", summary)
	}
	if !containsLine(summary, "⚠️  You committed code late at night. Prioritize rest for better productivity.") {
		t.Errorf("summary missing late-night warning:\n%s", summary)
	}
	if containsLine(summary, "✅ Your coding habits look healthy!") {
		t.Errorf("unhealthy summary should not contain the healthy line:\n%s", summary)
	}
}

func containsLine(s, line string) bool {
	for _, l := range splitLines(s) {
		if l == line {
			return true
		}
	}
	return false
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
