package checks

import (
	"context"
	"fmt"
	"time"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/config"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/events"
)

// LongSession flags sessions that ran longer than the configured limit.
type LongSession struct{}

func (LongSession) Name() string        { return "long_session" }
func (LongSession) Description() string { return "Detects coding sessions longer than the limit" }
func (LongSession) Schedule() Schedule  { return Schedule{Type: ScheduleActivity} }

func (LongSession) Check(ctx context.Context, a Activity) []Alert {
	if a.Report.LongSessions == 0 {
		return nil
	}
	return []Alert{{
		Title:    "Developer Health Alert",
		Message:  fmt.Sprintf("You had %d long coding session(s). Remember to take breaks!", a.Report.LongSessions),
		Category: "long_session",
		Severity: events.SeverityWarning,
	}}
}

// NoBreak flags sessions over two hours without a significant pause.
type NoBreak struct{}

func (NoBreak) Name() string        { return "no_break" }
func (NoBreak) Description() string { return "Detects long stretches of coding without a break" }
func (NoBreak) Schedule() Schedule  { return Schedule{Type: ScheduleActivity} }

func (NoBreak) Check(ctx context.Context, a Activity) []Alert {
	if a.Report.NoBreakSessions == 0 {
		return nil
	}
	return []Alert{{
		Title:    "Break Reminder",
		Message:  "You've been coding for over 2 hours without a significant break. Please take a break!",
		Category: "no_break",
		Severity: events.SeverityWarning,
	}}
}

// NightOwl flags commits made inside the late-night window.
type NightOwl struct{}

func (NightOwl) Name() string        { return "night_owl" }
func (NightOwl) Description() string { return "Detects late-night commits" }
func (NightOwl) Schedule() Schedule  { return Schedule{Type: ScheduleActivity} }

func (NightOwl) Check(ctx context.Context, a Activity) []Alert {
	if a.Report.LateNightCommits == 0 {
		return nil
	}
	return []Alert{{
		Title:    "Night Owl Alert",
		Message:  "You committed code late at night. Prioritize rest for better productivity.",
		Category: "night_owl",
		Severity: events.SeverityWarning,
	}}
}

// DailyLimit flags days with more coding time than the daily limit.
type DailyLimit struct{}

func (DailyLimit) Name() string        { return "daily_limit" }
func (DailyLimit) Description() string { return "Warns when daily coding time exceeds the limit" }
func (DailyLimit) Schedule() Schedule  { return Schedule{Type: ScheduleActivity} }

func (DailyLimit) Check(ctx context.Context, a Activity) []Alert {
	if !a.Report.OverDailyLimit() {
		return nil
	}
	return []Alert{{
		Title: "Work Limit Warning",
		Message: fmt.Sprintf("You've coded more than %d hours today. Consider taking a longer break!",
			int(a.Config.DailyLimit.Hours())),
		Category: "daily_limit",
		Severity: events.SeverityWarning,
	}}
}

// WeeklyLimit flags weeks with more coding time than the weekly limit.
type WeeklyLimit struct{}

func (WeeklyLimit) Name() string        { return "weekly_limit" }
func (WeeklyLimit) Description() string { return "Warns when weekly coding time exceeds the limit" }
func (WeeklyLimit) Schedule() Schedule  { return Schedule{Type: ScheduleActivity} }

func (WeeklyLimit) Check(ctx context.Context, a Activity) []Alert {
	if !a.Report.OverWeeklyLimit() {
		return nil
	}
	return []Alert{{
		Title: "Weekly Limit Warning",
		Message: fmt.Sprintf("You've coded more than %d hours this week. Watch for burnout!",
			int(a.Config.WeeklyLimit.Hours())),
		Category: "weekly_limit",
		Severity: events.SeverityWarning,
	}}
}

// Hydration reminds the user to drink water at a fixed interval.
type Hydration struct {
	Interval time.Duration
}

func (Hydration) Name() string        { return "hydration" }
func (Hydration) Description() string { return "Periodic reminder to drink water" }
func (h Hydration) Schedule() Schedule {
	return Schedule{Type: ScheduleInterval, Interval: h.Interval}
}

func (Hydration) Check(ctx context.Context, a Activity) []Alert {
	return []Alert{{
		Title:    "Hydration Reminder",
		Message:  "Time to drink some water!",
		Category: "hydration",
		Severity: events.SeverityInfo,
	}}
}

// Movement reminds the user to stand up and stretch.
type Movement struct {
	Interval time.Duration
}

func (Movement) Name() string        { return "movement" }
func (Movement) Description() string { return "Periodic reminder to stand up and stretch" }
func (m Movement) Schedule() Schedule {
	return Schedule{Type: ScheduleInterval, Interval: m.Interval}
}

func (Movement) Check(ctx context.Context, a Activity) []Alert {
	return []Alert{{
		Title:    "Activity Reminder",
		Message:  "Stand up and stretch for a few minutes!",
		Category: "movement",
		Severity: events.SeverityInfo,
	}}
}

// Ergonomics shares posture and eye-strain tips.
type Ergonomics struct {
	Interval time.Duration
}

func (Ergonomics) Name() string        { return "ergonomics" }
func (Ergonomics) Description() string { return "Periodic posture and eye-strain tips" }
func (e Ergonomics) Schedule() Schedule {
	return Schedule{Type: ScheduleInterval, Interval: e.Interval}
}

func (Ergonomics) Check(ctx context.Context, a Activity) []Alert {
	return []Alert{{
		Title:    "Ergonomics Tip",
		Message:  "Check your posture and desk setup. 20-20-20 rule: every 20 minutes, look at something 20 feet away for 20 seconds.",
		Category: "ergonomics",
		Severity: events.SeverityInfo,
	}}
}

// MoodCheck prompts the user to reflect on mood and stress.
type MoodCheck struct {
	Interval time.Duration
}

func (MoodCheck) Name() string        { return "mood_check" }
func (MoodCheck) Description() string { return "Periodic prompt to reflect on mood and stress" }
func (m MoodCheck) Schedule() Schedule {
	return Schedule{Type: ScheduleInterval, Interval: m.Interval}
}

func (MoodCheck) Check(ctx context.Context, a Activity) []Alert {
	return []Alert{{
		Title:    "Mood Check-In",
		Message:  "How are you feeling? Take a moment to reflect on your mood and stress level.",
		Category: "mood_check",
		Severity: events.SeverityInfo,
	}}
}

// Encouragement praises healthy habits, at most once per day.
type Encouragement struct{}

func (Encouragement) Name() string        { return "encouragement" }
func (Encouragement) Description() string { return "Daily positive reinforcement for healthy habits" }
func (Encouragement) Schedule() Schedule  { return Schedule{Type: ScheduleDaily} }

func (Encouragement) Check(ctx context.Context, a Activity) []Alert {
	if !a.Report.Healthy() {
		return nil
	}
	return []Alert{{
		Title:    "Great Job!",
		Message:  "✅ Your coding habits look healthy! Keep it up!",
		Category: "encouragement",
		Severity: events.SeverityInfo,
	}}
}

// RegisterDefaults registers the full checker set with intervals taken
// from the config. Registration order determines notification order.
func RegisterDefaults(r *Registry, cfg *config.Config) error {
	checkers := []Checker{
		LongSession{},
		NoBreak{},
		NightOwl{},
		DailyLimit{},
		WeeklyLimit{},
		Hydration{Interval: cfg.HydrationInterval},
		Movement{Interval: cfg.ActivityInterval},
		Ergonomics{Interval: cfg.ErgonomicsInterval},
		MoodCheck{Interval: cfg.MoodCheckInterval},
		Encouragement{},
	}

	for _, c := range checkers {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}
