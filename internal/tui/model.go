// Package tui renders the terminal dashboard: current session analysis
// on the left, recent health events and check-ins on the right.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/config"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/events"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/session"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/storage"
)

// CommitSource supplies commit timestamps. Satisfied by *gitlog.Reader.
type CommitSource interface {
	CommitTimes(ctx context.Context) ([]time.Time, error)
}

// Deps holds dashboard dependencies.
type Deps struct {
	Store  storage.Storage
	Source CommitSource
	Config *config.Config
}

// refreshMsg carries a completed data refresh back into Update.
type refreshMsg struct {
	report    *session.Report
	events    []*events.Event
	checkIns  []*storage.CheckIn
	refreshed time.Time
	err       error
}

// Model is the dashboard bubbletea model.
type Model struct {
	store  storage.Storage
	source CommitSource
	config *config.Config

	report    *session.Report
	events    []*events.Event
	checkIns  []*storage.CheckIn
	refreshed time.Time
	err       error

	width    int
	height   int
	quitting bool
}

// NewModel creates the dashboard model.
func NewModel(deps Deps) Model {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return Model{
		store:  deps.Store,
		source: deps.Source,
		config: cfg,
		width:  100,
		height: 30,
	}
}

func (m Model) Init() tea.Cmd {
	return m.refresh()
}

// refresh re-reads the commit history and the event store.
func (m Model) refresh() tea.Cmd {
	store, source, cfg := m.store, m.source, m.config
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		msg := refreshMsg{refreshed: time.Now()}

		commits, err := source.CommitTimes(ctx)
		if err != nil {
			msg.err = err
			return msg
		}
		if len(commits) > 0 {
			sessions := session.Build(commits, cfg.MinBreak)
			report := session.Analyze(sessions, session.Thresholds{
				LongSession:    cfg.LongSession,
				LateNightStart: cfg.LateNightStart,
				LateNightEnd:   cfg.LateNightEnd,
				DailyLimit:     cfg.DailyLimit,
				WeeklyLimit:    cfg.WeeklyLimit,
			}, time.Now())
			msg.report = &report
		}

		if msg.events, err = store.GetRecentEvents(ctx, 15); err != nil {
			msg.err = err
			return msg
		}
		if msg.checkIns, err = store.GetRecentCheckIns(ctx, 5); err != nil {
			msg.err = err
			return msg
		}

		return msg
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		m.report = msg.report
		m.events = msg.events
		m.checkIns = msg.checkIns
		m.refreshed = msg.refreshed
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m, m.refresh()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := titleStyle.Render("Developer Health Monitor")
	refreshed := ""
	if !m.refreshed.IsZero() {
		refreshed = dimStyle.Render("  refreshed " + m.refreshed.Format("15:04:05"))
	}
	b.WriteString(title + refreshed + "\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("  Error: "+m.err.Error()) + "\n")
	}

	paneWidth := m.width/2 - 4
	if paneWidth < 30 {
		paneWidth = 30
	}

	left := paneStyle.Width(paneWidth).Render(m.renderSummary())
	right := paneStyle.Width(paneWidth).Render(m.renderActivity())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("  r: refresh  q: quit"))

	return b.String()
}

// renderSummary renders the session analysis pane.
func (m Model) renderSummary() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render("Coding Sessions") + "\n\n")

	if m.report == nil {
		b.WriteString(dimStyle.Render("No commit data found."))
		return b.String()
	}
	r := m.report

	b.WriteString(fmt.Sprintf("Sessions analyzed: %d\n", r.TotalSessions))
	b.WriteString(fmt.Sprintf("Coding today:      %s\n", formatMinutes(r.DailyMinutes)))
	b.WriteString(fmt.Sprintf("Coding this week:  %s\n", formatMinutes(r.WeeklyMinutes)))
	b.WriteString("\n")

	if r.Healthy() {
		b.WriteString(healthyStyle.Render("✅ Your coding habits look healthy!") + "\n")
	} else {
		if r.LongSessions > 0 {
			b.WriteString(warningStyle.Render(fmt.Sprintf("⚠ %d long session(s)", r.LongSessions)) + "\n")
		}
		if r.NoBreakSessions > 0 {
			b.WriteString(warningStyle.Render(fmt.Sprintf("⚠ %d session(s) without a break", r.NoBreakSessions)) + "\n")
		}
		if r.LateNightCommits > 0 {
			b.WriteString(warningStyle.Render(fmt.Sprintf("⚠ %d late-night commit(s)", r.LateNightCommits)) + "\n")
		}
		if r.OverDailyLimit() {
			b.WriteString(warningStyle.Render("⚠ Over the daily coding limit") + "\n")
		}
		if r.OverWeeklyLimit() {
			b.WriteString(warningStyle.Render("⚠ Over the weekly coding limit") + "\n")
		}
	}

	// Most recent sessions, newest last
	if n := len(r.Sessions); n > 0 {
		b.WriteString("\n" + paneTitleStyle.Render("Recent") + "\n")
		start := n - 5
		if start < 0 {
			start = 0
		}
		for _, s := range r.Sessions[start:] {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				s.Start().Format("01-02 15:04"),
				formatMinutes(int(s.Duration().Minutes()))))
		}
	}

	return b.String()
}

// renderActivity renders the events and check-ins pane.
func (m Model) renderActivity() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render("Recent Events") + "\n\n")

	if len(m.events) == 0 {
		b.WriteString(dimStyle.Render("No events recorded yet.") + "\n")
	}
	for _, e := range m.events {
		style := infoStyle
		if e.Severity == events.SeverityWarning {
			style = warningStyle
		} else if e.Severity == events.SeverityError {
			style = errorStyle
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			dimStyle.Render(e.CreatedAt.Format("01-02 15:04")),
			style.Render(e.Title)))
	}

	if len(m.checkIns) > 0 {
		b.WriteString("\n" + paneTitleStyle.Render("Check-Ins") + "\n")
		for _, c := range m.checkIns {
			line := fmt.Sprintf("  %s  mood %d/5, stress %d/5",
				dimStyle.Render(c.CreatedAt.Format("01-02 15:04")), c.Mood, c.Stress)
			if c.Note != "" {
				line += dimStyle.Render("  " + c.Note)
			}
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

func formatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// Run starts the dashboard and blocks until the user quits.
func Run(ctx context.Context, deps Deps) error {
	p := tea.NewProgram(NewModel(deps), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
