// Package notify delivers alerts to the developer: native desktop
// popups, colored console output, or both.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gen2brain/beeep"
	"golang.org/x/time/rate"

	"github.com/Syntax-XXX/dev-healt-monitor/internal/checks"
	"github.com/Syntax-XXX/dev-healt-monitor/internal/events"
)

// Notifier delivers a single alert.
type Notifier interface {
	Notify(ctx context.Context, alert checks.Alert) error
}

// Desktop sends native desktop notifications.
type Desktop struct {
	// AppName is shown as the notification source where the platform
	// supports it.
	AppName string
}

// NewDesktop creates a desktop notifier.
func NewDesktop() *Desktop {
	return &Desktop{AppName: "Developer Health Monitor"}
}

// Notify sends a native popup. Failures are returned so callers can fall
// back to console output.
func (d *Desktop) Notify(ctx context.Context, alert checks.Alert) error {
	if err := beeep.Notify(alert.Title, alert.Message, ""); err != nil {
		return fmt.Errorf("desktop notification failed: %w", err)
	}
	return nil
}

// Console prints alerts to the terminal with severity-based coloring.
type Console struct{}

// NewConsole creates a console notifier.
func NewConsole() *Console {
	return &Console{}
}

// Notify prints the alert.
func (c *Console) Notify(ctx context.Context, alert checks.Alert) error {
	title := color.New(color.FgCyan, color.Bold).SprintFunc()
	if alert.Severity == events.SeverityWarning {
		title = color.New(color.FgYellow, color.Bold).SprintFunc()
	}
	if alert.Severity == events.SeverityError {
		title = color.New(color.FgRed, color.Bold).SprintFunc()
	}

	fmt.Printf("%s %s\n", title(alert.Title+":"), alert.Message)
	return nil
}

// Multi fans an alert out to several notifiers. Every notifier is
// attempted; the first error is returned.
type Multi struct {
	notifiers []Notifier
}

// NewMulti creates a fanout notifier.
func NewMulti(notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

// Notify delivers to all underlying notifiers.
func (m *Multi) Notify(ctx context.Context, alert checks.Alert) error {
	var firstErr error
	for _, n := range m.notifiers {
		if err := n.Notify(ctx, alert); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Paced wraps a notifier with pacing so consecutive popups don't pile on
// top of each other. The first notification goes out immediately.
type Paced struct {
	inner   Notifier
	limiter *rate.Limiter
}

// NewPaced creates a paced notifier with the given minimum spacing
// between notifications. A zero or negative spacing disables pacing.
func NewPaced(inner Notifier, spacing time.Duration) *Paced {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if spacing > 0 {
		limiter = rate.NewLimiter(rate.Every(spacing), 1)
	}
	return &Paced{inner: inner, limiter: limiter}
}

// Notify waits for the pacing window, then delivers.
func (p *Paced) Notify(ctx context.Context, alert checks.Alert) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("notification pacing interrupted: %w", err)
	}
	return p.inner.Notify(ctx, alert)
}
