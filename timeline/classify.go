package timeline

import (
	"time"

	"github.com/zero-day-ai/console/finding"
)

// DefaultWindow is the default approaching-warning window in days.
// The window is policy, not a constant of the algorithm; it is always read
// from the classifier.
const DefaultWindow = 3

// Classifier buckets finding lifecycle dates into calendar days.
//
// A classifier is pure configuration: for a fixed record set and a fixed
// "now", DayEvents and Month return identical output on every call.
type Classifier struct {
	// Window is the number of days before the due date on which an
	// sla-approaching event fires. Non-positive values fall back to
	// DefaultWindow.
	Window int

	// Terminal reports whether a status label closes a finding. Closed
	// findings generate no SLA events.
	Terminal finding.TerminalFunc

	// Now supplies the current instant, used only for the Today flag on
	// month grids. Defaults to time.Now.
	Now func() time.Time
}

// NewClassifier creates a classifier for the given record kind with the
// default warning window.
func NewClassifier(kind finding.Kind) *Classifier {
	return &Classifier{
		Window:   DefaultWindow,
		Terminal: kind.Terminal(),
	}
}

func (c *Classifier) window() int {
	if c.Window < 1 {
		return DefaultWindow
	}
	return c.Window
}

func (c *Classifier) terminal(status string) bool {
	if c.Terminal == nil {
		return false
	}
	return c.Terminal(status)
}

func (c *Classifier) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// DayEvents returns the events falling on the given calendar day.
//
// Each record contributes up to three events, evaluated independently:
// created on its creation day, and, while still open and carrying a due
// date, sla-approaching exactly Window days before the due date and
// sla-breached on the due date itself. Days past due fire nothing; the
// breach is a single-day event, not a persistent state.
func (c *Classifier) DayEvents(records []finding.Record, day time.Time) []Event {
	target := dayOf(day)
	var events []Event
	for _, r := range records {
		if sameDay(r.CreatedDay(), target) {
			events = append(events, newEvent(EventCreated, r))
		}
		due := r.DueDay()
		if due.IsZero() || c.terminal(r.Status) {
			continue
		}
		if sameDay(due.AddDate(0, 0, -c.window()), target) {
			events = append(events, newEvent(EventSLAApproaching, r))
		}
		if sameDay(due, target) {
			events = append(events, newEvent(EventSLABreached, r))
		}
	}
	return events
}

// dayOf truncates an instant to calendar-day precision in UTC.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sameDay reports whether two day-precision values are the same calendar
// day. The zero time never matches anything.
func sameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return a.Equal(b)
}
