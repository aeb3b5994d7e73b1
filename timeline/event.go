package timeline

import "github.com/zero-day-ai/console/finding"

// EventType identifies the lifecycle moment an event marks on the calendar.
type EventType string

const (
	// EventCreated marks the day a finding was created.
	EventCreated EventType = "created"

	// EventSLAApproaching marks the day a finding enters the warning
	// window before its due date.
	EventSLAApproaching EventType = "sla-approaching"

	// EventSLABreached marks the due day of a finding that is still open.
	// It fires on the due date only, not on every day past due.
	EventSLABreached EventType = "sla-breached"
)

// Fixed display colors for SLA events. Created events are tinted by the
// record's severity instead.
const (
	colorApproaching = "amber"
	colorBreached    = "red"
)

// Event is a single calendar entry derived from a finding record.
type Event struct {
	// Type is the lifecycle moment this event marks.
	Type EventType `json:"type"`

	// Record is the source finding.
	Record finding.Record `json:"record"`

	// Title is the display title for day-detail views.
	Title string `json:"title"`

	// Color is the display color tag for the calendar cell.
	Color string `json:"color"`
}

// newEvent builds the display representation for a record's event.
func newEvent(kind EventType, r finding.Record) Event {
	e := Event{Type: kind, Record: r}
	switch kind {
	case EventCreated:
		e.Title = r.Title
		e.Color = r.Severity.Color()
	case EventSLAApproaching:
		e.Title = "SLA approaching: " + r.Title
		e.Color = colorApproaching
	case EventSLABreached:
		e.Title = "SLA breached: " + r.Title
		e.Color = colorBreached
	}
	return e
}
