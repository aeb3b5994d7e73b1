package timeline

import (
	"time"

	"github.com/zero-day-ai/console/finding"
)

// GridCells is the size of a rendered month: six Sunday-first weeks,
// including the leading and trailing days of adjacent months.
const GridCells = 42

// Day is one cell of a rendered month grid.
type Day struct {
	// Date is the cell's calendar day (UTC, day precision).
	Date time.Time `json:"date"`

	// InMonth is true when the cell belongs to the displayed month.
	InMonth bool `json:"in_month"`

	// Today is true when the cell is the current calendar day.
	Today bool `json:"today"`

	// Events are the findings events falling on this day.
	Events []Event `json:"events,omitempty"`
}

// Selectable reports whether the cell opens a day-detail view.
// Cells with no events are non-interactive.
func (d Day) Selectable() bool {
	return len(d.Events) > 0
}

// Month renders the 42-cell grid for the month containing anchor.
// The grid starts on the Sunday on or before the first of the month.
func (c *Classifier) Month(records []finding.Record, anchor time.Time) []Day {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	today := dayOf(c.now())

	grid := make([]Day, GridCells)
	for i := range grid {
		date := start.AddDate(0, 0, i)
		grid[i] = Day{
			Date:    date,
			InMonth: date.Month() == first.Month() && date.Year() == first.Year(),
			Today:   sameDay(date, today),
			Events:  c.DayEvents(records, date),
		}
	}
	return grid
}

// AddMonths shifts t by n calendar months, clamping the day-of-month at
// the target month's length (Jan 31 + 1 month = Feb 28/29). This is not
// time.AddDate, which rolls overflow into the next month.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	// Day 0 of the following month is the target month's last day.
	last := time.Date(firstOfTarget.Year(), firstOfTarget.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if d > last {
		d = last
	}
	h, min, sec := t.Clock()
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, h, min, sec, t.Nanosecond(), t.Location())
}

// NextMonth advances the anchor by one calendar month.
func NextMonth(anchor time.Time) time.Time {
	return AddMonths(anchor, 1)
}

// PrevMonth moves the anchor back one calendar month.
func PrevMonth(anchor time.Time) time.Time {
	return AddMonths(anchor, -1)
}
