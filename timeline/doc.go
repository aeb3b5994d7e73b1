// Package timeline classifies finding lifecycle dates into calendar-day
// buckets for the SLA timeline view.
//
// Three event kinds exist per finding, evaluated independently: created on
// the creation day, sla-approaching a configurable number of days before
// the due date, and sla-breached on the due date itself while the finding
// is still open. A finding with no due date generates no SLA events, and a
// terminal status suppresses both SLA kinds while leaving the created
// event in place.
//
// Month renders a 42-cell Sunday-first grid; AddMonths navigates between
// months with day-of-month clamping at month-end boundaries.
package timeline
