package finding

import (
	"strings"
	"time"
)

// Record is the common projection both tasks and vulnerabilities satisfy.
// The query engine and timeline classifier only ever see this shape; the
// task/vulnerability source models convert themselves via their Record
// methods.
//
// Dates are carried as ISO strings exactly as delivered by the backend.
// The month filter is a plain YYYY-MM prefix match on CreatedDate, so the
// strings are the source of truth; CreatedAt and friends parse on demand.
type Record struct {
	// ID is the unique, stable identifier.
	ID string `json:"id"`

	// Key is the human-readable short code, e.g. "APP-001".
	Key string `json:"key"`

	// Title is a brief summary of the finding.
	Title string `json:"title"`

	// Kind tags which record type this projection came from.
	Kind Kind `json:"kind"`

	// Category classifies the remediation track.
	Category Category `json:"category"`

	// Severity is the shared ordinal axis (task priority maps here).
	Severity Severity `json:"severity"`

	// Status is the kind-specific workflow label. Terminal-ness is
	// derived through Kind.Terminal, never by matching labels here.
	Status string `json:"status"`

	// Source identifies the detection origin. Vulnerabilities only.
	Source string `json:"source,omitempty"`

	// CVSSScore is the CVSS base score. Vulnerabilities only.
	CVSSScore float64 `json:"cvss_score,omitempty"`

	// CreatedDate is the ISO creation date. Required, immutable.
	CreatedDate string `json:"created_date"`

	// UpdatedDate is the ISO last-update date, always >= CreatedDate.
	UpdatedDate string `json:"updated_date"`

	// DueDate is the ISO SLA due date. Empty means no SLA.
	DueDate string `json:"due_date,omitempty"`

	// Assignee is an opaque passthrough field.
	Assignee string `json:"assignee,omitempty"`

	// Labels are opaque passthrough tags.
	Labels []string `json:"labels,omitempty"`
}

// HasDue reports whether the record carries an SLA due date.
func (r Record) HasDue() bool {
	return r.DueDate != ""
}

// Terminal reports whether the record's status closes it for SLA purposes.
func (r Record) Terminal() bool {
	return r.Kind.Terminal()(r.Status)
}

// CreatedMonth returns the YYYY-MM prefix of the creation date.
func (r Record) CreatedMonth() string {
	if len(r.CreatedDate) < 7 {
		return r.CreatedDate
	}
	return r.CreatedDate[:7]
}

// CreatedDay returns the creation date at calendar-day precision.
func (r Record) CreatedDay() time.Time {
	return ParseDay(r.CreatedDate)
}

// DueDay returns the due date at calendar-day precision, or the zero time
// when the record has no SLA.
func (r Record) DueDay() time.Time {
	return ParseDay(r.DueDate)
}

// dateLayouts are tried in order when parsing ISO date strings.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDay parses an ISO date string to calendar-day precision in UTC.
// Empty or malformed input yields the zero time: such values sort before
// every real date, never match a month filter, and never land on a
// calendar cell. No further coercion is applied.
func ParseDay(s string) time.Time {
	t := ParseStamp(s)
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseStamp parses an ISO date string to a sortable instant.
// Empty or malformed input yields the zero time (see ParseDay).
func ParseStamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	// Tolerate a trailing time-of-day in otherwise day-precision input.
	if i := strings.IndexAny(s, "T "); i == 10 {
		if t, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return t
		}
	}
	return time.Time{}
}
