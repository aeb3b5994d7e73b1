// Package query implements the findings query pipeline: conjunctive field
// filters, a stable keyed sort, and 1-indexed pagination over finding
// records. The pipeline is a pure function of its inputs and is safe to run
// on every render.
package query

import (
	"sort"
	"strings"

	"github.com/zero-day-ai/console/finding"
)

// All is the sentinel filter value meaning "no constraint on this field".
const All = "all"

// DefaultPageSize is the page size used when the caller supplies a
// non-positive one.
const DefaultPageSize = 10

// Field names a filterable record field. Filters keyed by anything outside
// the recognized set are ignored.
type Field string

const (
	// FieldStatus filters on the workflow status label.
	FieldStatus Field = "status"

	// FieldSeverity filters on the severity/priority label.
	FieldSeverity Field = "severity"

	// FieldMonth filters on a YYYY-MM prefix of the creation date.
	FieldMonth Field = "month"

	// FieldSource filters on the detection origin (vulnerabilities only).
	FieldSource Field = "source"
)

// Filters maps field names to accepted values. A missing entry or the All
// sentinel leaves the field unconstrained. All entries are conjunctive.
type Filters map[Field]string

// Match reports whether the record satisfies every recognized, non-All
// filter entry. Month matches on string prefix; everything else on exact
// equality.
func (f Filters) Match(r finding.Record) bool {
	for field, want := range f {
		if want == All || want == "" {
			continue
		}
		switch field {
		case FieldStatus:
			if r.Status != want {
				return false
			}
		case FieldSeverity:
			if string(r.Severity) != want {
				return false
			}
		case FieldMonth:
			if !strings.HasPrefix(r.CreatedDate, want) {
				return false
			}
		case FieldSource:
			if r.Source != want {
				return false
			}
		}
		// Unrecognized fields do not participate.
	}
	return true
}

// SortKey selects the field a result set is ordered by.
type SortKey string

const (
	// SortSeverity orders by the severity ordinal map, not alphabetically.
	SortSeverity SortKey = "severity"

	// SortStatus orders by the status label string. Label ordering is
	// intentional; see the package tests before changing it.
	SortStatus SortKey = "status"

	// SortCreated orders by parsed creation date.
	SortCreated SortKey = "createdDate"

	// SortUpdated orders by parsed update date.
	SortUpdated SortKey = "updatedDate"

	// SortDue orders by parsed due date. Records without one parse to the
	// zero time and group together at the ascending front.
	SortDue SortKey = "dueDate"

	// SortCVSS orders by CVSS base score.
	SortCVSS SortKey = "cvssScore"
)

// Order is the sort direction.
type Order string

const (
	// OrderAsc sorts ascending.
	OrderAsc Order = "asc"

	// OrderDesc sorts descending.
	OrderDesc Order = "desc"
)

// Result is a single page of a findings query.
type Result struct {
	// Items is the page slice after filtering, sorting, and pagination.
	Items []finding.Record `json:"items"`

	// TotalCount is the match count after filtering, before pagination.
	TotalCount int `json:"total_count"`

	// TotalPages is ceil(TotalCount / pageSize), minimum 0.
	TotalPages int `json:"total_pages"`
}

// Findings runs the filter, sort, paginate pipeline.
//
// Pages are 1-indexed. The engine does not clamp out-of-range pages; a page
// past the end yields an empty Items slice with the totals intact. Callers
// that hold page state must reset to page 1 whenever a filter or sort
// parameter changes (View does this). An unknown sort key leaves the
// filtered order untouched.
func Findings(records []finding.Record, filters Filters, key SortKey, order Order, page, pageSize int) Result {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	matched := make([]finding.Record, 0, len(records))
	for _, r := range records {
		if filters.Match(r) {
			matched = append(matched, r)
		}
	}

	if less := lessFunc(matched, key, order); less != nil {
		sort.SliceStable(matched, less)
	}

	total := len(matched)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start < 0 || start >= total {
		return Result{Items: []finding.Record{}, TotalCount: total, TotalPages: totalPages}
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Result{Items: matched[start:end], TotalCount: total, TotalPages: totalPages}
}

// lessFunc builds the comparison closure for sort.SliceStable, or nil for
// an unknown key (identity order).
func lessFunc(records []finding.Record, key SortKey, order Order) func(i, j int) bool {
	var less func(a, b finding.Record) bool
	switch key {
	case SortSeverity:
		less = func(a, b finding.Record) bool {
			return a.Severity.Weight() < b.Severity.Weight()
		}
	case SortStatus:
		less = func(a, b finding.Record) bool {
			return a.Status < b.Status
		}
	case SortCreated:
		less = func(a, b finding.Record) bool {
			return finding.ParseStamp(a.CreatedDate).Before(finding.ParseStamp(b.CreatedDate))
		}
	case SortUpdated:
		less = func(a, b finding.Record) bool {
			return finding.ParseStamp(a.UpdatedDate).Before(finding.ParseStamp(b.UpdatedDate))
		}
	case SortDue:
		less = func(a, b finding.Record) bool {
			return finding.ParseStamp(a.DueDate).Before(finding.ParseStamp(b.DueDate))
		}
	case SortCVSS:
		less = func(a, b finding.Record) bool {
			return a.CVSSScore < b.CVSSScore
		}
	default:
		return nil
	}

	if order == OrderDesc {
		asc := less
		less = func(a, b finding.Record) bool { return asc(b, a) }
	}
	return func(i, j int) bool { return less(records[i], records[j]) }
}
