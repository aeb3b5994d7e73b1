package query

import "github.com/zero-day-ai/console/finding"

// View owns the filter, sort, and page state for one findings listing.
// Changing any filter or sort parameter resets the page to 1, so a stale
// out-of-range page can never be served after the result set shrinks.
//
// A View is not safe for concurrent use; it models the single listing a
// presentation surface renders from.
type View struct {
	filters  Filters
	key      SortKey
	order    Order
	page     int
	pageSize int
}

// NewView creates a view with empty filters, creation-date descending
// ordering, and the given page size (DefaultPageSize when non-positive).
func NewView(pageSize int) *View {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &View{
		filters:  Filters{},
		key:      SortCreated,
		order:    OrderDesc,
		page:     1,
		pageSize: pageSize,
	}
}

// SetFilter sets one filter field and resets the page to 1.
// Use the All sentinel to lift a constraint.
func (v *View) SetFilter(field Field, value string) {
	v.filters[field] = value
	v.page = 1
}

// ClearFilters removes every filter and resets the page to 1.
func (v *View) ClearFilters() {
	v.filters = Filters{}
	v.page = 1
}

// SetSort sets the sort key and order and resets the page to 1.
func (v *View) SetSort(key SortKey, order Order) {
	v.key = key
	v.order = order
	v.page = 1
}

// SetPage moves to the given 1-indexed page. Values below 1 clamp to 1;
// pages past the end are clamped at query time.
func (v *View) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.page = page
}

// Page returns the current 1-indexed page.
func (v *View) Page() int {
	return v.page
}

// Filter returns the current value for a filter field, or All when the
// field is unconstrained.
func (v *View) Filter(field Field) string {
	if value, ok := v.filters[field]; ok && value != "" {
		return value
	}
	return All
}

// Query runs the engine with the view's current state. If the current page
// fell past the end of the result set (records changed underneath the
// view), it is clamped to the last page and the query re-run.
func (v *View) Query(records []finding.Record) Result {
	res := Findings(records, v.filters, v.key, v.order, v.page, v.pageSize)
	if v.page > res.TotalPages && res.TotalPages > 0 {
		v.page = res.TotalPages
		res = Findings(records, v.filters, v.key, v.order, v.page, v.pageSize)
	}
	return res
}
