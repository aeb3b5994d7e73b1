package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zero-day-ai/console/finding"
)

func viewRecords(n int) []finding.Record {
	var records []finding.Record
	for i := 0; i < n; i++ {
		records = append(records, vuln(fmt.Sprintf("%02d", i), finding.SeverityHigh, finding.VulnStatusOpen, "SAST", "2026-01-01"))
	}
	return records
}

func TestView_FilterChangeResetsPage(t *testing.T) {
	v := NewView(10)
	v.SetPage(3)
	assert.Equal(t, 3, v.Page())

	v.SetFilter(FieldStatus, finding.VulnStatusOpen)
	assert.Equal(t, 1, v.Page())

	v.SetPage(2)
	v.SetSort(SortSeverity, OrderDesc)
	assert.Equal(t, 1, v.Page())

	v.SetPage(2)
	v.ClearFilters()
	assert.Equal(t, 1, v.Page())
}

func TestView_QueryClampsStalePage(t *testing.T) {
	v := NewView(10)
	v.SetPage(3)

	// Only 12 records: page 3 no longer exists.
	res := v.Query(viewRecords(12))

	assert.Equal(t, 2, v.Page())
	assert.Len(t, res.Items, 2)
	assert.Equal(t, 2, res.TotalPages)
}

func TestView_FilterAccessor(t *testing.T) {
	v := NewView(10)
	assert.Equal(t, All, v.Filter(FieldSeverity))

	v.SetFilter(FieldSeverity, "High")
	assert.Equal(t, "High", v.Filter(FieldSeverity))

	v.SetFilter(FieldSeverity, All)
	assert.Equal(t, All, v.Filter(FieldSeverity))
}

func TestView_SetPageFloorsAtOne(t *testing.T) {
	v := NewView(10)
	v.SetPage(-5)
	assert.Equal(t, 1, v.Page())
}

func TestView_QueryUsesConfiguredPageSize(t *testing.T) {
	v := NewView(5)
	res := v.Query(viewRecords(12))

	assert.Len(t, res.Items, 5)
	assert.Equal(t, 3, res.TotalPages)
}
