package finding

import "fmt"

// Severity represents the ordinal axis shared by tasks and vulnerabilities.
// Tasks call this field "priority"; the label set and ordering are identical.
type Severity string

const (
	// SeverityCritical indicates an issue requiring immediate remediation.
	SeverityCritical Severity = "Critical"

	// SeverityHigh indicates a high-impact issue.
	SeverityHigh Severity = "High"

	// SeverityMedium indicates a moderate issue.
	SeverityMedium Severity = "Medium"

	// SeverityLow indicates a minor issue.
	SeverityLow Severity = "Low"
)

// severityWeights maps severity labels to ordinals for sorting.
// Higher weights sort first in descending order.
var severityWeights = map[Severity]int{
	SeverityCritical: 4,
	SeverityHigh:     3,
	SeverityMedium:   2,
	SeverityLow:      1,
}

// IsValid returns true if the severity label is valid.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

// Weight returns the ordinal weight for the severity.
// Unmapped labels weigh 0 and sort below every valid severity.
func (s Severity) Weight() int {
	return severityWeights[s]
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// Color returns the display color tag used for severity-tinted calendar
// events.
func (s Severity) Color() string {
	switch s {
	case SeverityCritical:
		return "red"
	case SeverityHigh:
		return "orange"
	case SeverityMedium:
		return "yellow"
	case SeverityLow:
		return "green"
	default:
		return "gray"
	}
}

// ParseSeverity parses a string into a Severity value.
// Returns an error if the string is not a valid severity label.
func ParseSeverity(s string) (Severity, error) {
	severity := Severity(s)
	if !severity.IsValid() {
		return "", fmt.Errorf("invalid severity: %s", s)
	}
	return severity, nil
}

// CompareSeverity compares two severity labels by ordinal weight.
// Returns:
//   - negative if s1 < s2
//   - zero if s1 == s2
//   - positive if s1 > s2
func CompareSeverity(s1, s2 Severity) int {
	return s1.Weight() - s2.Weight()
}

// AllSeverities returns all valid severity labels in order from critical
// to low.
func AllSeverities() []Severity {
	return []Severity{
		SeverityCritical,
		SeverityHigh,
		SeverityMedium,
		SeverityLow,
	}
}
