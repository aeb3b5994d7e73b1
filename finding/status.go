package finding

import "fmt"

// Task workflow status labels. The set is closed per record kind; the
// generic query and timeline paths never reference these directly and
// instead take a TerminalFunc.
const (
	TaskStatusToDo       = "To Do"
	TaskStatusInProgress = "In Progress"
	TaskStatusInReview   = "In Review"
	TaskStatusDone       = "Done"
	TaskStatusBlocked    = "Blocked"
)

// Vulnerability workflow status labels.
const (
	VulnStatusOpen          = "Open"
	VulnStatusInProgress    = "In Progress"
	VulnStatusFixed         = "Fixed"
	VulnStatusAccepted      = "Accepted"
	VulnStatusFalsePositive = "False Positive"
)

// TerminalFunc reports whether a status label represents a closed finding.
// Closed findings no longer generate SLA events.
type TerminalFunc func(status string) bool

// TaskTerminal is the terminal predicate for task statuses.
// Only Done closes a task.
var TaskTerminal TerminalFunc = func(status string) bool {
	return status == TaskStatusDone
}

// VulnerabilityTerminal is the terminal predicate for vulnerability statuses.
// Fixed, Accepted, and False Positive all close a vulnerability.
var VulnerabilityTerminal TerminalFunc = func(status string) bool {
	switch status {
	case VulnStatusFixed, VulnStatusAccepted, VulnStatusFalsePositive:
		return true
	default:
		return false
	}
}

// AllTaskStatuses returns the closed set of task status labels.
func AllTaskStatuses() []string {
	return []string{
		TaskStatusToDo,
		TaskStatusInProgress,
		TaskStatusInReview,
		TaskStatusDone,
		TaskStatusBlocked,
	}
}

// AllVulnerabilityStatuses returns the closed set of vulnerability status
// labels.
func AllVulnerabilityStatuses() []string {
	return []string{
		VulnStatusOpen,
		VulnStatusInProgress,
		VulnStatusFixed,
		VulnStatusAccepted,
		VulnStatusFalsePositive,
	}
}

// Kind identifies which record type a finding was projected from.
type Kind string

const (
	// KindTask identifies remediation task records.
	KindTask Kind = "task"

	// KindVulnerability identifies vulnerability records.
	KindVulnerability Kind = "vulnerability"
)

// IsValid returns true if the kind is valid.
func (k Kind) IsValid() bool {
	switch k {
	case KindTask, KindVulnerability:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Terminal returns the terminal predicate for the kind's status set.
// Unknown kinds get a predicate that never matches, so their findings
// are treated as open.
func (k Kind) Terminal() TerminalFunc {
	switch k {
	case KindTask:
		return TaskTerminal
	case KindVulnerability:
		return VulnerabilityTerminal
	default:
		return func(string) bool { return false }
	}
}

// ValidStatus reports whether the label belongs to the kind's status set.
func (k Kind) ValidStatus(status string) bool {
	var set []string
	switch k {
	case KindTask:
		set = AllTaskStatuses()
	case KindVulnerability:
		set = AllVulnerabilityStatuses()
	}
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}

// ParseKind parses a string into a Kind value.
// Returns an error if the string is not a valid kind.
func ParseKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid finding kind: %s", s)
	}
	return kind, nil
}
