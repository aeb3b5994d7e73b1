package finding

import "fmt"

// Category classifies the remediation track a finding belongs to.
// It is independent of severity.
type Category string

const (
	// CategoryAppSec covers application security findings.
	CategoryAppSec Category = "appsec"

	// CategoryOffSec covers offensive security engagement findings.
	CategoryOffSec Category = "offsec"

	// CategoryRemediation covers standing remediation work.
	CategoryRemediation Category = "remediation"

	// CategoryCurrent covers the current sprint's working set.
	CategoryCurrent Category = "current"
)

// IsValid returns true if the category is valid.
func (c Category) IsValid() bool {
	switch c {
	case CategoryAppSec, CategoryOffSec, CategoryRemediation, CategoryCurrent:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// DisplayName returns a human-readable display name for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryAppSec:
		return "Application Security"
	case CategoryOffSec:
		return "Offensive Security"
	case CategoryRemediation:
		return "Remediation"
	case CategoryCurrent:
		return "Current Sprint"
	default:
		return string(c)
	}
}

// ParseCategory parses a string into a Category value.
// Returns an error if the string is not a valid category.
func ParseCategory(s string) (Category, error) {
	category := Category(s)
	if !category.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return category, nil
}
