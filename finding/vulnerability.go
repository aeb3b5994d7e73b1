package finding

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Vulnerability represents a tracked vulnerability as delivered by the
// backend scanner integrations.
type Vulnerability struct {
	// ID is a unique identifier for the vulnerability.
	ID string `json:"id"`

	// Key is the human-readable short code, e.g. "VULN-042".
	Key string `json:"key"`

	// Title is a brief summary of the vulnerability.
	Title string `json:"title"`

	// Description provides detailed information about the vulnerability.
	Description string `json:"description,omitempty"`

	// Category classifies the remediation track.
	Category Category `json:"category"`

	// Severity is the vulnerability's ordinal axis.
	Severity Severity `json:"severity"`

	// Status is the current workflow state.
	Status string `json:"status"`

	// Source identifies the detection origin, e.g. "SAST" or "Pentest".
	Source string `json:"source,omitempty"`

	// CVSSScore is the CVSS base score (0.0 to 10.0).
	CVSSScore float64 `json:"cvss_score,omitempty"`

	// Assignee is the person responsible for remediation.
	Assignee string `json:"assignee,omitempty"`

	// Labels are arbitrary tags for categorization.
	Labels []string `json:"labels,omitempty"`

	// CreatedDate is the ISO creation date. Immutable once set.
	CreatedDate string `json:"created_date"`

	// UpdatedDate is the ISO last-update date, always >= CreatedDate.
	UpdatedDate string `json:"updated_date"`

	// DueDate is the ISO SLA due date. Empty means no SLA.
	DueDate string `json:"due_date,omitempty"`
}

// NewVulnerability creates a new vulnerability with an auto-generated ID and
// both date fields set to today.
func NewVulnerability(key, title string, category Category, severity Severity) *Vulnerability {
	today := time.Now().UTC().Format("2006-01-02")
	return &Vulnerability{
		ID:          uuid.New().String(),
		Key:         key,
		Title:       title,
		Category:    category,
		Severity:    severity,
		Status:      VulnStatusOpen,
		CreatedDate: today,
		UpdatedDate: today,
	}
}

// SetStatus updates the vulnerability status and bumps the update date.
// Returns an error if the label is outside the vulnerability status set.
func (v *Vulnerability) SetStatus(status string) error {
	if !KindVulnerability.ValidStatus(status) {
		return fmt.Errorf("invalid vulnerability status: %s", status)
	}
	v.Status = status
	v.UpdatedDate = time.Now().UTC().Format("2006-01-02")
	return nil
}

// Validate checks that the vulnerability has all required fields and valid
// values.
func (v *Vulnerability) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("vulnerability ID is required")
	}
	if v.Key == "" {
		return fmt.Errorf("vulnerability key is required")
	}
	if v.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !v.Category.IsValid() {
		return fmt.Errorf("invalid category: %s", v.Category)
	}
	if !v.Severity.IsValid() {
		return fmt.Errorf("invalid severity: %s", v.Severity)
	}
	if !KindVulnerability.ValidStatus(v.Status) {
		return fmt.Errorf("invalid vulnerability status: %s", v.Status)
	}
	if v.CVSSScore < 0.0 || v.CVSSScore > 10.0 {
		return fmt.Errorf("CVSS score must be between 0.0 and 10.0, got %f", v.CVSSScore)
	}
	if v.CreatedDate == "" {
		return fmt.Errorf("created date is required")
	}
	if ParseStamp(v.UpdatedDate).Before(ParseStamp(v.CreatedDate)) {
		return fmt.Errorf("updated date %s precedes created date %s", v.UpdatedDate, v.CreatedDate)
	}
	return nil
}

// Record projects the vulnerability into the common finding shape.
func (v *Vulnerability) Record() Record {
	return Record{
		ID:          v.ID,
		Key:         v.Key,
		Title:       v.Title,
		Kind:        KindVulnerability,
		Category:    v.Category,
		Severity:    v.Severity,
		Status:      v.Status,
		Source:      v.Source,
		CVSSScore:   v.CVSSScore,
		CreatedDate: v.CreatedDate,
		UpdatedDate: v.UpdatedDate,
		DueDate:     v.DueDate,
		Assignee:    v.Assignee,
		Labels:      v.Labels,
	}
}

// VulnerabilityRecords projects a slice of vulnerabilities into finding
// records, preserving order.
func VulnerabilityRecords(vulns []Vulnerability) []Record {
	records := make([]Record, len(vulns))
	for i := range vulns {
		records[i] = vulns[i].Record()
	}
	return records
}
