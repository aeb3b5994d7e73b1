package asset

// The asset hierarchy is a fixed four-level containment structure:
// tenant → project → sub-project → environment. The backend delivers it
// fully materialized as nested arrays; nothing here resolves references.

// Environment is the leaf level of the hierarchy.
type Environment struct {
	// ID is unique across the entire hierarchy, not just its level.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Status is the operational status label.
	Status string `json:"status,omitempty"`

	// VulnerabilitiesCount is the open vulnerability tally.
	VulnerabilitiesCount int `json:"vulnerabilities_count"`

	// RiskScore is the aggregated risk score.
	RiskScore float64 `json:"risk_score"`
}

// SubProject groups environments under a project.
type SubProject struct {
	ID                   string        `json:"id"`
	Name                 string        `json:"name"`
	Status               string        `json:"status,omitempty"`
	VulnerabilitiesCount int           `json:"vulnerabilities_count"`
	RiskScore            float64       `json:"risk_score"`
	Environments         []Environment `json:"environments,omitempty"`
}

// Project groups sub-projects under a tenant.
type Project struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	Status               string       `json:"status,omitempty"`
	VulnerabilitiesCount int          `json:"vulnerabilities_count"`
	RiskScore            float64      `json:"risk_score"`
	SubProjects          []SubProject `json:"sub_projects,omitempty"`
}

// Tenant is the root level of the hierarchy.
type Tenant struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Status               string    `json:"status,omitempty"`
	VulnerabilitiesCount int       `json:"vulnerabilities_count"`
	RiskScore            float64   `json:"risk_score"`
	Projects             []Project `json:"projects,omitempty"`
}
