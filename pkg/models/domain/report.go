package domain

import "time"

// PermissionStatus is one classified permission entry in the report,
// in the order the snapshot reported it.
type PermissionStatus struct {
	Name     string
	Enabled  bool
	Severity Severity
}

// Recommendation is one remediation suggestion tied to a flag condition.
// All fields are fixed templates selected by the rule that fired.
type Recommendation struct {
	Title  string
	Reason string
	Risk   string
	Action string
}

// AuditReport is the complete result of auditing one API key.
type AuditReport struct {
	Exchange        string
	GeneratedAt     time.Time
	KeyCreatedAt    time.Time
	Permissions     []PermissionStatus
	Risk            RiskLevel
	Recommendations []Recommendation
}
