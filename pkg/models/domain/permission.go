package domain

import "time"

type Severity int

const (
	// SeverityNormal marks an enabled permission with no elevated risk.
	SeverityNormal Severity = iota
	// SeverityLowOff marks a disabled permission; informational, never raises risk.
	SeverityLowOff
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityLowOff:
		return "OFF"
	case SeverityMedium:
		return "MEDIUM RISK"
	case SeverityHigh:
		return "HIGH RISK"
	default:
		return "ON"
	}
}

type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
)

func (r RiskLevel) String() string {
	switch r {
	case RiskHigh:
		return "HIGH"
	case RiskMedium:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// PermissionFlag is one named boolean capability of an API key.
type PermissionFlag struct {
	Name    string
	Enabled bool
}

// PermissionSnapshot is the point-in-time permission set of one API key.
// Flags keep the order in which the source reported them, since that order
// is user-visible in the audit report. CreateTime is key metadata and is
// never classified.
type PermissionSnapshot struct {
	CreateTime time.Time

	flags []PermissionFlag
	index map[string]int
}

func NewPermissionSnapshot() *PermissionSnapshot {
	return &PermissionSnapshot{index: make(map[string]int)}
}

// Set records a flag, preserving first-insertion order. Setting an existing
// name updates it in place.
func (s *PermissionSnapshot) Set(name string, enabled bool) {
	if i, ok := s.index[name]; ok {
		s.flags[i].Enabled = enabled
		return
	}
	s.index[name] = len(s.flags)
	s.flags = append(s.flags, PermissionFlag{Name: name, Enabled: enabled})
}

// Flags returns the flags in insertion order. The returned slice is a copy.
func (s *PermissionSnapshot) Flags() []PermissionFlag {
	out := make([]PermissionFlag, len(s.flags))
	copy(out, s.flags)
	return out
}

// Enabled reports whether the named flag is present and set. Absent flags
// read as false.
func (s *PermissionSnapshot) Enabled(name string) bool {
	i, ok := s.index[name]
	return ok && s.flags[i].Enabled
}

// Len returns the number of recorded flags, excluding metadata.
func (s *PermissionSnapshot) Len() int {
	return len(s.flags)
}
