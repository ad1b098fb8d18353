package types

import "github.com/m-mizutani/goerr/v2"

// ComplianceStatus is the compliance vocabulary of a framework or an overall assessment
type ComplianceStatus string

const (
	ComplianceStatusCompliant    ComplianceStatus = "COMPLIANT"
	ComplianceStatusAtRisk       ComplianceStatus = "AT_RISK"
	ComplianceStatusNonCompliant ComplianceStatus = "NON_COMPLIANT"
	// ComplianceStatusPending means no assessment has taken place yet
	ComplianceStatusPending ComplianceStatus = "PENDING"
	ComplianceStatusUnknown ComplianceStatus = "UNKNOWN"
)

// AllComplianceStatuses returns all known compliance statuses
func AllComplianceStatuses() []ComplianceStatus {
	return []ComplianceStatus{
		ComplianceStatusCompliant,
		ComplianceStatusAtRisk,
		ComplianceStatusNonCompliant,
		ComplianceStatusPending,
	}
}

// IsValid checks if the compliance status is known
func (s ComplianceStatus) IsValid() bool {
	switch s {
	case ComplianceStatusCompliant,
		ComplianceStatusAtRisk,
		ComplianceStatusNonCompliant,
		ComplianceStatusPending:
		return true
	default:
		return false
	}
}

// String returns the string representation of the compliance status
func (s ComplianceStatus) String() string {
	return string(s)
}

// ParseComplianceStatus parses a string into a ComplianceStatus.
// "Needs Review" is accepted as an alias of AT_RISK.
func ParseComplianceStatus(s string) (ComplianceStatus, error) {
	n := Normalize(s)
	if n == "NEEDS_REVIEW" {
		return ComplianceStatusAtRisk, nil
	}
	status := ComplianceStatus(n)
	if !status.IsValid() {
		return "", goerr.New("invalid compliance status", goerr.V("status", s))
	}
	return status, nil
}
