package types

// SLAState describes an incident's standing relative to its resolution deadline
type SLAState string

const (
	SLAStateOnTrack  SLAState = "ON_TRACK"
	SLAStateAtRisk   SLAState = "AT_RISK"
	SLAStateBreached SLAState = "BREACHED"
	SLAStateMet      SLAState = "MET"
	SLAStateUnknown  SLAState = "UNKNOWN"
)

// IsValid checks if the SLA state is known
func (s SLAState) IsValid() bool {
	switch s {
	case SLAStateOnTrack,
		SLAStateAtRisk,
		SLAStateBreached,
		SLAStateMet:
		return true
	default:
		return false
	}
}

// String returns the string representation of the SLA state
func (s SLAState) String() string {
	return string(s)
}
