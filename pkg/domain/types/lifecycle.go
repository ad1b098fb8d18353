package types

import "github.com/m-mizutani/goerr/v2"

// LifecycleKind identifies the kind of record with an expiry or review lifecycle
type LifecycleKind string

const (
	LifecycleKindVendor   LifecycleKind = "VENDOR"
	LifecycleKindDocument LifecycleKind = "DOCUMENT"
	LifecycleKindPolicy   LifecycleKind = "POLICY"
)

// AllLifecycleKinds returns all valid lifecycle kinds
func AllLifecycleKinds() []LifecycleKind {
	return []LifecycleKind{
		LifecycleKindVendor,
		LifecycleKindDocument,
		LifecycleKindPolicy,
	}
}

// IsValid checks if the lifecycle kind is valid
func (k LifecycleKind) IsValid() bool {
	switch k {
	case LifecycleKindVendor,
		LifecycleKindDocument,
		LifecycleKindPolicy:
		return true
	default:
		return false
	}
}

// String returns the string representation of the lifecycle kind
func (k LifecycleKind) String() string {
	return string(k)
}

// ParseLifecycleKind parses a string into a LifecycleKind
func ParseLifecycleKind(s string) (LifecycleKind, error) {
	kind := LifecycleKind(Normalize(s))
	if !kind.IsValid() {
		return "", goerr.New("invalid lifecycle kind", goerr.V("kind", s))
	}
	return kind, nil
}

// LifecycleStatus is the status of a vendor, document or policy
type LifecycleStatus string

const (
	LifecycleStatusActive      LifecycleStatus = "ACTIVE"
	LifecycleStatusApproved    LifecycleStatus = "APPROVED"
	LifecycleStatusDraft       LifecycleStatus = "DRAFT"
	LifecycleStatusUnderReview LifecycleStatus = "UNDER_REVIEW"
	LifecycleStatusInactive    LifecycleStatus = "INACTIVE"
	LifecycleStatusArchived    LifecycleStatus = "ARCHIVED"

	// Date-driven overrides
	LifecycleStatusExpired      LifecycleStatus = "EXPIRED"
	LifecycleStatusExpiringSoon LifecycleStatus = "EXPIRING_SOON"

	LifecycleStatusUnknown LifecycleStatus = "UNKNOWN"
)

// IsValid checks if the lifecycle status is known
func (s LifecycleStatus) IsValid() bool {
	switch s {
	case LifecycleStatusActive,
		LifecycleStatusApproved,
		LifecycleStatusDraft,
		LifecycleStatusUnderReview,
		LifecycleStatusInactive,
		LifecycleStatusArchived,
		LifecycleStatusExpired,
		LifecycleStatusExpiringSoon:
		return true
	default:
		return false
	}
}

// IsOverride reports whether the status can only be produced by a date-based override
func (s LifecycleStatus) IsOverride() bool {
	return s == LifecycleStatusExpired || s == LifecycleStatusExpiringSoon
}

// String returns the string representation of the lifecycle status
func (s LifecycleStatus) String() string {
	return string(s)
}

// ParseLifecycleStatus parses a string into a LifecycleStatus
func ParseLifecycleStatus(s string) (LifecycleStatus, error) {
	status := LifecycleStatus(Normalize(s))
	if !status.IsValid() {
		return "", goerr.New("invalid lifecycle status", goerr.V("status", s))
	}
	return status, nil
}
