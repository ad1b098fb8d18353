package snapshot

import "time"

// File is the on-disk snapshot layout. Dates are TOML offset date-times.
// Enumerations are kept as strings; unknown values are carried through and
// surface as UNKNOWN when scored.
type File struct {
	Risk          RiskSection         `toml:"risk"`
	Incidents     []IncidentEntry     `toml:"incident" validate:"dive"`
	Compliance    ComplianceSection   `toml:"compliance"`
	Vendors       []LifecycleEntry    `toml:"vendor" validate:"dive"`
	Documents     []LifecycleEntry    `toml:"document" validate:"dive"`
	Policies      []LifecycleEntry    `toml:"policy" validate:"dive"`
	Deadlines     []DeadlineEntry     `toml:"deadline" validate:"dive"`
	Notifications []NotificationEntry `toml:"notification" validate:"dive"`
}

type RiskSection struct {
	OverallScore  float64         `toml:"overall_score"`
	PreviousScore float64         `toml:"previous_score"`
	AssessedAt    time.Time       `toml:"assessed_at"`
	Categories    []CategoryEntry `toml:"category" validate:"dive"`
	Items         []RiskItemEntry `toml:"item" validate:"dive"`
}

type CategoryEntry struct {
	Name  string  `toml:"name" validate:"required"`
	Score float64 `toml:"score"`
}

// RiskItemEntry ordinals are not range checked here; scoring clamps them
type RiskItemEntry struct {
	ID         string    `toml:"id"`
	Title      string    `toml:"title" validate:"required"`
	Category   string    `toml:"category" validate:"required"`
	Impact     int       `toml:"impact"`
	Likelihood int       `toml:"likelihood"`
	AssessedAt time.Time `toml:"assessed_at"`
}

type IncidentEntry struct {
	ID          string     `toml:"id"`
	Title       string     `toml:"title" validate:"required"`
	Severity    string     `toml:"severity" validate:"required"`
	Status      string     `toml:"status" validate:"required"`
	CreatedAt   *time.Time `toml:"created_at" validate:"required"`
	SLADeadline *time.Time `toml:"sla_deadline"`
	UpdatedAt   time.Time  `toml:"updated_at"`
}

type ComplianceSection struct {
	OverallScore  *float64         `toml:"overall_score"`
	PreviousScore *float64         `toml:"previous_score"`
	Frameworks    []FrameworkEntry `toml:"framework" validate:"dive"`
}

type FrameworkEntry struct {
	ID                string     `toml:"id"`
	Name              string     `toml:"name" validate:"required"`
	Score             *float64   `toml:"score"`
	ControlsCompliant int        `toml:"controls_compliant" validate:"gte=0,ltefield=TotalControls"`
	TotalControls     int        `toml:"total_controls" validate:"gte=0"`
	CriticalFindings  int        `toml:"critical_findings" validate:"gte=0"`
	LastAssessedAt    *time.Time `toml:"last_assessed_at"`
}

type LifecycleEntry struct {
	ID             string     `toml:"id"`
	Name           string     `toml:"name" validate:"required"`
	Status         string     `toml:"status" validate:"required"`
	Score          *float64   `toml:"score"`
	ExpiryDate     *time.Time `toml:"expiry_date"`
	NextReviewDate *time.Time `toml:"next_review_date"`
	UpdatedAt      time.Time  `toml:"updated_at"`
}

type DeadlineEntry struct {
	ID          string     `toml:"id"`
	Title       string     `toml:"title" validate:"required"`
	Framework   string     `toml:"framework"`
	DueDate     *time.Time `toml:"due_date" validate:"required"`
	Priority    string     `toml:"priority" validate:"required"`
	Completed   bool       `toml:"completed"`
	CompletedAt *time.Time `toml:"completed_at"`
}

type NotificationEntry struct {
	ID        string    `toml:"id"`
	Title     string    `toml:"title" validate:"required"`
	Message   string    `toml:"message"`
	CreatedAt time.Time `toml:"created_at"`
	Read      bool      `toml:"read"`
}
