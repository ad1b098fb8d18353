// Package scoring turns raw record snapshots into classified, time-relative and
// prioritized views. Every function is pure: it reads nothing but its arguments,
// and all temporal facts are computed against the caller-supplied reference instant.
package scoring

import (
	"time"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

// Engine holds the threshold tables and windows of a scoring configuration.
// It is immutable after New and safe for concurrent use.
type Engine struct {
	severity        *ThresholdTable[types.Level]
	heatMap         *ThresholdTable[types.Level]
	compliance      *ThresholdTable[types.ComplianceStatus]
	expiringWindow  time.Duration
	slaAtRiskWindow time.Duration
}

type Option func(*Engine)

func WithSeverityTable(t *ThresholdTable[types.Level]) Option {
	return func(e *Engine) {
		e.severity = t
	}
}

func WithHeatMapTable(t *ThresholdTable[types.Level]) Option {
	return func(e *Engine) {
		e.heatMap = t
	}
}

func WithComplianceTable(t *ThresholdTable[types.ComplianceStatus]) Option {
	return func(e *Engine) {
		e.compliance = t
	}
}

func WithExpiringWindow(d time.Duration) Option {
	return func(e *Engine) {
		e.expiringWindow = d
	}
}

func WithSLAAtRiskWindow(d time.Duration) Option {
	return func(e *Engine) {
		e.slaAtRiskWindow = d
	}
}

// New creates an Engine with the built-in tables and windows, overridden by opts
func New(opts ...Option) *Engine {
	e := &Engine{
		severity:        SeverityTable(),
		heatMap:         HeatMapTable(),
		compliance:      ComplianceTable(),
		expiringWindow:  DefaultExpiringWindow,
		slaAtRiskWindow: DefaultSLAAtRiskWindow,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ClassifySeverity classifies a 0–100 risk or compliance score
func (e *Engine) ClassifySeverity(score float64) types.Level {
	return e.severity.Classify(score)
}

// ClassifyHeatMap classifies an impact×likelihood product
func (e *Engine) ClassifyHeatMap(product int) types.Level {
	return e.heatMap.Classify(float64(product))
}

// ExpiringWindow returns the configured expiring-soon window
func (e *Engine) ExpiringWindow() time.Duration {
	return e.expiringWindow
}

// Score runs one full scoring pass over snapshot against now
func (e *Engine) Score(snapshot *model.Snapshot, now time.Time) *model.Dashboard {
	dashboard := &model.Dashboard{
		Now:        now,
		Risk:       e.AggregateRisk(&snapshot.Risk),
		Incidents:  e.SummarizeIncidents(snapshot.Incidents, now),
		Compliance: e.AggregateCompliance(&snapshot.Compliance),
		Deadlines:  e.PrioritizeDeadlines(snapshot.Deadlines, now),
	}

	for _, kind := range types.AllLifecycleKinds() {
		dashboard.Lifecycle = append(dashboard.Lifecycle,
			e.PrioritizeLifecycle(kind, snapshot.LifecycleOf(kind), now))
	}

	for _, n := range snapshot.Notifications {
		if !n.Read {
			dashboard.UnreadNotices++
		}
	}

	return dashboard
}
