package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/interfaces"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	risk         *riskRepository
	incident     *incidentRepository
	compliance   *complianceRepository
	lifecycle    *lifecycleRepository
	deadline     *deadlineRepository
	notification *notificationRepository

	metaMu   sync.RWMutex
	metadata model.RefreshMetadata
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		risk:         newRiskRepository(),
		incident:     newIncidentRepository(),
		compliance:   newComplianceRepository(),
		lifecycle:    newLifecycleRepository(),
		deadline:     newDeadlineRepository(),
		notification: newNotificationRepository(),
	}
}

func (m *Memory) Risk() interfaces.RiskRepository {
	return m.risk
}

func (m *Memory) Incident() interfaces.IncidentRepository {
	return m.incident
}

func (m *Memory) Compliance() interfaces.ComplianceRepository {
	return m.compliance
}

func (m *Memory) Lifecycle() interfaces.LifecycleRepository {
	return m.lifecycle
}

func (m *Memory) Deadline() interfaces.DeadlineRepository {
	return m.deadline
}

func (m *Memory) Notification() interfaces.NotificationRepository {
	return m.notification
}

// ReplaceSnapshot builds the new content of every store first and then swaps
// all of them while holding every store lock, so no reader sees a store that
// is half replaced.
func (m *Memory) ReplaceSnapshot(ctx context.Context, snapshot *model.Snapshot) error {
	risk := copyRiskAssessment(&snapshot.Risk)
	compliance := copyComplianceAssessment(&snapshot.Compliance)
	incidents := m.incident.store.build(pointers(snapshot.Incidents))
	lifecycle := m.lifecycle.store.build(pointers(snapshot.Lifecycle))
	deadlines := m.deadline.store.build(pointers(snapshot.Deadlines))
	notifications := m.notification.store.build(pointers(snapshot.Notifications))

	if err := ctx.Err(); err != nil {
		return goerr.Wrap(err, "snapshot replacement cancelled")
	}

	// Locks are always taken in this order
	locks := []sync.Locker{
		&m.risk.mu,
		&m.compliance.mu,
		&m.incident.store.mu,
		&m.lifecycle.store.mu,
		&m.deadline.store.mu,
		&m.notification.store.mu,
	}
	for _, l := range locks {
		l.Lock()
	}
	defer func() {
		for i := len(locks) - 1; i >= 0; i-- {
			locks[i].Unlock()
		}
	}()

	m.risk.assessment = *risk
	m.compliance.assessment = *compliance
	m.incident.store.swapLocked(incidents)
	m.lifecycle.store.swapLocked(lifecycle)
	m.deadline.store.swapLocked(deadlines)
	m.notification.store.swapLocked(notifications)
	return nil
}

func pointers[T any](items []T) []*T {
	result := make([]*T, 0, len(items))
	for i := range items {
		result = append(result, &items[i])
	}
	return result
}

// GetRefreshMetadata returns a zero value until the first refresh is recorded
func (m *Memory) GetRefreshMetadata(ctx context.Context) (*model.RefreshMetadata, error) {
	m.metaMu.RLock()
	defer m.metaMu.RUnlock()

	metadataCopy := m.metadata
	return &metadataCopy, nil
}

func (m *Memory) SaveRefreshMetadata(ctx context.Context, metadata *model.RefreshMetadata) error {
	m.metaMu.Lock()
	defer m.metaMu.Unlock()

	m.metadata = *metadata
	return nil
}

func (m *Memory) Close() error {
	return nil
}
