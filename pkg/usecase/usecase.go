package usecase

import (
	"time"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/interfaces"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/scoring"
)

type UseCases struct {
	repo   interfaces.Repository
	engine *scoring.Engine
	clock  func() time.Time

	Dashboard *DashboardUseCase
	Record    *RecordUseCase
	Snapshot  *SnapshotUseCase
}

type Option func(*UseCases)

// WithEngine sets the scoring engine. The default engine uses built-in tables.
func WithEngine(engine *scoring.Engine) Option {
	return func(uc *UseCases) {
		uc.engine = engine
	}
}

// WithClock replaces the wall clock, mostly for tests
func WithClock(clock func() time.Time) Option {
	return func(uc *UseCases) {
		uc.clock = clock
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:   repo,
		engine: scoring.New(),
		clock:  time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Dashboard = NewDashboardUseCase(repo, uc.engine)
	uc.Record = NewRecordUseCase(repo)
	uc.Snapshot = NewSnapshotUseCase(repo)

	return uc
}

// Now reads the clock. Callers read it once per scoring pass and pass the
// value down, so every view of one pass shares the same instant.
func (uc *UseCases) Now() time.Time {
	return uc.clock()
}

// Engine returns the scoring engine in use
func (uc *UseCases) Engine() *scoring.Engine {
	return uc.engine
}
