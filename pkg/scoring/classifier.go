package scoring

import (
	"cmp"
	"math"
	"slices"

	"github.com/m-mizutani/goerr/v2"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

// Score domain shared by every classification and the gauge position
const (
	MinScore = 0.0
	MaxScore = 100.0
)

var ErrInvalidThresholds = goerr.New("invalid threshold table")

// Threshold maps an inclusive lower bound to a level
type Threshold[L ~string] struct {
	Min   float64
	Level L
}

// ThresholdTable classifies scores by evaluating thresholds highest-first.
// The first threshold whose Min the score meets wins; otherwise the floor level
// is returned. Every score therefore maps to exactly one level.
type ThresholdTable[L ~string] struct {
	thresholds []Threshold[L]
	floor      L
}

// NewThresholdTable builds a table from thresholds given in any order.
// Minimums must be unique and inside the score domain.
func NewThresholdTable[L ~string](floor L, thresholds ...Threshold[L]) (*ThresholdTable[L], error) {
	if floor == "" {
		return nil, goerr.Wrap(ErrInvalidThresholds, "floor level is required")
	}

	sorted := slices.Clone(thresholds)
	slices.SortStableFunc(sorted, func(a, b Threshold[L]) int {
		return cmp.Compare(b.Min, a.Min)
	})

	for i, th := range sorted {
		if math.IsNaN(th.Min) || th.Min < MinScore || th.Min > MaxScore {
			return nil, goerr.Wrap(ErrInvalidThresholds, "threshold minimum out of range",
				goerr.V("min", th.Min), goerr.V("level", th.Level))
		}
		if th.Level == "" {
			return nil, goerr.Wrap(ErrInvalidThresholds, "threshold level is required", goerr.V("min", th.Min))
		}
		if i > 0 && sorted[i-1].Min == th.Min {
			return nil, goerr.Wrap(ErrInvalidThresholds, "duplicate threshold minimum",
				goerr.V("min", th.Min))
		}
	}

	return &ThresholdTable[L]{
		thresholds: sorted,
		floor:      floor,
	}, nil
}

// MustNewThresholdTable is NewThresholdTable for package-level tables. It panics on error.
func MustNewThresholdTable[L ~string](floor L, thresholds ...Threshold[L]) *ThresholdTable[L] {
	t, err := NewThresholdTable(floor, thresholds...)
	if err != nil {
		panic(err)
	}
	return t
}

// Classify clamps score into the score domain and returns its level
func (t *ThresholdTable[L]) Classify(score float64) L {
	s := ClampScore(score)
	for _, th := range t.thresholds {
		if s >= th.Min {
			return th.Level
		}
	}
	return t.floor
}

// Thresholds returns the thresholds, highest minimum first
func (t *ThresholdTable[L]) Thresholds() []Threshold[L] {
	return slices.Clone(t.thresholds)
}

// Floor returns the level of scores below every threshold
func (t *ThresholdTable[L]) Floor() L {
	return t.floor
}

// ClampScore clamps score into [MinScore, MaxScore]. NaN is treated as MinScore.
func ClampScore(score float64) float64 {
	if math.IsNaN(score) || score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// GaugePosition is the position of score on a 0–100 gauge. It uses the same
// clamp as Classify so a displayed position and its label always agree.
func GaugePosition(score float64) float64 {
	return ClampScore(score)
}

// SeverityTable classifies risk and compliance scores on the 0–100 scale
func SeverityTable() *ThresholdTable[types.Level] {
	return MustNewThresholdTable(types.LevelMinimal,
		Threshold[types.Level]{Min: 85, Level: types.LevelCritical},
		Threshold[types.Level]{Min: 70, Level: types.LevelHigh},
		Threshold[types.Level]{Min: 50, Level: types.LevelMedium},
		Threshold[types.Level]{Min: 30, Level: types.LevelLow},
	)
}

// HeatMapTable classifies impact×likelihood products on the 1–25 scale
func HeatMapTable() *ThresholdTable[types.Level] {
	return MustNewThresholdTable(types.LevelMinimal,
		Threshold[types.Level]{Min: 20, Level: types.LevelCritical},
		Threshold[types.Level]{Min: 12, Level: types.LevelHigh},
		Threshold[types.Level]{Min: 6, Level: types.LevelMedium},
		Threshold[types.Level]{Min: 3, Level: types.LevelLow},
	)
}

// ComplianceTable maps framework scores to the compliance vocabulary
func ComplianceTable() *ThresholdTable[types.ComplianceStatus] {
	return MustNewThresholdTable(types.ComplianceStatusNonCompliant,
		Threshold[types.ComplianceStatus]{Min: 80, Level: types.ComplianceStatusCompliant},
		Threshold[types.ComplianceStatus]{Min: 60, Level: types.ComplianceStatusAtRisk},
	)
}
