package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/scoring"
)

// AppConfig represents the scoring configuration file. Every section is
// optional; absent sections keep the built-in tables and windows.
type AppConfig struct {
	Severity   *ThresholdTable `toml:"severity"`
	HeatMap    *ThresholdTable `toml:"heatmap"`
	Compliance *ThresholdTable `toml:"compliance"`
	Window     Window          `toml:"window"`
}

// ThresholdTable is a classification table: a floor level plus thresholds
// given as inclusive minimums
type ThresholdTable struct {
	Floor      string      `toml:"floor"`
	Thresholds []Threshold `toml:"threshold"`
}

// Threshold represents one row of a ThresholdTable
type Threshold struct {
	Min   float64 `toml:"min"`
	Level string  `toml:"level"`
}

// Window configures the time windows of the engine
type Window struct {
	ExpiringDays   *int `toml:"expiring_days"`
	SLAAtRiskHours *int `toml:"sla_at_risk_hours"`
}

// Validate checks if the Window is valid
func (w *Window) Validate() error {
	if w.ExpiringDays != nil && *w.ExpiringDays <= 0 {
		return goerr.Wrap(ErrInvalidWindow, "expiring_days must be positive",
			goerr.V(WindowKey, "expiring_days"), goerr.V("value", *w.ExpiringDays))
	}
	if w.SLAAtRiskHours != nil && *w.SLAAtRiskHours <= 0 {
		return goerr.Wrap(ErrInvalidWindow, "sla_at_risk_hours must be positive",
			goerr.V(WindowKey, "sla_at_risk_hours"), goerr.V("value", *w.SLAAtRiskHours))
	}
	return nil
}

func levelTable(name string, t *ThresholdTable) (*scoring.ThresholdTable[types.Level], error) {
	floor, err := types.ParseLevel(t.Floor)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidLevel, "invalid floor level",
			goerr.V(TableKey, name), goerr.V(LevelKey, t.Floor))
	}

	thresholds := make([]scoring.Threshold[types.Level], 0, len(t.Thresholds))
	for _, th := range t.Thresholds {
		level, err := types.ParseLevel(th.Level)
		if err != nil {
			return nil, goerr.Wrap(ErrInvalidLevel, "invalid threshold level",
				goerr.V(TableKey, name), goerr.V(LevelKey, th.Level))
		}
		thresholds = append(thresholds, scoring.Threshold[types.Level]{Min: th.Min, Level: level})
	}

	table, err := scoring.NewThresholdTable(floor, thresholds...)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid threshold table", goerr.V(TableKey, name))
	}
	return table, nil
}

func complianceTable(t *ThresholdTable) (*scoring.ThresholdTable[types.ComplianceStatus], error) {
	floor, err := types.ParseComplianceStatus(t.Floor)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidLevel, "invalid floor status",
			goerr.V(TableKey, "compliance"), goerr.V(LevelKey, t.Floor))
	}

	thresholds := make([]scoring.Threshold[types.ComplianceStatus], 0, len(t.Thresholds))
	for _, th := range t.Thresholds {
		status, err := types.ParseComplianceStatus(th.Level)
		if err != nil {
			return nil, goerr.Wrap(ErrInvalidLevel, "invalid threshold status",
				goerr.V(TableKey, "compliance"), goerr.V(LevelKey, th.Level))
		}
		thresholds = append(thresholds, scoring.Threshold[types.ComplianceStatus]{Min: th.Min, Level: status})
	}

	table, err := scoring.NewThresholdTable(floor, thresholds...)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid threshold table", goerr.V(TableKey, "compliance"))
	}
	return table, nil
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	_, err := a.EngineOptions()
	return err
}

// EngineOptions converts the configuration into scoring engine options
func (a *AppConfig) EngineOptions() ([]scoring.Option, error) {
	var opts []scoring.Option

	if a.Severity != nil {
		table, err := levelTable("severity", a.Severity)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scoring.WithSeverityTable(table))
	}

	if a.HeatMap != nil {
		table, err := levelTable("heatmap", a.HeatMap)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scoring.WithHeatMapTable(table))
	}

	if a.Compliance != nil {
		table, err := complianceTable(a.Compliance)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scoring.WithComplianceTable(table))
	}

	if err := a.Window.Validate(); err != nil {
		return nil, err
	}
	if a.Window.ExpiringDays != nil {
		opts = append(opts, scoring.WithExpiringWindow(scoring.Days(*a.Window.ExpiringDays)))
	}
	if a.Window.SLAAtRiskHours != nil {
		opts = append(opts, scoring.WithSLAAtRiskWindow(time.Duration(*a.Window.SLAAtRiskHours)*time.Hour))
	}

	return opts, nil
}

// LoadAppConfiguration loads the scoring configuration from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "failed to read config file", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML config",
			goerr.V(ConfigPathKey, path), goerr.V("error", err.Error()))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, path))
	}

	return &config, nil
}
