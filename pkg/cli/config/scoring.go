package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/scoring"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/utils/logging"
)

// Scoring holds CLI flags for the scoring engine configuration
type Scoring struct {
	path string
}

// Flags returns CLI flags for scoring configuration
func (s *Scoring) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to the scoring configuration TOML file (built-in tables when omitted)",
			Sources:     cli.EnvVars("COMPLIANCE_SUITE_CONFIG"),
			Destination: &s.path,
		},
	}
}

// Path returns the configured file path
func (s *Scoring) Path() string {
	return s.path
}

// Configure builds the scoring engine from the configuration file, or with
// the built-in tables and windows when no file is given
func (s *Scoring) Configure() (*scoring.Engine, error) {
	if s.path == "" {
		return scoring.New(), nil
	}

	cfg, err := LoadAppConfiguration(s.path)
	if err != nil {
		return nil, err
	}

	opts, err := cfg.EngineOptions()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build scoring engine", goerr.V(ConfigPathKey, s.path))
	}

	logging.Default().Info("Loaded scoring configuration", "path", s.path)
	return scoring.New(opts...), nil
}
