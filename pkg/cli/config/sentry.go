package config

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/utils/logging"
)

// Sentry holds CLI flags for error reporting
type Sentry struct {
	DSN         string `masq:"secret"`
	Environment string
	Release     string
}

// Flags returns CLI flags for Sentry configuration
func (s *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error reporting (disabled when empty)",
			Category:    "Sentry",
			Sources:     cli.EnvVars("COMPLIANCE_SUITE_SENTRY_DSN"),
			Destination: &s.DSN,
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Sources:     cli.EnvVars("COMPLIANCE_SUITE_SENTRY_ENV"),
			Destination: &s.Environment,
		},
	}
}

// LogValue implements slog.LogValuer
func (s Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("enabled", s.DSN != ""),
		slog.String("environment", s.Environment),
	)
}

// Configure initializes the Sentry client. It is a no-op without a DSN.
// The returned function flushes buffered events.
func (s *Sentry) Configure() (func(), error) {
	if s.DSN == "" {
		return func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         s.DSN,
		Environment: s.Environment,
		Release:     s.Release,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to initialize sentry", goerr.V("environment", s.Environment))
	}

	logging.Default().Info("Sentry enabled", "sentry", s)
	return func() {
		sentry.Flush(2 * time.Second)
	}, nil
}
