package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/cli/config"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/service/snapshot"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/utils/logging"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/utils/safe"
)

func cmdValidate() *cli.Command {
	var scoringCfg config.Scoring
	var snapshotLocation string

	var flags []cli.Flag
	flags = append(flags, scoringCfg.Flags()...)
	flags = append(flags, &cli.StringFlag{
		Name:        "snapshot",
		Usage:       "Snapshot file to validate (local path or gs://bucket/object)",
		Sources:     cli.EnvVars("COMPLIANCE_SUITE_SNAPSHOT"),
		Destination: &snapshotLocation,
	})

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the scoring configuration and optionally a snapshot file",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			// Step 1: Load and validate the scoring configuration
			engine, err := scoringCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "configuration validation failed")
			}

			logger.Info("Configuration validation passed",
				"config", scoringCfg.Path(),
				"expiring_window", engine.ExpiringWindow().String(),
			)

			// Step 2: If a snapshot is specified, parse and validate it
			if snapshotLocation == "" {
				logger.Info("No snapshot specified, skipping snapshot validation")
				return nil
			}

			loader := snapshot.New()
			defer safe.Close(ctx, loader)

			snap, err := loader.Load(ctx, snapshotLocation)
			if err != nil {
				return goerr.Wrap(err, "snapshot validation failed", goerr.V("location", snapshotLocation))
			}

			logger.Info("Snapshot validation passed",
				"location", snapshotLocation,
				"risk_items", len(snap.Risk.Items),
				"incidents", len(snap.Incidents),
				"frameworks", len(snap.Compliance.Frameworks),
				"lifecycle_records", len(snap.Lifecycle),
				"deadlines", len(snap.Deadlines),
				"notifications", len(snap.Notifications),
			)
			return nil
		},
	}
}
