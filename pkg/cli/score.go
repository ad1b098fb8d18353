package cli

import (
	"context"
	"encoding/json"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/cli/config"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/service/snapshot"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/utils/logging"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/utils/safe"
)

func cmdScore() *cli.Command {
	var snapshotLocation string
	var nowValue string
	var asJSON bool
	var scoringCfg config.Scoring

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "snapshot",
			Usage:       "Snapshot file to score (local path or gs://bucket/object)",
			Required:    true,
			Sources:     cli.EnvVars("COMPLIANCE_SUITE_SNAPSHOT"),
			Destination: &snapshotLocation,
		},
		&cli.StringFlag{
			Name:        "now",
			Usage:       "Reference instant in RFC 3339 (defaults to the current time)",
			Destination: &nowValue,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "Print the dashboard as JSON",
			Destination: &asJSON,
		},
	}
	flags = append(flags, scoringCfg.Flags()...)

	return &cli.Command{
		Name:  "score",
		Usage: "Run one scoring pass over a snapshot file and print the dashboard",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			now := time.Now()
			if nowValue != "" {
				t, err := time.Parse(time.RFC3339, nowValue)
				if err != nil {
					return goerr.Wrap(err, "now must be RFC 3339", goerr.V("now", nowValue))
				}
				now = t
			}

			engine, err := scoringCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load scoring configuration")
			}

			loader := snapshot.New()
			defer safe.Close(ctx, loader)

			snap, err := loader.Load(ctx, snapshotLocation)
			if err != nil {
				return goerr.Wrap(err, "failed to load snapshot", goerr.V("location", snapshotLocation))
			}

			dashboard := engine.Score(snap, now)
			logging.Default().Debug("scored snapshot",
				"location", snapshotLocation,
				"now", now,
				"records", snap.RecordCount(),
			)

			w := c.Root().Writer
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err := enc.Encode(dashboard); err != nil {
					return goerr.Wrap(err, "failed to encode dashboard")
				}
				return nil
			}

			printDashboard(w, dashboard)
			return nil
		},
	}
}
