package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/cli/config"
	httpctrl "github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/controller/http"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/service/snapshot"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/service/worker"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/usecase"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/utils/logging"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/utils/safe"
)

func cmdServe() *cli.Command {
	var addr string
	var snapshotLocation string
	var refreshInterval time.Duration
	var enableMetrics bool
	var scoringCfg config.Scoring
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("COMPLIANCE_SUITE_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "snapshot",
			Usage:       "Snapshot file to import at startup (local path or gs://bucket/object)",
			Sources:     cli.EnvVars("COMPLIANCE_SUITE_SNAPSHOT"),
			Destination: &snapshotLocation,
		},
		&cli.DurationFlag{
			Name:        "refresh-interval",
			Usage:       "Reload the snapshot at this interval (0 imports it once)",
			Sources:     cli.EnvVars("COMPLIANCE_SUITE_REFRESH_INTERVAL"),
			Destination: &refreshInterval,
		},
		&cli.BoolFlag{
			Name:        "metrics",
			Usage:       "Expose Prometheus metrics on /metrics",
			Value:       true,
			Sources:     cli.EnvVars("COMPLIANCE_SUITE_METRICS"),
			Destination: &enableMetrics,
		},
	}

	// Add shared config flags
	flags = append(flags, scoringCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			engine, err := scoringCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load scoring configuration")
			}

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uc := usecase.New(repo, usecase.WithEngine(engine))

			// Import the snapshot, and keep it fresh when an interval is given.
			// Refresh uses DeleteAll → SaveMany (Replace strategy).
			var refreshWorker *worker.SnapshotRefreshWorker
			if snapshotLocation != "" {
				loader := snapshot.New()
				defer safe.Close(ctx, loader)

				refreshWorker = worker.NewSnapshotRefreshWorker(repo, loader, uc.Snapshot, snapshotLocation, refreshInterval)
				if refreshInterval > 0 {
					if err := refreshWorker.Start(ctx); err != nil {
						return goerr.Wrap(err, "failed to start snapshot refresh worker")
					}
				} else if err := refreshWorker.Refresh(ctx); err != nil {
					return goerr.Wrap(err, "failed to import snapshot", goerr.V("location", snapshotLocation))
				}
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, httpctrl.WithMetrics(enableMetrics)),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr, "metrics", enableMetrics)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				// Stop snapshot refresh worker first
				if refreshWorker != nil && refreshInterval > 0 {
					refreshWorker.Stop()
				}

				// Create shutdown context with timeout
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				// Attempt graceful shutdown
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
