package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/giantswarm/pullsecret-sync/internal/reconciler"
	"github.com/giantswarm/pullsecret-sync/pkg/logging"
)

// watchRunner is the part of reconciler.Manager that runWatchMode needs.
type watchRunner interface {
	Start(ctx context.Context) error
}

// runWatchMode runs both watch loops until a signal arrives or a loop fails.
//
// Signal Handling:
//   - SIGINT (Ctrl+C): Triggers graceful shutdown
//   - SIGTERM: Triggers graceful shutdown (sent by the kubelet on pod stop)
//
// A fatal loop error is returned unchanged; the caller exits non-zero and the
// pod's restart policy brings the process back.
func runWatchMode(ctx context.Context, runner watchRunner) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info("CLI", "Starting pullsecret-sync. Press Ctrl+C to stop.")

	if err := runner.Start(ctx); err != nil {
		return err
	}

	logging.Info("CLI", "--- Shutting down ---")
	return nil
}

// runPlanMode reads the current credential list and active namespaces and
// plans a pass over them.
func runPlanMode(ctx context.Context, r *reconciler.Reconciler) ([]reconciler.PlanEntry, error) {
	creds, err := r.ReadConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read credential config: %w", err)
	}

	namespaces, err := r.ListActiveNamespaces(ctx)
	if err != nil {
		return nil, err
	}

	logging.Debug("CLI", "Planning %d credential(s) across %d namespace(s)", len(creds), len(namespaces))
	return r.Plan(ctx, namespaces, creds), nil
}
