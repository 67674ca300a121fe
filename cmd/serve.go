package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giantswarm/pullsecret-sync/internal/app"
)

var serveFlags appFlags

// serveCmd defines the serve command structure.
// This is the main command: it runs the namespace and config watch loops.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Watch namespaces and the credential config and keep pull secrets in sync",
	Long: `Starts two watch loops:

1. Namespace loop:
   - Every namespace that becomes active gets a pull secret per registry in
     scope and its service account is updated to reference them.
   - On start and after every relist, all active namespaces are converged.

2. Config loop:
   - Whenever the central credential secret changes, every active namespace
     is converged against the new list.

The process runs until SIGINT or SIGTERM. A fatal watch error exits with a
non-zero status so the pod gets restarted.

Configuration:
  Use --config-path to point at a config.yaml (or a directory holding one).
  Missing settings fall back to defaults:

    configNamespace: default
    configName: docker-registry-configs
    configDataKey: registry_secrets
    serviceAccountName: default
    logFormat: text`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command
func runServe(cmd *cobra.Command, args []string) error {
	application, err := app.NewApplication(serveFlags.config())
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveFlags.register(serveCmd)
}
