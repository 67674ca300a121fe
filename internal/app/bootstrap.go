package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"sigs.k8s.io/controller-runtime/pkg/client"

	kubeclient "github.com/giantswarm/pullsecret-sync/internal/client"
	"github.com/giantswarm/pullsecret-sync/internal/config"
	"github.com/giantswarm/pullsecret-sync/internal/reconciler"
	"github.com/giantswarm/pullsecret-sync/pkg/logging"
)

// Application represents the main application structure that bootstraps and
// runs pullsecret-sync.
//
// The Application follows a two-phase initialization pattern:
//  1. Bootstrap phase: load settings, initialize logging, build the API client
//  2. Execution phase: run the watch loops (Run) or a dry run (Plan)
//
// Example usage:
//
//	cfg := app.NewConfig(true, "/etc/pullsecret-sync")
//	application, err := app.NewApplication(cfg)
//	if err != nil {
//	    return fmt.Errorf("failed to create application: %w", err)
//	}
//	return application.Run(ctx)
type Application struct {
	config   *Config
	settings config.SyncConfig
	manager  *reconciler.Manager
}

// NewApplication creates and initializes a new application instance.
// This function performs the complete bootstrap sequence:
//
//  1. Loads settings and applies command line overrides
//  2. Configures logging (level from the debug flag, format from settings)
//  3. Resolves the Kubernetes REST config and creates the API client
//
// No request is sent to the API server before Run or Plan is called.
func NewApplication(cfg *Config) (*Application, error) {
	settings, err := LoadSettings(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if err := initLogging(cfg, settings); err != nil {
		return nil, err
	}
	logging.Info("Bootstrap", "Using credential config %s/%s (key %s), binding to serviceaccount %q",
		settings.ConfigNamespace, settings.ConfigName, settings.ConfigDataKey, settings.ServiceAccountName)

	restConfig, err := kubeclient.GetRestConfig(cfg.Kubeconfig)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to resolve Kubernetes config")
		return nil, err
	}

	k8sClient, err := kubeclient.NewKubernetesClient(restConfig)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to create Kubernetes client")
		return nil, err
	}
	logging.Debug("Bootstrap", "Connected client to %s", restConfig.Host)

	return newApplication(cfg, settings, k8sClient), nil
}

func newApplication(cfg *Config, settings config.SyncConfig, c client.WithWatch) *Application {
	return &Application{
		config:   cfg,
		settings: settings,
		manager:  reconciler.NewManager(c, ReconcilerOptions(settings)),
	}
}

func initLogging(cfg *Config, settings config.SyncConfig) error {
	level := logging.LevelInfo
	if cfg.Debug {
		level = logging.LevelDebug
	}

	format, err := logging.ParseFormat(settings.LogFormat)
	if err != nil {
		return err
	}

	var output io.Writer = os.Stdout
	if cfg.LogOutput != nil {
		output = cfg.LogOutput
	}

	logging.Init(logging.Options{Level: level, Format: format, Output: output})
	return nil
}

// Run executes the application
//
// Handles graceful shutdown via context cancellation and system signals.
// The method blocks until the application is terminated or a watch loop
// fails fatally.
func (a *Application) Run(ctx context.Context) error {
	return runWatchMode(ctx, a.manager)
}

// Plan reads the credential config and active namespaces and reports what a
// convergence pass would do, without writing.
func (a *Application) Plan(ctx context.Context) ([]reconciler.PlanEntry, error) {
	return runPlanMode(ctx, a.manager.Reconciler())
}

// Settings returns the effective settings.
func (a *Application) Settings() config.SyncConfig {
	return a.settings
}
