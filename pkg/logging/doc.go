// Package logging provides the structured logging used across pullsecret-sync.
//
// It is a thin layer over Go's slog package. Every entry carries a subsystem
// attribute so output can be filtered per component:
//
//   - **Bootstrap**: settings loading and client construction
//   - **Manager**: lifecycle of the two watch loops
//   - **NamespaceWatch** / **ConfigWatch**: event handling in each loop
//   - **Reconciler**: convergence passes and per-pair failures
//   - **Watcher**: list/watch stream housekeeping
//
// # Usage
//
//	logging.Init(logging.Options{Level: logging.LevelInfo, Format: logging.FormatJSON})
//
//	logging.Info("Bootstrap", "Loaded settings from %s", path)
//	logging.Error("Manager", err, "Watch loop stopped")
//	logging.WarnAttrs("Reconciler", err, "ensure failed",
//	    slog.String("namespace", ns), slog.String("registry", host))
//
// # Library Integration
//
// Init also installs the handler as controller-runtime's logr sink and as
// klog's backend, so client-go and controller-runtime messages are emitted in
// the same format and at the same level threshold.
package logging
