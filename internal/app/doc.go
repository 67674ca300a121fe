// Package app provides application bootstrap and lifecycle management for
// pullsecret-sync.
//
// # Components
//
//   - Configuration (config.go): command line options, settings loading and
//     the mapping onto reconciler options
//   - Bootstrap (bootstrap.go): logging setup, Kubernetes client creation
//     and assembly of the reconciler.Manager
//   - Modes (modes.go): the long running watch mode and the read-only plan
//     mode
//
// # Lifecycle
//
// NewApplication never talks to the API server. Run blocks until SIGINT or
// SIGTERM (returning nil) or until a watch loop fails (returning its error).
// There is no in-process restart; the container runtime restarts the pod.
package app
