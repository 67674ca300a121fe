// Package reconciler keeps registry pull secrets and service account
// bindings in every namespace consistent with the central credential list.
//
// # Overview
//
// The central credential list lives in a single Secret (by default
// default/docker-registry-configs, key registry_secrets). For every active
// namespace and every credential in scope for it, the reconciler makes sure
//
//   - a Secret named after the registry host exists in the namespace, typed
//     kubernetes.io/dockerconfigjson, holding the credential's payload
//   - the namespace's service account (by default "default") lists that
//     Secret in its imagePullSecrets
//
// # Architecture
//
//   - Reconciler: one convergence pass over (namespaces x credentials).
//     EnsureSecret and Bind are its two per-pair steps.
//   - Manager: runs the namespace loop and the config loop concurrently.
//     Each loop consumes a watcher.Stream and triggers a full pass per event.
//   - PassSummary: counters of one pass, logged when the pass ends.
//
// Every pass re-reads the credential list and namespace set; nothing is
// cached between passes. Writes only happen when the cluster differs from
// the desired state, so repeated passes are cheap.
//
// # Errors
//
// A failing pair is logged with its namespace and registry and does not stop
// the pass. Transient stream errors are logged and the loop continues. A
// fatal stream error, or an unreadable config on the namespace path, stops
// the loop and Manager.Start returns it.
//
// Example usage:
//
//	manager := reconciler.NewManager(client, reconciler.Options{...})
//	if err := manager.Start(ctx); err != nil {
//	    return fmt.Errorf("watch loops failed: %w", err)
//	}
package reconciler
