// Package client constructs the Kubernetes API client shared by both watch
// loops.
//
// The returned client.WithWatch is used read-only by the loops themselves
// (list and watch) and for get/create/patch by the reconciler. It carries no
// cache, so each pass observes the API server's current state.
package client
