package reconciler

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/giantswarm/pullsecret-sync/internal/credentials"
)

// PlanEntry describes what a pass would do for one (namespace, registry) pair.
type PlanEntry struct {
	Namespace string
	Registry  string

	// Outcome is what EnsureSecret would return. It is empty when Err is set.
	Outcome Outcome

	// NeedsBinding is true when the service account lacks the reference.
	// Always false for skipped pairs.
	NeedsBinding bool

	// Err holds a read failure for the pair.
	Err error
}

// Plan computes the outcome of a pass over namespaces and creds using reads
// only. It never writes.
func (r *Reconciler) Plan(ctx context.Context, namespaces []string, creds []credentials.Credential) []PlanEntry {
	entries := make([]PlanEntry, 0, len(namespaces)*len(creds))
	for _, ns := range namespaces {
		for _, cred := range creds {
			if ctx.Err() != nil {
				return entries
			}
			entries = append(entries, r.planPair(ctx, ns, cred))
		}
	}
	return entries
}

func (r *Reconciler) planPair(ctx context.Context, ns string, cred credentials.Credential) PlanEntry {
	entry := PlanEntry{Namespace: ns, Registry: cred.Server}

	outcome, _, _, err := r.inspectSecret(ctx, ns, cred)
	if err != nil {
		entry.Err = err
		return entry
	}
	entry.Outcome = outcome
	if outcome == OutcomeSkipped {
		return entry
	}

	sa := &corev1.ServiceAccount{}
	key := client.ObjectKey{Namespace: ns, Name: r.options.ServiceAccountName}
	if err := r.client.Get(ctx, key, sa); err != nil {
		entry.Err = &EnsureError{Namespace: ns, Registry: cred.Server, Op: "get serviceaccount " + key.Name, Err: err}
		return entry
	}
	entry.NeedsBinding = !hasPullSecret(sa, cred.Server)
	return entry
}
