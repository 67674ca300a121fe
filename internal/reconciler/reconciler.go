package reconciler

import (
	"context"
	"fmt"
	"log/slog"

	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/giantswarm/pullsecret-sync/internal/credentials"
	"github.com/giantswarm/pullsecret-sync/internal/events"
	"github.com/giantswarm/pullsecret-sync/pkg/logging"
)

// Reconciler converges registry secrets and service account bindings for a
// set of namespaces against a credential list.
//
// It holds no state besides the client; every pass re-reads what it needs.
// It is safe for concurrent use by both watch loops. Concurrent passes over
// the same pair race, and the last writer wins.
type Reconciler struct {
	client  client.Client
	options Options

	// events is nil unless Options.EmitEvents is set.
	events *events.EventGenerator
}

// NewReconciler creates a Reconciler.
func NewReconciler(c client.Client, options Options) *Reconciler {
	r := &Reconciler{
		client:  c,
		options: options,
	}
	if options.EmitEvents {
		r.events = events.NewEventGenerator(c)
	}
	return r
}

// Ensure runs one convergence pass over every (namespace, credential) pair.
//
// For each pair the registry secret is ensured and, unless the namespace is
// out of the credential's scope, the service account is bound to it. A
// failing pair is logged and counted; the remaining pairs are still
// processed.
func (r *Reconciler) Ensure(ctx context.Context, namespaces []string, creds []credentials.Credential) PassSummary {
	summary := newPassSummary(len(namespaces), len(creds))

	for _, ns := range namespaces {
		for _, cred := range creds {
			if ctx.Err() != nil {
				summary.Interrupted = true
				return summary.finish()
			}
			r.ensurePair(ctx, &summary, ns, cred)
		}
	}

	return summary.finish()
}

func (r *Reconciler) ensurePair(ctx context.Context, summary *PassSummary, ns string, cred credentials.Credential) {
	summary.Pairs++

	outcome, err := r.EnsureSecret(ctx, ns, cred)
	if err != nil {
		summary.Failed++
		logPairFailure(summary.ID, ns, cred.Server, err, "ensure registry secret failed")
		r.recordFailure(ctx, ns, cred.Server, err)
		return
	}
	summary.recordOutcome(outcome)

	if outcome == OutcomeSkipped {
		return
	}

	bound, err := r.Bind(ctx, ns, cred.Server)
	if err != nil {
		summary.Failed++
		logPairFailure(summary.ID, ns, cred.Server, err, "bind pull secret to serviceaccount failed")
		r.recordFailure(ctx, ns, cred.Server, err)
		return
	}
	if bound {
		summary.Bound++
	}
}

func logPairFailure(passID, ns, registry string, err error, msg string) {
	logging.WarnAttrs("Reconciler", err, msg,
		slog.String("namespace", ns),
		slog.String("registry", registry),
		slog.String("pass", passID),
	)
}

// ReadConfig fetches the central config secret and decodes the credential
// list stored in it.
func (r *Reconciler) ReadConfig(ctx context.Context) ([]credentials.Credential, error) {
	secret := &corev1.Secret{}
	key := client.ObjectKey{Namespace: r.options.ConfigNamespace, Name: r.options.ConfigName}
	if err := r.client.Get(ctx, key, secret); err != nil {
		return nil, fmt.Errorf("failed to get config secret %s: %w", key, err)
	}
	return credentials.FromSecret(secret, r.options.ConfigDataKey)
}

// ListActiveNamespaces returns the names of all namespaces in phase Active.
func (r *Reconciler) ListActiveNamespaces(ctx context.Context) ([]string, error) {
	list := &corev1.NamespaceList{}
	if err := r.client.List(ctx, list, client.MatchingFieldsSelector{Selector: activeNamespaceSelector()}); err != nil {
		return nil, fmt.Errorf("failed to list active namespaces: %w", err)
	}

	names := make([]string, 0, len(list.Items))
	for i := range list.Items {
		if isActiveNamespace(&list.Items[i]) {
			names = append(names, list.Items[i].Name)
		}
	}
	return names, nil
}
