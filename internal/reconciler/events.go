package reconciler

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/giantswarm/pullsecret-sync/internal/events"
	"github.com/giantswarm/pullsecret-sync/pkg/logging"
)

// Event recording is best effort: a failure is logged and otherwise ignored.

func (r *Reconciler) recordSecretEvent(ctx context.Context, secret *corev1.Secret, reason events.EventReason) {
	if r.events == nil {
		return
	}
	if err := r.events.SecretEvent(ctx, secret, reason, events.EventData{}); err != nil {
		logging.Warn("Reconciler", "Failed to record %s event for secret %s/%s: %v", reason, secret.Namespace, secret.Name, err)
	}
}

func (r *Reconciler) recordServiceAccountEvent(ctx context.Context, sa *corev1.ServiceAccount, reason events.EventReason, data events.EventData) {
	if r.events == nil {
		return
	}
	if err := r.events.ServiceAccountEvent(ctx, sa, reason, data); err != nil {
		logging.Warn("Reconciler", "Failed to record %s event for serviceaccount %s/%s: %v", reason, sa.Namespace, sa.Name, err)
	}
}

// recordFailure records a warning on the namespace's service account, which
// is where users look when pulls fail. The account may not exist.
func (r *Reconciler) recordFailure(ctx context.Context, ns, registry string, err error) {
	if r.events == nil || ctx.Err() != nil {
		return
	}
	sa := &corev1.ServiceAccount{
		ObjectMeta: metav1.ObjectMeta{Name: r.options.ServiceAccountName, Namespace: ns},
	}
	r.recordServiceAccountEvent(ctx, sa, events.ReasonPullSecretSyncFailed, events.EventData{
		Registry: registry,
		Error:    err.Error(),
	})
}
