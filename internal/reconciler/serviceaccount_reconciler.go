package reconciler

import (
	"context"
	"encoding/json"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/giantswarm/pullsecret-sync/internal/events"
	"github.com/giantswarm/pullsecret-sync/pkg/logging"
)

// Bind makes sure the configured service account in namespace ns lists
// secretName among its imagePullSecrets. It returns true if the service
// account was patched.
//
// The patch resubmits the complete list as read plus the new entry; a merge
// patch replaces lists wholesale.
func (r *Reconciler) Bind(ctx context.Context, ns, secretName string) (bool, error) {
	saName := r.options.ServiceAccountName

	sa := &corev1.ServiceAccount{}
	if err := r.client.Get(ctx, client.ObjectKey{Namespace: ns, Name: saName}, sa); err != nil {
		return false, &EnsureError{Namespace: ns, Registry: secretName, Op: "get serviceaccount " + saName, Err: err}
	}

	if hasPullSecret(sa, secretName) {
		return false, nil
	}

	refs := make([]corev1.LocalObjectReference, 0, len(sa.ImagePullSecrets)+1)
	refs = append(refs, sa.ImagePullSecrets...)
	refs = append(refs, corev1.LocalObjectReference{Name: secretName})

	patch, err := json.Marshal(map[string]interface{}{
		"imagePullSecrets": refs,
	})
	if err != nil {
		return false, &EnsureError{Namespace: ns, Registry: secretName, Op: "build serviceaccount patch", Err: err}
	}

	if err := r.client.Patch(ctx, sa, client.RawPatch(types.MergePatchType, patch)); err != nil {
		return false, &EnsureError{Namespace: ns, Registry: secretName, Op: "patch serviceaccount " + saName, Err: err}
	}

	logging.Info("Reconciler", "Added pull secret %s to serviceaccount %s/%s", secretName, ns, saName)
	r.recordServiceAccountEvent(ctx, sa, events.ReasonPullSecretBound, events.EventData{Registry: secretName})
	return true, nil
}

func hasPullSecret(sa *corev1.ServiceAccount, name string) bool {
	for _, ref := range sa.ImagePullSecrets {
		if ref.Name == name {
			return true
		}
	}
	return false
}
