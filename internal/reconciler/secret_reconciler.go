package reconciler

import (
	"bytes"
	"context"
	"encoding/json"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/giantswarm/pullsecret-sync/internal/credentials"
	"github.com/giantswarm/pullsecret-sync/internal/events"
	"github.com/giantswarm/pullsecret-sync/pkg/logging"
)

// EnsureSecret makes sure namespace ns holds a dockerconfigjson secret named
// after the credential's registry with the credential's current payload.
//
// The secret is read, created and patched in the target namespace ns.
// Calling it again with unchanged input performs no write.
func (r *Reconciler) EnsureSecret(ctx context.Context, ns string, cred credentials.Credential) (Outcome, error) {
	outcome, existing, payload, err := r.inspectSecret(ctx, ns, cred)
	if err != nil {
		return "", err
	}

	switch outcome {
	case OutcomeSkipped:
		logging.Debug("Reconciler", "Secret %s does not need syncing to namespace %s", cred.Server, ns)

	case OutcomeUnchanged:
		logging.Debug("Reconciler", "Registry secret %s/%s is up to date", ns, cred.Server)

	case OutcomeCreated:
		secret := newRegistrySecret(ns, cred.Server, payload)
		if err := r.client.Create(ctx, secret); err != nil {
			return "", &EnsureError{Namespace: ns, Registry: cred.Server, Op: "create secret", Err: err}
		}
		logging.Info("Reconciler", "Created registry secret %s/%s", ns, cred.Server)
		r.recordSecretEvent(ctx, secret, events.ReasonPullSecretCreated)

	case OutcomeUpdated:
		patch, err := json.Marshal(map[string]interface{}{
			"data": map[string][]byte{
				corev1.DockerConfigJsonKey: payload,
			},
		})
		if err != nil {
			return "", &EnsureError{Namespace: ns, Registry: cred.Server, Op: "build secret patch", Err: err}
		}
		if err := r.client.Patch(ctx, existing, client.RawPatch(types.MergePatchType, patch)); err != nil {
			return "", &EnsureError{Namespace: ns, Registry: cred.Server, Op: "patch secret", Err: err}
		}
		logging.Info("Reconciler", "Updated registry secret %s/%s", ns, cred.Server)
		r.recordSecretEvent(ctx, existing, events.ReasonPullSecretUpdated)
	}

	return outcome, nil
}

// inspectSecret reads the registry secret in ns and reports what
// EnsureSecret has to do with it, without writing anything. For
// OutcomeUpdated the existing secret is returned alongside the payload.
func (r *Reconciler) inspectSecret(ctx context.Context, ns string, cred credentials.Credential) (Outcome, *corev1.Secret, []byte, error) {
	if !cred.InScope(ns) {
		return OutcomeSkipped, nil, nil, nil
	}

	payload, err := cred.RegistryAuth().Marshal()
	if err != nil {
		return "", nil, nil, &EnsureError{Namespace: ns, Registry: cred.Server, Op: "encode payload", Err: err}
	}

	existing := &corev1.Secret{}
	err = r.client.Get(ctx, client.ObjectKey{Namespace: ns, Name: cred.Server}, existing)
	switch {
	case apierrors.IsNotFound(err):
		return OutcomeCreated, nil, payload, nil
	case err != nil:
		return "", nil, nil, &EnsureError{Namespace: ns, Registry: cred.Server, Op: "get secret", Err: err}
	}

	// A secret without the data key compares as different and gets patched.
	if bytes.Equal(existing.Data[corev1.DockerConfigJsonKey], payload) {
		return OutcomeUnchanged, existing, payload, nil
	}
	return OutcomeUpdated, existing, payload, nil
}

func newRegistrySecret(ns, name string, payload []byte) *corev1.Secret {
	return &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: ns,
		},
		Type: corev1.SecretTypeDockerConfigJson,
		Data: map[string][]byte{
			corev1.DockerConfigJsonKey: payload,
		},
	}
}
