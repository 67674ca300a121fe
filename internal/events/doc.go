// Package events records Kubernetes Events for pull secret changes.
//
// Events are recorded on the object that changed: the registry secret when it
// is created or updated, and the service account when it gains a reference.
// They only accompany actual writes, so a converged cluster produces none.
//
//	generator := events.NewEventGenerator(k8sClient)
//	err := generator.SecretEvent(ctx, secret, events.ReasonPullSecretCreated, events.EventData{})
//
// Failing to record an event never fails the operation it describes; callers
// log and move on.
package events
