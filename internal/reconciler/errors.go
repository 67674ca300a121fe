package reconciler

import (
	"fmt"
)

// EnsureError wraps a failure for a single (namespace, registry) pair. It
// unwraps to the underlying API error, so apierrors helpers keep working.
type EnsureError struct {
	Namespace string
	Registry  string
	// Op names the failed step, e.g. "get secret" or "patch serviceaccount".
	Op  string
	Err error
}

func (e *EnsureError) Error() string {
	return fmt.Sprintf("%s %s/%s: %v", e.Op, e.Namespace, e.Registry, e.Err)
}

func (e *EnsureError) Unwrap() error {
	return e.Err
}
