package watcher

import (
	"errors"
	"fmt"
)

// WatchError is reported when an established watch delivers an error event
// or an object of an unexpected type. It is transient: the next call to Next
// resumes watching, relisting first if the resource version expired.
type WatchError struct {
	Err error
}

func (e *WatchError) Error() string {
	return fmt.Sprintf("watch error: %v", e.Err)
}

func (e *WatchError) Unwrap() error {
	return e.Err
}

// ListError is reported when listing the watched objects fails.
type ListError struct {
	Err error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("initial list failed: %v", e.Err)
}

func (e *ListError) Unwrap() error {
	return e.Err
}

// WatchStartError is reported when a watch cannot be established.
type WatchStartError struct {
	Err error
}

func (e *WatchStartError) Error() string {
	return fmt.Sprintf("failed to start watch: %v", e.Err)
}

func (e *WatchStartError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is a stream error after which watching
// can simply continue. Every other error returned by Next, apart from context
// cancellation, is fatal to the consumer.
func IsTransient(err error) bool {
	var watchErr *WatchError
	return errors.As(err, &watchErr)
}
