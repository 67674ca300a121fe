// Package watcher provides a list+watch event stream over Kubernetes objects.
//
// A Watcher starts with a list and reports it as one Restarted event, then
// follows changes with Applied and Deleted events. Server side watch timeouts
// are handled silently by resuming from the last resource version. When the
// resource version has expired (410 Gone) the next call relists and reports a
// fresh Restarted snapshot.
//
// Errors are classified for the consumer:
//
//   - *WatchError: an error event on an established watch. Transient; call
//     Next again.
//   - *ListError, *WatchStartError: the API server refused the list or the
//     watch. Fatal.
//
// Use IsTransient to tell them apart.
package watcher
