// Package credentials models the central registry credential list and the
// docker config payload generated from each entry.
//
// The list is stored as YAML under a data key of the central config secret:
//
//	- server: reg.example.com
//	  username: robot
//	  password: s3cret
//	  namespaces: ["*"]
//	- server: team-a.example.com
//	  username: a
//	  password: b
//	  namespaces: [team-a]
//
// NewRegistryAuth produces the .dockerconfigjson content for one entry. The
// encoding is deterministic, which lets callers compare a stored payload with
// a freshly computed one to decide whether a write is needed.
package credentials
