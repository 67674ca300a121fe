package credentials

// WildcardNamespace in a credential's namespace list selects every namespace.
const WildcardNamespace = "*"

// Credential is one entry of the central credential list.
//
// Server is the registry host and doubles as the name of the generated
// secret, so it must be unique within a list.
type Credential struct {
	Server   string `json:"server"`
	Username string `json:"username"`
	Password string `json:"password"`

	// Namespaces limits the credential to the listed namespaces. An empty
	// list, or one containing "*", selects every namespace.
	Namespaces []string `json:"namespaces,omitempty"`
}

// InScope reports whether the credential applies to namespace ns.
func (c Credential) InScope(ns string) bool {
	if len(c.Namespaces) == 0 {
		return true
	}
	for _, n := range c.Namespaces {
		if n == WildcardNamespace || n == ns {
			return true
		}
	}
	return false
}

// RegistryAuth builds the docker config payload for this credential.
func (c Credential) RegistryAuth() RegistryAuth {
	return NewRegistryAuth(c.Username, c.Password, c.Server)
}
