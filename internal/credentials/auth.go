package credentials

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// RegistryAuth is the content of a kubernetes.io/dockerconfigjson secret.
type RegistryAuth struct {
	Auths map[string]UserInfo `json:"auths"`
}

// UserInfo is a single registry entry of a RegistryAuth.
type UserInfo struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Auth     string `json:"auth"`
}

// NewRegistryAuth returns the payload granting username/password on server.
func NewRegistryAuth(username, password, server string) RegistryAuth {
	return RegistryAuth{
		Auths: map[string]UserInfo{
			server: {
				Username: username,
				Password: password,
				Auth:     base64.StdEncoding.EncodeToString([]byte(username + ":" + password)),
			},
		},
	}
}

// Marshal returns the canonical JSON form. encoding/json emits map keys in
// sorted order and struct fields in declaration order, so equal inputs give
// byte-identical output.
func (r RegistryAuth) Marshal() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal registry auth: %w", err)
	}
	return data, nil
}

// Encode returns the base64 of Marshal, which is how the payload appears on
// the wire under the secret's .dockerconfigjson key.
func (r RegistryAuth) Encode() (string, error) {
	data, err := r.Marshal()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
