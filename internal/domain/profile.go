package domain

// Profile is a named catalog connection: where to connect and which stored
// credential to log in with. The password itself lives in the secret store
// under SecretRef, never in the profiles file.
type Profile struct {
	Name      string
	BaseURL   string
	Username  string
	SecretRef string
	Admin     bool
}
