package models

// LoginRequest is the shared-credential login payload. The deployment has a
// single couple credential, not per-user accounts.
type LoginRequest struct {
	Name       string `json:"name"`
	Passphrase string `json:"passphrase"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// Claims represents the validated JWT claims.
type Claims struct {
	Name string `json:"name"`
	Exp  int64  `json:"exp"`
}
