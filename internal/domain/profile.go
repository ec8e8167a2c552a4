package domain

// Profile is the admin operator identity resolved from the auth endpoint.
// It personalizes the panel only; access control is decided by token
// presence, never by profile content.
type Profile struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// TokenGrant is the payload returned by a successful login.
type TokenGrant struct {
	Token string `json:"token"`
	Type  string `json:"type"`
}
