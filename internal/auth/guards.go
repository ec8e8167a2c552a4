package auth

import "github.com/manga-catalog/admin-gateway/internal/session"

// Environment tells a guard which credential sources are reachable. On the
// server side no persisted store exists, only the in-memory session.
type Environment int

const (
	EnvClient Environment = iota
	EnvServer
)

// Well-known panel routes used by guards and the auth service.
const (
	LoginPath = "/login"
	HomePath  = "/"
)

// RequireAuthenticated guards every route except the login page. It allows
// navigation when a token is found in either the persisted store or the
// in-memory session; the two checks are independent and order-insensitive,
// so a guard running before the session is hydrated still sees the persisted
// token. An empty return means no redirect.
func RequireAuthenticated(path string, sess *session.Session, env Environment, creds CredentialStore) string {
	if path == LoginPath {
		return ""
	}
	if hasCredential(sess, env, creds) {
		return ""
	}
	return LoginPath
}

// RequireGuest guards the login page only: an already-authenticated caller
// is sent home.
func RequireGuest(sess *session.Session, env Environment, creds CredentialStore) string {
	if hasCredential(sess, env, creds) {
		return HomePath
	}
	return ""
}

// hasCredential checks persisted storage (client side only) and the session,
// token presence in either is enough. Profile verification never factors in.
func hasCredential(sess *session.Session, env Environment, creds CredentialStore) bool {
	if env == EnvClient && creds != nil && creds.Token() != "" {
		return true
	}
	return sess != nil && sess.IsAuthenticated()
}
