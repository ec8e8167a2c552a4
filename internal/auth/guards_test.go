package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manga-catalog/admin-gateway/internal/session"
)

func sessionWithToken(token string) *session.Session {
	sess, writer := session.New()
	if token != "" {
		writer.SetToken(token)
	}
	return sess
}

func storeWithToken(token string) CredentialStore {
	store := NewMemoryCredentialStore()
	store.Store(token)
	return store
}

func TestRequireAuthenticated(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		sessionToken string
		env          Environment
		creds        CredentialStore
		wantRedirect string
	}{
		{
			name:         "login page is always allowed",
			path:         LoginPath,
			env:          EnvClient,
			creds:        NewMemoryCredentialStore(),
			wantRedirect: "",
		},
		{
			name:         "client without any token redirects to login",
			path:         "/manga",
			env:          EnvClient,
			creds:        NewMemoryCredentialStore(),
			wantRedirect: LoginPath,
		},
		{
			name:         "client with persisted token is allowed",
			path:         "/manga",
			env:          EnvClient,
			creds:        storeWithToken("fake-token"),
			wantRedirect: "",
		},
		{
			name:         "client with session token but cold storage is allowed",
			path:         "/manga",
			sessionToken: "fake-token",
			env:          EnvClient,
			creds:        NewMemoryCredentialStore(),
			wantRedirect: "",
		},
		{
			name:         "server without session token redirects to login",
			path:         "/",
			env:          EnvServer,
			wantRedirect: LoginPath,
		},
		{
			name:         "server with session token and no storage is allowed",
			path:         "/manga",
			sessionToken: "fake-token",
			env:          EnvServer,
			wantRedirect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := sessionWithToken(tt.sessionToken)
			got := RequireAuthenticated(tt.path, sess, tt.env, tt.creds)
			assert.Equal(t, tt.wantRedirect, got)
		})
	}
}

func TestRequireGuest(t *testing.T) {
	tests := []struct {
		name         string
		sessionToken string
		env          Environment
		creds        CredentialStore
		wantRedirect string
	}{
		{
			name:         "guest with no token anywhere is allowed",
			env:          EnvClient,
			creds:        NewMemoryCredentialStore(),
			wantRedirect: "",
		},
		{
			name:         "client with persisted token goes home",
			env:          EnvClient,
			creds:        storeWithToken("fake-token"),
			wantRedirect: HomePath,
		},
		{
			name:         "authenticated session goes home",
			sessionToken: "fake-token",
			env:          EnvServer,
			wantRedirect: HomePath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := sessionWithToken(tt.sessionToken)
			got := RequireGuest(sess, tt.env, tt.creds)
			assert.Equal(t, tt.wantRedirect, got)
		})
	}
}

func TestGuardChecksAreOrderInsensitive(t *testing.T) {
	// persisted token alone and session token alone must each be enough
	assert.Empty(t, RequireAuthenticated("/manga", sessionWithToken(""), EnvClient, storeWithToken("a")))
	assert.Empty(t, RequireAuthenticated("/manga", sessionWithToken("b"), EnvClient, NewMemoryCredentialStore()))
}
