package auth

import "sync"

// CredentialStore is the single persisted slot holding the bearer token. The
// panel backs it with the credential cookie; tests and non-browser callers
// use the in-memory implementation.
type CredentialStore interface {
	Token() string
	Store(token string)
	Clear()
}

// MemoryCredentialStore keeps the token in process memory.
type MemoryCredentialStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryCredentialStore returns an empty store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

// Token returns the persisted token, empty when absent.
func (m *MemoryCredentialStore) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Store replaces the persisted token.
func (m *MemoryCredentialStore) Store(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

// Clear removes the persisted token.
func (m *MemoryCredentialStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
}
