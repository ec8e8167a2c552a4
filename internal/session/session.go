package session

import (
	"sync"

	"github.com/manga-catalog/admin-gateway/internal/domain"
)

// State describes where a session is in its lifecycle.
type State int

const (
	// Anonymous means no credential token is held.
	Anonymous State = iota
	// Authenticating means a login call is in flight.
	Authenticating
	// AuthenticatedUnverified means a token is held but the profile has not
	// been fetched yet.
	AuthenticatedUnverified
	// AuthenticatedVerified means both token and profile are resolved.
	AuthenticatedVerified
)

func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case AuthenticatedUnverified:
		return "authenticated-unverified"
	case AuthenticatedVerified:
		return "authenticated-verified"
	default:
		return "anonymous"
	}
}

// Session holds the credential token, the resolved operator profile and the
// login-in-flight flag. Consumers only get read access; all mutation goes
// through the Writer handed out once by New, so the auth service stays the
// single writer.
type Session struct {
	mu      sync.RWMutex
	token   string
	profile *domain.Profile
	loading bool
}

// Writer is the mutation handle for a Session.
type Writer struct {
	s *Session
}

// New creates an anonymous session and its writer.
func New() (*Session, *Writer) {
	s := &Session{}
	return s, &Writer{s: s}
}

// Token returns the current bearer token, empty when unauthenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Profile returns a copy of the resolved profile, nil until fetched.
func (s *Session) Profile() *domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	cp := *s.profile
	cp.Roles = append([]string(nil), s.profile.Roles...)
	return &cp
}

// IsAuthenticated reports token presence. Profile content is irrelevant here.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// IsLoading reports whether a login call is pending.
func (s *Session) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// State derives the lifecycle state from the stored fields.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.token == "" && s.loading:
		return Authenticating
	case s.token == "":
		return Anonymous
	case s.profile == nil:
		return AuthenticatedUnverified
	default:
		return AuthenticatedVerified
	}
}

// SetToken stores a new credential token.
func (w *Writer) SetToken(token string) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	w.s.token = token
	if token == "" {
		w.s.profile = nil
	}
}

// SetProfile stores the fetched profile. A profile is only ever set while a
// token is held; without one the call is dropped.
func (w *Writer) SetProfile(p *domain.Profile) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	if w.s.token == "" {
		return
	}
	w.s.profile = p
}

// SetLoading toggles the login-in-flight flag.
func (w *Writer) SetLoading(loading bool) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	w.s.loading = loading
}

// Clear resets the session to anonymous. Token and profile are always
// cleared together.
func (w *Writer) Clear() {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	w.s.token = ""
	w.s.profile = nil
}
