package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/manga-catalog/admin-gateway/internal/auth"
	"github.com/manga-catalog/admin-gateway/internal/domain"
	"github.com/manga-catalog/admin-gateway/internal/events"
	"github.com/manga-catalog/admin-gateway/internal/gateway"
	"github.com/manga-catalog/admin-gateway/internal/session"
)

// Notifier surfaces user-visible outcomes of auth operations.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator performs the redirect that follows a logout.
type Navigator interface {
	To(path string)
}

// loginFallbackMessage is shown when the backend rejects a login without a
// message of its own.
const loginFallbackMessage = "Login failed"

// AuthService owns the session lifecycle: login, logout, profile refresh and
// token-expiry handling. It is the only writer of its session; everything
// else reads through the session's read-only projections.
type AuthService struct {
	api        *gateway.Client
	session    *session.Session
	writer     *session.Writer
	creds      auth.CredentialStore
	notifier   Notifier
	nav        Navigator
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AuthDependencies encapsulates collaborator requirements for the service.
type AuthDependencies struct {
	API         *gateway.Client
	Credentials auth.CredentialStore
	Notifier    Notifier
	Navigator   Navigator
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// NewAuthService builds the service together with a fresh anonymous session.
// The gateway client is bound to that session so every outgoing request
// carries the current token.
func NewAuthService(deps AuthDependencies) *AuthService {
	sess, writer := session.New()
	return &AuthService{
		api:        deps.API.WithTokenSource(sess),
		session:    sess,
		writer:     writer,
		creds:      deps.Credentials,
		notifier:   deps.Notifier,
		nav:        deps.Navigator,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Session exposes the read-only session view.
func (s *AuthService) Session() *session.Session {
	return s.session
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Hydrate restores the persisted token into the session without touching the
// profile. The HTTP layer calls it once per request; a profile fetch happens
// only when a handler needs one.
func (s *AuthService) Hydrate() {
	if token := s.creds.Token(); token != "" {
		s.writer.SetToken(token)
	}
}

// Init restores a persisted token into the session and kicks off a profile
// refresh without blocking the caller. Refresh errors are absorbed; a 401
// still forces the logout path.
func (s *AuthService) Init(ctx context.Context) {
	token := s.creds.Token()
	if token == "" {
		return
	}
	s.writer.SetToken(token)
	go s.FetchProfile(ctx)
}

// Login authenticates against the backend. On success the token is stored
// in the session and the persisted store, the profile is refreshed and a
// success notification is surfaced. On failure the session stays anonymous
// and the server message (or a generic fallback) is surfaced. The loading
// flag is cleared on every exit path.
func (s *AuthService) Login(ctx context.Context, email, password string) bool {
	s.writer.SetLoading(true)
	defer s.writer.SetLoading(false)

	grant, err := gateway.Do[domain.TokenGrant](ctx, s.api, http.MethodPost, "/auth", nil, loginRequest{Email: email, Password: password})
	if err != nil || grant.Token == "" {
		message := gateway.Message(err)
		if message == "" {
			message = loginFallbackMessage
		}
		s.notifier.Error(message)
		s.publish(ctx, events.EventLoginFailed, events.LoginPayload{Email: email})
		return false
	}

	s.writer.SetToken(grant.Token)
	s.creds.Store(grant.Token)

	s.FetchProfile(ctx)

	s.notifier.Success("Logged in")
	s.publish(ctx, events.EventLoginSucceeded, events.LoginPayload{Email: email})
	return true
}

// FetchProfile resolves the operator profile for the current token. Without
// a token it is a no-op. A 401 means the token is no longer valid and forces
// a logout; any other failure leaves the profile unset.
func (s *AuthService) FetchProfile(ctx context.Context) {
	if s.session.Token() == "" {
		return
	}

	profile, err := gateway.Do[domain.Profile](ctx, s.api, http.MethodGet, "/auth", nil, nil)
	if err != nil {
		if gateway.IsUnauthorized(err) {
			s.publish(ctx, events.EventSessionRevoked, events.RevokedPayload{Status: http.StatusUnauthorized})
			s.Logout(ctx)
			return
		}
		s.logger.Debug("profile refresh failed", zap.Error(err))
		return
	}

	s.writer.SetProfile(&profile)
}

// Logout tells the backend to invalidate the token (best effort, errors
// ignored), then unconditionally clears the session and the persisted store
// and navigates to the login page. Safe to call repeatedly.
func (s *AuthService) Logout(ctx context.Context) {
	if s.session.Token() != "" {
		if _, err := gateway.Do[struct{}](ctx, s.api, http.MethodDelete, "/auth", nil, nil); err != nil {
			s.logger.Debug("backend logout failed", zap.Error(err))
		}
	}

	s.writer.Clear()
	s.creds.Clear()
	s.publish(ctx, events.EventLoggedOut, nil)
	s.nav.To(auth.LoginPath)
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

// ZapNotifier is the default Notifier, it writes outcomes to the log.
type ZapNotifier struct {
	Logger *zap.Logger
}

func (n ZapNotifier) Success(message string) {
	n.Logger.Info("notify", zap.String("kind", "success"), zap.String("message", message))
}

func (n ZapNotifier) Error(message string) {
	n.Logger.Info("notify", zap.String("kind", "error"), zap.String("message", message))
}
