package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/manga-catalog/admin-gateway/internal/config"
)

// cookieCredentialStore persists the bearer token in the browser cookie that
// travels with every panel request: 7-day expiry, SameSite=Lax, path-scoped
// to the whole app, Secure outside development.
type cookieCredentialStore struct {
	c      *fiber.Ctx
	name   string
	ttl    time.Duration
	secure bool
}

func newCookieCredentialStore(c *fiber.Ctx, cfg config.AuthConfig, secure bool) *cookieCredentialStore {
	return &cookieCredentialStore{
		c:      c,
		name:   cfg.CookieName,
		ttl:    cfg.TokenTTL(),
		secure: secure,
	}
}

func (s *cookieCredentialStore) Token() string {
	return s.c.Cookies(s.name)
}

func (s *cookieCredentialStore) Store(token string) {
	s.c.Cookie(&fiber.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.ttl),
		Secure:   s.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (s *cookieCredentialStore) Clear() {
	s.c.Cookie(&fiber.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		Secure:   s.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
