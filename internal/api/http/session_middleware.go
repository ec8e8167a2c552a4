package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/manga-catalog/admin-gateway/internal/api/http/handlers"
	"github.com/manga-catalog/admin-gateway/internal/auth"
	"github.com/manga-catalog/admin-gateway/internal/config"
	"github.com/manga-catalog/admin-gateway/internal/events"
	"github.com/manga-catalog/admin-gateway/internal/gateway"
	"github.com/manga-catalog/admin-gateway/internal/service"
)

// SessionMiddleware builds the per-request auth context. The session is
// hydrated from the credential cookie, and when a token is present it is
// attached to the request context so every backend call made downstream
// carries it.
func SessionMiddleware(cfg *config.Config, api *gateway.Client, dispatcher events.Dispatcher, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		creds := newCookieCredentialStore(c, cfg.Auth, cfg.App.IsProduction())
		notifier := &handlers.FlashNotifier{}
		navigator := &handlers.RedirectRecorder{}

		svc := service.NewAuthService(service.AuthDependencies{
			API:         api,
			Credentials: creds,
			Notifier:    notifier,
			Navigator:   navigator,
			Dispatcher:  dispatcher,
			Logger:      logger,
		})
		svc.Hydrate()

		if token := creds.Token(); token != "" {
			c.SetUserContext(gateway.WithBearer(c.UserContext(), token))
		}

		handlers.StoreAuthContext(c, &handlers.AuthContext{
			Service:     svc,
			Credentials: creds,
			Notifier:    notifier,
			Navigator:   navigator,
		})
		return c.Next()
	}
}

// RequireAuthenticated redirects to the login route unless a token is found
// in the cookie or the session.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac := handlers.AuthContextFrom(c)
		if target := auth.RequireAuthenticated(c.Path(), ac.Service.Session(), auth.EnvClient, ac.Credentials); target != "" {
			return c.Redirect(target, fiber.StatusFound)
		}
		return c.Next()
	}
}

// RequireGuest sends already-authenticated callers to the home route.
func RequireGuest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac := handlers.AuthContextFrom(c)
		if target := auth.RequireGuest(ac.Service.Session(), auth.EnvClient, ac.Credentials); target != "" {
			return c.Redirect(target, fiber.StatusFound)
		}
		return c.Next()
	}
}
