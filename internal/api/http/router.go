package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manga-catalog/admin-gateway/internal/api/http/handlers"
	"github.com/manga-catalog/admin-gateway/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Navigation *handlers.NavigationHandler
	Dashboard  *handlers.DashboardHandler
	Mangas     *handlers.ResourceHandler[domain.Manga]
	Chapters   *handlers.ChaptersHandler
	Artists    *handlers.ResourceHandler[domain.Artist]
	Groups     *handlers.ResourceHandler[domain.Group]
	Doujinshis *handlers.ResourceHandler[domain.Doujinshi]
	Genres     *handlers.ResourceHandler[domain.Genre]
	Users      *handlers.ResourceHandler[domain.User]
}

// RegisterRoutes wires HTTP routes. Every panel route except login sits
// behind the authenticated guard; login sits behind the guest guard; logout
// is open so it stays idempotent for expired sessions.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	panel := app.Group("/panel")

	authGroup := panel.Group("/auth")
	authGroup.Post("/login", RequireGuest(), cfg.Auth.Login)
	authGroup.Delete("/logout", cfg.Auth.Logout)
	authGroup.Get("/profile", RequireAuthenticated(), cfg.Auth.Profile)

	protected := panel.Group("", RequireAuthenticated())
	protected.Get("/navigation", cfg.Navigation.Items)
	protected.Get("/dashboard", cfg.Dashboard.Stats)

	registerCollection(protected, "/mangas", cfg.Mangas)

	// delete-many must be registered before the :id routes
	protected.Put("/chapters/delete-many", cfg.Chapters.DeleteMany)
	registerCollection(protected, "/chapters", cfg.Chapters.ResourceHandler)

	registerCollection(protected, "/artists", cfg.Artists)
	registerCollection(protected, "/groups", cfg.Groups)
	registerCollection(protected, "/doujinshis", cfg.Doujinshis)
	registerCollection(protected, "/genres", cfg.Genres)

	// user accounts register through the public site, the panel only
	// inspects and updates them
	protected.Get("/users", cfg.Users.List)
	protected.Get("/users/:id", cfg.Users.Get)
	protected.Put("/users/:id", cfg.Users.Update)
}

func registerCollection[T any](router fiber.Router, base string, h *handlers.ResourceHandler[T]) {
	router.Get(base, h.List)
	router.Post(base, h.Create)
	router.Get(base+"/:id", h.Get)
	router.Put(base+"/:id", h.Update)
	router.Delete(base+"/:id", h.Delete)
}
