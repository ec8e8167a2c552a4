package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manga-catalog/admin-gateway/internal/auth"
	"github.com/manga-catalog/admin-gateway/internal/service"
)

const authContextKey = "panel_auth_context"

// FlashNotifier collects notification messages raised while handling one
// request so handlers can echo them in the response.
type FlashNotifier struct {
	successes []string
	errors    []string
}

func (n *FlashNotifier) Success(message string) {
	n.successes = append(n.successes, message)
}

func (n *FlashNotifier) Error(message string) {
	n.errors = append(n.errors, message)
}

// LastError returns the most recent error message, empty when none.
func (n *FlashNotifier) LastError() string {
	if len(n.errors) == 0 {
		return ""
	}
	return n.errors[len(n.errors)-1]
}

// LastSuccess returns the most recent success message, empty when none.
func (n *FlashNotifier) LastSuccess() string {
	if len(n.successes) == 0 {
		return ""
	}
	return n.successes[len(n.successes)-1]
}

// RedirectRecorder captures the navigation target requested by the auth
// service; the handler decides how to deliver it.
type RedirectRecorder struct {
	target string
}

func (r *RedirectRecorder) To(path string) {
	r.target = path
}

// Target returns the recorded navigation target, empty when none.
func (r *RedirectRecorder) Target() string {
	return r.target
}

// AuthContext bundles the per-request auth wiring: the session-owning
// service, the cookie-backed credential store and the side-effect recorders.
type AuthContext struct {
	Service     *service.AuthService
	Credentials auth.CredentialStore
	Notifier    *FlashNotifier
	Navigator   *RedirectRecorder
}

// StoreAuthContext attaches the auth context to the request.
func StoreAuthContext(c *fiber.Ctx, ac *AuthContext) {
	c.Locals(authContextKey, ac)
}

// AuthContextFrom retrieves the per-request auth context.
func AuthContextFrom(c *fiber.Ctx) *AuthContext {
	ac, _ := c.Locals(authContextKey).(*AuthContext)
	return ac
}
