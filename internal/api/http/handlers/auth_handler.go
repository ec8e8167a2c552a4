package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/manga-catalog/admin-gateway/internal/api/dto"
)

// AuthHandler exposes the panel login, logout and profile endpoints.
type AuthHandler struct{}

// NewAuthHandler constructs handler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Login handles POST /panel/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	ac := AuthContextFrom(c)
	if !ac.Service.Login(c.UserContext(), req.Email, req.Password) {
		message := ac.Notifier.LastError()
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": message,
			"code":    http.StatusUnauthorized,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"user":    ac.Service.Session().Profile(),
			"message": ac.Notifier.LastSuccess(),
		},
		"code": http.StatusOK,
	})
}

// Logout handles DELETE /panel/auth/logout. Local logout always succeeds,
// whatever the backend said.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ac := AuthContextFrom(c)
	ac.Service.Logout(c.UserContext())

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"redirect": ac.Navigator.Target()},
		"code":    http.StatusOK,
	})
}

// Profile handles GET /panel/auth/profile.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	ac := AuthContextFrom(c)
	ac.Service.FetchProfile(c.UserContext())

	sess := ac.Service.Session()
	if !sess.IsAuthenticated() {
		// the refresh hit a 401 and revoked the session
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "session expired",
			"code":    http.StatusUnauthorized,
		})
	}

	profile := sess.Profile()
	if profile == nil {
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"message": "profile unavailable",
			"code":    http.StatusBadGateway,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"user": profile},
		"code":    http.StatusOK,
	})
}
