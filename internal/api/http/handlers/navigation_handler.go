package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/manga-catalog/admin-gateway/internal/domain"
)

// NavigationHandler serves the static panel menu.
type NavigationHandler struct{}

// NewNavigationHandler constructs handler.
func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// Items handles GET /panel/navigation.
func (h *NavigationHandler) Items(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": domain.NavigationItems, "code": http.StatusOK})
}
