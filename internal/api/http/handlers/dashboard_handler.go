package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/manga-catalog/admin-gateway/internal/service"
)

// DashboardHandler serves the landing-page counters.
type DashboardHandler struct {
	stats *service.StatisticsService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(stats *service.StatisticsService) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// Stats handles GET /panel/dashboard.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.stats.Dashboard(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": stats, "code": http.StatusOK})
}
