package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/manga-catalog/admin-gateway/internal/domain"
	"github.com/manga-catalog/admin-gateway/internal/repository"
)

// ChaptersHandler extends the uniform CRUD surface with bulk deletion.
type ChaptersHandler struct {
	*ResourceHandler[domain.Chapter]
	repo *repository.ChapterRepository
}

// NewChaptersHandler constructs handler.
func NewChaptersHandler(repo *repository.ChapterRepository) *ChaptersHandler {
	return &ChaptersHandler{
		ResourceHandler: NewResourceHandler(repo.Resource),
		repo:            repo,
	}
}

type deleteManyRequest struct {
	IDs []string `json:"ids"`
}

// DeleteMany handles PUT /panel/chapters/delete-many.
func (h *ChaptersHandler) DeleteMany(c *fiber.Ctx) error {
	var req deleteManyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if len(req.IDs) == 0 {
		return fiber.NewError(http.StatusBadRequest, "ids required")
	}

	if err := h.repo.DeleteMany(c.UserContext(), req.IDs); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": nil, "code": http.StatusOK})
}
