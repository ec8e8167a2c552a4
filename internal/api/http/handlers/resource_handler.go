package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/manga-catalog/admin-gateway/internal/repository"
)

// ResourceHandler serves the uniform CRUD pass-through for one catalog
// collection. Request bodies go to the backend untouched; responses are
// re-wrapped in the same envelope the backend uses.
type ResourceHandler[T any] struct {
	repo *repository.Resource[T]
}

// NewResourceHandler constructs handler.
func NewResourceHandler[T any](repo *repository.Resource[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{repo: repo}
}

// List handles GET /<collection>.
func (h *ResourceHandler[T]) List(c *fiber.Ctx) error {
	params := url.Values{}
	for key, value := range c.Queries() {
		params.Set(key, value)
	}

	items, page, err := h.repo.List(c.UserContext(), params)
	if err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       items,
		"code":       http.StatusOK,
		"pagination": page,
	})
}

// Get handles GET /<collection>/:id.
func (h *ResourceHandler[T]) Get(c *fiber.Ctx) error {
	item, err := h.repo.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": item, "code": http.StatusOK})
}

// Create handles POST /<collection>.
func (h *ResourceHandler[T]) Create(c *fiber.Ctx) error {
	payload, err := rawPayload(c)
	if err != nil {
		return err
	}

	item, err := h.repo.Create(c.UserContext(), payload)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "data": item, "code": http.StatusCreated})
}

// Update handles PUT /<collection>/:id.
func (h *ResourceHandler[T]) Update(c *fiber.Ctx) error {
	payload, err := rawPayload(c)
	if err != nil {
		return err
	}

	item, err := h.repo.Update(c.UserContext(), c.Params("id"), payload)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": item, "code": http.StatusOK})
}

// Delete handles DELETE /<collection>/:id.
func (h *ResourceHandler[T]) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": nil, "code": http.StatusOK})
}

func rawPayload(c *fiber.Ctx) (json.RawMessage, error) {
	body := c.Body()
	if len(body) == 0 || !json.Valid(body) {
		return nil, fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	payload := make(json.RawMessage, len(body))
	copy(payload, body)
	return payload, nil
}
