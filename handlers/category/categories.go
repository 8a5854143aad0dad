package category

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shloksagar/backend/services"
	"github.com/shloksagar/backend/utils/response"
	"gorm.io/gorm"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	contentService *services.ContentService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(contentService *services.ContentService) *CategoryHandler {
	return &CategoryHandler{
		contentService: contentService,
	}
}

// ListCategories handles GET /api/v1/public/categories
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.contentService.ListCategories(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch categories")
	}

	return response.Success(c, categories)
}

// GetCategory handles GET /api/v1/public/categories/:slug
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return response.BadRequest(c, "Category slug is required")
	}

	category, err := h.contentService.GetCategoryBySlug(c.Context(), slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Category not found")
		}
		return response.InternalServerError(c, "Failed to fetch category")
	}

	return response.Success(c, category)
}
