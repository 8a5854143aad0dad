package content

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shloksagar/backend/model"
	"github.com/shloksagar/backend/services"
	"github.com/shloksagar/backend/utils/response"
	"github.com/shloksagar/backend/utils/validation"
	"gorm.io/gorm"
)

// ContentHandler handles devotional content requests
type ContentHandler struct {
	contentService *services.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

// ListContent handles GET /api/v1/public/content/:type
func (h *ContentHandler) ListContent(c *fiber.Ctx) error {
	contentType := c.Params("type")
	if !model.ValidContentType(contentType) {
		return response.BadRequest(c, "Invalid content type. Must be one of: bhajan, aarti, chalisa, stotra")
	}

	categoryID := c.Query("categoryId", "")

	items, err := h.contentService.ListContent(c.Context(), contentType, categoryID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch content")
	}

	return response.Success(c, items)
}

// GetContent handles GET /api/v1/public/content/:type/:slug
func (h *ContentHandler) GetContent(c *fiber.Ctx) error {
	contentType := c.Params("type")
	if !model.ValidContentType(contentType) {
		return response.BadRequest(c, "Invalid content type. Must be one of: bhajan, aarti, chalisa, stotra")
	}

	slug := c.Params("slug")
	if slug == "" {
		return response.BadRequest(c, "Content slug is required")
	}

	item, err := h.contentService.GetContentBySlug(c.Context(), contentType, slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Content not found")
		}
		return response.InternalServerError(c, "Failed to fetch content")
	}

	return response.Success(c, item)
}

// SearchContent handles GET /api/v1/public/content/search?q=&limit=
func (h *ContentHandler) SearchContent(c *fiber.Ctx) error {
	query := validation.SanitizeString(c.Query("q", ""))
	if query == "" {
		return response.BadRequest(c, "Search query is required")
	}

	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	items, err := h.contentService.SearchContent(c.Context(), query, limit)
	if err != nil {
		return response.InternalServerError(c, "Search failed")
	}

	return response.Success(c, items)
}
