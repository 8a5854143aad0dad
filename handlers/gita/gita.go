package gita

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shloksagar/backend/services"
	"github.com/shloksagar/backend/utils/response"
	"gorm.io/gorm"
)

// GitaHandler handles Bhagavad Gita shlok requests
type GitaHandler struct {
	contentService *services.ContentService
}

// NewGitaHandler creates a new gita handler
func NewGitaHandler(contentService *services.ContentService) *GitaHandler {
	return &GitaHandler{
		contentService: contentService,
	}
}

// ListShloks handles GET /api/v1/public/gita/shloks?chapter=
func (h *GitaHandler) ListShloks(c *fiber.Ctx) error {
	chapter := 0
	if raw := c.Query("chapter", ""); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 18 {
			return response.BadRequest(c, "Chapter must be a number between 1 and 18")
		}
		chapter = parsed
	}

	shloks, err := h.contentService.ListGitaShloks(c.Context(), chapter)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch shloks")
	}

	return response.Success(c, shloks)
}

// GetShlokBySlug handles GET /api/v1/public/gita/shloks/:slug
func (h *GitaHandler) GetShlokBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return response.BadRequest(c, "Shlok slug is required")
	}

	shlok, err := h.contentService.GetGitaShlokBySlug(c.Context(), slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Shlok not found")
		}
		return response.InternalServerError(c, "Failed to fetch shlok")
	}

	return response.Success(c, shlok)
}

// GetShlokByChapterVerse handles GET /api/v1/public/gita/chapters/:chapter/verses/:verse
func (h *GitaHandler) GetShlokByChapterVerse(c *fiber.Ctx) error {
	chapter, err := strconv.Atoi(c.Params("chapter"))
	if err != nil || chapter < 1 || chapter > 18 {
		return response.BadRequest(c, "Chapter must be a number between 1 and 18")
	}

	verse, err := strconv.Atoi(c.Params("verse"))
	if err != nil || verse < 1 {
		return response.BadRequest(c, "Verse must be a positive number")
	}

	shlok, err := h.contentService.GetGitaShlokByChapterVerse(c.Context(), chapter, verse)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Shlok not found")
		}
		return response.InternalServerError(c, "Failed to fetch shlok")
	}

	return response.Success(c, shlok)
}
