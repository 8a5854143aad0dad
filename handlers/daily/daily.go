package daily

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shloksagar/backend/services"
	"github.com/shloksagar/backend/utils/response"
	"gorm.io/gorm"
)

// DailyHandler handles daily quote and gita sandesh requests
type DailyHandler struct {
	contentService *services.ContentService
}

// NewDailyHandler creates a new daily content handler
func NewDailyHandler(contentService *services.ContentService) *DailyHandler {
	return &DailyHandler{
		contentService: contentService,
	}
}

// GetTodayQuote handles GET /api/v1/public/quotes/today
func (h *DailyHandler) GetTodayQuote(c *fiber.Ctx) error {
	quote, err := h.contentService.TodayQuote(c.Context())
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "No quote published for today")
		}
		return response.InternalServerError(c, "Failed to fetch today's quote")
	}

	return response.Success(c, quote)
}

// ListQuotes handles GET /api/v1/public/quotes?limit=
func (h *DailyHandler) ListQuotes(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "30"))

	quotes, err := h.contentService.ListQuotes(c.Context(), limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch quotes")
	}

	return response.Success(c, quotes)
}

// GetTodayGitaSandesh handles GET /api/v1/public/gita-sandesh/today
func (h *DailyHandler) GetTodayGitaSandesh(c *fiber.Ctx) error {
	sandesh, err := h.contentService.TodayGitaSandesh(c.Context())
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "No gita sandesh published for today")
		}
		return response.InternalServerError(c, "Failed to fetch today's gita sandesh")
	}

	return response.Success(c, sandesh)
}

// ListGitaSandesh handles GET /api/v1/public/gita-sandesh?limit=
func (h *DailyHandler) ListGitaSandesh(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "30"))

	items, err := h.contentService.ListGitaSandesh(c.Context(), limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch gita sandesh")
	}

	return response.Success(c, items)
}
