package festival

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shloksagar/backend/services"
	"github.com/shloksagar/backend/utils/response"
	"gorm.io/gorm"
)

// FestivalHandler handles festival post requests
type FestivalHandler struct {
	contentService *services.ContentService
}

// NewFestivalHandler creates a new festival handler
func NewFestivalHandler(contentService *services.ContentService) *FestivalHandler {
	return &FestivalHandler{
		contentService: contentService,
	}
}

// ListFestivals handles GET /api/v1/public/festivals
func (h *FestivalHandler) ListFestivals(c *fiber.Ctx) error {
	festivals, err := h.contentService.ListFestivals(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch festivals")
	}

	return response.Success(c, festivals)
}

// GetFestival handles GET /api/v1/public/festivals/:id
func (h *FestivalHandler) GetFestival(c *fiber.Ctx) error {
	festival, err := h.contentService.GetFestivalByID(c.Context(), c.Params("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Festival not found")
		}
		return response.InternalServerError(c, "Failed to fetch festival")
	}

	return response.Success(c, festival)
}
