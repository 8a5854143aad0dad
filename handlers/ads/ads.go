package ads

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shloksagar/backend/services"
	"github.com/shloksagar/backend/utils/middleware"
	"github.com/shloksagar/backend/utils/response"
	"github.com/shloksagar/backend/utils/validation"
	"gorm.io/gorm"
)

// AdHandler handles ad selection and event recording
type AdHandler struct {
	adService *services.AdService
	validator *validation.Validator
}

// NewAdHandler creates a new ad handler
func NewAdHandler(adService *services.AdService) *AdHandler {
	return &AdHandler{
		adService: adService,
		validator: validation.NewValidator(),
	}
}

// AdEventRequest represents an impression or click event
type AdEventRequest struct {
	AdID     string `json:"ad_id" validate:"required,uuid"`
	PagePath string `json:"page_path" validate:"omitempty,max=500"`
}

// GetAd handles GET /api/v1/public/ads/get
func (h *AdHandler) GetAd(c *fiber.Ctx) error {
	ad, err := h.adService.GetActiveAd(c.Context())
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.Success(c, nil)
		}
		return response.InternalServerError(c, "Failed to fetch ad")
	}

	return response.Success(c, ad)
}

// RecordImpression handles POST /api/v1/public/ads/impression
func (h *AdHandler) RecordImpression(c *fiber.Ctx) error {
	var req AdEventRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	sessionID := middleware.GetSessionID(c)
	if err := h.adService.RecordImpression(c.Context(), req.AdID, sessionID, req.PagePath); err != nil {
		return response.InternalServerError(c, "Failed to record impression")
	}

	return response.Success(c, nil)
}

// RecordClick handles POST /api/v1/public/ads/click
func (h *AdHandler) RecordClick(c *fiber.Ctx) error {
	var req AdEventRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	sessionID := middleware.GetSessionID(c)
	if err := h.adService.RecordClick(c.Context(), req.AdID, sessionID, req.PagePath); err != nil {
		return response.InternalServerError(c, "Failed to record click")
	}

	return response.Success(c, nil)
}
