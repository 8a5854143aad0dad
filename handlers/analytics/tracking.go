package analytics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shloksagar/backend/model"
	"github.com/shloksagar/backend/services"
	"github.com/shloksagar/backend/utils/middleware"
	"github.com/shloksagar/backend/utils/response"
	"github.com/shloksagar/backend/utils/validation"
	"gorm.io/gorm"
)

// AnalyticsHandler handles event ingestion and the admin dashboard
type AnalyticsHandler struct {
	db               *gorm.DB
	validator        *validation.Validator
	analyticsService *services.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(db *gorm.DB, analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		db:               db,
		validator:        validation.NewValidator(),
		analyticsService: analyticsService,
	}
}

// PageViewRequest represents a page view event
type PageViewRequest struct {
	Path      string `json:"path" validate:"required,max=500"`
	PageTitle string `json:"page_title" validate:"omitempty,max=255"`
	Referrer  string `json:"referrer" validate:"omitempty,max=500"`
}

// CategoryInterestRequest represents a category interest event
type CategoryInterestRequest struct {
	CategoryID string `json:"category_id" validate:"required,uuid"`
}

// ContentTypeInterestRequest represents a content type interest event
type ContentTypeInterestRequest struct {
	ContentType string `json:"content_type" validate:"required,oneof=bhajan aarti chalisa stotra"`
}

// LanguagePreferenceRequest represents a language preference event
type LanguagePreferenceRequest struct {
	Language string `json:"language" validate:"required,oneof=en hi gu"`
}

// DownloadRequest represents a download event reported by the client
type DownloadRequest struct {
	ResourceType string `json:"resource_type" validate:"required,oneof=wallpaper video"`
	ResourceID   string `json:"resource_id" validate:"required,uuid"`
}

// TrackVisit handles POST /api/v1/public/analytics/visit
func (h *AnalyticsHandler) TrackVisit(c *fiber.Ctx) error {
	sessionID := middleware.GetSessionID(c)

	err := h.analyticsService.TrackSiteVisit(c.Context(), sessionID, c.Get(fiber.HeaderUserAgent), c.IP())
	if err != nil {
		return response.InternalServerError(c, "Failed to track visit")
	}

	return response.Success(c, nil)
}

// TrackPageView handles POST /api/v1/public/analytics/pageview
func (h *AnalyticsHandler) TrackPageView(c *fiber.Ctx) error {
	var req PageViewRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	sessionID := middleware.GetSessionID(c)
	if err := h.analyticsService.TrackPageView(c.Context(), sessionID, req.Path, req.PageTitle, req.Referrer); err != nil {
		return response.InternalServerError(c, "Failed to track page view")
	}

	return response.Success(c, nil)
}

// TrackCategoryInterest handles POST /api/v1/public/analytics/category
func (h *AnalyticsHandler) TrackCategoryInterest(c *fiber.Ctx) error {
	var req CategoryInterestRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	sessionID := middleware.GetSessionID(c)
	if err := h.analyticsService.TrackCategoryInterest(c.Context(), sessionID, req.CategoryID); err != nil {
		return response.InternalServerError(c, "Failed to track category interest")
	}

	return response.Success(c, nil)
}

// TrackContentTypeInterest handles POST /api/v1/public/analytics/content-type
func (h *AnalyticsHandler) TrackContentTypeInterest(c *fiber.Ctx) error {
	var req ContentTypeInterestRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	sessionID := middleware.GetSessionID(c)
	if err := h.analyticsService.TrackContentTypeInterest(c.Context(), sessionID, req.ContentType); err != nil {
		return response.InternalServerError(c, "Failed to track content type interest")
	}

	return response.Success(c, nil)
}

// TrackLanguagePreference handles POST /api/v1/public/analytics/language
func (h *AnalyticsHandler) TrackLanguagePreference(c *fiber.Ctx) error {
	var req LanguagePreferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	sessionID := middleware.GetSessionID(c)
	if err := h.analyticsService.TrackLanguagePreference(c.Context(), sessionID, req.Language); err != nil {
		return response.InternalServerError(c, "Failed to track language preference")
	}

	return response.Success(c, nil)
}

// TrackDownload handles POST /api/v1/public/analytics/download
func (h *AnalyticsHandler) TrackDownload(c *fiber.Ctx) error {
	var req DownloadRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var userID *string
	if user, ok := middleware.GetUser(c); ok && user != nil {
		userID = &user.ID
	}

	sessionID := middleware.GetSessionID(c)
	if err := h.analyticsService.TrackDownload(c.Context(), userID, sessionID, model.ResourceType(req.ResourceType), req.ResourceID); err != nil {
		return response.InternalServerError(c, "Failed to track download")
	}

	return response.Success(c, nil)
}
