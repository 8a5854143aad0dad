package media

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shloksagar/backend/model"
	"github.com/shloksagar/backend/services"
	"github.com/shloksagar/backend/utils/middleware"
	"github.com/shloksagar/backend/utils/response"
	"gorm.io/gorm"
)

// MediaHandler handles wallpaper and video requests
type MediaHandler struct {
	mediaService     *services.MediaService
	analyticsService *services.AnalyticsService
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(mediaService *services.MediaService, analyticsService *services.AnalyticsService) *MediaHandler {
	return &MediaHandler{
		mediaService:     mediaService,
		analyticsService: analyticsService,
	}
}

// DownloadResponse carries a short-lived URL for the asset
type DownloadResponse struct {
	URL string `json:"url"`
}

// ListWallpapers handles GET /api/v1/public/wallpapers?tags=a,b
func (h *MediaHandler) ListWallpapers(c *fiber.Ctx) error {
	var tags []string
	if raw := c.Query("tags", ""); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	wallpapers, err := h.mediaService.ListWallpapers(c.Context(), tags)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch wallpapers")
	}

	return response.Success(c, wallpapers)
}

// GetWallpaper handles GET /api/v1/public/wallpapers/:id
func (h *MediaHandler) GetWallpaper(c *fiber.Ctx) error {
	wallpaper, err := h.mediaService.GetWallpaper(c.Context(), c.Params("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Wallpaper not found")
		}
		return response.InternalServerError(c, "Failed to fetch wallpaper")
	}

	return response.Success(c, wallpaper)
}

// DownloadWallpaper handles POST /api/v1/public/wallpapers/:id/download
func (h *MediaHandler) DownloadWallpaper(c *fiber.Ctx) error {
	wallpaper, err := h.mediaService.GetWallpaper(c.Context(), c.Params("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Wallpaper not found")
		}
		return response.InternalServerError(c, "Failed to fetch wallpaper")
	}

	url, err := h.mediaService.DownloadURL(wallpaper.StorageKey)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate download URL")
	}

	h.recordDownload(c, model.ResourceTypeWallpaper, wallpaper.ID)

	return response.Success(c, DownloadResponse{URL: url})
}

// ListVideos handles GET /api/v1/public/videos
func (h *MediaHandler) ListVideos(c *fiber.Ctx) error {
	videos, err := h.mediaService.ListVideos(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch videos")
	}

	return response.Success(c, videos)
}

// GetVideo handles GET /api/v1/public/videos/:id
func (h *MediaHandler) GetVideo(c *fiber.Ctx) error {
	video, err := h.mediaService.GetVideo(c.Context(), c.Params("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Video not found")
		}
		return response.InternalServerError(c, "Failed to fetch video")
	}

	return response.Success(c, video)
}

// DownloadVideo handles POST /api/v1/public/videos/:id/download
func (h *MediaHandler) DownloadVideo(c *fiber.Ctx) error {
	video, err := h.mediaService.GetVideo(c.Context(), c.Params("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Video not found")
		}
		return response.InternalServerError(c, "Failed to fetch video")
	}

	url, err := h.mediaService.DownloadURL(video.StorageKey)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate download URL")
	}

	h.recordDownload(c, model.ResourceTypeVideo, video.ID)

	return response.Success(c, DownloadResponse{URL: url})
}

// recordDownload tracks a download event. Tracking failure never blocks the
// download itself.
func (h *MediaHandler) recordDownload(c *fiber.Ctx, resourceType model.ResourceType, resourceID string) {
	var userID *string
	if user, ok := middleware.GetUser(c); ok && user != nil {
		userID = &user.ID
	}

	sessionID := middleware.GetSessionID(c)

	if err := h.analyticsService.TrackDownload(c.Context(), userID, sessionID, resourceType, resourceID); err != nil {
		log.Printf("Failed to record %s download: %v", resourceType, err)
	}
}
