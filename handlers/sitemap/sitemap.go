package sitemap

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shloksagar/backend/model"
	"github.com/shloksagar/backend/services"
	"github.com/shloksagar/backend/utils/response"
	"github.com/shloksagar/backend/utils/sitemap"
)

// SitemapHandler serves the public sitemap
type SitemapHandler struct {
	contentService *services.ContentService
	baseURL        string
}

// NewSitemapHandler creates a new sitemap handler
func NewSitemapHandler(contentService *services.ContentService) *SitemapHandler {
	baseURL := os.Getenv("SITE_BASE_URL")
	if baseURL == "" {
		baseURL = "https://shloksagar.com"
	}

	return &SitemapHandler{
		contentService: contentService,
		baseURL:        baseURL,
	}
}

// GetSitemap handles GET /sitemap.xml
func (h *SitemapHandler) GetSitemap(c *fiber.Ctx) error {
	builder := sitemap.NewBuilder(h.baseURL)
	now := time.Now()

	builder.Add("/", now, "daily", 1.0)
	builder.Add("/gita", now, "daily", 0.9)
	builder.Add("/wallpapers", now, "weekly", 0.7)
	builder.Add("/videos", now, "weekly", 0.7)

	categories, err := h.contentService.ListCategories(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build sitemap")
	}
	for _, cat := range categories {
		builder.Add("/category/"+cat.Slug, cat.UpdatedAt, "weekly", 0.8)
	}

	for _, contentType := range model.ContentTypes() {
		items, err := h.contentService.ListContent(c.Context(), contentType, "")
		if err != nil {
			return response.InternalServerError(c, "Failed to build sitemap")
		}
		for _, item := range items {
			builder.Add("/"+contentType+"/"+item.Slug, item.UpdatedAt, "monthly", 0.6)
		}
	}

	shloks, err := h.contentService.ListGitaShloks(c.Context(), 0)
	if err != nil {
		return response.InternalServerError(c, "Failed to build sitemap")
	}
	for _, shlok := range shloks {
		builder.Add("/gita/"+shlok.Slug, shlok.UpdatedAt, "monthly", 0.6)
	}

	xml, err := builder.Build()
	if err != nil {
		return response.InternalServerError(c, "Failed to build sitemap")
	}

	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.Send(xml)
}
