package analytics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shloksagar/backend/services"
	"github.com/shloksagar/backend/utils/response"
)

// parseDate accepts YYYY-MM-DD query values
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetDashboard handles GET /api/v1/admin/analytics/dashboard
//
// Either a named filter (today, yesterday, week, month, year, all) or an
// explicit startDate/endDate pair selects the reporting window; the explicit
// pair wins when both are present.
func (h *AnalyticsHandler) GetDashboard(c *fiber.Ctx) error {
	filter := c.Query("filter", "today")

	startDate, err := parseDate(c.Query("startDate", ""))
	if err != nil {
		return response.BadRequest(c, "startDate must be in YYYY-MM-DD format")
	}

	endDate, err := parseDate(c.Query("endDate", ""))
	if err != nil {
		return response.BadRequest(c, "endDate must be in YYYY-MM-DD format")
	}

	if (startDate == nil) != (endDate == nil) {
		return response.BadRequest(c, "startDate and endDate must be provided together")
	}
	if startDate != nil && endDate.Before(*startDate) {
		return response.BadRequest(c, "endDate must not be before startDate")
	}

	// endDate is inclusive
	if endDate != nil {
		inclusive := endDate.Add(24*time.Hour - time.Nanosecond)
		endDate = &inclusive
	}

	payload, err := h.analyticsService.DashboardAnalytics(c.Context(), filter, startDate, endDate)
	if err != nil {
		return response.InternalServerError(c, "Failed to build dashboard analytics")
	}

	return response.Success(c, payload)
}

// GetDownloadStats handles GET /api/v1/admin/analytics/downloads
func (h *AnalyticsHandler) GetDownloadStats(c *fiber.Ctx) error {
	filter := c.Query("filter", "today")

	startDate, err := parseDate(c.Query("startDate", ""))
	if err != nil {
		return response.BadRequest(c, "startDate must be in YYYY-MM-DD format")
	}

	endDate, err := parseDate(c.Query("endDate", ""))
	if err != nil {
		return response.BadRequest(c, "endDate must be in YYYY-MM-DD format")
	}

	var start, end time.Time
	if startDate != nil && endDate != nil {
		start, end = *startDate, endDate.Add(24*time.Hour-time.Nanosecond)
	} else {
		start, end = services.DateRange(filter, time.Now())
	}

	stats, err := h.analyticsService.DownloadStats(c.Context(), start, end)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch download stats")
	}

	return response.Success(c, stats)
}
