package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shloksagar/backend/database"
	"github.com/shloksagar/backend/model"
	"github.com/shloksagar/backend/utils/session"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// PlatformLaunchDate anchors the "all" range filter.
var PlatformLaunchDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// topPagesLimit is the default row limit for the top-pages rollup
const topPagesLimit = 10

// AggregateStore is the range-scoped rollup interface the dashboard reads
// through. Implemented by database.PostgreSQLStore over the server-side
// aggregate functions.
type AggregateStore interface {
	GetSiteVisitsStats(ctx context.Context, start, end time.Time) ([]database.VisitDay, error)
	GetTopPages(ctx context.Context, start, end time.Time, limit int) ([]database.TopPage, error)
	GetCategoryInterestStats(ctx context.Context, start, end time.Time) ([]database.CategoryInterestStat, error)
	GetContentTypeStats(ctx context.Context, start, end time.Time) ([]database.ContentTypeStat, error)
	GetLanguageStats(ctx context.Context, start, end time.Time) ([]database.LanguageStat, error)
}

// AnalyticsService handles event ingestion and dashboard aggregation
type AnalyticsService struct {
	db         *gorm.DB
	aggregates AggregateStore
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(db *gorm.DB, aggregates AggregateStore) *AnalyticsService {
	return &AnalyticsService{
		db:         db,
		aggregates: aggregates,
	}
}

// TrackSiteVisit records a visit for the session, at most once per UTC day.
// The check-then-insert is deliberately not transactional: concurrent
// requests for the same session can produce duplicate rows, which only
// inflates visit counts slightly. Best-effort semantics, not a guarantee.
func (s *AnalyticsService) TrackSiteVisit(ctx context.Context, sessionID, userAgent, ip string) error {
	dayStart := time.Now().UTC().Truncate(24 * time.Hour)

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.SiteVisit{}).
		Where("session_id = ? AND created_at >= ?", sessionID, dayStart).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing visit: %w", err)
	}

	if count > 0 {
		// Already tracked today
		return nil
	}

	visit := model.SiteVisit{
		SessionID: sessionID,
		UserAgent: userAgent,
	}
	if ip != "" {
		visit.IPHash = session.HashIP(ip)
	}

	if err := s.db.WithContext(ctx).Create(&visit).Error; err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}
	return nil
}

// TrackPageView records one navigation event
func (s *AnalyticsService) TrackPageView(ctx context.Context, sessionID, path, pageTitle, referrer string) error {
	view := model.PageView{
		SessionID: sessionID,
		Path:      path,
		PageTitle: pageTitle,
		Referrer:  referrer,
	}
	if err := s.db.WithContext(ctx).Create(&view).Error; err != nil {
		return fmt.Errorf("failed to record page view: %w", err)
	}
	return nil
}

// TrackCategoryInterest records a category interest signal
func (s *AnalyticsService) TrackCategoryInterest(ctx context.Context, sessionID, categoryID string) error {
	interest := model.CategoryInterest{
		SessionID:  sessionID,
		CategoryID: categoryID,
	}
	if err := s.db.WithContext(ctx).Create(&interest).Error; err != nil {
		return fmt.Errorf("failed to record category interest: %w", err)
	}
	return nil
}

// TrackContentTypeInterest records a content type interest signal
func (s *AnalyticsService) TrackContentTypeInterest(ctx context.Context, sessionID, contentType string) error {
	interest := model.ContentTypeInterest{
		SessionID:   sessionID,
		ContentType: contentType,
	}
	if err := s.db.WithContext(ctx).Create(&interest).Error; err != nil {
		return fmt.Errorf("failed to record content type interest: %w", err)
	}
	return nil
}

// TrackLanguagePreference records a language preference signal
func (s *AnalyticsService) TrackLanguagePreference(ctx context.Context, sessionID, language string) error {
	pref := model.LanguagePreference{
		SessionID: sessionID,
		Language:  language,
	}
	if err := s.db.WithContext(ctx).Create(&pref).Error; err != nil {
		return fmt.Errorf("failed to record language preference: %w", err)
	}
	return nil
}

// TrackDownload records a wallpaper or video download. userID is nil for
// anonymous sessions.
func (s *AnalyticsService) TrackDownload(ctx context.Context, userID *string, sessionID string, resourceType model.ResourceType, resourceID string) error {
	event := model.DownloadEvent{
		UserID:       userID,
		SessionID:    sessionID,
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to record download: %w", err)
	}
	return nil
}

// DateRange maps a named filter to a concrete [start, end] pair anchored at
// now. "all" anchors the start to the platform launch date. An unrecognized
// filter gets today's range. Custom ranges are supplied by the caller and
// bypass this mapping.
func DateRange(filter string, now time.Time) (time.Time, time.Time) {
	end := now
	start := now

	switch filter {
	case "today":
		start = startOfDay(now)
		end = endOfDay(now)
	case "yesterday":
		yesterday := now.AddDate(0, 0, -1)
		start = startOfDay(yesterday)
		end = endOfDay(yesterday)
	case "week":
		start = now.AddDate(0, 0, -7)
	case "month":
		start = now.AddDate(0, -1, 0)
	case "year":
		start = now.AddDate(-1, 0, 0)
	case "all":
		start = PlatformLaunchDate
	default:
		start = startOfDay(now)
		end = endOfDay(now)
	}

	return start, end
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, 999000000, time.UTC)
}

// DashboardPayload is the composite rollup the admin dashboard renders
type DashboardPayload struct {
	TotalVisits      int64                           `json:"totalVisits"`
	TotalPageViews   int64                           `json:"totalPageViews"`
	VisitsOverTime   []database.VisitDay             `json:"visitsOverTime"`
	TopPages         []database.TopPage              `json:"topPages"`
	CategoryInterest []database.CategoryInterestStat `json:"categoryInterest"`
	ContentTypes     []database.ContentTypeStat      `json:"contentTypes"`
	Languages        []database.LanguageStat         `json:"languages"`
}

// DashboardAnalytics resolves the effective range (a custom range wins over
// the named filter), runs the five rollup queries concurrently and folds the
// per-day visit rows into scalar totals. Any query failure aborts the whole
// call; there is no partial payload.
func (s *AnalyticsService) DashboardAnalytics(ctx context.Context, filter string, customStart, customEnd *time.Time) (*DashboardPayload, error) {
	var start, end time.Time
	if customStart != nil && customEnd != nil {
		start, end = *customStart, *customEnd
	} else {
		start, end = DateRange(filter, time.Now().UTC())
	}

	payload := &DashboardPayload{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		visits, err := s.aggregates.GetSiteVisitsStats(gctx, start, end)
		if err != nil {
			return fmt.Errorf("site visit stats: %w", err)
		}
		payload.VisitsOverTime = visits
		return nil
	})
	g.Go(func() error {
		pages, err := s.aggregates.GetTopPages(gctx, start, end, topPagesLimit)
		if err != nil {
			return fmt.Errorf("top pages: %w", err)
		}
		payload.TopPages = pages
		return nil
	})
	g.Go(func() error {
		categories, err := s.aggregates.GetCategoryInterestStats(gctx, start, end)
		if err != nil {
			return fmt.Errorf("category interest: %w", err)
		}
		payload.CategoryInterest = categories
		return nil
	})
	g.Go(func() error {
		types, err := s.aggregates.GetContentTypeStats(gctx, start, end)
		if err != nil {
			return fmt.Errorf("content type stats: %w", err)
		}
		payload.ContentTypes = types
		return nil
	})
	g.Go(func() error {
		languages, err := s.aggregates.GetLanguageStats(gctx, start, end)
		if err != nil {
			return fmt.Errorf("language stats: %w", err)
		}
		payload.Languages = languages
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	payload.TotalVisits, payload.TotalPageViews = FoldVisitTotals(payload.VisitsOverTime)
	return payload, nil
}

// FoldVisitTotals sums the per-day rows into scalar totals. An empty slice
// folds to zero.
func FoldVisitTotals(days []database.VisitDay) (totalVisits, totalPageViews int64) {
	for _, day := range days {
		totalVisits += day.UniqueVisits
		totalPageViews += day.TotalPageViews
	}
	return totalVisits, totalPageViews
}

// DownloadStatsResult partitions download events by resource type
type DownloadStatsResult struct {
	TotalDownloads     int64 `json:"totalDownloads"`
	WallpaperDownloads int64 `json:"wallpaperDownloads"`
	VideoDownloads     int64 `json:"videoDownloads"`
}

// DownloadStats fetches the raw download events in range and partitions them
// by resource type.
func (s *AnalyticsService) DownloadStats(ctx context.Context, start, end time.Time) (*DownloadStatsResult, error) {
	var events []model.DownloadEvent
	if err := s.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch download events: %w", err)
	}

	result := PartitionDownloads(events)
	return &result, nil
}

// PartitionDownloads counts events per resource type. Only wallpaper and
// video exist, so the partition always sums to the total.
func PartitionDownloads(events []model.DownloadEvent) DownloadStatsResult {
	result := DownloadStatsResult{TotalDownloads: int64(len(events))}
	for _, event := range events {
		switch event.ResourceType {
		case model.ResourceTypeWallpaper:
			result.WallpaperDownloads++
		case model.ResourceTypeVideo:
			result.VideoDownloads++
		}
	}
	return result
}
