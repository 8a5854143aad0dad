package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shloksagar/backend/database"
	"github.com/shloksagar/backend/model"
	"github.com/shloksagar/backend/utils/session"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixedNow keeps the range assertions stable
var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestDateRangeToday(t *testing.T) {
	start, end := DateRange("today", fixedNow)

	if !start.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("today start = %v, want start of 2024-06-15", start)
	}
	if end.Day() != 15 || end.Hour() != 23 || end.Minute() != 59 {
		t.Errorf("today end = %v, want end of 2024-06-15", end)
	}
	if !start.Before(end) {
		t.Errorf("start %v is not before end %v", start, end)
	}
	if end.Sub(start) >= 24*time.Hour {
		t.Errorf("today span = %v, want under 24h", end.Sub(start))
	}
}

func TestDateRangeYesterday(t *testing.T) {
	start, end := DateRange("yesterday", fixedNow)

	if start.Day() != 14 || end.Day() != 14 {
		t.Errorf("yesterday range = %v..%v, want both on 2024-06-14", start, end)
	}
	if !start.Before(end) {
		t.Errorf("start %v is not before end %v", start, end)
	}
}

func TestDateRangeWeek(t *testing.T) {
	start, end := DateRange("week", fixedNow)

	wantStart := fixedNow.AddDate(0, 0, -7)
	if !start.Equal(wantStart) {
		t.Errorf("week start = %v, want %v", start, wantStart)
	}
	if !end.Equal(fixedNow) {
		t.Errorf("week end = %v, want %v", end, fixedNow)
	}
}

func TestDateRangeAllAnchored(t *testing.T) {
	start, _ := DateRange("all", fixedNow)

	if !start.Equal(PlatformLaunchDate) {
		t.Errorf("all start = %v, want %v", start, PlatformLaunchDate)
	}
}

func TestDateRangeUnknownFilterFallsBackToToday(t *testing.T) {
	gotStart, gotEnd := DateRange("bogus", fixedNow)
	wantStart, wantEnd := DateRange("today", fixedNow)

	if !gotStart.Equal(wantStart) || !gotEnd.Equal(wantEnd) {
		t.Errorf("unknown filter range = %v..%v, want today range %v..%v",
			gotStart, gotEnd, wantStart, wantEnd)
	}
}

func TestDateRangeOrdering(t *testing.T) {
	for _, filter := range []string{"today", "yesterday", "week", "month", "year", "all"} {
		start, end := DateRange(filter, fixedNow)
		if !start.Before(end) {
			t.Errorf("filter %q: start %v is not before end %v", filter, start, end)
		}
	}
}

func TestFoldVisitTotalsEmpty(t *testing.T) {
	visits, views := FoldVisitTotals(nil)
	if visits != 0 || views != 0 {
		t.Errorf("empty fold = (%d, %d), want (0, 0)", visits, views)
	}
}

func TestFoldVisitTotals(t *testing.T) {
	days := []database.VisitDay{
		{VisitDate: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), UniqueVisits: 5, TotalPageViews: 20},
		{VisitDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), UniqueVisits: 3, TotalPageViews: 10},
	}

	visits, views := FoldVisitTotals(days)
	if visits != 8 {
		t.Errorf("total visits = %d, want 8", visits)
	}
	if views != 30 {
		t.Errorf("total page views = %d, want 30", views)
	}
}

func TestPartitionDownloads(t *testing.T) {
	events := []model.DownloadEvent{
		{ResourceType: model.ResourceTypeWallpaper},
		{ResourceType: model.ResourceTypeWallpaper},
		{ResourceType: model.ResourceTypeVideo},
	}

	result := PartitionDownloads(events)
	if result.WallpaperDownloads != 2 {
		t.Errorf("wallpaper downloads = %d, want 2", result.WallpaperDownloads)
	}
	if result.VideoDownloads != 1 {
		t.Errorf("video downloads = %d, want 1", result.VideoDownloads)
	}
	if result.TotalDownloads != 3 {
		t.Errorf("total downloads = %d, want 3", result.TotalDownloads)
	}
	if result.TotalDownloads != result.WallpaperDownloads+result.VideoDownloads {
		t.Error("partition does not sum to the total")
	}
}

func TestPartitionDownloadsEmpty(t *testing.T) {
	result := PartitionDownloads(nil)
	if result.TotalDownloads != 0 || result.WallpaperDownloads != 0 || result.VideoDownloads != 0 {
		t.Errorf("empty partition = %+v, want all zeros", result)
	}
}

// stubAggregateStore returns canned rows, with optional per-query failures
type stubAggregateStore struct {
	visitDays []database.VisitDay
	failOn    string
}

var errStubQuery = errors.New("aggregate query failed")

func (s *stubAggregateStore) GetSiteVisitsStats(ctx context.Context, start, end time.Time) ([]database.VisitDay, error) {
	if s.failOn == "visits" {
		return nil, errStubQuery
	}
	return s.visitDays, nil
}

func (s *stubAggregateStore) GetTopPages(ctx context.Context, start, end time.Time, limit int) ([]database.TopPage, error) {
	if s.failOn == "pages" {
		return nil, errStubQuery
	}
	return []database.TopPage{{Path: "/", PageTitle: "Home", ViewCount: 12}}, nil
}

func (s *stubAggregateStore) GetCategoryInterestStats(ctx context.Context, start, end time.Time) ([]database.CategoryInterestStat, error) {
	if s.failOn == "categories" {
		return nil, errStubQuery
	}
	return nil, nil
}

func (s *stubAggregateStore) GetContentTypeStats(ctx context.Context, start, end time.Time) ([]database.ContentTypeStat, error) {
	if s.failOn == "types" {
		return nil, errStubQuery
	}
	return nil, nil
}

func (s *stubAggregateStore) GetLanguageStats(ctx context.Context, start, end time.Time) ([]database.LanguageStat, error) {
	if s.failOn == "languages" {
		return nil, errStubQuery
	}
	return nil, nil
}

func TestDashboardAnalyticsFoldsTotals(t *testing.T) {
	stub := &stubAggregateStore{
		visitDays: []database.VisitDay{
			{UniqueVisits: 5, TotalPageViews: 20},
			{UniqueVisits: 3, TotalPageViews: 10},
		},
	}
	svc := NewAnalyticsService(nil, stub)

	payload, err := svc.DashboardAnalytics(context.Background(), "week", nil, nil)
	if err != nil {
		t.Fatalf("DashboardAnalytics returned error: %v", err)
	}

	if payload.TotalVisits != 8 {
		t.Errorf("totalVisits = %d, want 8", payload.TotalVisits)
	}
	if payload.TotalPageViews != 30 {
		t.Errorf("totalPageViews = %d, want 30", payload.TotalPageViews)
	}
	if len(payload.TopPages) != 1 {
		t.Errorf("topPages has %d rows, want 1", len(payload.TopPages))
	}
}

func TestDashboardAnalyticsAnyFailureAbortsAll(t *testing.T) {
	for _, failOn := range []string{"visits", "pages", "categories", "types", "languages"} {
		stub := &stubAggregateStore{failOn: failOn}
		svc := NewAnalyticsService(nil, stub)

		payload, err := svc.DashboardAnalytics(context.Background(), "today", nil, nil)
		if err == nil {
			t.Errorf("failOn=%s: expected error, got payload %+v", failOn, payload)
		}
		if payload != nil {
			t.Errorf("failOn=%s: expected nil payload on failure", failOn)
		}
	}
}

// openTestDB connects to the database configured for integration tests
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres password=postgres dbname=shloksagar_test sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&model.SiteVisit{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func TestTrackSiteVisitDedupe(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run.")
	}

	db := openTestDB(t)
	svc := NewAnalyticsService(db, nil)

	sessionID := session.ID(fmt.Sprintf("10.0.0.%d", time.Now().UnixNano()%250), "test-agent", time.Now())

	// Two serialized calls for the same session on the same day must leave
	// exactly one row.
	for i := 0; i < 2; i++ {
		if err := svc.TrackSiteVisit(context.Background(), sessionID, "test-agent", "10.0.0.1"); err != nil {
			t.Fatalf("TrackSiteVisit call %d failed: %v", i+1, err)
		}
	}

	var count int64
	if err := db.Model(&model.SiteVisit{}).Where("session_id = ?", sessionID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count visits: %v", err)
	}
	if count != 1 {
		t.Errorf("visit rows = %d, want 1", count)
	}
}
