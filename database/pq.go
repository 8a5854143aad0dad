package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/shloksagar/backend/config"
)

// PostgreSQLStore is a raw database/sql connection used for the aggregate
// function calls. CRUD goes through the GORM store; the rollups stay on
// plain SQL so the function signatures are explicit.
type PostgreSQLStore struct {
	db *sql.DB
}

func Start() (*PostgreSQLStore, error) {
	getEnv, err := config.Get()

	if err != nil {
		return nil, err
	}

	connectStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv.DB_HOST, getEnv.DB_PORT, getEnv.DB_USER_NAME, getEnv.DB_PASSWORD, getEnv.DB_NAME, getEnv.DB_SSL_MODE)

	db, err := sql.Open("postgres", connectStr)
	if err != nil {
		fmt.Println("Unable to Start PostgresSQL Databse.")
		return nil, err
	}

	log.Println("Successfully connected to PostgresSQL Database.")
	return &PostgreSQLStore{
		db: db,
	}, nil
}

func (s *PostgreSQLStore) Close() error {
	log.Println("Closing PostgresSQL Database.")
	return s.db.Close()
}

// HealthCheck verifies the database connection is alive
func (s *PostgreSQLStore) HealthCheck() error {
	return s.db.Ping()
}

// VisitDay is one per-day bucket from get_site_visits_stats
type VisitDay struct {
	VisitDate      time.Time `json:"visit_date"`
	UniqueVisits   int64     `json:"unique_visits"`
	TotalPageViews int64     `json:"total_page_views"`
}

// TopPage is one ranked row from get_top_pages
type TopPage struct {
	Path      string `json:"path"`
	PageTitle string `json:"page_title"`
	ViewCount int64  `json:"view_count"`
}

// CategoryInterestStat is one row from get_category_interest_stats
type CategoryInterestStat struct {
	CategoryID    string `json:"category_id"`
	CategoryName  string `json:"category_name"`
	InterestCount int64  `json:"interest_count"`
}

// ContentTypeStat is one row from get_content_type_stats
type ContentTypeStat struct {
	ContentType   string `json:"content_type"`
	InterestCount int64  `json:"interest_count"`
}

// LanguageStat is one row from get_language_stats
type LanguageStat struct {
	Language        string `json:"language"`
	PreferenceCount int64  `json:"preference_count"`
}

// GetSiteVisitsStats returns per-day unique visits and page views for the range
func (s *PostgreSQLStore) GetSiteVisitsStats(ctx context.Context, start, end time.Time) ([]VisitDay, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT visit_date, unique_visits, total_page_views FROM get_site_visits_stats($1, $2)`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query site visit stats: %w", err)
	}
	defer rows.Close()

	var results []VisitDay
	for rows.Next() {
		var day VisitDay
		if err := rows.Scan(&day.VisitDate, &day.UniqueVisits, &day.TotalPageViews); err != nil {
			return nil, fmt.Errorf("failed to scan visit day: %w", err)
		}
		results = append(results, day)
	}
	return results, rows.Err()
}

// GetTopPages returns the most viewed paths in the range, highest first
func (s *PostgreSQLStore) GetTopPages(ctx context.Context, start, end time.Time, limit int) ([]TopPage, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path, page_title, view_count FROM get_top_pages($1, $2, $3)`, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top pages: %w", err)
	}
	defer rows.Close()

	var results []TopPage
	for rows.Next() {
		var page TopPage
		var title sql.NullString
		if err := rows.Scan(&page.Path, &title, &page.ViewCount); err != nil {
			return nil, fmt.Errorf("failed to scan top page: %w", err)
		}
		page.PageTitle = title.String
		results = append(results, page)
	}
	return results, rows.Err()
}

// GetCategoryInterestStats returns interest signal counts per category
func (s *PostgreSQLStore) GetCategoryInterestStats(ctx context.Context, start, end time.Time) ([]CategoryInterestStat, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT category_id, category_name, interest_count FROM get_category_interest_stats($1, $2)`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query category interest: %w", err)
	}
	defer rows.Close()

	var results []CategoryInterestStat
	for rows.Next() {
		var stat CategoryInterestStat
		if err := rows.Scan(&stat.CategoryID, &stat.CategoryName, &stat.InterestCount); err != nil {
			return nil, fmt.Errorf("failed to scan category interest: %w", err)
		}
		results = append(results, stat)
	}
	return results, rows.Err()
}

// GetContentTypeStats returns interest signal counts per content type
func (s *PostgreSQLStore) GetContentTypeStats(ctx context.Context, start, end time.Time) ([]ContentTypeStat, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT content_type, interest_count FROM get_content_type_stats($1, $2)`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query content type stats: %w", err)
	}
	defer rows.Close()

	var results []ContentTypeStat
	for rows.Next() {
		var stat ContentTypeStat
		if err := rows.Scan(&stat.ContentType, &stat.InterestCount); err != nil {
			return nil, fmt.Errorf("failed to scan content type stat: %w", err)
		}
		results = append(results, stat)
	}
	return results, rows.Err()
}

// GetLanguageStats returns language preference counts
func (s *PostgreSQLStore) GetLanguageStats(ctx context.Context, start, end time.Time) ([]LanguageStat, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT language, preference_count FROM get_language_stats($1, $2)`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query language stats: %w", err)
	}
	defer rows.Close()

	var results []LanguageStat
	for rows.Next() {
		var stat LanguageStat
		if err := rows.Scan(&stat.Language, &stat.PreferenceCount); err != nil {
			return nil, fmt.Errorf("failed to scan language stat: %w", err)
		}
		results = append(results, stat)
	}
	return results, rows.Err()
}
