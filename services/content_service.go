package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shloksagar/backend/model"
	"github.com/shloksagar/backend/utils/cache"
	"gorm.io/gorm"
)

// ContentService serves the read-only content catalog: categories,
// devotional content, Gita shloks, daily quotes/messages and festivals.
type ContentService struct {
	db    *gorm.DB
	cache *cache.RedisCache // may be nil; today's-content reads then skip the cache
}

// NewContentService creates a new content service
func NewContentService(db *gorm.DB, redisCache *cache.RedisCache) *ContentService {
	return &ContentService{
		db:    db,
		cache: redisCache,
	}
}

// ListCategories returns all active categories in display order
func (s *ContentService) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name_en ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetCategoryBySlug returns one category by its slug
func (s *ContentService) GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var category model.Category
	if err := s.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListContent returns active content items of a type, optionally scoped to a category
func (s *ContentService) ListContent(ctx context.Context, contentType, categoryID string) ([]model.ContentItem, error) {
	query := s.db.WithContext(ctx).
		Where("type = ? AND is_active = ?", contentType, true)

	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var items []model.ContentItem
	if err := query.Order("title_en ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	return items, nil
}

// GetContentBySlug returns one content item by type and slug
func (s *ContentService) GetContentBySlug(ctx context.Context, contentType, slug string) (*model.ContentItem, error) {
	var item model.ContentItem
	if err := s.db.WithContext(ctx).
		Where("type = ? AND slug = ? AND is_active = ?", contentType, slug, true).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// SearchContent matches the query against content titles in all languages
func (s *ContentService) SearchContent(ctx context.Context, query string, limit int) ([]model.ContentItem, error) {
	if limit < 1 || limit > 50 {
		limit = 20
	}
	pattern := "%" + query + "%"

	var items []model.ContentItem
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("title_en ILIKE ? OR title_hi ILIKE ? OR title_gu ILIKE ?", pattern, pattern, pattern).
		Limit(limit).
		Order("title_en ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to search content: %w", err)
	}
	return items, nil
}

// ListGitaShloks returns shloks, optionally scoped to one chapter
func (s *ContentService) ListGitaShloks(ctx context.Context, chapter int) ([]model.GitaShlok, error) {
	query := s.db.WithContext(ctx).Order("chapter ASC, verse ASC")
	if chapter > 0 {
		query = query.Where("chapter = ?", chapter)
	}

	var shloks []model.GitaShlok
	if err := query.Find(&shloks).Error; err != nil {
		return nil, fmt.Errorf("failed to list shloks: %w", err)
	}
	return shloks, nil
}

// GetGitaShlokBySlug returns one shlok by its slug
func (s *ContentService) GetGitaShlokBySlug(ctx context.Context, slug string) (*model.GitaShlok, error) {
	var shlok model.GitaShlok
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&shlok).Error; err != nil {
		return nil, err
	}
	return &shlok, nil
}

// GetGitaShlokByChapterVerse returns one shlok by chapter and verse numbers
func (s *ContentService) GetGitaShlokByChapterVerse(ctx context.Context, chapter, verse int) (*model.GitaShlok, error) {
	var shlok model.GitaShlok
	if err := s.db.WithContext(ctx).
		Where("chapter = ? AND verse = ?", chapter, verse).
		First(&shlok).Error; err != nil {
		return nil, err
	}
	return &shlok, nil
}

// TodayQuote returns the quote published for the current UTC date. The result
// is cached for an hour since it only changes at midnight.
func (s *ContentService) TodayQuote(ctx context.Context) (*model.Quote, error) {
	today := time.Now().UTC().Format("2006-01-02")
	cacheKey := "content:quote:" + today

	if s.cache != nil {
		var cached model.Quote
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	var quote model.Quote
	if err := s.db.WithContext(ctx).
		Where("publish_date = ?", today).
		First(&quote).Error; err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetJSON(ctx, cacheKey, quote, time.Hour)
	}
	return &quote, nil
}

// ListQuotes returns the most recently published quotes
func (s *ContentService) ListQuotes(ctx context.Context, limit int) ([]model.Quote, error) {
	if limit < 1 || limit > 100 {
		limit = 30
	}

	var quotes []model.Quote
	if err := s.db.WithContext(ctx).
		Where("publish_date <= ?", time.Now().UTC().Format("2006-01-02")).
		Order("publish_date DESC").
		Limit(limit).
		Find(&quotes).Error; err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return quotes, nil
}

// TodayGitaSandesh returns the Gita message published for the current UTC date
func (s *ContentService) TodayGitaSandesh(ctx context.Context) (*model.GitaSandesh, error) {
	today := time.Now().UTC().Format("2006-01-02")
	cacheKey := "content:sandesh:" + today

	if s.cache != nil {
		var cached model.GitaSandesh
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	var sandesh model.GitaSandesh
	if err := s.db.WithContext(ctx).
		Where("publish_date = ?", today).
		First(&sandesh).Error; err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetJSON(ctx, cacheKey, sandesh, time.Hour)
	}
	return &sandesh, nil
}

// ListGitaSandesh returns the most recently published Gita messages
func (s *ContentService) ListGitaSandesh(ctx context.Context, limit int) ([]model.GitaSandesh, error) {
	if limit < 1 || limit > 100 {
		limit = 30
	}

	var messages []model.GitaSandesh
	if err := s.db.WithContext(ctx).
		Where("publish_date <= ?", time.Now().UTC().Format("2006-01-02")).
		Order("publish_date DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to list gita sandesh: %w", err)
	}
	return messages, nil
}

// ListFestivals returns active festival posts, upcoming first
func (s *ContentService) ListFestivals(ctx context.Context) ([]model.FestivalPost, error) {
	var festivals []model.FestivalPost
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("starts_on ASC").
		Find(&festivals).Error; err != nil {
		return nil, fmt.Errorf("failed to list festivals: %w", err)
	}
	return festivals, nil
}

// GetFestivalByID returns one festival post
func (s *ContentService) GetFestivalByID(ctx context.Context, id string) (*model.FestivalPost, error) {
	var festival model.FestivalPost
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&festival).Error; err != nil {
		return nil, err
	}
	return &festival, nil
}
