package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shloksagar/backend/model"
	"gorm.io/gorm"
)

// AdService selects active ads for the public site and records impression
// and click events. Events are append-only; reporting runs over them with
// plain counts.
type AdService struct {
	db *gorm.DB
}

// NewAdService creates a new ad service
func NewAdService(db *gorm.DB) *AdService {
	return &AdService{db: db}
}

// GetActiveAd returns the highest-weight ad whose date window covers now
func (s *AdService) GetActiveAd(ctx context.Context) (*model.Ad, error) {
	now := time.Now().UTC()

	var ad model.Ad
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("starts_at <= ? AND ends_at >= ?", now, now).
		Order("weight DESC, created_at DESC").
		First(&ad).Error; err != nil {
		return nil, err
	}
	return &ad, nil
}

// RecordImpression appends an impression event for an ad
func (s *AdService) RecordImpression(ctx context.Context, adID, sessionID, pagePath string) error {
	impression := model.AdImpression{
		AdID:      adID,
		SessionID: sessionID,
		PagePath:  pagePath,
	}
	if err := s.db.WithContext(ctx).Create(&impression).Error; err != nil {
		return fmt.Errorf("failed to record impression: %w", err)
	}
	return nil
}

// RecordClick appends a click event for an ad
func (s *AdService) RecordClick(ctx context.Context, adID, sessionID, pagePath string) error {
	click := model.AdClick{
		AdID:      adID,
		SessionID: sessionID,
		PagePath:  pagePath,
	}
	if err := s.db.WithContext(ctx).Create(&click).Error; err != nil {
		return fmt.Errorf("failed to record click: %w", err)
	}
	return nil
}
