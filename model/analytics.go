package model

import (
	"time"
)

// SiteVisit records one visit per session per UTC calendar day. The
// once-per-day rule is enforced by the ingestion check in the analytics
// service, not by a database constraint; rows are immutable once written.
type SiteVisit struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SessionID string    `gorm:"type:varchar(128);not null;index:idx_site_visits_session" json:"session_id"`
	UserAgent string    `gorm:"type:text" json:"user_agent,omitempty"`
	IPHash    string    `gorm:"type:varchar(64)" json:"ip_hash,omitempty"`
	CreatedAt time.Time `gorm:"index:idx_site_visits_created" json:"created_at"`
}

// TableName specifies the table name for SiteVisit
func (SiteVisit) TableName() string {
	return "site_visits"
}

// PageView records one navigation event. Unbounded per session.
type PageView struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SessionID string    `gorm:"type:varchar(128);not null;index" json:"session_id"`
	Path      string    `gorm:"type:varchar(512);not null;index" json:"path"`
	PageTitle string    `gorm:"type:varchar(512)" json:"page_title,omitempty"`
	Referrer  string    `gorm:"type:varchar(512)" json:"referrer,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for PageView
func (PageView) TableName() string {
	return "page_views"
}

// CategoryInterest is an append-only interest signal for a category.
// Not deduplicated; one row per event.
type CategoryInterest struct {
	ID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SessionID  string    `gorm:"type:varchar(128);not null;index" json:"session_id"`
	CategoryID string    `gorm:"type:uuid;not null;index" json:"category_id"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for CategoryInterest
func (CategoryInterest) TableName() string {
	return "category_interest"
}

// ContentTypeInterest is an append-only interest signal for a content type.
type ContentTypeInterest struct {
	ID          string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SessionID   string    `gorm:"type:varchar(128);not null;index" json:"session_id"`
	ContentType string    `gorm:"type:varchar(50);not null;index" json:"content_type"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for ContentTypeInterest
func (ContentTypeInterest) TableName() string {
	return "content_type_interest"
}

// LanguagePreference is an append-only signal of the UI language a session
// switched to.
type LanguagePreference struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SessionID string    `gorm:"type:varchar(128);not null;index" json:"session_id"`
	Language  string    `gorm:"type:varchar(10);not null;index" json:"language"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for LanguagePreference
func (LanguagePreference) TableName() string {
	return "language_preference"
}

// ResourceType enumerates downloadable resource kinds
type ResourceType string

const (
	ResourceTypeWallpaper ResourceType = "wallpaper"
	ResourceTypeVideo     ResourceType = "video"
)

// DownloadEvent records a wallpaper or video download. UserID is nil for
// anonymous sessions.
type DownloadEvent struct {
	ID           string       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       *string      `gorm:"type:uuid;index" json:"user_id,omitempty"`
	SessionID    string       `gorm:"type:varchar(128);not null;index" json:"session_id"`
	ResourceType ResourceType `gorm:"type:varchar(20);not null;index" json:"resource_type"`
	ResourceID   string       `gorm:"type:uuid;not null" json:"resource_id"`
	CreatedAt    time.Time    `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for DownloadEvent
func (DownloadEvent) TableName() string {
	return "download_events"
}
