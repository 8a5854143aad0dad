package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Ad is a sponsored placement served to the public site. Targeting holds the
// page-path and language rules as JSONB so the admin panel can evolve them
// without a migration.
type Ad struct {
	ID        string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	ImageURL  string         `gorm:"type:varchar(512);not null" json:"image_url"`
	TargetURL string         `gorm:"type:varchar(512);not null" json:"target_url"`
	Weight    int            `gorm:"default:1" json:"weight"`
	Targeting datatypes.JSON `gorm:"type:jsonb" json:"targeting,omitempty"`
	StartsAt  time.Time      `json:"starts_at"`
	EndsAt    time.Time      `json:"ends_at"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Ad
func (Ad) TableName() string {
	return "ads"
}

// AdImpression is an append-only record of an ad being shown.
type AdImpression struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AdID      string    `gorm:"type:uuid;not null;index" json:"ad_id"`
	SessionID string    `gorm:"type:varchar(128);not null;index" json:"session_id"`
	PagePath  string    `gorm:"type:varchar(512)" json:"page_path"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for AdImpression
func (AdImpression) TableName() string {
	return "ad_impressions"
}

// AdClick is an append-only record of an ad being clicked.
type AdClick struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AdID      string    `gorm:"type:uuid;not null;index" json:"ad_id"`
	SessionID string    `gorm:"type:varchar(128);not null;index" json:"session_id"`
	PagePath  string    `gorm:"type:varchar(512)" json:"page_path"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for AdClick
func (AdClick) TableName() string {
	return "ad_clicks"
}
