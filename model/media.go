package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Wallpaper is a downloadable devotional image. StorageKey points at the
// object in the media bucket; download URLs are presigned on demand.
type Wallpaper struct {
	ID         string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TitleEn    string         `gorm:"not null" json:"title_en"`
	TitleHi    string         `json:"title_hi"`
	TitleGu    string         `json:"title_gu"`
	ImageURL   string         `gorm:"type:varchar(512);not null" json:"image_url"`
	StorageKey string         `gorm:"type:varchar(512);not null" json:"-"`
	Tags       pq.StringArray `gorm:"type:text[]" json:"tags"`
	IsActive   bool           `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Wallpaper
func (Wallpaper) TableName() string {
	return "wallpapers"
}

// Video is a downloadable devotional video clip.
type Video struct {
	ID           string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TitleEn      string         `gorm:"not null" json:"title_en"`
	TitleHi      string         `json:"title_hi"`
	TitleGu      string         `json:"title_gu"`
	ThumbnailURL string         `gorm:"type:varchar(512)" json:"thumbnail_url"`
	StorageKey   string         `gorm:"type:varchar(512);not null" json:"-"`
	DurationSec  int            `gorm:"default:0" json:"duration_sec"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Video
func (Video) TableName() string {
	return "videos"
}
