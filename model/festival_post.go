package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FestivalPost announces a festival with its date window and artwork.
// Extra display metadata (greeting text, theme colors) lives in Metadata.
type FestivalPost struct {
	ID            string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NameEn        string         `gorm:"not null" json:"name_en"`
	NameHi        string         `json:"name_hi"`
	NameGu        string         `json:"name_gu"`
	DescriptionEn string         `gorm:"type:text" json:"description_en"`
	DescriptionHi string         `gorm:"type:text" json:"description_hi"`
	DescriptionGu string         `gorm:"type:text" json:"description_gu"`
	ImageURL      string         `gorm:"type:varchar(512)" json:"image_url"`
	StartsOn      time.Time      `gorm:"type:date;not null;index" json:"starts_on"`
	EndsOn        time.Time      `gorm:"type:date;not null" json:"ends_on"`
	Metadata      datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for FestivalPost
func (FestivalPost) TableName() string {
	return "festival_posts"
}
