package model

import (
	"time"

	"gorm.io/gorm"
)

// Category groups devotional content by deity or theme (e.g. Ganesh, Shiv).
// Display names carry per-language variants selected by the active UI language.
type Category struct {
	ID            string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Slug          string         `gorm:"uniqueIndex;not null" json:"slug"`
	NameEn        string         `gorm:"not null" json:"name_en"`
	NameHi        string         `json:"name_hi"`
	NameGu        string         `json:"name_gu"`
	DescriptionEn string         `gorm:"type:text" json:"description_en"`
	DescriptionHi string         `gorm:"type:text" json:"description_hi"`
	DescriptionGu string         `gorm:"type:text" json:"description_gu"`
	ImageURL      string         `gorm:"type:varchar(512)" json:"image_url"`
	SortOrder     int            `gorm:"default:0" json:"sort_order"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	ContentItems []ContentItem `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"content_items,omitempty"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
