package model

import (
	"time"

	"gorm.io/gorm"
)

// ContentType enumerates the kinds of devotional text content
type ContentType string

const (
	ContentTypeBhajan  ContentType = "bhajan"
	ContentTypeAarti   ContentType = "aarti"
	ContentTypeChalisa ContentType = "chalisa"
	ContentTypeStotra  ContentType = "stotra"
)

// ContentTypes returns all supported content types
func ContentTypes() []string {
	return []string{
		string(ContentTypeBhajan),
		string(ContentTypeAarti),
		string(ContentTypeChalisa),
		string(ContentTypeStotra),
	}
}

// ValidContentType reports whether t is one of the supported content types
func ValidContentType(t string) bool {
	switch ContentType(t) {
	case ContentTypeBhajan, ContentTypeAarti, ContentTypeChalisa, ContentTypeStotra:
		return true
	}
	return false
}

// ContentItem is a single devotional text (bhajan, aarti, chalisa or stotra)
// belonging to a category. Title and body carry per-language variants.
type ContentItem struct {
	ID         string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CategoryID string         `gorm:"type:uuid;not null;index:idx_content_category" json:"category_id"`
	Type       ContentType    `gorm:"type:varchar(20);not null;index:idx_content_type;uniqueIndex:idx_content_type_slug" json:"type"`
	Slug       string         `gorm:"not null;uniqueIndex:idx_content_type_slug" json:"slug"`
	TitleEn    string         `gorm:"not null" json:"title_en"`
	TitleHi    string         `json:"title_hi"`
	TitleGu    string         `json:"title_gu"`
	BodyEn     string         `gorm:"type:text" json:"body_en"`
	BodyHi     string         `gorm:"type:text" json:"body_hi"`
	BodyGu     string         `gorm:"type:text" json:"body_gu"`
	Deity      string         `gorm:"type:varchar(100)" json:"deity"`
	AudioURL   string         `gorm:"type:varchar(512)" json:"audio_url,omitempty"`
	IsActive   bool           `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// TableName specifies the table name for ContentItem
func (ContentItem) TableName() string {
	return "content_items"
}
