package model

import (
	"time"

	"gorm.io/gorm"
)

// Quote is a daily devotional quote, published by date. At most one quote is
// served as "today's quote" for a given calendar date.
type Quote struct {
	ID          string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TextEn      string         `gorm:"type:text;not null" json:"text_en"`
	TextHi      string         `gorm:"type:text" json:"text_hi"`
	TextGu      string         `gorm:"type:text" json:"text_gu"`
	MediaURL    string         `gorm:"type:varchar(512)" json:"media_url,omitempty"`
	MediaType   string         `gorm:"type:varchar(10)" json:"media_type,omitempty"` // image or video
	PublishDate time.Time      `gorm:"type:date;uniqueIndex;not null" json:"publish_date"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Quote
func (Quote) TableName() string {
	return "quotes"
}

// GitaSandesh is the daily Gita message: a shlok with its meaning, published
// by date like Quote.
type GitaSandesh struct {
	ID          string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Shlok       string         `gorm:"type:text;not null" json:"shlok"`
	MeaningEn   string         `gorm:"type:text" json:"meaning_en"`
	MeaningHi   string         `gorm:"type:text" json:"meaning_hi"`
	MeaningGu   string         `gorm:"type:text" json:"meaning_gu"`
	Chapter     int            `json:"chapter,omitempty"`
	Verse       int            `json:"verse,omitempty"`
	MediaURL    string         `gorm:"type:varchar(512)" json:"media_url,omitempty"`
	MediaType   string         `gorm:"type:varchar(10)" json:"media_type,omitempty"`
	PublishDate time.Time      `gorm:"type:date;uniqueIndex;not null" json:"publish_date"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for GitaSandesh
func (GitaSandesh) TableName() string {
	return "gita_sandesh"
}
