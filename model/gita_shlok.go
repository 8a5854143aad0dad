package model

import (
	"time"

	"gorm.io/gorm"
)

// GitaShlok is a single Bhagavad Gita verse with translations and meaning.
type GitaShlok struct {
	ID         string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Slug       string         `gorm:"uniqueIndex;not null" json:"slug"`
	Chapter    int            `gorm:"not null;uniqueIndex:idx_shlok_chapter_verse" json:"chapter"`
	Verse      int            `gorm:"not null;uniqueIndex:idx_shlok_chapter_verse" json:"verse"`
	Sanskrit   string         `gorm:"type:text;not null" json:"sanskrit"`
	MeaningEn  string         `gorm:"type:text" json:"meaning_en"`
	MeaningHi  string         `gorm:"type:text" json:"meaning_hi"`
	MeaningGu  string         `gorm:"type:text" json:"meaning_gu"`
	AdhyayName string         `gorm:"type:varchar(255)" json:"adhyay_name,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for GitaShlok
func (GitaShlok) TableName() string {
	return "gita_shloks"
}
