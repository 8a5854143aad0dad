package database

import (
	"log"

	"github.com/shloksagar/backend/model"
)

// Seed inserts the default category set when the table is empty. Safe to run
// on every startup.
func (s *GORMStore) Seed() error {
	var count int64
	if err := s.db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding default categories...")

	categories := []model.Category{
		{Slug: "ganesh", NameEn: "Ganesh", NameHi: "गणेश", NameGu: "ગણેશ", SortOrder: 1},
		{Slug: "shiv", NameEn: "Shiv", NameHi: "शिव", NameGu: "શિવ", SortOrder: 2},
		{Slug: "krishna", NameEn: "Krishna", NameHi: "कृष्ण", NameGu: "કૃષ્ણ", SortOrder: 3},
		{Slug: "hanuman", NameEn: "Hanuman", NameHi: "हनुमान", NameGu: "હનુમાન", SortOrder: 4},
		{Slug: "durga", NameEn: "Durga", NameHi: "दुर्गा", NameGu: "દુર્ગા", SortOrder: 5},
		{Slug: "ram", NameEn: "Ram", NameHi: "राम", NameGu: "રામ", SortOrder: 6},
		{Slug: "lakshmi", NameEn: "Lakshmi", NameHi: "लक्ष्मी", NameGu: "લક્ષ્મી", SortOrder: 7},
	}

	return s.db.Create(&categories).Error
}
