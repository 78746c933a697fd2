package model

import "gorm.io/gorm"

// TranslationSet is the (project, locale) pairing under which translations
// are collected. The (project_id, locale, slug) tuple is unique.
type TranslationSet struct {
	gorm.Model
	ProjectID uint   `gorm:"not null;uniqueIndex:idx_set_project_locale_slug" json:"project_id"`
	Locale    string `gorm:"type:varchar(10);not null;uniqueIndex:idx_set_project_locale_slug" json:"locale"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	Slug      string `gorm:"type:varchar(255);not null;uniqueIndex:idx_set_project_locale_slug" json:"slug"`
}
