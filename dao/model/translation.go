package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Translation is a submitted rendering of an original into a locale's
// plural forms. Translations holds one string per plural form, index
// 0..nplurals-1. At most one current-or-waiting translation may exist per
// (original, set, identical plural content).
type Translation struct {
	gorm.Model
	TranslationSetID uint                        `gorm:"not null;index" json:"translation_set_id"`
	OriginalID       uint                        `gorm:"not null;index" json:"original_id"`
	UserID           uint                        `gorm:"not null" json:"user_id"`
	Translations     datatypes.JSONSlice[string] `json:"translations"`
	Status           TranslationStatus           `gorm:"type:varchar(20);not null;default:'waiting';index" json:"status"`
	Warnings         datatypes.JSONSlice[string] `json:"warnings"`
}
