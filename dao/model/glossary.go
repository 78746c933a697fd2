package model

import "gorm.io/gorm"

// Glossary is a terminology reference list scoped 1:1 to a translation set.
type Glossary struct {
	gorm.Model
	TranslationSetID uint   `gorm:"not null;uniqueIndex" json:"translation_set_id"`
	Description      string `gorm:"type:text" json:"description"`

	Entries []GlossaryEntry `gorm:"foreignKey:GlossaryID"`
}

// GlossaryEntry is a single term in a glossary. The full
// (glossary_id, term, translation, part_of_speech, comment) tuple is checked
// for uniqueness before creation.
type GlossaryEntry struct {
	gorm.Model
	GlossaryID   uint   `gorm:"not null;index" json:"glossary_id"`
	Term         string `gorm:"type:varchar(255);not null" json:"term"`
	Translation  string `gorm:"type:varchar(255);not null" json:"translation"`
	PartOfSpeech string `gorm:"type:varchar(50)" json:"part_of_speech"`
	Comment      string `gorm:"type:text" json:"comment"`
	LastEditedBy uint   `gorm:"not null" json:"last_edited_by"`
}
