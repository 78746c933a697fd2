package model

import "gorm.io/gorm"

// Project is a tree-structured container for original strings. Slug is
// unique among siblings under the same parent.
type Project struct {
	gorm.Model
	Name              string  `gorm:"type:varchar(255);not null" json:"name"`
	Slug              string  `gorm:"type:varchar(255);not null;index:idx_project_parent_slug" json:"slug"`
	Description       *string `gorm:"type:text" json:"description"`
	SourceURLTemplate *string `gorm:"type:varchar(255)" json:"source_url_template"`
	ParentProjectID   *uint   `gorm:"index:idx_project_parent_slug" json:"parent_project_id"`
	Active            bool    `gorm:"not null;default:true" json:"active"`

	TranslationSets []TranslationSet `gorm:"foreignKey:ProjectID"`
}
