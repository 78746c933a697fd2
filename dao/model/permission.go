package model

import "gorm.io/gorm"

// ValidatorPermission grants a user the right to approve translations for a
// specific (project, locale, set) scope.
type ValidatorPermission struct {
	gorm.Model
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	ProjectID  uint   `gorm:"not null;index" json:"project_id"`
	LocaleSlug string `gorm:"type:varchar(10);not null" json:"locale_slug"`
	SetSlug    string `gorm:"type:varchar(255);not null" json:"set_slug"`
	Action     string `gorm:"type:varchar(20);not null;default:'approve'" json:"action"`
}
