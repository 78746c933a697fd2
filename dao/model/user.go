package model

import "gorm.io/gorm"

// User is the authenticated principal of the system.
type User struct {
	gorm.Model
	Login       string `gorm:"uniqueIndex;type:varchar(64);not null" json:"login"`
	DisplayName string `gorm:"type:varchar(255)" json:"display_name"`
	Password    string `gorm:"type:varchar(128);not null" json:"-"`
	Role        Role   `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
}
