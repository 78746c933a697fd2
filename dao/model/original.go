package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Original is a source-language string to be translated, scoped to a
// project. Originals enter the system via bulk import; the API only lists,
// reads and deletes them.
type Original struct {
	gorm.Model
	ProjectID  uint                        `gorm:"not null;index" json:"project_id"`
	Context    string                      `gorm:"type:varchar(255)" json:"context"`
	Singular   string                      `gorm:"type:text;not null" json:"singular"`
	Plural     *string                     `gorm:"type:text" json:"plural"`
	Comment    string                      `gorm:"type:text" json:"comment"`
	References datatypes.JSONSlice[string] `json:"references"`
	Status     OriginalStatus              `gorm:"type:varchar(20);not null;default:'+active'" json:"status"`
	Priority   int                         `gorm:"not null;default:0" json:"priority"`
	DateAdded  time.Time                   `json:"date_added"`
}
