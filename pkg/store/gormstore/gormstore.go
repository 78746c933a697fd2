// Package gormstore implements the store interfaces on top of gorm.
package gormstore

import (
	"errors"

	"gorm.io/gorm"

	"github.com/meloniq-lab/glotline/pkg/store"
)

// New wires every store interface to the given database handle.
func New(db *gorm.DB) store.Stores {
	return store.Stores{
		Projects:     &projectStore{db: db},
		Sets:         &setStore{db: db},
		Originals:    &originalStore{db: db},
		Translations: &translationStore{db: db},
		Glossaries:   &glossaryStore{db: db},
		Entries:      &entryStore{db: db},
		Permissions:  &permissionStore{db: db},
		Users:        &userStore{db: db},
	}
}

// first resolves gorm's record-not-found to the package's (nil, nil)
// convention.
func first[T any](tx *gorm.DB, out *T) (*T, error) {
	if err := tx.First(out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}
