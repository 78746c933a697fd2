package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/meloniq-lab/glotline/dao/model"
)

type userStore struct {
	db *gorm.DB
}

func (s *userStore) Get(ctx context.Context, id uint) (*model.User, error) {
	var u model.User
	return first(s.db.WithContext(ctx).Where("id = ?", id), &u)
}

func (s *userStore) ByLogin(ctx context.Context, login string) (*model.User, error) {
	var u model.User
	return first(s.db.WithContext(ctx).Where("login = ?", login), &u)
}
