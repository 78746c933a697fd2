package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/meloniq-lab/glotline/dao/model"
)

type permissionStore struct {
	db *gorm.DB
}

func (s *permissionStore) Get(ctx context.Context, id uint) (*model.ValidatorPermission, error) {
	var p model.ValidatorPermission
	return first(s.db.WithContext(ctx).Where("id = ?", id), &p)
}

func (s *permissionStore) ByProject(ctx context.Context, projectID uint) ([]model.ValidatorPermission, error) {
	var permissions []model.ValidatorPermission
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id asc").
		Find(&permissions).Error
	if err != nil {
		return nil, err
	}
	return permissions, nil
}

func (s *permissionStore) ByUser(ctx context.Context, userID uint) ([]model.ValidatorPermission, error) {
	var permissions []model.ValidatorPermission
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&permissions).Error
	if err != nil {
		return nil, err
	}
	return permissions, nil
}

func (s *permissionStore) Find(ctx context.Context, userID, projectID uint, localeSlug, setSlug string) (*model.ValidatorPermission, error) {
	var p model.ValidatorPermission
	tx := s.db.WithContext(ctx).Where(
		"user_id = ? AND project_id = ? AND locale_slug = ? AND set_slug = ?",
		userID, projectID, localeSlug, setSlug)
	return first(tx, &p)
}

func (s *permissionStore) Create(ctx context.Context, p *model.ValidatorPermission) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *permissionStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.ValidatorPermission{}, id).Error
}
