package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/meloniq-lab/glotline/dao/model"
)

type projectStore struct {
	db *gorm.DB
}

func (s *projectStore) Get(ctx context.Context, id uint) (*model.Project, error) {
	var p model.Project
	return first(s.db.WithContext(ctx).Where("id = ?", id), &p)
}

func (s *projectStore) List(ctx context.Context, parentID *uint) ([]model.Project, error) {
	var projects []model.Project
	tx := s.db.WithContext(ctx).Order("name asc")
	if parentID != nil {
		tx = tx.Where("parent_project_id = ?", *parentID)
	}
	if err := tx.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *projectStore) BySlug(ctx context.Context, parentID *uint, slug string) (*model.Project, error) {
	var p model.Project
	tx := s.db.WithContext(ctx).Where("slug = ?", slug)
	if parentID == nil {
		tx = tx.Where("parent_project_id IS NULL")
	} else {
		tx = tx.Where("parent_project_id = ?", *parentID)
	}
	return first(tx, &p)
}

func (s *projectStore) Create(ctx context.Context, p *model.Project) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *projectStore) Update(ctx context.Context, p *model.Project) error {
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *projectStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.Project{}, id).Error
}
