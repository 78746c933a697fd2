package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/meloniq-lab/glotline/dao/model"
)

type setStore struct {
	db *gorm.DB
}

func (s *setStore) Get(ctx context.Context, id uint) (*model.TranslationSet, error) {
	var set model.TranslationSet
	return first(s.db.WithContext(ctx).Where("id = ?", id), &set)
}

func (s *setStore) ByProject(ctx context.Context, projectID uint) ([]model.TranslationSet, error) {
	var sets []model.TranslationSet
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("name asc").
		Find(&sets).Error
	if err != nil {
		return nil, err
	}
	return sets, nil
}

func (s *setStore) Find(ctx context.Context, projectID uint, locale, slug string) (*model.TranslationSet, error) {
	var set model.TranslationSet
	tx := s.db.WithContext(ctx).
		Where("project_id = ? AND locale = ? AND slug = ?", projectID, locale, slug)
	return first(tx, &set)
}

func (s *setStore) DistinctLocales(ctx context.Context) ([]string, error) {
	var codes []string
	err := s.db.WithContext(ctx).
		Model(&model.TranslationSet{}).
		Distinct("locale").
		Pluck("locale", &codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

func (s *setStore) RecentForUser(ctx context.Context, userID uint, limit int) ([]model.TranslationSet, error) {
	var sets []model.TranslationSet
	tx := s.db.WithContext(ctx).
		Joins("JOIN translations ON translations.translation_set_id = translation_sets.id").
		Where("translations.user_id = ?", userID).
		Group("translation_sets.id").
		Order("MAX(translations.created_at) DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err := tx.Find(&sets).Error
	if err != nil {
		return nil, err
	}
	return sets, nil
}

func (s *setStore) Create(ctx context.Context, set *model.TranslationSet) error {
	return s.db.WithContext(ctx).Create(set).Error
}

func (s *setStore) Update(ctx context.Context, set *model.TranslationSet) error {
	return s.db.WithContext(ctx).Save(set).Error
}

func (s *setStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.TranslationSet{}, id).Error
}
