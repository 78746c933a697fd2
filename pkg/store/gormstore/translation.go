package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/meloniq-lab/glotline/dao/model"
)

type translationStore struct {
	db *gorm.DB
}

func (s *translationStore) Get(ctx context.Context, id uint) (*model.Translation, error) {
	var t model.Translation
	return first(s.db.WithContext(ctx).Where("id = ?", id), &t)
}

func (s *translationStore) CurrentOrWaiting(ctx context.Context, setID, originalID uint) ([]model.Translation, error) {
	var translations []model.Translation
	err := s.db.WithContext(ctx).
		Where("translation_set_id = ? AND original_id = ? AND status IN ?",
			setID, originalID,
			[]model.TranslationStatus{model.TranslationCurrent, model.TranslationWaiting}).
		Find(&translations).Error
	if err != nil {
		return nil, err
	}
	return translations, nil
}

func (s *translationStore) Create(ctx context.Context, t *model.Translation) error {
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *translationStore) Update(ctx context.Context, t *model.Translation) error {
	return s.db.WithContext(ctx).Save(t).Error
}

func (s *translationStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.Translation{}, id).Error
}
