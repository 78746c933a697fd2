package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/meloniq-lab/glotline/dao/model"
)

type glossaryStore struct {
	db *gorm.DB
}

func (s *glossaryStore) Get(ctx context.Context, id uint) (*model.Glossary, error) {
	var g model.Glossary
	return first(s.db.WithContext(ctx).Where("id = ?", id), &g)
}

func (s *glossaryStore) List(ctx context.Context) ([]model.Glossary, error) {
	var glossaries []model.Glossary
	if err := s.db.WithContext(ctx).Order("id asc").Find(&glossaries).Error; err != nil {
		return nil, err
	}
	return glossaries, nil
}

func (s *glossaryStore) BySet(ctx context.Context, setID uint) (*model.Glossary, error) {
	var g model.Glossary
	return first(s.db.WithContext(ctx).Where("translation_set_id = ?", setID), &g)
}

func (s *glossaryStore) Create(ctx context.Context, g *model.Glossary) error {
	return s.db.WithContext(ctx).Create(g).Error
}

func (s *glossaryStore) Update(ctx context.Context, g *model.Glossary) error {
	return s.db.WithContext(ctx).Save(g).Error
}

func (s *glossaryStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.Glossary{}, id).Error
}

type entryStore struct {
	db *gorm.DB
}

func (s *entryStore) Get(ctx context.Context, id uint) (*model.GlossaryEntry, error) {
	var e model.GlossaryEntry
	return first(s.db.WithContext(ctx).Where("id = ?", id), &e)
}

func (s *entryStore) ByGlossary(ctx context.Context, glossaryID uint) ([]model.GlossaryEntry, error) {
	var entries []model.GlossaryEntry
	err := s.db.WithContext(ctx).
		Where("glossary_id = ?", glossaryID).
		Order("term asc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *entryStore) FindDuplicate(ctx context.Context, e *model.GlossaryEntry) (*model.GlossaryEntry, error) {
	var found model.GlossaryEntry
	tx := s.db.WithContext(ctx).Where(
		"glossary_id = ? AND term = ? AND translation = ? AND part_of_speech = ? AND comment = ?",
		e.GlossaryID, e.Term, e.Translation, e.PartOfSpeech, e.Comment)
	return first(tx, &found)
}

func (s *entryStore) Create(ctx context.Context, e *model.GlossaryEntry) error {
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *entryStore) Update(ctx context.Context, e *model.GlossaryEntry) error {
	return s.db.WithContext(ctx).Save(e).Error
}

func (s *entryStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.GlossaryEntry{}, id).Error
}
