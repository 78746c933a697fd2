package gormstore

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/meloniq-lab/glotline/dao/model"
	"github.com/meloniq-lab/glotline/pkg/store"
)

type originalStore struct {
	db *gorm.DB
}

// sortColumns maps the validated sort_by values onto queryable columns.
var sortColumns = map[string]string{
	"priority":            "priority",
	"original_date_added": "date_added",
	"original":            "singular",
	"references":          "comment",
	"length":              "LENGTH(singular)",
}

func (s *originalStore) Get(ctx context.Context, id uint) (*model.Original, error) {
	var o model.Original
	return first(s.db.WithContext(ctx).Where("id = ?", id), &o)
}

func (s *originalStore) ByProject(ctx context.Context, projectID uint, sort store.Sort) ([]model.Original, error) {
	col, ok := sortColumns[sort.By]
	if !ok {
		col = "priority"
	}
	order := "DESC"
	if sort.Order == "asc" {
		order = "ASC"
	}

	var originals []model.Original
	err := s.db.WithContext(ctx).
		Where("project_id = ? AND status = ?", projectID, model.OriginalActive).
		Order(col + " " + order).
		Find(&originals).Error
	if err != nil {
		return nil, err
	}
	return originals, nil
}

func (s *originalStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.Original{}, id).Error
}

// Import reconciles the incoming entries against the project's active
// originals: unknown (context, singular) pairs are added, exact matches are
// counted as existing, entries whose singular matches an obsolete or
// context-changed original are revived as fuzzy, and active originals
// missing from the import are marked obsolete.
func (s *originalStore) Import(ctx context.Context, projectID uint, entries []store.IncomingOriginal) (store.ImportStats, error) {
	var stats store.ImportStats

	var existing []model.Original
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Find(&existing).Error
	if err != nil {
		return stats, err
	}

	type key struct{ context, singular string }
	byKey := make(map[key]*model.Original, len(existing))
	bySingular := make(map[string]*model.Original, len(existing))
	for i := range existing {
		o := &existing[i]
		byKey[key{o.Context, o.Singular}] = o
		bySingular[o.Singular] = o
	}

	seen := make(map[uint]bool, len(entries))
	for _, e := range entries {
		if o, ok := byKey[key{e.Context, e.Singular}]; ok {
			seen[o.ID] = true
			if o.Status == model.OriginalActive {
				stats.Existing++
				continue
			}
			// Obsolete original re-appeared in the import.
			o.Status = model.OriginalActive
			o.Comment = e.Comment
			o.References = datatypes.NewJSONSlice(e.References)
			if err := s.db.WithContext(ctx).Save(o).Error; err != nil {
				stats.Errored++
				continue
			}
			stats.Existing++
			continue
		}

		if o, ok := bySingular[e.Singular]; ok && !seen[o.ID] {
			// Same string under a new context: carry the translations along
			// by updating in place and flagging as fuzzy material.
			seen[o.ID] = true
			o.Context = e.Context
			o.Comment = e.Comment
			o.References = datatypes.NewJSONSlice(e.References)
			o.Status = model.OriginalActive
			if err := s.db.WithContext(ctx).Save(o).Error; err != nil {
				stats.Errored++
				continue
			}
			stats.Fuzzied++
			continue
		}

		o := model.Original{
			ProjectID:  projectID,
			Context:    e.Context,
			Singular:   e.Singular,
			Plural:     e.Plural,
			Comment:    e.Comment,
			References: datatypes.NewJSONSlice(e.References),
			Status:     model.OriginalActive,
			DateAdded:  time.Now(),
		}
		if err := s.db.WithContext(ctx).Create(&o).Error; err != nil {
			stats.Errored++
			continue
		}
		stats.Added++
	}

	for i := range existing {
		o := &existing[i]
		if seen[o.ID] || o.Status != model.OriginalActive {
			continue
		}
		o.Status = model.OriginalObsolete
		if err := s.db.WithContext(ctx).Save(o).Error; err != nil {
			stats.Errored++
			continue
		}
		stats.Obsoleted++
	}

	return stats, nil
}
