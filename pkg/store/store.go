// Package store defines the narrow interfaces the API layer uses to talk to
// the translation data store. The API holds no lifecycle authority of its
// own; it only issues these calls and reflects their outcome.
//
// Convention: lookup methods return (nil, nil) when the requested object
// does not exist. A non-nil error always means a store-level failure, never
// absence.
package store

import (
	"context"

	"github.com/meloniq-lab/glotline/dao/model"
)

// Sort is the validated ordering request applied to list queries.
type Sort struct {
	By    string
	Order string
}

// IncomingOriginal is one original string arriving through bulk import.
type IncomingOriginal struct {
	Context    string
	Singular   string
	Plural     *string
	Comment    string
	References []string
}

// ImportStats are the counters reported after a bulk import.
type ImportStats struct {
	Added     int `json:"added"`
	Existing  int `json:"existing"`
	Fuzzied   int `json:"fuzzied"`
	Obsoleted int `json:"obsoleted"`
	Errored   int `json:"errored"`
}

type ProjectStore interface {
	Get(ctx context.Context, id uint) (*model.Project, error)
	// List returns projects under the given parent; a nil parent lists all
	// projects.
	List(ctx context.Context, parentID *uint) ([]model.Project, error)
	// BySlug finds a sibling project by slug under the given parent.
	BySlug(ctx context.Context, parentID *uint, slug string) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id uint) error
}

type TranslationSetStore interface {
	Get(ctx context.Context, id uint) (*model.TranslationSet, error)
	ByProject(ctx context.Context, projectID uint) ([]model.TranslationSet, error)
	Find(ctx context.Context, projectID uint, locale, slug string) (*model.TranslationSet, error)
	// DistinctLocales returns the locale codes that have at least one
	// translation set.
	DistinctLocales(ctx context.Context) ([]string, error)
	// RecentForUser returns the sets the user most recently submitted
	// translations to.
	RecentForUser(ctx context.Context, userID uint, limit int) ([]model.TranslationSet, error)
	Create(ctx context.Context, s *model.TranslationSet) error
	Update(ctx context.Context, s *model.TranslationSet) error
	Delete(ctx context.Context, id uint) error
}

type OriginalStore interface {
	Get(ctx context.Context, id uint) (*model.Original, error)
	ByProject(ctx context.Context, projectID uint, sort Sort) ([]model.Original, error)
	Delete(ctx context.Context, id uint) error
	// Import reconciles the incoming entries against the project's active
	// originals and reports the outcome counters.
	Import(ctx context.Context, projectID uint, entries []IncomingOriginal) (ImportStats, error)
}

type TranslationStore interface {
	Get(ctx context.Context, id uint) (*model.Translation, error)
	// CurrentOrWaiting returns the current and waiting translations of an
	// original within a set, used for the duplicate-submission check.
	CurrentOrWaiting(ctx context.Context, setID, originalID uint) ([]model.Translation, error)
	Create(ctx context.Context, t *model.Translation) error
	Update(ctx context.Context, t *model.Translation) error
	Delete(ctx context.Context, id uint) error
}

type GlossaryStore interface {
	Get(ctx context.Context, id uint) (*model.Glossary, error)
	List(ctx context.Context) ([]model.Glossary, error)
	BySet(ctx context.Context, setID uint) (*model.Glossary, error)
	Create(ctx context.Context, g *model.Glossary) error
	Update(ctx context.Context, g *model.Glossary) error
	Delete(ctx context.Context, id uint) error
}

type GlossaryEntryStore interface {
	Get(ctx context.Context, id uint) (*model.GlossaryEntry, error)
	ByGlossary(ctx context.Context, glossaryID uint) ([]model.GlossaryEntry, error)
	// FindDuplicate matches on the full (glossary, term, translation,
	// part_of_speech, comment) tuple.
	FindDuplicate(ctx context.Context, e *model.GlossaryEntry) (*model.GlossaryEntry, error)
	Create(ctx context.Context, e *model.GlossaryEntry) error
	Update(ctx context.Context, e *model.GlossaryEntry) error
	Delete(ctx context.Context, id uint) error
}

type PermissionStore interface {
	Get(ctx context.Context, id uint) (*model.ValidatorPermission, error)
	ByProject(ctx context.Context, projectID uint) ([]model.ValidatorPermission, error)
	ByUser(ctx context.Context, userID uint) ([]model.ValidatorPermission, error)
	Find(ctx context.Context, userID, projectID uint, localeSlug, setSlug string) (*model.ValidatorPermission, error)
	Create(ctx context.Context, p *model.ValidatorPermission) error
	Delete(ctx context.Context, id uint) error
}

type UserStore interface {
	Get(ctx context.Context, id uint) (*model.User, error)
	ByLogin(ctx context.Context, login string) (*model.User, error)
}

// Stores bundles every store interface for injection into the handlers.
type Stores struct {
	Projects     ProjectStore
	Sets         TranslationSetStore
	Originals    OriginalStore
	Translations TranslationStore
	Glossaries   GlossaryStore
	Entries      GlossaryEntryStore
	Permissions  PermissionStore
	Users        UserStore
}
