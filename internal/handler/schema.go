package handler

import (
	"github.com/meloniq-lab/glotline/dao/model"
	"github.com/meloniq-lab/glotline/pkg/locales"
	"github.com/meloniq-lab/glotline/pkg/schema"
)

// Field descriptor tables for every resource served by this API. The
// controllers shape all single-item and collection responses through these,
// which is what makes the "fields" query parameter work uniformly.
var (
	projectSchema = schema.New("project",
		schema.Field{Name: "id", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.Project).ID }},
		schema.Field{Name: "name", Access: schema.ReadWrite, RequiredOnCreate: true, Get: func(e any) any { return e.(*model.Project).Name }},
		schema.Field{Name: "slug", Access: schema.ReadWrite, RequiredOnCreate: true, Get: func(e any) any { return e.(*model.Project).Slug }},
		schema.Field{Name: "description", Access: schema.ReadWrite, Get: func(e any) any { return e.(*model.Project).Description }},
		schema.Field{Name: "source_url_template", Access: schema.ReadWrite, Get: func(e any) any { return e.(*model.Project).SourceURLTemplate }},
		schema.Field{Name: "parent_project_id", Access: schema.ReadWrite, Get: func(e any) any { return e.(*model.Project).ParentProjectID }},
		schema.Field{Name: "active", Access: schema.ReadWrite, Get: func(e any) any { return e.(*model.Project).Active }},
	)

	setSchema = schema.New("translation_set",
		schema.Field{Name: "id", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.TranslationSet).ID }},
		schema.Field{Name: "project_id", Access: schema.ReadWrite, RequiredOnCreate: true, Get: func(e any) any { return e.(*model.TranslationSet).ProjectID }},
		schema.Field{Name: "locale", Access: schema.ReadWrite, RequiredOnCreate: true, Get: func(e any) any { return e.(*model.TranslationSet).Locale }},
		schema.Field{Name: "name", Access: schema.ReadWrite, RequiredOnCreate: true, Get: func(e any) any { return e.(*model.TranslationSet).Name }},
		schema.Field{Name: "slug", Access: schema.ReadWrite, RequiredOnCreate: true, Get: func(e any) any { return e.(*model.TranslationSet).Slug }},
	)

	originalSchema = schema.New("original",
		schema.Field{Name: "id", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.Original).ID }},
		schema.Field{Name: "project_id", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.Original).ProjectID }},
		schema.Field{Name: "context", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.Original).Context }},
		schema.Field{Name: "singular", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.Original).Singular }},
		schema.Field{Name: "plural", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.Original).Plural }},
		schema.Field{Name: "comment", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.Original).Comment }},
		schema.Field{Name: "references", Access: schema.ReadOnly, Get: func(e any) any { return []string(e.(*model.Original).References) }},
		schema.Field{Name: "status", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.Original).Status }},
		schema.Field{Name: "priority", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.Original).Priority }},
		schema.Field{Name: "date_added", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.Original).DateAdded }},
	)

	translationSchema = schema.New("translation",
		schema.Field{Name: "id", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.Translation).ID }},
		schema.Field{Name: "translation_set_id", Access: schema.ReadWrite, RequiredOnCreate: true, Get: func(e any) any { return e.(*model.Translation).TranslationSetID }},
		schema.Field{Name: "original_id", Access: schema.ReadWrite, RequiredOnCreate: true, Get: func(e any) any { return e.(*model.Translation).OriginalID }},
		schema.Field{Name: "translations", Access: schema.ReadWrite, RequiredOnCreate: true, Get: func(e any) any { return []string(e.(*model.Translation).Translations) }},
		schema.Field{Name: "status", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.Translation).Status }},
		schema.Field{Name: "warnings", Access: schema.ReadOnly, Get: func(e any) any { return []string(e.(*model.Translation).Warnings) }},
	)

	glossarySchema = schema.New("glossary",
		schema.Field{Name: "id", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.Glossary).ID }},
		schema.Field{Name: "translation_set_id", Access: schema.ReadWrite, RequiredOnCreate: true, Get: func(e any) any { return e.(*model.Glossary).TranslationSetID }},
		schema.Field{Name: "description", Access: schema.ReadWrite, Get: func(e any) any { return e.(*model.Glossary).Description }},
	)

	entrySchema = schema.New("glossary_entry",
		schema.Field{Name: "id", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.GlossaryEntry).ID }},
		schema.Field{Name: "glossary_id", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.GlossaryEntry).GlossaryID }},
		schema.Field{Name: "term", Access: schema.ReadWrite, RequiredOnCreate: true, Get: func(e any) any { return e.(*model.GlossaryEntry).Term }},
		schema.Field{Name: "translation", Access: schema.ReadWrite, RequiredOnCreate: true, Get: func(e any) any { return e.(*model.GlossaryEntry).Translation }},
		schema.Field{Name: "part_of_speech", Access: schema.ReadWrite, Get: func(e any) any { return e.(*model.GlossaryEntry).PartOfSpeech }},
		schema.Field{Name: "comment", Access: schema.ReadWrite, Get: func(e any) any { return e.(*model.GlossaryEntry).Comment }},
		schema.Field{Name: "last_edited_by", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.GlossaryEntry).LastEditedBy }},
	)

	permissionSchema = schema.New("project_permission",
		schema.Field{Name: "id", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.ValidatorPermission).ID }},
		schema.Field{Name: "user_id", Access: schema.ReadWrite, RequiredOnCreate: true, Get: func(e any) any { return e.(*model.ValidatorPermission).UserID }},
		schema.Field{Name: "project_id", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.ValidatorPermission).ProjectID }},
		schema.Field{Name: "action", Access: schema.ReadOnly, Get: func(e any) any { return e.(*model.ValidatorPermission).Action }},
		schema.Field{Name: "locale_slug", Access: schema.ReadWrite, RequiredOnCreate: true, Get: func(e any) any { return e.(*model.ValidatorPermission).LocaleSlug }},
		schema.Field{Name: "set_slug", Access: schema.ReadWrite, RequiredOnCreate: true, Get: func(e any) any { return e.(*model.ValidatorPermission).SetSlug }},
	)

	languageSchema = schema.New("language",
		schema.Field{Name: "english_name", Access: schema.ReadOnly, Get: func(e any) any { return e.(*locales.Locale).EnglishName }},
		schema.Field{Name: "native_name", Access: schema.ReadOnly, Get: func(e any) any { return e.(*locales.Locale).NativeName }},
		schema.Field{Name: "code", Access: schema.ReadOnly, Get: func(e any) any { return e.(*locales.Locale).Code }},
		schema.Field{Name: "nplurals", Access: schema.ReadOnly, Get: func(e any) any { return e.(*locales.Locale).NPlurals }},
	)
)
