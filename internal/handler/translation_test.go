package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meloniq-lab/glotline/dao/model"
)

func seedSet(e *env, id, projectID uint, locale, slug string) {
	e.sets.items[id] = model.TranslationSet{
		Model:     gormModel(id),
		ProjectID: projectID,
		Locale:    locale,
		Name:      slug,
		Slug:      slug,
	}
	if id > e.sets.seq {
		e.sets.seq = id
	}
}

func seedTranslationFixture(e *env) model.Original {
	seedProject(e, 5, "wordpress")
	seedSet(e, 3, 5, "fr", "fr")
	return e.originals.add(model.Original{
		ProjectID: 5,
		Singular:  "Hello",
		Status:    model.OriginalActive,
	})
}

func TestCreateTranslationWaitingByDefault(t *testing.T) {
	e := newEnv(t)
	user := e.addUser(t, 2, "carol", model.RoleUser)
	original := seedTranslationFixture(e)

	w := e.do(t, http.MethodPost, "/api/v1/translations", user, map[string]any{
		"translation_set_id": 3,
		"original_id":        original.ID,
		"translations":       []string{"Bonjour"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "waiting", body["status"])
	assert.Empty(t, body["warnings"])
}

func TestCreateTranslationCurrentForValidator(t *testing.T) {
	e := newEnv(t)
	user := e.addUser(t, 2, "carol", model.RoleUser)
	original := seedTranslationFixture(e)
	e.permissions.items[1] = model.ValidatorPermission{
		Model:      gormModel(1),
		UserID:     2,
		ProjectID:  5,
		LocaleSlug: "fr",
		SetSlug:    "fr",
		Action:     model.PermissionApprove,
	}

	w := e.do(t, http.MethodPost, "/api/v1/translations", user, map[string]any{
		"translation_set_id": 3,
		"original_id":        original.ID,
		"translations":       []string{"Bonjour"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "current", decode[map[string]any](t, w)["status"])
}

func TestCreateTranslationCurrentForAdmin(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)
	original := seedTranslationFixture(e)

	w := e.do(t, http.MethodPost, "/api/v1/translations", admin, map[string]any{
		"translation_set_id": 3,
		"original_id":        original.ID,
		"translations":       []string{"Bonjour"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "current", decode[map[string]any](t, w)["status"])
}

func TestCreateTranslationDuplicate(t *testing.T) {
	e := newEnv(t)
	user := e.addUser(t, 2, "carol", model.RoleUser)
	original := seedTranslationFixture(e)

	req := map[string]any{
		"translation_set_id": 3,
		"original_id":        original.ID,
		"translations":       []string{"Bonjour"},
	}
	w := e.do(t, http.MethodPost, "/api/v1/translations", user, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.do(t, http.MethodPost, "/api/v1/translations", user, req)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "translation_already_exists", errCode(t, w))
	assert.Len(t, e.translations.items, 1)

	// Different content for the same original is fine.
	w = e.do(t, http.MethodPost, "/api/v1/translations", user, map[string]any{
		"translation_set_id": 3,
		"original_id":        original.ID,
		"translations":       []string{"Salut"},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateTranslationValidation(t *testing.T) {
	e := newEnv(t)
	user := e.addUser(t, 2, "carol", model.RoleUser)
	original := seedTranslationFixture(e)

	w := e.do(t, http.MethodPost, "/api/v1/translations", user, map[string]any{
		"translation_set_id": 42,
		"original_id":        original.ID,
		"translations":       []string{"Bonjour"},
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "translation_set_not_found", errCode(t, w))
	assert.Empty(t, e.translations.items)

	w = e.do(t, http.MethodPost, "/api/v1/translations", user, map[string]any{
		"translation_set_id": 3,
		"original_id":        99,
		"translations":       []string{"Bonjour"},
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "original_not_found", errCode(t, w))

	w = e.do(t, http.MethodPost, "/api/v1/translations", user, map[string]any{
		"translation_set_id": 3,
		"original_id":        original.ID,
		"translations":       []string{},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_translation_data", errCode(t, w))

	// French has two plural forms; a third is rejected.
	w = e.do(t, http.MethodPost, "/api/v1/translations", user, map[string]any{
		"translation_set_id": 3,
		"original_id":        original.ID,
		"translations":       []string{"a", "b", "c"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_translation_data", errCode(t, w))
}

func TestCreateTranslationWarnings(t *testing.T) {
	e := newEnv(t)
	user := e.addUser(t, 2, "carol", model.RoleUser)
	seedProject(e, 5, "wordpress")
	seedSet(e, 3, 5, "fr", "fr")
	original := e.originals.add(model.Original{
		ProjectID: 5,
		Singular:  "Hello %s",
		Status:    model.OriginalActive,
	})

	w := e.do(t, http.MethodPost, "/api/v1/translations", user, map[string]any{
		"translation_set_id": 3,
		"original_id":        original.ID,
		"translations":       []string{"Bonjour"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode[map[string]any](t, w)
	warned, ok := body["warnings"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, warned)
	// Warnings are advisory; the translation still lands.
	assert.Len(t, e.translations.items, 1)
}

func TestDeleteTranslation(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)
	user := e.addUser(t, 2, "carol", model.RoleUser)
	original := seedTranslationFixture(e)

	w := e.do(t, http.MethodPost, "/api/v1/translations", user, map[string]any{
		"translation_set_id": 3,
		"original_id":        original.ID,
		"translations":       []string{"Bonjour"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.do(t, http.MethodDelete, "/api/v1/translations/1", user, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(t, http.MethodDelete, "/api/v1/translations/1", admin, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = e.do(t, http.MethodGet, "/api/v1/translations/1", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "translation_not_found", errCode(t, w))
}

func TestUpdateTranslationOwner(t *testing.T) {
	e := newEnv(t)
	user := e.addUser(t, 2, "carol", model.RoleUser)
	other := e.addUser(t, 3, "dave", model.RoleUser)
	original := seedTranslationFixture(e)

	w := e.do(t, http.MethodPost, "/api/v1/translations", user, map[string]any{
		"translation_set_id": 3,
		"original_id":        original.ID,
		"translations":       []string{"Bonjour"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Submitter may fix their own forms; an unrelated user may not.
	w = e.do(t, http.MethodPut, "/api/v1/translations/1", user, map[string]any{
		"translations": []string{"Salut"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, []any{"Salut"}, body["translations"])

	w = e.do(t, http.MethodPut, "/api/v1/translations/1", other, map[string]any{
		"translations": []string{"Coucou"},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateTranslationValidation(t *testing.T) {
	e := newEnv(t)
	user := e.addUser(t, 2, "carol", model.RoleUser)
	original := seedTranslationFixture(e)

	w := e.do(t, http.MethodPost, "/api/v1/translations", user, map[string]any{
		"translation_set_id": 3,
		"original_id":        original.ID,
		"translations":       []string{"Bonjour"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Updates re-run the same form validation as create.
	w = e.do(t, http.MethodPut, "/api/v1/translations/1", user, map[string]any{
		"translations": []string{},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_translation_data", errCode(t, w))

	// fr only has two plural forms.
	w = e.do(t, http.MethodPut, "/api/v1/translations/1", user, map[string]any{
		"translations": []string{"un", "deux", "trois"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_translation_data", errCode(t, w))

	stored := e.translations.items[1]
	assert.Equal(t, []string{"Bonjour"}, []string(stored.Translations))
}
