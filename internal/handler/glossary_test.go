package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meloniq-lab/glotline/dao/model"
)

func TestCreateGlossary(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)
	seedProject(e, 5, "wordpress")
	seedSet(e, 3, 5, "fr", "fr")

	w := e.do(t, http.MethodPost, "/api/v1/glossaries", admin, map[string]any{
		"translation_set_id": 3,
		"description":        "French terms",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, float64(3), body["translation_set_id"])
	assert.Equal(t, "French terms", body["description"])

	// One glossary per set.
	w = e.do(t, http.MethodPost, "/api/v1/glossaries", admin, map[string]any{
		"translation_set_id": 3,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "glossary_already_exists", errCode(t, w))
}

func TestCreateGlossaryValidation(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)

	w := e.do(t, http.MethodPost, "/api/v1/glossaries", admin, map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "glossary_missing_parameters", errCode(t, w))

	w = e.do(t, http.MethodPost, "/api/v1/glossaries", admin, map[string]any{
		"translation_set_id": 42,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "translation_set_not_found", errCode(t, w))
}

func TestGlossaryLifecycle(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)
	seedProject(e, 5, "wordpress")
	seedSet(e, 3, 5, "fr", "fr")
	e.glossaries.items[1] = model.Glossary{Model: gormModel(1), TranslationSetID: 3}

	w := e.do(t, http.MethodGet, "/api/v1/glossaries", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Total-Count"))

	w = e.do(t, http.MethodPut, "/api/v1/glossaries/1", admin, map[string]any{
		"description": "updated",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "updated", decode[map[string]any](t, w)["description"])

	w = e.do(t, http.MethodDelete, "/api/v1/glossaries/1", admin, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = e.do(t, http.MethodGet, "/api/v1/glossaries/1", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "glossary_not_found", errCode(t, w))
}

func seedGlossaryFixture(e *env) {
	seedProject(e, 5, "wordpress")
	seedSet(e, 3, 5, "fr", "fr")
	e.glossaries.items[1] = model.Glossary{Model: gormModel(1), TranslationSetID: 3}
	e.glossaries.seq = 1
}

func TestCreateGlossaryEntry(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)
	seedGlossaryFixture(e)

	req := map[string]any{
		"term":           "post",
		"translation":    "article",
		"part_of_speech": "noun",
	}
	w := e.do(t, http.MethodPost, "/api/v1/glossaries/1/entries", admin, req)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "post", body["term"])
	assert.Equal(t, float64(1), body["last_edited_by"])

	// The full tuple is the duplicate key.
	w = e.do(t, http.MethodPost, "/api/v1/glossaries/1/entries", admin, req)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "glossary_entry_already_exists", errCode(t, w))

	// A differing comment makes it a distinct entry.
	req["comment"] = "blog context"
	w = e.do(t, http.MethodPost, "/api/v1/glossaries/1/entries", admin, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateGlossaryEntryValidation(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)
	seedGlossaryFixture(e)

	w := e.do(t, http.MethodPost, "/api/v1/glossaries/1/entries", admin, map[string]any{
		"term": "post",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_entry_data", errCode(t, w))
	assert.Empty(t, e.entries.items)

	w = e.do(t, http.MethodPost, "/api/v1/glossaries/42/entries", admin, map[string]any{
		"term": "post", "translation": "article",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "glossary_not_found", errCode(t, w))
}

func TestGlossaryEntryScoping(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)
	seedGlossaryFixture(e)
	e.glossaries.items[2] = model.Glossary{Model: gormModel(2), TranslationSetID: 4}
	e.entries.items[7] = model.GlossaryEntry{Model: gormModel(7), GlossaryID: 2, Term: "x", Translation: "y"}

	// An entry is only reachable through its own glossary.
	w := e.do(t, http.MethodGet, "/api/v1/glossaries/1/entries/7", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "glossary_entry_not_found", errCode(t, w))

	w = e.do(t, http.MethodGet, "/api/v1/glossaries/2/entries/7", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodDelete, "/api/v1/glossaries/1/entries/7", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGlossaryEntryPermissions(t *testing.T) {
	e := newEnv(t)
	user := e.addUser(t, 2, "carol", model.RoleUser)
	seedGlossaryFixture(e)

	req := map[string]any{"term": "post", "translation": "article"}
	w := e.do(t, http.MethodPost, "/api/v1/glossaries/1/entries", user, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// A validator grant on the backing set unlocks entry editing.
	e.permissions.items[1] = model.ValidatorPermission{
		Model: gormModel(1), UserID: 2, ProjectID: 5,
		LocaleSlug: "fr", SetSlug: "fr", Action: model.PermissionApprove,
	}
	w = e.do(t, http.MethodPost, "/api/v1/glossaries/1/entries", user, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdateGlossaryEntryValidation(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)
	seedGlossaryFixture(e)

	w := e.do(t, http.MethodPost, "/api/v1/glossaries/1/entries", admin, map[string]any{
		"term": "post", "translation": "article",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Updates re-run create validation: both fields stay required.
	w = e.do(t, http.MethodPut, "/api/v1/glossaries/1/entries/1", admin, map[string]any{
		"term": " ", "translation": "article",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_entry_data", errCode(t, w))

	w = e.do(t, http.MethodPut, "/api/v1/glossaries/1/entries/1", admin, map[string]any{
		"term": "post", "translation": "",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_entry_data", errCode(t, w))

	stored := e.entries.items[1]
	assert.Equal(t, "post", stored.Term)
	assert.Equal(t, "article", stored.Translation)
}
