package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meloniq-lab/glotline/dao/model"
)

func TestGetProfile(t *testing.T) {
	e := newEnv(t)
	e.addUser(t, 2, "carol", model.RoleUser)
	seedProject(e, 5, "wordpress")
	seedSet(e, 3, 5, "fr", "fr")
	e.sets.recent[2] = []model.TranslationSet{e.sets.items[3]}
	e.permissions.items[1] = model.ValidatorPermission{
		Model: gormModel(1), UserID: 2, ProjectID: 5,
		LocaleSlug: "fr", SetSlug: "fr", Action: model.PermissionApprove,
	}

	w := e.do(t, http.MethodGet, "/api/v1/profile/2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, float64(2), body["user_id"])

	recent, ok := body["recent_projects"].([]any)
	require.True(t, ok)
	require.Len(t, recent, 1)
	first := recent[0].(map[string]any)
	assert.Equal(t, "wordpress", first["project_name"])
	assert.Equal(t, "fr", first["locale"])

	assert.Equal(t, []any{"fr"}, body["locales"])

	grants, ok := body["permissions"].([]any)
	require.True(t, ok)
	require.Len(t, grants, 1)
}

func TestGetProfileNotFound(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/api/v1/profile/42", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "user_not_found", errCode(t, w))
}

func TestGetProfileDegradesGracefully(t *testing.T) {
	e := newEnv(t)
	e.addUser(t, 2, "carol", model.RoleUser)
	e.sets.failRec = true
	e.permissions.fail = true

	// Failed sub-lookups become empty lists, never a failed request.
	w := e.do(t, http.MethodGet, "/api/v1/profile/2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, []any{}, body["recent_projects"])
	assert.Equal(t, []any{}, body["locales"])
	assert.Equal(t, []any{}, body["permissions"])
}

func TestGetOwnProfile(t *testing.T) {
	e := newEnv(t)
	token := e.addUser(t, 2, "carol", model.RoleUser)

	w := e.do(t, http.MethodGet, "/api/v1/profile/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(t, http.MethodGet, "/api/v1/profile/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decode[map[string]any](t, w)["user_id"])
}
