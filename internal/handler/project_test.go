package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meloniq-lab/glotline/dao/model"
)

func TestCreateProject(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)

	w := e.do(t, http.MethodPost, "/api/v1/projects", admin, map[string]any{
		"name": "WordPress",
		"slug": "wordpress",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "WordPress", body["name"])
	assert.Equal(t, "wordpress", body["slug"])
	assert.Equal(t, true, body["active"])
	assert.NotZero(t, body["id"])

	// Identical slug under the same parent is a conflict.
	w = e.do(t, http.MethodPost, "/api/v1/projects", admin, map[string]any{
		"name": "Other",
		"slug": "wordpress",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "project_already_exists", errCode(t, w))
}

func TestCreateProjectValidation(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)

	// Missing slug fails before anything is persisted.
	w := e.do(t, http.MethodPost, "/api/v1/projects", admin, map[string]any{"name": "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "project_missing_parameters", errCode(t, w))
	assert.Empty(t, e.projects.items)

	// Unknown parent is a 404, not a create.
	w = e.do(t, http.MethodPost, "/api/v1/projects", admin, map[string]any{
		"name": "x", "slug": "x", "parent_project_id": 99,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "project_not_found", errCode(t, w))
	assert.Empty(t, e.projects.items)
}

func TestCreateProjectAuth(t *testing.T) {
	e := newEnv(t)
	user := e.addUser(t, 2, "carol", model.RoleUser)

	w := e.do(t, http.MethodPost, "/api/v1/projects", "", map[string]any{"name": "x", "slug": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(t, http.MethodPost, "/api/v1/projects", user, map[string]any{"name": "x", "slug": "x"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, e.projects.items)
}

func TestListProjects(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)

	w := e.do(t, http.MethodGet, "/api/v1/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-Total-Count"))
	assert.Empty(t, decode[[]map[string]any](t, w))

	w = e.do(t, http.MethodPost, "/api/v1/projects", admin, map[string]any{"name": "Root", "slug": "root"})
	require.Equal(t, http.StatusCreated, w.Code)
	rootID := decode[map[string]any](t, w)["id"].(float64)

	w = e.do(t, http.MethodPost, "/api/v1/projects", admin, map[string]any{
		"name": "Child", "slug": "child", "parent_project_id": rootID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.do(t, http.MethodGet, "/api/v1/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-Total-Count"))

	w = e.do(t, http.MethodGet, "/api/v1/projects?parent_project_id=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode[[]map[string]any](t, w)
	require.Len(t, items, 1)
	assert.Equal(t, "child", items[0]["slug"])

	w = e.do(t, http.MethodGet, "/api/v1/projects?parent_project_id=42", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "project_not_found", errCode(t, w))
}

func TestGetProjectFieldSelection(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)

	w := e.do(t, http.MethodPost, "/api/v1/projects", admin, map[string]any{"name": "Root", "slug": "root"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.do(t, http.MethodGet, "/api/v1/projects/1?fields=id,slug", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Len(t, body, 2)
	assert.Equal(t, "root", body["slug"])

	// Unknown field names are ignored, not an error.
	w = e.do(t, http.MethodGet, "/api/v1/projects/1?fields=slug,bogus", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[map[string]any](t, w), 1)
}

func TestDeleteProject(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)

	w := e.do(t, http.MethodPost, "/api/v1/projects", admin, map[string]any{"name": "Root", "slug": "root"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.do(t, http.MethodDelete, "/api/v1/projects/1", admin, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = e.do(t, http.MethodGet, "/api/v1/projects/1", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "project_not_found", errCode(t, w))

	w = e.do(t, http.MethodDelete, "/api/v1/projects/1", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProject(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)

	w := e.do(t, http.MethodPost, "/api/v1/projects", admin, map[string]any{"name": "Root", "slug": "root"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.do(t, http.MethodPut, "/api/v1/projects/1", admin, map[string]any{
		"name": "Renamed", "slug": "renamed", "active": false,
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "Renamed", body["name"])
	assert.Equal(t, false, body["active"])

	w = e.do(t, http.MethodPut, "/api/v1/projects/99", admin, map[string]any{"name": "x", "slug": "x"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectStoreFailure(t *testing.T) {
	e := newEnv(t)
	e.projects.fail = true

	w := e.do(t, http.MethodGet, "/api/v1/projects", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal_error", errCode(t, w))
}

func TestUpdateProjectValidation(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)

	w := e.do(t, http.MethodPost, "/api/v1/projects", admin, map[string]any{"name": "Root", "slug": "root"})
	require.Equal(t, http.StatusCreated, w.Code)

	// A blank required field fails exactly as it would on create, and the
	// stored row keeps its previous values.
	w = e.do(t, http.MethodPut, "/api/v1/projects/1", admin, map[string]any{"name": " ", "slug": "root"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "project_missing_parameters", errCode(t, w))
	assert.Equal(t, "Root", e.projects.items[1].Name)

	w = e.do(t, http.MethodPut, "/api/v1/projects/1", admin, map[string]any{
		"name": "Root", "slug": "root", "parent_project_id": 99,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "project_not_found", errCode(t, w))
	assert.Nil(t, e.projects.items[1].ParentProjectID)
}

func TestUpdateProjectReparentCycle(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)

	w := e.do(t, http.MethodPost, "/api/v1/projects", admin, map[string]any{"name": "Root", "slug": "root"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = e.do(t, http.MethodPost, "/api/v1/projects", admin, map[string]any{
		"name": "Child", "slug": "child", "parent_project_id": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = e.do(t, http.MethodPost, "/api/v1/projects", admin, map[string]any{
		"name": "Grandchild", "slug": "grandchild", "parent_project_id": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// A project cannot become its own parent.
	w = e.do(t, http.MethodPut, "/api/v1/projects/1", admin, map[string]any{
		"name": "Root", "slug": "root", "parent_project_id": 1,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", errCode(t, w))

	// Nor the child of one of its own descendants.
	w = e.do(t, http.MethodPut, "/api/v1/projects/1", admin, map[string]any{
		"name": "Root", "slug": "root", "parent_project_id": 3,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", errCode(t, w))
	assert.Nil(t, e.projects.items[1].ParentProjectID)
}
