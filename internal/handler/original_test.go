package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meloniq-lab/glotline/dao/model"
)

func TestListOriginals(t *testing.T) {
	e := newEnv(t)
	seedProject(e, 5, "wordpress")
	e.originals.add(model.Original{ProjectID: 5, Singular: "Hello", Status: model.OriginalActive})
	e.originals.add(model.Original{ProjectID: 5, Singular: "Bye", Status: model.OriginalObsolete})
	e.originals.add(model.Original{ProjectID: 6, Singular: "Other", Status: model.OriginalActive})

	w := e.do(t, http.MethodGet, "/api/v1/originals?project_id=5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode[[]map[string]any](t, w)
	require.Len(t, items, 1)
	assert.Equal(t, "Hello", items[0]["singular"])

	// Invalid sort parameters fall back to the defaults instead of erroring.
	w = e.do(t, http.MethodGet, "/api/v1/originals?project_id=5&sort_by=bogus&sort_order=sideways", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodGet, "/api/v1/originals?project_id=42", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "project_not_found", errCode(t, w))
}

func TestGetOriginal(t *testing.T) {
	e := newEnv(t)
	seedProject(e, 5, "wordpress")
	o := e.originals.add(model.Original{ProjectID: 5, Singular: "Hello", Status: model.OriginalActive})

	w := e.do(t, http.MethodGet, "/api/v1/originals/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, o.Singular, decode[map[string]any](t, w)["singular"])

	w = e.do(t, http.MethodGet, "/api/v1/originals/99", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "original_not_found", errCode(t, w))
}

func TestDeleteOriginal(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)
	user := e.addUser(t, 2, "carol", model.RoleUser)
	seedProject(e, 5, "wordpress")
	e.originals.add(model.Original{ProjectID: 5, Singular: "Hello", Status: model.OriginalActive})

	w := e.do(t, http.MethodDelete, "/api/v1/originals/1", user, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(t, http.MethodDelete, "/api/v1/originals/1", admin, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = e.do(t, http.MethodGet, "/api/v1/originals/1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestImportOriginals(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)
	seedProject(e, 5, "wordpress")

	content := []byte(`{"greeting": "Hello", "farewell": "Goodbye"}`)
	w := e.upload(t, "/api/v1/originals/import", admin,
		map[string]string{"project_id": "5", "format": "json"}, "strings.json", content)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, float64(2), body["added"])
	assert.Equal(t, float64(0), body["errored"])
	assert.Len(t, e.originals.items, 2)
}

func TestImportOriginalsAutoFormat(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)
	seedProject(e, 5, "wordpress")

	content := []byte("greeting=Hello\nfarewell=Goodbye\n")
	w := e.upload(t, "/api/v1/originals/import", admin,
		map[string]string{"project_id": "5", "format": "auto"}, "app.properties", content)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decode[map[string]any](t, w)["added"])
}

func TestImportOriginalsRejections(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)
	user := e.addUser(t, 2, "carol", model.RoleUser)
	seedProject(e, 5, "wordpress")
	content := []byte(`{"a": "b"}`)

	w := e.upload(t, "/api/v1/originals/import", admin,
		map[string]string{"project_id": "42", "format": "json"}, "s.json", content)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "project_not_found", errCode(t, w))

	w = e.upload(t, "/api/v1/originals/import", admin,
		map[string]string{"project_id": "5", "format": "xliff"}, "s.json", content)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "import_invalid_format", errCode(t, w))

	// An allow-listed format without a registered parser is rejected too.
	w = e.upload(t, "/api/v1/originals/import", admin,
		map[string]string{"project_id": "5", "format": "po"}, "s.po", content)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "import_format_not_supported", errCode(t, w))

	w = e.upload(t, "/api/v1/originals/import", admin,
		map[string]string{"project_id": "5", "format": "json"}, "s.json", []byte("{broken"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "import_parse_failed", errCode(t, w))

	w = e.upload(t, "/api/v1/originals/import", user,
		map[string]string{"project_id": "5", "format": "json"}, "s.json", content)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, e.originals.items)
}

func TestImportOriginalsMissingFile(t *testing.T) {
	e := newEnv(t)
	admin := e.addUser(t, 1, "admin", model.RoleAdmin)
	seedProject(e, 5, "wordpress")

	w := e.do(t, http.MethodPost, "/api/v1/originals/import?project_id=5", admin, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "import_missing_file", errCode(t, w))
}
