package handler

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/meloniq-lab/glotline/dao/model"
	"github.com/meloniq-lab/glotline/internal/payload"
	"github.com/meloniq-lab/glotline/internal/resputil"
	"github.com/meloniq-lab/glotline/internal/util"
	"github.com/meloniq-lab/glotline/pkg/authz"
	"github.com/meloniq-lab/glotline/pkg/format"
	"github.com/meloniq-lab/glotline/pkg/logutils"
	"github.com/meloniq-lab/glotline/pkg/store"
)

//nolint:gochecknoinits // This is the standard way to register a handler.
func init() {
	Registers = append(Registers, NewOriginalMgr)
}

type OriginalMgr struct {
	name      string
	projects  store.ProjectStore
	originals store.OriginalStore
	gate      authz.Gate
	formats   *format.Registry
	uploadDir string
}

func NewOriginalMgr(conf *RegisterConfig) Manager {
	return &OriginalMgr{
		name:      "originals",
		projects:  conf.Stores.Projects,
		originals: conf.Stores.Originals,
		gate:      conf.Gate,
		formats:   conf.Formats,
		uploadDir: conf.UploadDir,
	}
}

func (mgr *OriginalMgr) GetName() string { return mgr.name }

func (mgr *OriginalMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/originals", mgr.ListOriginals)
	g.GET("/originals/:id", mgr.GetOriginal)
}

func (mgr *OriginalMgr) RegisterProtected(g *gin.RouterGroup) {
	g.POST("/originals/import", mgr.ImportOriginals)
	g.DELETE("/originals/:id", mgr.DeleteOriginal)
}

func (mgr *OriginalMgr) RegisterAdmin(_ *gin.RouterGroup) {}

// ListOriginals godoc
// @Summary List the active originals of a project
// @Produce json
// @Param project_id query int true "Project ID"
// @Param sort_by query string false "Sort key"
// @Param sort_order query string false "asc or desc"
// @Router /api/v1/originals [get]
func (mgr *OriginalMgr) ListOriginals(c *gin.Context) {
	projectID := queryUint(c, "project_id")
	if projectID == 0 {
		resputil.Error(c, resputil.ProjectNotFound)
		return
	}
	project, err := mgr.projects.Get(c, projectID)
	if err != nil {
		logutils.Log.WithError(err).Error("list originals: project lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if project == nil {
		resputil.Error(c, resputil.ProjectNotFound)
		return
	}

	originals, err := mgr.originals.ByProject(c, projectID, sortFromQuery(c))
	if err != nil {
		logutils.Log.WithError(err).Error("list originals")
		resputil.Error(c, resputil.InternalError)
		return
	}

	fields := fieldsFromQuery(c)
	setTotalCount(c, len(originals))
	resputil.Success(c, lo.Map(originals, func(o model.Original, _ int) map[string]any {
		return originalSchema.Project(&o, fields)
	}))
}

// GetOriginal godoc
// @Summary Get a single original by id
// @Produce json
// @Router /api/v1/originals/{id} [get]
func (mgr *OriginalMgr) GetOriginal(c *gin.Context) {
	original, err := mgr.originals.Get(c, pathID(c, "id"))
	if err != nil {
		logutils.Log.WithError(err).Error("get original")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if original == nil {
		resputil.Error(c, resputil.OriginalNotFound)
		return
	}
	resputil.Success(c, originalSchema.Project(original, fieldsFromQuery(c)))
}

// ImportOriginals godoc
// @Summary Bulk import originals from an uploaded file
// @Accept multipart/form-data
// @Produce json
// @Param project_id formData int true "Project ID"
// @Param format formData string true "Format discriminator, or auto"
// @Param file formData file true "Import file"
// @Security Bearer
// @Router /api/v1/originals/import [post]
func (mgr *OriginalMgr) ImportOriginals(c *gin.Context) {
	projectID := queryUint(c, "project_id")
	if projectID == 0 {
		if v, err := strconv.ParseUint(c.PostForm("project_id"), 10, 32); err == nil {
			projectID = uint(v)
		}
	}
	if projectID == 0 {
		resputil.Error(c, resputil.ProjectNotFound)
		return
	}
	project, err := mgr.projects.Get(c, projectID)
	if err != nil {
		logutils.Log.WithError(err).Error("import originals: project lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if project == nil {
		resputil.Error(c, resputil.ProjectNotFound)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		resputil.Error(c, resputil.ImportMissingFile)
		return
	}

	name := strings.ToLower(strings.TrimSpace(c.PostForm("format")))
	if name == "" {
		name = "auto"
	}
	if !format.Known(name) {
		resputil.Error(c, resputil.ImportInvalidFormat)
		return
	}

	var parser format.Parser
	var ok bool
	if name == "auto" {
		ext := strings.TrimPrefix(filepath.Ext(file.Filename), ".")
		parser, ok = mgr.formats.ByExtension(strings.ToLower(ext))
	} else {
		parser, ok = mgr.formats.Get(name)
	}
	if !ok {
		resputil.Error(c, resputil.ImportFormatUnsupported)
		return
	}

	if !mgr.gate.Can(c, util.GetPrincipal(c), authz.ActionWrite, authz.ObjectProject, projectID) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	dst := filepath.Join(mgr.uploadDir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		logutils.Log.WithError(err).Error("import originals: save upload")
		resputil.Error(c, resputil.ImportFileFailed)
		return
	}
	defer os.Remove(dst)

	entries, err := parser.Read(dst)
	if err != nil {
		logutils.Log.WithError(err).Warn("import originals: parse")
		resputil.Error(c, resputil.ImportParseFailed)
		return
	}

	incoming := lo.Map(entries, func(e format.Entry, _ int) store.IncomingOriginal {
		return store.IncomingOriginal{
			Context:    e.Context,
			Singular:   e.Singular,
			Plural:     e.Plural,
			Comment:    e.Comment,
			References: e.References,
		}
	})
	stats, err := mgr.originals.Import(c, projectID, incoming)
	if err != nil {
		logutils.Log.WithError(err).Error("import originals")
		resputil.Error(c, resputil.ImportFailed)
		return
	}
	resputil.Success(c, payload.ImportResp{
		Added:     stats.Added,
		Existing:  stats.Existing,
		Fuzzied:   stats.Fuzzied,
		Obsoleted: stats.Obsoleted,
		Errored:   stats.Errored,
	})
}

// DeleteOriginal godoc
// @Summary Delete an original
// @Security Bearer
// @Router /api/v1/originals/{id} [delete]
func (mgr *OriginalMgr) DeleteOriginal(c *gin.Context) {
	original, err := mgr.originals.Get(c, pathID(c, "id"))
	if err != nil {
		logutils.Log.WithError(err).Error("delete original: lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if original == nil {
		resputil.Error(c, resputil.OriginalNotFound)
		return
	}

	if !mgr.gate.Can(c, util.GetPrincipal(c), authz.ActionDelete, authz.ObjectProject, original.ProjectID) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	if err := mgr.originals.Delete(c, original.ID); err != nil {
		logutils.Log.WithError(err).Error("delete original")
		resputil.Error(c, resputil.OriginalDeletionFailed)
		return
	}
	resputil.NoContent(c)
}
