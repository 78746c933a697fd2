package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/meloniq-lab/glotline/dao/model"
	"github.com/meloniq-lab/glotline/internal/resputil"
	"github.com/meloniq-lab/glotline/internal/util"
	"github.com/meloniq-lab/glotline/pkg/authz"
	"github.com/meloniq-lab/glotline/pkg/locales"
	"github.com/meloniq-lab/glotline/pkg/logutils"
	"github.com/meloniq-lab/glotline/pkg/store"
)

//nolint:gochecknoinits // This is the standard way to register a handler.
func init() {
	Registers = append(Registers, NewTranslationSetMgr)
}

type TranslationSetMgr struct {
	name     string
	projects store.ProjectStore
	sets     store.TranslationSetStore
	gate     authz.Gate
}

func NewTranslationSetMgr(conf *RegisterConfig) Manager {
	return &TranslationSetMgr{
		name:     "translation-sets",
		projects: conf.Stores.Projects,
		sets:     conf.Stores.Sets,
		gate:     conf.Gate,
	}
}

func (mgr *TranslationSetMgr) GetName() string { return mgr.name }

func (mgr *TranslationSetMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/translation-sets", mgr.ListTranslationSets)
	g.GET("/translation-sets/:id", mgr.GetTranslationSet)
}

func (mgr *TranslationSetMgr) RegisterProtected(g *gin.RouterGroup) {
	g.POST("/translation-sets", mgr.CreateTranslationSet)
	g.PUT("/translation-sets/:id", mgr.UpdateTranslationSet)
	g.DELETE("/translation-sets/:id", mgr.DeleteTranslationSet)
}

func (mgr *TranslationSetMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type TranslationSetReq struct {
	ProjectID uint   `json:"project_id"`
	Locale    string `json:"locale"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
}

// ListTranslationSets godoc
// @Summary List the translation sets of a project
// @Produce json
// @Param project_id query int true "Project ID"
// @Router /api/v1/translation-sets [get]
func (mgr *TranslationSetMgr) ListTranslationSets(c *gin.Context) {
	projectID := queryUint(c, "project_id")
	if projectID == 0 {
		resputil.Error(c, resputil.ProjectNotFound)
		return
	}
	project, err := mgr.projects.Get(c, projectID)
	if err != nil {
		logutils.Log.WithError(err).Error("list sets: project lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if project == nil {
		resputil.Error(c, resputil.ProjectNotFound)
		return
	}

	sets, err := mgr.sets.ByProject(c, projectID)
	if err != nil {
		logutils.Log.WithError(err).Error("list sets")
		resputil.Error(c, resputil.InternalError)
		return
	}

	fields := fieldsFromQuery(c)
	setTotalCount(c, len(sets))
	resputil.Success(c, lo.Map(sets, func(s model.TranslationSet, _ int) map[string]any {
		return setSchema.Project(&s, fields)
	}))
}

// GetTranslationSet godoc
// @Summary Get a single translation set by id
// @Produce json
// @Router /api/v1/translation-sets/{id} [get]
func (mgr *TranslationSetMgr) GetTranslationSet(c *gin.Context) {
	set, err := mgr.sets.Get(c, pathID(c, "id"))
	if err != nil {
		logutils.Log.WithError(err).Error("get set")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if set == nil {
		resputil.Error(c, resputil.TranslationSetNotFound)
		return
	}
	resputil.Success(c, setSchema.Project(set, fieldsFromQuery(c)))
}

// CreateTranslationSet godoc
// @Summary Create a translation set under a project
// @Accept json
// @Produce json
// @Security Bearer
// @Router /api/v1/translation-sets [post]
func (mgr *TranslationSetMgr) CreateTranslationSet(c *gin.Context) {
	var req TranslationSetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, resputil.InvalidRequest)
		return
	}

	if req.ProjectID == 0 {
		resputil.Error(c, resputil.ProjectNotFound)
		return
	}
	project, err := mgr.projects.Get(c, req.ProjectID)
	if err != nil {
		logutils.Log.WithError(err).Error("create set: project lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if project == nil {
		resputil.Error(c, resputil.ProjectNotFound)
		return
	}

	locale := sanitize(req.Locale)
	if locales.BySlug(locale) == nil {
		resputil.Error(c, resputil.LocaleNotFound)
		return
	}

	name := sanitize(req.Name)
	slug := sanitize(req.Slug)
	if name == "" || slug == "" {
		resputil.Error(c, resputil.SetMissingParams)
		return
	}

	existing, err := mgr.sets.Find(c, req.ProjectID, locale, slug)
	if err != nil {
		logutils.Log.WithError(err).Error("create set: duplicate lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if existing != nil {
		resputil.Error(c, resputil.TranslationSetAlreadyExists)
		return
	}

	if !mgr.gate.Can(c, util.GetPrincipal(c), authz.ActionWrite, authz.ObjectProject, req.ProjectID) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	set := model.TranslationSet{
		ProjectID: req.ProjectID,
		Locale:    locale,
		Name:      name,
		Slug:      slug,
	}
	if err := mgr.sets.Create(c, &set); err != nil {
		logutils.Log.WithError(err).Error("create set")
		resputil.Error(c, resputil.TranslationSetCreationFailed)
		return
	}
	resputil.Created(c, setSchema.Project(&set, nil))
}

// UpdateTranslationSet godoc
// @Summary Update a translation set
// @Accept json
// @Produce json
// @Security Bearer
// @Router /api/v1/translation-sets/{id} [put]
func (mgr *TranslationSetMgr) UpdateTranslationSet(c *gin.Context) {
	set, err := mgr.sets.Get(c, pathID(c, "id"))
	if err != nil {
		logutils.Log.WithError(err).Error("update set: lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if set == nil {
		resputil.Error(c, resputil.TranslationSetNotFound)
		return
	}

	var req TranslationSetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, resputil.InvalidRequest)
		return
	}

	if req.ProjectID == 0 {
		resputil.Error(c, resputil.ProjectNotFound)
		return
	}
	project, err := mgr.projects.Get(c, req.ProjectID)
	if err != nil {
		logutils.Log.WithError(err).Error("update set: project lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if project == nil {
		resputil.Error(c, resputil.ProjectNotFound)
		return
	}

	locale := sanitize(req.Locale)
	if locales.BySlug(locale) == nil {
		resputil.Error(c, resputil.LocaleNotFound)
		return
	}

	name := sanitize(req.Name)
	slug := sanitize(req.Slug)
	if name == "" || slug == "" {
		resputil.Error(c, resputil.SetMissingParams)
		return
	}

	existing, err := mgr.sets.Find(c, req.ProjectID, locale, slug)
	if err != nil {
		logutils.Log.WithError(err).Error("update set: duplicate lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if existing != nil && existing.ID != set.ID {
		resputil.Error(c, resputil.TranslationSetAlreadyExists)
		return
	}

	if !mgr.gate.Can(c, util.GetPrincipal(c), authz.ActionWrite, authz.ObjectProject, req.ProjectID) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	set.ProjectID = req.ProjectID
	set.Locale = locale
	set.Name = name
	set.Slug = slug
	if err := mgr.sets.Update(c, set); err != nil {
		logutils.Log.WithError(err).Error("update set")
		resputil.Error(c, resputil.TranslationSetUpdateFailed)
		return
	}
	resputil.Success(c, setSchema.Project(set, nil))
}

// DeleteTranslationSet godoc
// @Summary Delete a translation set
// @Security Bearer
// @Router /api/v1/translation-sets/{id} [delete]
func (mgr *TranslationSetMgr) DeleteTranslationSet(c *gin.Context) {
	set, err := mgr.sets.Get(c, pathID(c, "id"))
	if err != nil {
		logutils.Log.WithError(err).Error("delete set: lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if set == nil {
		resputil.Error(c, resputil.TranslationSetNotFound)
		return
	}

	if !mgr.gate.Can(c, util.GetPrincipal(c), authz.ActionDelete, authz.ObjectProject, set.ProjectID) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	if err := mgr.sets.Delete(c, set.ID); err != nil {
		logutils.Log.WithError(err).Error("delete set")
		resputil.Error(c, resputil.TranslationSetDeletionFailed)
		return
	}
	resputil.NoContent(c)
}
