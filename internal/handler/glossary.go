package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/meloniq-lab/glotline/dao/model"
	"github.com/meloniq-lab/glotline/internal/resputil"
	"github.com/meloniq-lab/glotline/internal/util"
	"github.com/meloniq-lab/glotline/pkg/authz"
	"github.com/meloniq-lab/glotline/pkg/logutils"
	"github.com/meloniq-lab/glotline/pkg/store"
)

//nolint:gochecknoinits // This is the standard way to register a handler.
func init() {
	Registers = append(Registers, NewGlossaryMgr)
}

type GlossaryMgr struct {
	name       string
	sets       store.TranslationSetStore
	glossaries store.GlossaryStore
	gate       authz.Gate
}

func NewGlossaryMgr(conf *RegisterConfig) Manager {
	return &GlossaryMgr{
		name:       "glossaries",
		sets:       conf.Stores.Sets,
		glossaries: conf.Stores.Glossaries,
		gate:       conf.Gate,
	}
}

func (mgr *GlossaryMgr) GetName() string { return mgr.name }

func (mgr *GlossaryMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/glossaries", mgr.ListGlossaries)
	g.GET("/glossaries/:id", mgr.GetGlossary)
}

func (mgr *GlossaryMgr) RegisterProtected(g *gin.RouterGroup) {
	g.POST("/glossaries", mgr.CreateGlossary)
	g.PUT("/glossaries/:id", mgr.UpdateGlossary)
	g.DELETE("/glossaries/:id", mgr.DeleteGlossary)
}

func (mgr *GlossaryMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type GlossaryReq struct {
	TranslationSetID uint   `json:"translation_set_id"`
	Description      string `json:"description"`
}

// ListGlossaries godoc
// @Summary List glossaries
// @Produce json
// @Router /api/v1/glossaries [get]
func (mgr *GlossaryMgr) ListGlossaries(c *gin.Context) {
	glossaries, err := mgr.glossaries.List(c)
	if err != nil {
		logutils.Log.WithError(err).Error("list glossaries")
		resputil.Error(c, resputil.InternalError)
		return
	}
	fields := fieldsFromQuery(c)
	setTotalCount(c, len(glossaries))
	resputil.Success(c, lo.Map(glossaries, func(g model.Glossary, _ int) map[string]any {
		return glossarySchema.Project(&g, fields)
	}))
}

// GetGlossary godoc
// @Summary Get a single glossary by id
// @Produce json
// @Router /api/v1/glossaries/{id} [get]
func (mgr *GlossaryMgr) GetGlossary(c *gin.Context) {
	glossary, err := mgr.glossaries.Get(c, pathID(c, "id"))
	if err != nil {
		logutils.Log.WithError(err).Error("get glossary")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if glossary == nil {
		resputil.Error(c, resputil.GlossaryNotFound)
		return
	}
	resputil.Success(c, glossarySchema.Project(glossary, fieldsFromQuery(c)))
}

// CreateGlossary godoc
// @Summary Create a glossary for a translation set
// @Accept json
// @Produce json
// @Security Bearer
// @Router /api/v1/glossaries [post]
func (mgr *GlossaryMgr) CreateGlossary(c *gin.Context) {
	var req GlossaryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, resputil.InvalidRequest)
		return
	}

	if req.TranslationSetID == 0 {
		resputil.Error(c, resputil.GlossaryMissingParams)
		return
	}
	set, err := mgr.sets.Get(c, req.TranslationSetID)
	if err != nil {
		logutils.Log.WithError(err).Error("create glossary: set lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if set == nil {
		resputil.Error(c, resputil.TranslationSetNotFound)
		return
	}

	existing, err := mgr.glossaries.BySet(c, set.ID)
	if err != nil {
		logutils.Log.WithError(err).Error("create glossary: duplicate lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if existing != nil {
		resputil.Error(c, resputil.GlossaryAlreadyExists)
		return
	}

	principal := util.GetPrincipal(c)
	if !mgr.gate.Can(c, principal, authz.ActionApprove, authz.ObjectTranslationSet, set.ID) &&
		!mgr.gate.Can(c, principal, authz.ActionWrite, authz.ObjectProject, set.ProjectID) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	glossary := model.Glossary{
		TranslationSetID: set.ID,
		Description:      sanitize(req.Description),
	}
	if err := mgr.glossaries.Create(c, &glossary); err != nil {
		logutils.Log.WithError(err).Error("create glossary")
		resputil.Error(c, resputil.GlossaryCreationFailed)
		return
	}
	resputil.Created(c, glossarySchema.Project(&glossary, nil))
}

// UpdateGlossary godoc
// @Summary Update a glossary's description
// @Accept json
// @Produce json
// @Security Bearer
// @Router /api/v1/glossaries/{id} [put]
func (mgr *GlossaryMgr) UpdateGlossary(c *gin.Context) {
	glossary, err := mgr.glossaries.Get(c, pathID(c, "id"))
	if err != nil {
		logutils.Log.WithError(err).Error("update glossary: lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if glossary == nil {
		resputil.Error(c, resputil.GlossaryNotFound)
		return
	}

	var req GlossaryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, resputil.InvalidRequest)
		return
	}

	set, err := mgr.sets.Get(c, glossary.TranslationSetID)
	if err != nil {
		logutils.Log.WithError(err).Error("update glossary: set lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if set == nil {
		resputil.Error(c, resputil.TranslationSetNotFound)
		return
	}

	principal := util.GetPrincipal(c)
	if !mgr.gate.Can(c, principal, authz.ActionApprove, authz.ObjectTranslationSet, set.ID) &&
		!mgr.gate.Can(c, principal, authz.ActionWrite, authz.ObjectProject, set.ProjectID) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	glossary.Description = sanitize(req.Description)
	if err := mgr.glossaries.Update(c, glossary); err != nil {
		logutils.Log.WithError(err).Error("update glossary")
		resputil.Error(c, resputil.GlossaryUpdateFailed)
		return
	}
	resputil.Success(c, glossarySchema.Project(glossary, nil))
}

// DeleteGlossary godoc
// @Summary Delete a glossary
// @Security Bearer
// @Router /api/v1/glossaries/{id} [delete]
func (mgr *GlossaryMgr) DeleteGlossary(c *gin.Context) {
	glossary, err := mgr.glossaries.Get(c, pathID(c, "id"))
	if err != nil {
		logutils.Log.WithError(err).Error("delete glossary: lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if glossary == nil {
		resputil.Error(c, resputil.GlossaryNotFound)
		return
	}

	if !mgr.gate.Can(c, util.GetPrincipal(c), authz.ActionDelete, authz.ObjectTranslationSet, glossary.TranslationSetID) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	if err := mgr.glossaries.Delete(c, glossary.ID); err != nil {
		logutils.Log.WithError(err).Error("delete glossary")
		resputil.Error(c, resputil.GlossaryDeletionFailed)
		return
	}
	resputil.NoContent(c)
}
