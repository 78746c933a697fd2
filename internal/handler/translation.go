package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"gorm.io/datatypes"

	"github.com/meloniq-lab/glotline/dao/model"
	"github.com/meloniq-lab/glotline/internal/resputil"
	"github.com/meloniq-lab/glotline/internal/util"
	"github.com/meloniq-lab/glotline/pkg/authz"
	"github.com/meloniq-lab/glotline/pkg/locales"
	"github.com/meloniq-lab/glotline/pkg/logutils"
	"github.com/meloniq-lab/glotline/pkg/store"
	"github.com/meloniq-lab/glotline/pkg/warnings"
)

//nolint:gochecknoinits // This is the standard way to register a handler.
func init() {
	Registers = append(Registers, NewTranslationMgr)
}

type TranslationMgr struct {
	name         string
	sets         store.TranslationSetStore
	originals    store.OriginalStore
	translations store.TranslationStore
	gate         authz.Gate
	warnings     warnings.Checker
}

func NewTranslationMgr(conf *RegisterConfig) Manager {
	return &TranslationMgr{
		name:         "translations",
		sets:         conf.Stores.Sets,
		originals:    conf.Stores.Originals,
		translations: conf.Stores.Translations,
		gate:         conf.Gate,
		warnings:     conf.Warnings,
	}
}

func (mgr *TranslationMgr) GetName() string { return mgr.name }

func (mgr *TranslationMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/translations/:id", mgr.GetTranslation)
}

func (mgr *TranslationMgr) RegisterProtected(g *gin.RouterGroup) {
	g.POST("/translations", mgr.CreateTranslation)
	g.PUT("/translations/:id", mgr.UpdateTranslation)
	g.DELETE("/translations/:id", mgr.DeleteTranslation)
}

func (mgr *TranslationMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type TranslationReq struct {
	TranslationSetID uint     `json:"translation_set_id"`
	OriginalID       uint     `json:"original_id"`
	Translations     []string `json:"translations"`
}

// GetTranslation godoc
// @Summary Get a single translation by id
// @Produce json
// @Router /api/v1/translations/{id} [get]
func (mgr *TranslationMgr) GetTranslation(c *gin.Context) {
	translation, err := mgr.translations.Get(c, pathID(c, "id"))
	if err != nil {
		logutils.Log.WithError(err).Error("get translation")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if translation == nil {
		resputil.Error(c, resputil.TranslationNotFound)
		return
	}
	resputil.Success(c, translationSchema.Project(translation, fieldsFromQuery(c)))
}

// CreateTranslation godoc
// @Summary Submit a translation for an original
// @Accept json
// @Produce json
// @Security Bearer
// @Router /api/v1/translations [post]
func (mgr *TranslationMgr) CreateTranslation(c *gin.Context) {
	var req TranslationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, resputil.InvalidRequest)
		return
	}

	set, err := mgr.sets.Get(c, req.TranslationSetID)
	if err != nil {
		logutils.Log.WithError(err).Error("create translation: set lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if set == nil {
		resputil.Error(c, resputil.TranslationSetNotFound)
		return
	}

	original, err := mgr.originals.Get(c, req.OriginalID)
	if err != nil {
		logutils.Log.WithError(err).Error("create translation: original lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if original == nil || original.ProjectID != set.ProjectID {
		resputil.Error(c, resputil.OriginalNotFound)
		return
	}

	locale := locales.BySlug(set.Locale)
	if locale == nil {
		resputil.Error(c, resputil.LocaleNotFound)
		return
	}

	forms := lo.Map(req.Translations, func(t string, _ int) string { return sanitize(t) })
	if len(forms) == 0 || len(forms) > locale.NPlurals {
		resputil.Error(c, resputil.InvalidTranslationData)
		return
	}

	// Warnings run before persistence; they ride along on the row, they
	// never block it.
	warned := mgr.warnings.Check(original.Singular, original.Plural, forms, locale)

	siblings, err := mgr.translations.CurrentOrWaiting(c, set.ID, original.ID)
	if err != nil {
		logutils.Log.WithError(err).Error("create translation: duplicate lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	for i := range siblings {
		if sameForms(siblings[i].Translations, forms) {
			resputil.Error(c, resputil.TranslationAlreadyExists)
			return
		}
	}

	principal := util.GetPrincipal(c)
	status := model.TranslationWaiting
	if mgr.gate.Can(c, principal, authz.ActionApprove, authz.ObjectTranslationSet, set.ID) ||
		mgr.gate.Can(c, principal, authz.ActionWrite, authz.ObjectProject, set.ProjectID) {
		status = model.TranslationCurrent
	}

	translation := model.Translation{
		TranslationSetID: set.ID,
		OriginalID:       original.ID,
		UserID:           principal.UserID,
		Translations:     datatypes.NewJSONSlice(forms),
		Status:           status,
		Warnings:         datatypes.NewJSONSlice(warned),
	}
	if err := mgr.translations.Create(c, &translation); err != nil {
		logutils.Log.WithError(err).Error("create translation")
		resputil.Error(c, resputil.TranslationCreationFailed)
		return
	}
	resputil.Created(c, translationSchema.Project(&translation, nil))
}

// UpdateTranslation godoc
// @Summary Update a submitted translation's plural forms
// @Accept json
// @Produce json
// @Security Bearer
// @Router /api/v1/translations/{id} [put]
func (mgr *TranslationMgr) UpdateTranslation(c *gin.Context) {
	translation, err := mgr.translations.Get(c, pathID(c, "id"))
	if err != nil {
		logutils.Log.WithError(err).Error("update translation: lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if translation == nil {
		resputil.Error(c, resputil.TranslationNotFound)
		return
	}

	var req TranslationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, resputil.InvalidRequest)
		return
	}

	set, err := mgr.sets.Get(c, translation.TranslationSetID)
	if err != nil {
		logutils.Log.WithError(err).Error("update translation: set lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if set == nil {
		resputil.Error(c, resputil.TranslationSetNotFound)
		return
	}

	original, err := mgr.originals.Get(c, translation.OriginalID)
	if err != nil {
		logutils.Log.WithError(err).Error("update translation: original lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if original == nil {
		resputil.Error(c, resputil.OriginalNotFound)
		return
	}

	locale := locales.BySlug(set.Locale)
	if locale == nil {
		resputil.Error(c, resputil.LocaleNotFound)
		return
	}

	forms := lo.Map(req.Translations, func(t string, _ int) string { return sanitize(t) })
	if len(forms) == 0 || len(forms) > locale.NPlurals {
		resputil.Error(c, resputil.InvalidTranslationData)
		return
	}

	principal := util.GetPrincipal(c)
	owner := translation.UserID == principal.UserID && principal.UserID != 0
	if !owner && !mgr.gate.Can(c, principal, authz.ActionEdit, authz.ObjectTranslationSet, set.ID) &&
		!mgr.gate.Can(c, principal, authz.ActionApprove, authz.ObjectTranslationSet, set.ID) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	translation.Translations = datatypes.NewJSONSlice(forms)
	translation.Warnings = datatypes.NewJSONSlice(mgr.warnings.Check(original.Singular, original.Plural, forms, locale))
	if err := mgr.translations.Update(c, translation); err != nil {
		logutils.Log.WithError(err).Error("update translation")
		resputil.Error(c, resputil.TranslationUpdateFailed)
		return
	}
	resputil.Success(c, translationSchema.Project(translation, nil))
}

// DeleteTranslation godoc
// @Summary Delete a translation
// @Security Bearer
// @Router /api/v1/translations/{id} [delete]
func (mgr *TranslationMgr) DeleteTranslation(c *gin.Context) {
	translation, err := mgr.translations.Get(c, pathID(c, "id"))
	if err != nil {
		logutils.Log.WithError(err).Error("delete translation: lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if translation == nil {
		resputil.Error(c, resputil.TranslationNotFound)
		return
	}

	// Delete rights are evaluated against the owning set, not the
	// translation row itself.
	if !mgr.gate.Can(c, util.GetPrincipal(c), authz.ActionDelete, authz.ObjectTranslationSet, translation.TranslationSetID) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	if err := mgr.translations.Delete(c, translation.ID); err != nil {
		logutils.Log.WithError(err).Error("delete translation")
		resputil.Error(c, resputil.TranslationDeletionFailed)
		return
	}
	resputil.NoContent(c)
}

func sameForms(a datatypes.JSONSlice[string], b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
