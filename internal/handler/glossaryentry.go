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
	Registers = append(Registers, NewGlossaryEntryMgr)
}

type GlossaryEntryMgr struct {
	name       string
	glossaries store.GlossaryStore
	entries    store.GlossaryEntryStore
	gate       authz.Gate
}

func NewGlossaryEntryMgr(conf *RegisterConfig) Manager {
	return &GlossaryEntryMgr{
		name:       "glossary-entries",
		glossaries: conf.Stores.Glossaries,
		entries:    conf.Stores.Entries,
		gate:       conf.Gate,
	}
}

func (mgr *GlossaryEntryMgr) GetName() string { return mgr.name }

func (mgr *GlossaryEntryMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/glossaries/:id/entries", mgr.ListEntries)
	g.GET("/glossaries/:id/entries/:entry_id", mgr.GetEntry)
}

func (mgr *GlossaryEntryMgr) RegisterProtected(g *gin.RouterGroup) {
	g.POST("/glossaries/:id/entries", mgr.CreateEntry)
	g.PUT("/glossaries/:id/entries/:entry_id", mgr.UpdateEntry)
	g.DELETE("/glossaries/:id/entries/:entry_id", mgr.DeleteEntry)
}

func (mgr *GlossaryEntryMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type GlossaryEntryReq struct {
	Term         string `json:"term"`
	Translation  string `json:"translation"`
	PartOfSpeech string `json:"part_of_speech"`
	Comment      string `json:"comment"`
}

// resolveGlossary reads the :id path segment and fetches the glossary;
// nil-nil means the error response has already been written.
func (mgr *GlossaryEntryMgr) resolveGlossary(c *gin.Context) *model.Glossary {
	glossary, err := mgr.glossaries.Get(c, pathID(c, "id"))
	if err != nil {
		logutils.Log.WithError(err).Error("glossary lookup")
		resputil.Error(c, resputil.InternalError)
		return nil
	}
	if glossary == nil {
		resputil.Error(c, resputil.GlossaryNotFound)
		return nil
	}
	return glossary
}

// resolveEntry fetches :entry_id and checks it belongs to the glossary.
func (mgr *GlossaryEntryMgr) resolveEntry(c *gin.Context, glossary *model.Glossary) *model.GlossaryEntry {
	entry, err := mgr.entries.Get(c, pathID(c, "entry_id"))
	if err != nil {
		logutils.Log.WithError(err).Error("glossary entry lookup")
		resputil.Error(c, resputil.InternalError)
		return nil
	}
	if entry == nil || entry.GlossaryID != glossary.ID {
		resputil.Error(c, resputil.EntryNotFound)
		return nil
	}
	return entry
}

func (mgr *GlossaryEntryMgr) canEdit(c *gin.Context, glossary *model.Glossary) bool {
	return mgr.gate.Can(c, util.GetPrincipal(c), authz.ActionApprove, authz.ObjectTranslationSet, glossary.TranslationSetID)
}

// ListEntries godoc
// @Summary List the entries of a glossary
// @Produce json
// @Router /api/v1/glossaries/{id}/entries [get]
func (mgr *GlossaryEntryMgr) ListEntries(c *gin.Context) {
	glossary := mgr.resolveGlossary(c)
	if glossary == nil {
		return
	}

	entries, err := mgr.entries.ByGlossary(c, glossary.ID)
	if err != nil {
		logutils.Log.WithError(err).Error("list glossary entries")
		resputil.Error(c, resputil.InternalError)
		return
	}

	fields := fieldsFromQuery(c)
	setTotalCount(c, len(entries))
	resputil.Success(c, lo.Map(entries, func(e model.GlossaryEntry, _ int) map[string]any {
		return entrySchema.Project(&e, fields)
	}))
}

// GetEntry godoc
// @Summary Get a single glossary entry
// @Produce json
// @Router /api/v1/glossaries/{id}/entries/{entry_id} [get]
func (mgr *GlossaryEntryMgr) GetEntry(c *gin.Context) {
	glossary := mgr.resolveGlossary(c)
	if glossary == nil {
		return
	}
	entry := mgr.resolveEntry(c, glossary)
	if entry == nil {
		return
	}
	resputil.Success(c, entrySchema.Project(entry, fieldsFromQuery(c)))
}

// CreateEntry godoc
// @Summary Add an entry to a glossary
// @Accept json
// @Produce json
// @Security Bearer
// @Router /api/v1/glossaries/{id}/entries [post]
func (mgr *GlossaryEntryMgr) CreateEntry(c *gin.Context) {
	glossary := mgr.resolveGlossary(c)
	if glossary == nil {
		return
	}

	var req GlossaryEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, resputil.InvalidRequest)
		return
	}

	term := sanitize(req.Term)
	translation := sanitize(req.Translation)
	if term == "" || translation == "" {
		resputil.Error(c, resputil.InvalidEntryData)
		return
	}

	entry := model.GlossaryEntry{
		GlossaryID:   glossary.ID,
		Term:         term,
		Translation:  translation,
		PartOfSpeech: sanitize(req.PartOfSpeech),
		Comment:      sanitize(req.Comment),
		LastEditedBy: util.GetPrincipal(c).UserID,
	}

	duplicate, err := mgr.entries.FindDuplicate(c, &entry)
	if err != nil {
		logutils.Log.WithError(err).Error("create glossary entry: duplicate lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if duplicate != nil {
		resputil.Error(c, resputil.EntryAlreadyExists)
		return
	}

	if !mgr.canEdit(c, glossary) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	if err := mgr.entries.Create(c, &entry); err != nil {
		logutils.Log.WithError(err).Error("create glossary entry")
		resputil.Error(c, resputil.EntryCreationFailed)
		return
	}
	resputil.Created(c, entrySchema.Project(&entry, nil))
}

// UpdateEntry godoc
// @Summary Update a glossary entry
// @Accept json
// @Produce json
// @Security Bearer
// @Router /api/v1/glossaries/{id}/entries/{entry_id} [put]
func (mgr *GlossaryEntryMgr) UpdateEntry(c *gin.Context) {
	glossary := mgr.resolveGlossary(c)
	if glossary == nil {
		return
	}
	entry := mgr.resolveEntry(c, glossary)
	if entry == nil {
		return
	}

	var req GlossaryEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, resputil.InvalidRequest)
		return
	}

	term := sanitize(req.Term)
	translation := sanitize(req.Translation)
	if term == "" || translation == "" {
		resputil.Error(c, resputil.InvalidEntryData)
		return
	}

	if !mgr.canEdit(c, glossary) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	entry.Term = term
	entry.Translation = translation
	entry.PartOfSpeech = sanitize(req.PartOfSpeech)
	entry.Comment = sanitize(req.Comment)
	entry.LastEditedBy = util.GetPrincipal(c).UserID
	if err := mgr.entries.Update(c, entry); err != nil {
		logutils.Log.WithError(err).Error("update glossary entry")
		resputil.Error(c, resputil.EntryUpdateFailed)
		return
	}
	resputil.Success(c, entrySchema.Project(entry, nil))
}

// DeleteEntry godoc
// @Summary Delete a glossary entry
// @Security Bearer
// @Router /api/v1/glossaries/{id}/entries/{entry_id} [delete]
func (mgr *GlossaryEntryMgr) DeleteEntry(c *gin.Context) {
	glossary := mgr.resolveGlossary(c)
	if glossary == nil {
		return
	}
	entry := mgr.resolveEntry(c, glossary)
	if entry == nil {
		return
	}

	if !mgr.canEdit(c, glossary) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	if err := mgr.entries.Delete(c, entry.ID); err != nil {
		logutils.Log.WithError(err).Error("delete glossary entry")
		resputil.Error(c, resputil.EntryDeletionFailed)
		return
	}
	resputil.NoContent(c)
}
