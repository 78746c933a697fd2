package handler

import (
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/meloniq-lab/glotline/internal/resputil"
	"github.com/meloniq-lab/glotline/pkg/locales"
	"github.com/meloniq-lab/glotline/pkg/logutils"
	"github.com/meloniq-lab/glotline/pkg/store"
)

//nolint:gochecknoinits // This is the standard way to register a handler.
func init() {
	Registers = append(Registers, NewLanguageMgr)
}

// LanguageMgr serves the read-only language list, derived by joining the
// locales that have at least one translation set against the static locale
// table.
type LanguageMgr struct {
	name string
	sets store.TranslationSetStore
}

func NewLanguageMgr(conf *RegisterConfig) Manager {
	return &LanguageMgr{
		name: "languages",
		sets: conf.Stores.Sets,
	}
}

func (mgr *LanguageMgr) GetName() string { return mgr.name }

func (mgr *LanguageMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/languages", mgr.ListLanguages)
}

func (mgr *LanguageMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *LanguageMgr) RegisterAdmin(_ *gin.RouterGroup) {}

// ListLanguages godoc
// @Summary List the languages that have at least one translation set
// @Produce json
// @Router /api/v1/languages [get]
func (mgr *LanguageMgr) ListLanguages(c *gin.Context) {
	codes, err := mgr.sets.DistinctLocales(c)
	if err != nil {
		logutils.Log.WithError(err).Error("list languages")
		resputil.Error(c, resputil.InternalError)
		return
	}

	known := make([]*locales.Locale, 0, len(codes))
	for _, code := range codes {
		if l := locales.BySlug(code); l != nil {
			known = append(known, l)
		}
	}
	sort.Slice(known, func(i, j int) bool { return known[i].EnglishName < known[j].EnglishName })

	fields := fieldsFromQuery(c)
	setTotalCount(c, len(known))
	resputil.Success(c, lo.Map(known, func(l *locales.Locale, _ int) map[string]any {
		return languageSchema.Project(l, fields)
	}))
}
