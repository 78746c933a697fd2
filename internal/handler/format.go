package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/meloniq-lab/glotline/internal/payload"
	"github.com/meloniq-lab/glotline/internal/resputil"
	"github.com/meloniq-lab/glotline/pkg/format"
)

//nolint:gochecknoinits // This is the standard way to register a handler.
func init() {
	Registers = append(Registers, NewFormatMgr)
}

// FormatMgr lists the import formats a parser is actually registered for,
// so clients can build upload pickers without hard-coding the allow-list.
type FormatMgr struct {
	name    string
	formats *format.Registry
}

func NewFormatMgr(conf *RegisterConfig) Manager {
	return &FormatMgr{
		name:    "formats",
		formats: conf.Formats,
	}
}

func (mgr *FormatMgr) GetName() string { return mgr.name }

func (mgr *FormatMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/formats", mgr.ListFormats)
}

func (mgr *FormatMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *FormatMgr) RegisterAdmin(_ *gin.RouterGroup) {}

// ListFormats godoc
// @Summary List the registered import formats
// @Produce json
// @Router /api/v1/formats [get]
func (mgr *FormatMgr) ListFormats(c *gin.Context) {
	parsers := mgr.formats.Formats()
	setTotalCount(c, len(parsers))
	resputil.Success(c, lo.Map(parsers, func(p format.Parser, _ int) payload.FormatResp {
		ext := ""
		if exts := p.Extensions(); len(exts) > 0 {
			ext = exts[0]
		}
		return payload.FormatResp{Name: p.Format(), Extension: ext}
	}))
}
