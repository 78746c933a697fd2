package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/meloniq-lab/glotline/internal/util"
	"github.com/meloniq-lab/glotline/pkg/authz"
	"github.com/meloniq-lab/glotline/pkg/format"
	"github.com/meloniq-lab/glotline/pkg/store"
	"github.com/meloniq-lab/glotline/pkg/warnings"
)

// Manager registers the routes of one resource type. Public routes serve
// anonymous reads, protected routes require an authenticated principal,
// admin routes additionally require the admin role.
type Manager interface {
	GetName() string
	RegisterPublic(group *gin.RouterGroup)
	RegisterProtected(group *gin.RouterGroup)
	RegisterAdmin(group *gin.RouterGroup)
}

// RegisterConfig carries the external collaborators the handlers depend on.
type RegisterConfig struct {
	Stores    store.Stores
	Gate      authz.Gate
	Formats   *format.Registry
	Warnings  warnings.Checker
	TokenMgr  *util.TokenManager
	UploadDir string
}

type ManagerRegister func(conf *RegisterConfig) Manager

// Registers collects the manager constructors of this package; each handler
// file appends its own in init().
var Registers []ManagerRegister
