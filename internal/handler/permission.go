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
	Registers = append(Registers, NewPermissionMgr)
}

// PermissionMgr manages validator grants. The whole resource sits behind
// authentication; even reads expose who may approve what.
type PermissionMgr struct {
	name        string
	projects    store.ProjectStore
	users       store.UserStore
	permissions store.PermissionStore
	gate        authz.Gate
}

func NewPermissionMgr(conf *RegisterConfig) Manager {
	return &PermissionMgr{
		name:        "project-permissions",
		projects:    conf.Stores.Projects,
		users:       conf.Stores.Users,
		permissions: conf.Stores.Permissions,
		gate:        conf.Gate,
	}
}

func (mgr *PermissionMgr) GetName() string { return mgr.name }

func (mgr *PermissionMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *PermissionMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("/projects/:id/permissions", mgr.ListPermissions)
	g.POST("/projects/:id/permissions", mgr.CreatePermission)
	g.GET("/projects/:id/permissions/:permission_id", mgr.GetPermission)
	g.DELETE("/projects/:id/permissions/:permission_id", mgr.DeletePermission)
}

func (mgr *PermissionMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type PermissionReq struct {
	UserID     uint   `json:"user_id"`
	LocaleSlug string `json:"locale_slug"`
	SetSlug    string `json:"set_slug"`
}

// resolveProject reads :id and fetches the project; nil means the error
// response has already been written. The grant target always comes from the
// path, never from the body.
func (mgr *PermissionMgr) resolveProject(c *gin.Context) *model.Project {
	project, err := mgr.projects.Get(c, pathID(c, "id"))
	if err != nil {
		logutils.Log.WithError(err).Error("permission: project lookup")
		resputil.Error(c, resputil.InternalError)
		return nil
	}
	if project == nil {
		resputil.Error(c, resputil.ProjectNotFound)
		return nil
	}
	return project
}

// ListPermissions godoc
// @Summary List the validator grants of a project
// @Produce json
// @Security Bearer
// @Router /api/v1/projects/{id}/permissions [get]
func (mgr *PermissionMgr) ListPermissions(c *gin.Context) {
	project := mgr.resolveProject(c)
	if project == nil {
		return
	}

	if !mgr.gate.Can(c, util.GetPrincipal(c), authz.ActionWrite, authz.ObjectProject, project.ID) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	grants, err := mgr.permissions.ByProject(c, project.ID)
	if err != nil {
		logutils.Log.WithError(err).Error("list permissions")
		resputil.Error(c, resputil.InternalError)
		return
	}

	fields := fieldsFromQuery(c)
	setTotalCount(c, len(grants))
	resputil.Success(c, lo.Map(grants, func(p model.ValidatorPermission, _ int) map[string]any {
		return permissionSchema.Project(&p, fields)
	}))
}

// GetPermission godoc
// @Summary Get a single validator grant
// @Produce json
// @Security Bearer
// @Router /api/v1/projects/{id}/permissions/{permission_id} [get]
func (mgr *PermissionMgr) GetPermission(c *gin.Context) {
	project := mgr.resolveProject(c)
	if project == nil {
		return
	}

	if !mgr.gate.Can(c, util.GetPrincipal(c), authz.ActionWrite, authz.ObjectProject, project.ID) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	grant, err := mgr.permissions.Get(c, pathID(c, "permission_id"))
	if err != nil {
		logutils.Log.WithError(err).Error("get permission")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if grant == nil || grant.ProjectID != project.ID {
		resputil.Error(c, resputil.PermissionNotFound)
		return
	}
	resputil.Success(c, permissionSchema.Project(grant, fieldsFromQuery(c)))
}

// CreatePermission godoc
// @Summary Grant a user approve rights on a (locale, set) scope
// @Accept json
// @Produce json
// @Security Bearer
// @Router /api/v1/projects/{id}/permissions [post]
func (mgr *PermissionMgr) CreatePermission(c *gin.Context) {
	project := mgr.resolveProject(c)
	if project == nil {
		return
	}

	var req PermissionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, resputil.InvalidRequest)
		return
	}

	if req.UserID == 0 {
		resputil.Error(c, resputil.UserNotFound)
		return
	}
	user, err := mgr.users.Get(c, req.UserID)
	if err != nil {
		logutils.Log.WithError(err).Error("create permission: user lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if user == nil {
		resputil.Error(c, resputil.UserNotFound)
		return
	}

	localeSlug := sanitize(req.LocaleSlug)
	setSlug := sanitize(req.SetSlug)
	if localeSlug == "" || setSlug == "" {
		resputil.Error(c, resputil.InvalidRequest)
		return
	}
	if locales.BySlug(localeSlug) == nil {
		resputil.Error(c, resputil.LocaleNotFound)
		return
	}

	existing, err := mgr.permissions.Find(c, user.ID, project.ID, localeSlug, setSlug)
	if err != nil {
		logutils.Log.WithError(err).Error("create permission: duplicate lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if existing != nil {
		resputil.Error(c, resputil.PermissionAlreadyExists)
		return
	}

	if !mgr.gate.Can(c, util.GetPrincipal(c), authz.ActionWrite, authz.ObjectProject, project.ID) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	grant := model.ValidatorPermission{
		UserID:     user.ID,
		ProjectID:  project.ID,
		LocaleSlug: localeSlug,
		SetSlug:    setSlug,
		Action:     model.PermissionApprove,
	}
	if err := mgr.permissions.Create(c, &grant); err != nil {
		logutils.Log.WithError(err).Error("create permission")
		resputil.Error(c, resputil.PermissionCreationFailed)
		return
	}
	resputil.Created(c, permissionSchema.Project(&grant, nil))
}

// DeletePermission godoc
// @Summary Revoke a validator grant
// @Security Bearer
// @Router /api/v1/projects/{id}/permissions/{permission_id} [delete]
func (mgr *PermissionMgr) DeletePermission(c *gin.Context) {
	project := mgr.resolveProject(c)
	if project == nil {
		return
	}

	grant, err := mgr.permissions.Get(c, pathID(c, "permission_id"))
	if err != nil {
		logutils.Log.WithError(err).Error("delete permission: lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if grant == nil || grant.ProjectID != project.ID {
		resputil.Error(c, resputil.PermissionNotFound)
		return
	}

	if !mgr.gate.Can(c, util.GetPrincipal(c), authz.ActionDelete, authz.ObjectProject, project.ID) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	if err := mgr.permissions.Delete(c, grant.ID); err != nil {
		logutils.Log.WithError(err).Error("delete permission")
		resputil.Error(c, resputil.PermissionDeletionFailed)
		return
	}
	resputil.NoContent(c)
}
