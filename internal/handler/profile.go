package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/meloniq-lab/glotline/dao/model"
	"github.com/meloniq-lab/glotline/internal/payload"
	"github.com/meloniq-lab/glotline/internal/resputil"
	"github.com/meloniq-lab/glotline/internal/util"
	"github.com/meloniq-lab/glotline/pkg/logutils"
	"github.com/meloniq-lab/glotline/pkg/store"
)

const recentSetLimit = 5

//nolint:gochecknoinits // This is the standard way to register a handler.
func init() {
	Registers = append(Registers, NewProfileMgr)
}

// ProfileMgr serves the read-only profile aggregate. The three derived
// lists come from independent lookups; a failed lookup degrades to an empty
// list instead of failing the request.
type ProfileMgr struct {
	name        string
	users       store.UserStore
	sets        store.TranslationSetStore
	projects    store.ProjectStore
	permissions store.PermissionStore
}

func NewProfileMgr(conf *RegisterConfig) Manager {
	return &ProfileMgr{
		name:        "profile",
		users:       conf.Stores.Users,
		sets:        conf.Stores.Sets,
		projects:    conf.Stores.Projects,
		permissions: conf.Stores.Permissions,
	}
}

func (mgr *ProfileMgr) GetName() string { return mgr.name }

func (mgr *ProfileMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/profile/:id", mgr.GetProfile)
}

func (mgr *ProfileMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("/profile/me", mgr.GetOwnProfile)
}

func (mgr *ProfileMgr) RegisterAdmin(_ *gin.RouterGroup) {}

// GetOwnProfile godoc
// @Summary Get the authenticated user's profile
// @Produce json
// @Security Bearer
// @Router /api/v1/profile/me [get]
func (mgr *ProfileMgr) GetOwnProfile(c *gin.Context) {
	mgr.serveProfile(c, util.GetPrincipal(c).UserID)
}

// GetProfile godoc
// @Summary Get a user's profile by id
// @Produce json
// @Router /api/v1/profile/{id} [get]
func (mgr *ProfileMgr) GetProfile(c *gin.Context) {
	mgr.serveProfile(c, pathID(c, "id"))
}

func (mgr *ProfileMgr) serveProfile(c *gin.Context, userID uint) {
	user, err := mgr.users.Get(c, userID)
	if err != nil {
		logutils.Log.WithError(err).Error("profile: user lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if user == nil {
		resputil.Error(c, resputil.UserNotFound)
		return
	}

	resputil.Success(c, payload.ProfileResp{
		UserID:         user.ID,
		DisplayName:    user.DisplayName,
		RegisteredAt:   user.CreatedAt.Format(time.RFC3339),
		RecentProjects: mgr.recentProjects(c, user.ID),
		Locales:        mgr.contributedLocales(c, user.ID),
		Permissions:    mgr.heldPermissions(c, user.ID),
	})
}

// recentProjects summarizes the sets the user last submitted to, joined
// with their project names.
func (mgr *ProfileMgr) recentProjects(c *gin.Context, userID uint) []map[string]any {
	sets, err := mgr.sets.RecentForUser(c, userID, recentSetLimit)
	if err != nil {
		logutils.Log.WithError(err).Warn("profile: recent sets lookup")
		return []map[string]any{}
	}
	return lo.Map(sets, func(s model.TranslationSet, _ int) map[string]any {
		item := map[string]any{
			"project_id":         s.ProjectID,
			"translation_set_id": s.ID,
			"set_name":           s.Name,
			"locale":             s.Locale,
		}
		if project, err := mgr.projects.Get(c, s.ProjectID); err == nil && project != nil {
			item["project_name"] = project.Name
		}
		return item
	})
}

func (mgr *ProfileMgr) contributedLocales(c *gin.Context, userID uint) []string {
	sets, err := mgr.sets.RecentForUser(c, userID, 0)
	if err != nil {
		logutils.Log.WithError(err).Warn("profile: locales lookup")
		return []string{}
	}
	return lo.Uniq(lo.Map(sets, func(s model.TranslationSet, _ int) string { return s.Locale }))
}

func (mgr *ProfileMgr) heldPermissions(c *gin.Context, userID uint) []map[string]any {
	grants, err := mgr.permissions.ByUser(c, userID)
	if err != nil {
		logutils.Log.WithError(err).Warn("profile: permissions lookup")
		return []map[string]any{}
	}
	return lo.Map(grants, func(p model.ValidatorPermission, _ int) map[string]any {
		return permissionSchema.Project(&p, nil)
	})
}
