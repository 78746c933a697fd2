package handler

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/meloniq-lab/glotline/internal/payload"
	"github.com/meloniq-lab/glotline/internal/resputil"
	"github.com/meloniq-lab/glotline/internal/util"
	"github.com/meloniq-lab/glotline/pkg/logutils"
	"github.com/meloniq-lab/glotline/pkg/store"
)

//nolint:gochecknoinits // This is the standard way to register a handler.
func init() {
	Registers = append(Registers, NewAuthMgr)
}

type AuthMgr struct {
	name     string
	users    store.UserStore
	tokenMgr *util.TokenManager
}

func NewAuthMgr(conf *RegisterConfig) Manager {
	return &AuthMgr{
		name:     "auth",
		users:    conf.Stores.Users,
		tokenMgr: conf.TokenMgr,
	}
}

func (mgr *AuthMgr) GetName() string { return mgr.name }

func (mgr *AuthMgr) RegisterPublic(g *gin.RouterGroup) {
	g.POST("/auth/login", mgr.Login)
	g.POST("/auth/refresh", mgr.RefreshToken)
}

func (mgr *AuthMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *AuthMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type LoginReq struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Exchange credentials for a token pair
// @Accept json
// @Produce json
// @Router /api/v1/auth/login [post]
func (mgr *AuthMgr) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, resputil.InvalidRequest)
		return
	}

	user, err := mgr.users.ByLogin(c, req.Login)
	if err != nil {
		logutils.Log.WithError(err).Error("login: user lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if user == nil {
		resputil.Error(c, resputil.InvalidCredentials)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		resputil.Error(c, resputil.InvalidCredentials)
		return
	}

	msg := util.JWTMessage{
		UserID: user.ID,
		Login:  user.Login,
		Role:   user.Role,
	}
	access, refresh, err := mgr.tokenMgr.CreateTokens(&msg)
	if err != nil {
		logutils.Log.WithError(err).Error("login: token issue")
		resputil.Error(c, resputil.InternalError)
		return
	}
	resputil.Success(c, payload.LoginResp{
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

type RefreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshToken godoc
// @Summary Exchange a refresh token for a fresh token pair
// @Accept json
// @Produce json
// @Router /api/v1/auth/refresh [post]
func (mgr *AuthMgr) RefreshToken(c *gin.Context) {
	var req RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, resputil.InvalidRequest)
		return
	}

	msg, err := mgr.tokenMgr.CheckRefreshToken(req.RefreshToken)
	if err != nil {
		resputil.Error(c, resputil.InvalidCredentials)
		return
	}

	access, refresh, err := mgr.tokenMgr.CreateTokens(&msg)
	if err != nil {
		logutils.Log.WithError(err).Error("refresh: token issue")
		resputil.Error(c, resputil.InternalError)
		return
	}
	resputil.Success(c, payload.LoginResp{
		AccessToken:  access,
		RefreshToken: refresh,
	})
}
