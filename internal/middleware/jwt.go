package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/meloniq-lab/glotline/dao/model"
	"github.com/meloniq-lab/glotline/internal/resputil"
	"github.com/meloniq-lab/glotline/internal/util"
)

// AuthProtected rejects requests without a valid bearer token and attaches
// the principal to the context.
func AuthProtected(tm *util.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		t := strings.Split(authHeader, " ")
		if len(t) < 2 || t[0] != "Bearer" {
			resputil.HTTPError(c, http.StatusUnauthorized, "Invalid token", resputil.Unauthorized)
			c.Abort()
			return
		}

		token, err := tm.CheckToken(t[1])
		if err != nil {
			resputil.HTTPError(c, http.StatusUnauthorized, err.Error(), resputil.Unauthorized)
			c.Abort()
			return
		}

		util.SetJWTContext(c, token)
		c.Next()
	}
}

// AdminOnly rejects authenticated requests whose principal lacks the admin
// role. It must run after AuthProtected.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if util.GetToken(c).Role != model.RoleAdmin {
			resputil.HTTPError(c, http.StatusForbidden, "Admin role required", resputil.Forbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthOptional attaches the principal when a valid bearer token is present
// but lets anonymous requests through. Read endpoints are public; the
// permission gate still sees who is asking.
func AuthOptional(tm *util.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		t := strings.Split(authHeader, " ")
		if len(t) == 2 && t[0] == "Bearer" {
			if token, err := tm.CheckToken(t[1]); err == nil {
				util.SetJWTContext(c, token)
			}
		}
		c.Next()
	}
}
