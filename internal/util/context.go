package util

import (
	"github.com/gin-gonic/gin"

	"github.com/meloniq-lab/glotline/dao/model"
	"github.com/meloniq-lab/glotline/pkg/authz"
)

const (
	UserIDKey = "x-user-id"
	LoginKey  = "x-user-login"
	RoleKey   = "x-user-role"
)

// SetJWTContext attaches the verified token claims to the request context.
func SetJWTContext(c *gin.Context, msg JWTMessage) {
	c.Set(UserIDKey, msg.UserID)
	c.Set(LoginKey, msg.Login)
	c.Set(RoleKey, string(msg.Role))
}

// GetToken reads the claims a middleware stored on the context. An
// unauthenticated request yields the zero message (UserID 0).
func GetToken(c *gin.Context) JWTMessage {
	return JWTMessage{
		UserID: c.GetUint(UserIDKey),
		Login:  c.GetString(LoginKey),
		Role:   model.Role(c.GetString(RoleKey)),
	}
}

// GetPrincipal converts the request's claims into the identity the
// permission gate decides on.
func GetPrincipal(c *gin.Context) authz.Principal {
	msg := GetToken(c)
	return authz.Principal{UserID: msg.UserID, Role: msg.Role}
}
