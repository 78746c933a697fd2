package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/meloniq-lab/glotline/dao/model"
	"github.com/meloniq-lab/glotline/internal/payload"
)

func seedCredentials(t *testing.T, e *env, id uint, login, password string, role model.Role) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	e.users.items[id] = model.User{
		Model:    gormModel(id),
		Login:    login,
		Password: string(hash),
		Role:     role,
	}
}

func TestLogin(t *testing.T) {
	e := newEnv(t)
	seedCredentials(t, e, 1, "admin", "s3cret", model.RoleAdmin)

	w := e.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"login": "admin", "password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	tokens := decode[payload.LoginResp](t, w)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	// The issued token opens protected routes.
	w = e.do(t, http.MethodGet, "/api/v1/profile/me", tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode[map[string]any](t, w)["user_id"])
}

func TestLoginRejections(t *testing.T) {
	e := newEnv(t)
	seedCredentials(t, e, 1, "admin", "s3cret", model.RoleAdmin)

	w := e.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"login": "admin", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", errCode(t, w))

	w = e.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"login": "nobody", "password": "s3cret",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", errCode(t, w))

	w = e.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"login": "admin",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", errCode(t, w))
}

func TestProtectedRouteRejectsBadToken(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/api/v1/profile/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshToken(t *testing.T) {
	e := newEnv(t)
	seedCredentials(t, e, 1, "admin", "s3cret", model.RoleAdmin)

	w := e.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"login": "admin", "password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	tokens := decode[payload.LoginResp](t, w)

	w = e.do(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]any{
		"refresh_token": tokens.RefreshToken,
	})
	require.Equal(t, http.StatusOK, w.Code)
	renewed := decode[payload.LoginResp](t, w)
	require.NotEmpty(t, renewed.AccessToken)
	require.NotEmpty(t, renewed.RefreshToken)

	// The renewed access token opens protected routes.
	w = e.do(t, http.MethodGet, "/api/v1/profile/me", renewed.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode[map[string]any](t, w)["user_id"])
}

func TestRefreshTokenRejections(t *testing.T) {
	e := newEnv(t)
	seedCredentials(t, e, 1, "admin", "s3cret", model.RoleAdmin)

	w := e.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"login": "admin", "password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	tokens := decode[payload.LoginResp](t, w)

	// The two token kinds are signed with different secrets, so an access
	// token cannot be replayed at the refresh endpoint.
	w = e.do(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]any{
		"refresh_token": tokens.AccessToken,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", errCode(t, w))

	// And refresh tokens are not bearer credentials for protected routes.
	w = e.do(t, http.MethodGet, "/api/v1/profile/me", tokens.RefreshToken, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", errCode(t, w))
}
