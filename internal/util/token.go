package util

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/meloniq-lab/glotline/dao/model"
)

type (
	JWTClaims struct {
		UserID uint       `json:"ui"`
		Login  string     `json:"lo"`
		Role   model.Role `json:"ro"`
		jwt.RegisteredClaims
	}

	// JWTMessage is the decoded principal carried through a request.
	JWTMessage struct {
		UserID uint       `json:"userID"`
		Login  string     `json:"login"`
		Role   model.Role `json:"role"`
	}
)

type TokenManager struct {
	accessSecret    string
	refreshSecret   string
	accessTokenTTL  int
	refreshTokenTTL int
}

func NewTokenManager(accessSecret, refreshSecret string, accessTokenTTL, refreshTokenTTL int) *TokenManager {
	return &TokenManager{
		accessSecret:    accessSecret,
		refreshSecret:   refreshSecret,
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
	}
}

func (tm *TokenManager) createToken(msg *JWTMessage, secret string, ttl int) (string, error) {
	claims := &JWTClaims{
		UserID: msg.UserID,
		Login:  msg.Login,
		Role:   msg.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * time.Duration(ttl))),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// CreateTokens creates a new access token and a new refresh token. The two
// tokens are signed with different secrets so one cannot stand in for the
// other.
func (tm *TokenManager) CreateTokens(msg *JWTMessage) (accessToken, refreshToken string, err error) {
	accessToken, err = tm.createToken(msg, tm.accessSecret, tm.accessTokenTTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = tm.createToken(msg, tm.refreshSecret, tm.refreshTokenTTL)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (tm *TokenManager) checkToken(requestToken, secret string) (JWTMessage, error) {
	claims := JWTClaims{}
	_, err := jwt.ParseWithClaims(requestToken, &claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	return JWTMessage{
		UserID: claims.UserID,
		Login:  claims.Login,
		Role:   claims.Role,
	}, err
}

// CheckToken verifies a signed access token and returns its claims.
func (tm *TokenManager) CheckToken(requestToken string) (JWTMessage, error) {
	return tm.checkToken(requestToken, tm.accessSecret)
}

// CheckRefreshToken verifies a signed refresh token and returns its claims.
func (tm *TokenManager) CheckRefreshToken(requestToken string) (JWTMessage, error) {
	return tm.checkToken(requestToken, tm.refreshSecret)
}
