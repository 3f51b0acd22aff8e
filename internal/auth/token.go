// Package auth issues and verifies the signed bearer tokens protecting the
// API. Both token kinds carry the user id as identity and the user's role ids
// as a claim.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminRoleID is the role id granted full access on self-or-admin checks and
// admin-only allow-lists.
const AdminRoleID uint = 1

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrNotRefreshToken = errors.New("refresh token required")
)

type Claims struct {
	UserID    uint   `json:"user_id"`
	Roles     []uint `json:"roles"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// HasRole reports whether the claims carry the given role id.
func (c *Claims) HasRole(roleID uint) bool {
	for _, id := range c.Roles {
		if id == roleID {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the claims carry the administrator role.
func (c *Claims) IsAdmin() bool { return c.HasRole(AdminRoleID) }

// Manager signs and parses tokens with a shared HMAC secret.
type Manager struct {
	secretKey  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{secretKey: secret, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// GenerateTokens issues a short-lived access token and a long-lived refresh
// token for the given user identity and role ids.
func (m *Manager) GenerateTokens(userID uint, roles []uint) (accessToken, refreshToken string, err error) {
	accessToken, err = m.sign(userID, roles, tokenTypeAccess, m.accessTTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = m.sign(userID, roles, tokenTypeRefresh, m.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// GenerateAccessToken issues a fresh access token, used by the refresh endpoint.
func (m *Manager) GenerateAccessToken(userID uint, roles []uint) (string, error) {
	return m.sign(userID, roles, tokenTypeAccess, m.accessTTL)
}

func (m *Manager) sign(userID uint, roles []uint, tokenType string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:    userID,
		Roles:     roles,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.secretKey))
}

// ParseAccess validates a token and requires it to be an access token.
func (m *Manager) ParseAccess(tokenStr string) (*Claims, error) {
	claims, err := m.parse(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeAccess {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseRefresh validates a token and requires it to be a refresh token.
func (m *Manager) ParseRefresh(tokenStr string) (*Claims, error) {
	claims, err := m.parse(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeRefresh {
		return nil, ErrNotRefreshToken
	}
	return claims, nil
}

func (m *Manager) parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
