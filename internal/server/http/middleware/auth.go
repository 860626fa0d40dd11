package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/saxtrade/marketplace/internal/pkg/auth"
)

const (
	// UserIDContextKey is a gin context key for the authenticated account identifier.
	UserIDContextKey = "userID"
	// RoleContextKey is a gin context key for the authenticated account role.
	RoleContextKey = "role"
	authCookieName = "saxmarket_token"
)

// TokenParser validates tokens and returns the encoded claims.
type TokenParser interface {
	ParseToken(token string) (pkgAuth.Claims, error)
}

// AuthRequired ensures a valid token before accessing the handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := parser.ParseToken(token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserIDContextKey, claims.UserID)
		c.Set(RoleContextKey, claims.Role)
		c.Next()
	}
}

// RequireRole restricts a route to accounts with the given role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(RoleContextKey)
		if !ok || val != role {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
