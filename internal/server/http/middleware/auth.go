package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/servicebooking/internal/domain/model"
	pkgAuth "github.com/polkiloo/servicebooking/internal/pkg/auth"
	"github.com/polkiloo/servicebooking/internal/server/http/dto"
)

const (
	// PrincipalContextKey is a gin context key for the authenticated principal.
	PrincipalContextKey = "principal"
	authCookieName      = "servicebooking_token"
)

// TokenParser resolves access tokens into principals.
type TokenParser interface {
	ParseToken(token string) (model.Principal, error)
}

// AuthRequired ensures user is authenticated before accessing handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("authentication required"))
			return
		}

		principal, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("invalid or expired token"))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Fail("internal server error"))
			return
		}

		c.Set(PrincipalContextKey, principal)
		c.Next()
	}
}

// AdminRequired rejects principals without administrator rights.
// It must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("authentication required"))
			return
		}
		if !principal.Admin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Fail("administrator access required"))
			return
		}
		c.Next()
	}
}

// CurrentPrincipal extracts the authenticated principal from context.
func CurrentPrincipal(c *gin.Context) (model.Principal, bool) {
	val, ok := c.Get(PrincipalContextKey)
	if !ok {
		return model.Principal{}, false
	}
	p, ok := val.(model.Principal)
	return p, ok
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
