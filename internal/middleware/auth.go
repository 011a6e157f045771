package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/response"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/security"
	apperrors "github.com/Sourabh-Bhakar5228/referme-updated-sub000/pkg/errors"
)

// AuthMiddleware guards admin write endpoints
type AuthMiddleware struct {
	authService service.AuthService
}

// NewAuthMiddleware creates a new AuthMiddleware instance
func NewAuthMiddleware(authService service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// Authenticate validates the bearer token and sets the admin claims in context
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			abortUnauthorized(c, "authorization header required")
			return
		}

		token, ok := BearerToken(c)
		if !ok {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := m.authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, apperrors.GetMessage(err))
			return
		}

		security.SetClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth sets claims when a valid token is present but never rejects
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := BearerToken(c); ok {
			if claims, err := m.authService.Authenticate(c.Request.Context(), token); err == nil {
				security.SetClaims(c, claims)
			}
		}
		c.Next()
	}
}

// RequireAdmin checks that the authenticated caller holds the admin role
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := security.GetClaims(c)
		if claims == nil {
			abortUnauthorized(c, "authentication required")
			return
		}
		if !claims.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, response.NewError[any]("insufficient permissions"))
			return
		}
		c.Next()
	}
}

// Admin chains Authenticate and RequireAdmin
func (m *AuthMiddleware) Admin() []gin.HandlerFunc {
	return []gin.HandlerFunc{m.Authenticate(), m.RequireAdmin()}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", `Bearer realm="referme"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.NewError[any](message))
}
