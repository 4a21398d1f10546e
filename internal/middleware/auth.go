// Middleware: mandatory Authorization: Bearer <token> plus role gating.
package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/transrodar/backend/internal/response"
)

const HeaderAuthorization = "Authorization"
const BearerPrefix = "Bearer "

// TokenValidator verifies a Bearer token (JWT) and returns the subject and role.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (userID string, role string, err error)
}

// AuthMiddleware requires Authorization: Bearer <token> and validates it;
// the subject and role land in the request context.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderAuthorization)
		if raw == "" {
			response.AbortWithError(c, 403, "missing Authorization header")
			return
		}
		if !strings.HasPrefix(raw, BearerPrefix) {
			response.AbortWithError(c, 403, "invalid Authorization; expected Bearer <token>")
			return
		}
		token := strings.TrimPrefix(raw, BearerPrefix)
		if token == "" {
			response.AbortWithError(c, 403, "missing Bearer token")
			return
		}
		userID, role, err := validator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			response.AbortWithError(c, 401, "invalid or expired token")
			return
		}
		c.Set(string(ContextKeyUserID), userID)
		c.Set(string(ContextKeyRole), role)
		ctx := context.WithValue(c.Request.Context(), ContextKeyUserID, userID)
		ctx = context.WithValue(ctx, ContextKeyRole, role)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRole allows the request through only when AuthMiddleware stored the
// given role; otherwise 403.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if RoleFrom(c.Request.Context()) != role {
			response.AbortWithError(c, 403, "insufficient permissions")
			return
		}
		c.Next()
	}
}
