// Middleware: X-Client-Token check — only the trusted form frontend reaches the API.
package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/transrodar/backend/internal/response"
)

const HeaderXClientToken = "X-Client-Token"

// ClientTokenMiddleware requires X-Client-Token to match the configured
// frontend token; otherwise 403.
func ClientTokenMiddleware(frontendToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderXClientToken)
		if raw == "" {
			response.AbortWithError(c, 403, "missing X-Client-Token header")
			return
		}
		if subtle.ConstantTimeCompare([]byte(raw), []byte(frontendToken)) != 1 {
			response.AbortWithError(c, 403, "invalid X-Client-Token")
			return
		}
		c.Next()
	}
}
