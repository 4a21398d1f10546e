// Reference router: form enumerations for the public frontend.
// All reference APIs require X-Client-Token only (no user JWT).
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/transrodar/backend/internal/handlers"
)

// RegisterReference mounts reference routes on the given group (e.g. /api/v1/reference).
func RegisterReference(ref *gin.RouterGroup, pool *pgxpool.Pool) {
	if pool == nil {
		return
	}
	ref.GET("/form-options", handlers.FormOptions(pool))
}
