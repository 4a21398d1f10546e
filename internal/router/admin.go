// Admin router: login/refresh are open (client token only); everything else
// requires a JWT with role=admin.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/transrodar/backend/internal/admins"
	"github.com/transrodar/backend/internal/applications"
	"github.com/transrodar/backend/internal/domain"
	"github.com/transrodar/backend/internal/handlers"
	"github.com/transrodar/backend/internal/middleware"
	"github.com/transrodar/backend/internal/security"
)

// RegisterAdmin mounts the admin panel API on the given group (e.g. /api/v1/admin).
func RegisterAdmin(admin *gin.RouterGroup, adminsRepo *admins.Repo, appsRepo *applications.Repo, jwt *security.JWTManager, auth middleware.TokenValidator, refresh handlers.RefreshTokenStore) {
	if adminsRepo == nil || appsRepo == nil || auth == nil {
		return
	}
	admin.POST("/login", handlers.Login(adminsRepo, jwt, refresh))
	admin.POST("/refresh", handlers.Refresh(jwt, refresh))

	protected := admin.Group("")
	protected.Use(middleware.AuthMiddleware(auth))
	protected.Use(middleware.RequireRole(string(domain.RoleAdmin)))
	{
		protected.GET("/me", handlers.Me(adminsRepo))
		protected.GET("/stats", handlers.ApplicationStats(appsRepo))
		protected.GET("/applications", handlers.ListApplications(appsRepo))
		protected.GET("/applications/:id", handlers.GetApplication(appsRepo))
		protected.PATCH("/applications/:id/status", handlers.UpdateApplicationStatus(appsRepo))
	}
}
