// Router assembly: gin engine with recovery, security headers, CORS and the
// /api/v1 groups (public intake + admin panel).
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/transrodar/backend/internal/admins"
	"github.com/transrodar/backend/internal/applications"
	"github.com/transrodar/backend/internal/config"
	"github.com/transrodar/backend/internal/middleware"
	"github.com/transrodar/backend/internal/security"
	"github.com/transrodar/backend/internal/store"
)

// Dependencies — everything the route tree needs.
type Dependencies struct {
	Pool         *pgxpool.Pool
	Redis        *redis.Client
	Logger       *zap.Logger
	JWT          *security.JWTManager
	Auth         middleware.TokenValidator
	RefreshStore *store.RefreshStore
	Security     config.Security
	CORSOrigins  []string
}

// New builds the gin engine: recovery and security headers globally, then
// /api/v1 with request logging, client token and rate limiting; admin routes
// additionally require a JWT with role=admin.
func New(deps Dependencies) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.RecoveryMiddleware(deps.Logger))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderXClientToken},
		AllowCredentials: true,
	}))

	appsRepo := applications.NewRepo(deps.Pool)
	adminsRepo := admins.NewRepo(deps.Pool)

	v1 := r.Group("/api/v1")
	{
		v1.Use(middleware.RequestIDMiddleware())
		v1.Use(middleware.RequestLoggerMiddleware(deps.Logger))
		v1.Use(middleware.ClientTokenMiddleware(deps.Security.FrontendClientToken))
		if deps.Redis != nil && deps.Security.RateLimitRPS > 0 {
			v1.Use(middleware.RateLimitMiddleware(deps.Redis, deps.Security.RateLimitRPS))
		}

		RegisterSystem(v1)

		refGroup := v1.Group("/reference")
		RegisterReference(refGroup, deps.Pool)

		RegisterApplications(v1, appsRepo)

		adminGroup := v1.Group("/admin")
		RegisterAdmin(adminGroup, adminsRepo, appsRepo, deps.JWT, deps.Auth, deps.RefreshStore)
	}

	return r
}
