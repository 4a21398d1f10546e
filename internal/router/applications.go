// Public intake router: application submission, client token only.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/transrodar/backend/internal/applications"
	"github.com/transrodar/backend/internal/handlers"
)

// RegisterApplications mounts POST /applications on the v1 group.
func RegisterApplications(v1 *gin.RouterGroup, repo *applications.Repo) {
	if repo == nil {
		return
	}
	v1.POST("/applications", handlers.SubmitApplication(repo))
}
