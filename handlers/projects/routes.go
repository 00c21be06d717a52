package projects

import (
	"api/middleware"
	"api/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to projects
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	projects := r.Group("/projects")
	{
		projects.GET("/", GetAllProjects)
		projects.GET("/manage", GetManagedProjects)
		projects.GET("/:id", GetProjectByID)
		projects.GET("/:id/submissions", GetProjectSubmissions)
		projects.POST("/", CreateProject)
		projects.PUT("/:id", UpdateProject)
		projects.PUT("/:id/visibility", ToggleProjectVisibility)
		projects.POST("/:id/upload", AttachProjectFile)

		projects.DELETE("/:id",
			middleware.AuthMiddleware(),
			middleware.RequireRole(models.RoleAdmin),
			DeleteProject)
	}
}
