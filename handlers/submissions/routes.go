package submissions

import (
	"api/middleware"
	"api/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to joined projects
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	joined := r.Group("/projectjoined")
	{
		joined.GET("/", GetAllJoinedProjects)
		joined.GET("/user/:userId", GetUserJoinedProjects)
		joined.GET("/ws/:projectId", SubmissionFeed)
		joined.GET("/:id", GetJoinedProjectByID)
		joined.POST("/", JoinProject)
		joined.PUT("/:id/status", UpdateJoinedProjectStatus)
		joined.DELETE("/:id", DeleteJoinedProject)

		// Spreadsheet export for reviewers
		joined.GET("/export",
			middleware.AuthMiddleware(),
			middleware.RequireRole(models.RoleCompany, models.RoleAdmin),
			ExportJoinedProjects)
	}
}
