package users

import (
	"api/middleware"
	"api/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to user management
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/", middleware.RequireRole(models.RoleAdmin), GetUsers)
		users.PUT("/:id", UpdateUser)
		users.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), DeleteUser)
	}
}
