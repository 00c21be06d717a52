package routes

import (
	"api/handlers/auth"
	"api/handlers/companies"
	"api/handlers/projects"
	"api/handlers/submissions"
	"api/handlers/uploads"
	"api/handlers/users"
	"api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Register the endpoints for the API
func Register(r *gin.Engine) {
	api := r.Group("/api")

	// Add metrics middleware to all routes
	api.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500)
	api.Use(middleware.RateLimiterMiddleware(rateLimiter))

	auth.RegisterRoutes(api)
	users.RegisterRoutes(api)
	companies.RegisterRoutes(api)
	projects.RegisterRoutes(api)
	submissions.RegisterRoutes(api)
	uploads.RegisterRoutes(api)

	// Register metrics endpoint
	api.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
