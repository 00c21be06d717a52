package companies

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to companies
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	companies := r.Group("/companies")
	{
		companies.GET("/", GetCompanies)
		companies.GET("/:id", GetCompanyByID)
		companies.POST("/", RegisterCompany)
	}
}
