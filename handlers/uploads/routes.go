package uploads

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the generic file upload endpoint
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/upload", UploadFile)
}
