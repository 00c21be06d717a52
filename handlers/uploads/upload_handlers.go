package uploads

import (
	"errors"
	"log"
	"net/http"

	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// UploadFile stores a multipart file and returns its public URL
// @Summary Upload a file
// @Description Upload a solution file (multipart form field "file", max 10MB)
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /upload [post]
func UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No file uploaded or file type not supported")
		return
	}

	name, err := services.StoreUpload(file)
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) || errors.Is(err, services.ErrUnsupportedFileType) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Failed to store upload %s: %v", file.Filename, err)
		response.Error(c, http.StatusInternalServerError, "Server error during upload")
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}

	log.Printf("File uploaded: %s (%d bytes)", name, file.Size)
	c.JSON(http.StatusCreated, gin.H{
		"message": "File uploaded successfully",
		"fileUrl": services.FileURL(scheme, c.Request.Host, name),
	})
}
