package projects

import (
	"errors"
	"log"
	"net/http"
	"time"

	"api/database"
	"api/models"
	"api/services"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllProjects retrieves all projects, newest first
// @Summary Get all projects
// @Description Get all challenges, sorted by posted date descending. Pass visible=true to hide unlisted challenges.
// @Tags Projects
// @Produce json
// @Param visible query bool false "Only visible projects"
// @Success 200 {array} models.Project
// @Failure 500 {object} map[string]string
// @Router /projects [get]
func GetAllProjects(c *gin.Context) {
	query := database.DB.Order("posted_date DESC")
	if c.Query("visible") == "true" {
		query = query.Where("visible = true")
	}

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		log.Printf("Failed to fetch projects: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProjectByID retrieves a single project
// @Summary Get a project by ID
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} map[string]string
// @Router /projects/{id} [get]
func GetProjectByID(c *gin.Context) {
	project, err := services.GetProject(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, ErrProjectNotFound)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	c.JSON(http.StatusOK, project)
}

// GetProjectSubmissions lists all submissions for one project
// @Summary Get submissions for a project
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} models.Submission
// @Failure 500 {object} map[string]string
// @Router /projects/{id}/submissions [get]
func GetProjectSubmissions(c *gin.Context) {
	submissions, err := services.GetProjectSubmissions(c.Param("id"))
	if err != nil {
		log.Printf("Failed to fetch submissions for project %s: %v", c.Param("id"), err)
		response.Error(c, http.StatusInternalServerError, "Error fetching submissions")
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// GetManagedProjects returns the per-project dashboard rows with
// participant counts
// @Summary Get managed projects
// @Description Projects joined with their submission counts, optionally scoped to one company
// @Tags Projects
// @Produce json
// @Param companyId query string false "Company ID"
// @Success 200 {array} services.ManagedProject
// @Failure 500 {object} map[string]string
// @Router /projects/manage [get]
func GetManagedProjects(c *gin.Context) {
	rows, err := services.GetManagedProjects(c.Query("companyId"))
	if err != nil {
		log.Printf("Failed to aggregate managed projects: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CreateProject posts a new challenge
// @Summary Create a project
// @Tags Projects
// @Accept json
// @Produce json
// @Param request body CreateProjectRequest true "Project"
// @Success 201 {object} models.Project
// @Failure 400 {object} map[string]string
// @Router /projects [post]
func CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	// company_id is a loose string reference; validate it before the write
	exists, err := services.CompanyExists(req.CompanyID)
	if err != nil {
		log.Printf("Failed to check company %s: %v", req.CompanyID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedCreate)
		return
	}
	if !exists {
		response.Error(c, http.StatusBadRequest, ErrCompanyNotFound)
		return
	}

	id := req.ID
	if id == "" {
		id, err = utils.GenerateToken(16)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, ErrFailedCreate)
			return
		}
	}

	postedDate := req.PostedDate
	if postedDate == 0 {
		postedDate = time.Now().UnixMilli()
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	project := models.Project{
		ID:          id,
		Title:       req.Title,
		Location:    req.Location,
		Difficulty:  req.Difficulty,
		CompanyID:   req.CompanyID,
		Description: req.Description,
		Prize:       req.Prize,
		Duration:    req.Duration,
		PostedDate:  postedDate,
		Category:    req.Category,
		Visible:     visible,
	}

	if err := database.DB.Create(&project).Error; err != nil {
		log.Printf("Failed to create project: %v", err)
		response.Error(c, http.StatusBadRequest, ErrFailedCreate)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateProject edits a challenge
// @Summary Update a project
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body UpdateProjectRequest true "Fields to update"
// @Success 200 {object} models.Project
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id} [put]
func UpdateProject(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	var project models.Project
	if err := database.DB.First(&project, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrProjectNotFound)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedUpdate)
		return
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Location != "" {
		updates["location"] = req.Location
	}
	if req.Difficulty != "" {
		updates["difficulty"] = req.Difficulty
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Prize != "" {
		updates["prize"] = req.Prize
	}
	if req.Duration != "" {
		updates["duration"] = req.Duration
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Visible != nil {
		updates["visible"] = *req.Visible
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&project).Updates(updates).Error; err != nil {
			log.Printf("Failed to update project %s: %v", project.ID, err)
			response.Error(c, http.StatusBadRequest, ErrFailedUpdate)
			return
		}
	}

	c.JSON(http.StatusOK, project)
}

// ToggleProjectVisibility flips (or pins) the visible flag
// @Summary Toggle project visibility
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body ToggleVisibilityRequest false "Explicit visibility"
// @Success 200 {object} models.Project
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/visibility [put]
func ToggleProjectVisibility(c *gin.Context) {
	var req ToggleVisibilityRequest
	_ = c.ShouldBindJSON(&req) // empty body means flip

	project, err := services.ToggleProjectVisibility(c.Param("id"), req.Visible)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, ErrProjectNotFound)
			return
		}
		log.Printf("Failed to toggle visibility of project %s: %v", c.Param("id"), err)
		response.Error(c, http.StatusInternalServerError, ErrFailedToggleVisible)
		return
	}
	c.JSON(http.StatusOK, project)
}

// AttachProjectFile uploads a file and stores its URL as the project
// attachment
// @Summary Attach a file to a project
// @Tags Projects
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Project ID"
// @Param file formData file true "File"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/upload [post]
func AttachProjectFile(c *gin.Context) {
	if _, err := services.GetProject(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, ErrProjectNotFound)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	name, err := services.StoreUpload(file)
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) || errors.Is(err, services.ErrUnsupportedFileType) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Failed to store project file: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server error during upload")
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"fileUrl": services.FileURL(scheme, c.Request.Host, name),
	})
}

// DeleteProject removes a challenge
// @Summary Delete a project
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id} [delete]
// @Security Bearer
func DeleteProject(c *gin.Context) {
	result := database.DB.Delete(&models.Project{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		log.Printf("Failed to delete project %s: %v", c.Param("id"), result.Error)
		response.Error(c, http.StatusInternalServerError, ErrFailedDelete)
		return
	}
	if result.RowsAffected == 0 {
		response.Error(c, http.StatusNotFound, ErrProjectNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
