package companies

import (
	"errors"
	"log"
	"net/http"

	"api/database"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Error message constants
const (
	ErrCompanyNotFound   = "Company not found"
	ErrCompanyEmailInUse = "Company email already exists"
	ErrFailedFetch       = "Error fetching companies"
	ErrFailedCreate      = "Failed to create company"
)

// RegisterCompanyRequest is the payload for company registration
type RegisterCompanyRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Image string `json:"image"`
}

// GetCompanies lists all registered companies
// @Summary Get all companies
// @Tags Companies
// @Produce json
// @Success 200 {array} models.Company
// @Failure 500 {object} map[string]string
// @Router /companies [get]
func GetCompanies(c *gin.Context) {
	var companies []models.Company
	if err := database.DB.Find(&companies).Error; err != nil {
		log.Printf("Failed to fetch companies: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	response.Success(c, http.StatusOK, companies)
}

// GetCompanyByID fetches a single company
// @Summary Get a company by ID
// @Tags Companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} models.Company
// @Failure 404 {object} map[string]string
// @Router /companies/{id} [get]
func GetCompanyByID(c *gin.Context) {
	var company models.Company
	if err := database.DB.First(&company, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrCompanyNotFound)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	response.Success(c, http.StatusOK, company)
}

// RegisterCompany creates a company whose id is derived from its name
// @Summary Register a company
// @Tags Companies
// @Accept json
// @Produce json
// @Param request body RegisterCompanyRequest true "Company"
// @Success 201 {object} models.Company
// @Failure 400 {object} map[string]string
// @Router /companies [post]
func RegisterCompany(c *gin.Context) {
	var req RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var existing models.Company
	err := database.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		response.Error(c, http.StatusBadRequest, ErrCompanyEmailInUse)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, http.StatusInternalServerError, ErrFailedCreate)
		return
	}

	company := models.Company{
		ID:    services.CompanyIDFromName(req.Name),
		Name:  req.Name,
		Email: req.Email,
		Image: req.Image,
	}

	if err := database.DB.Create(&company).Error; err != nil {
		log.Printf("Failed to create company %s: %v", req.Name, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedCreate)
		return
	}

	c.JSON(http.StatusCreated, company)
}
