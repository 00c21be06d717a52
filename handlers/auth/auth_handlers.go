package auth

import (
	"errors"
	"log"
	"net/http"
	"time"

	"api/database"
	"api/middleware"
	"api/models"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const tokenLifetime = 24 * time.Hour

// Login authenticates a user by email and password
// @Summary Login
// @Description Authenticate with email/password and receive a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Router /login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidCredentials)
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		// Same message for unknown email and bad password
		response.Error(c, http.StatusBadRequest, ErrInvalidCredentials)
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		response.Error(c, http.StatusBadRequest, ErrInvalidCredentials)
		return
	}

	token, err := middleware.GenerateJWT(user, tokenLifetime)
	if err != nil {
		log.Printf("Failed to generate token for %s: %v", user.Email, err)
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Image: user.Image,
		Role:  user.Role,
		Token: token,
	})
}

// Register creates a new user account
// @Summary Register
// @Description Create a user account. Role defaults to "user" when not provided.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "New account"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Router /register [post]
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var existing models.User
	err := database.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		response.Error(c, http.StatusBadRequest, ErrEmailInUse)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, http.StatusInternalServerError, ErrUserCreateFailed)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrHashPasswordFailed)
		return
	}

	role := req.Role
	if role != models.RoleUser && role != models.RoleCompany && role != models.RoleAdmin {
		role = models.RoleUser
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Image:    req.Image,
		Role:     role,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		log.Printf("Failed to create user %s: %v", req.Email, err)
		response.Error(c, http.StatusInternalServerError, ErrUserCreateFailed)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Image: user.Image,
		Role:  user.Role,
	})
}
