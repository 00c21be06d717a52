package users

import (
	"errors"
	"log"
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetUsers retrieves all users
// @Summary Get all users
// @Description Admin only: list every registered user
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users [get]
// @Security Bearer
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Find(&users).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToGetUsers)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUser edits a user profile. Users can edit their own profile;
// admins can edit anyone and change roles.
// @Summary Update User
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UserProfileUpdate true "Profile fields"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [put]
// @Security Bearer
func UpdateUser(c *gin.Context) {
	actor, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	targetID := c.Param("id")
	if actor.Role != models.RoleAdmin && actor.ID != targetID {
		response.Error(c, http.StatusForbidden, ErrUnauthorized)
		return
	}

	var target models.User
	if err := database.DB.Where("id = ?", targetID).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrUserNotFound)
		} else {
			response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateUser)
		}
		return
	}

	var req UserProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}
	if req.Role != "" && actor.Role == models.RoleAdmin {
		updates["role"] = req.Role
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&target).Updates(updates).Error; err != nil {
			log.Printf("Failed to update user %s: %v", targetID, err)
			response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateUser)
			return
		}
		middleware.InvalidateUserCache(c, targetID)
	}

	c.JSON(http.StatusOK, target)
}

// DeleteUser deletes a user by ID
// @Summary Delete User
// @Description Admin only: delete a user account
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [delete]
// @Security Bearer
func DeleteUser(c *gin.Context) {
	targetID := c.Param("id")

	result := database.DB.Delete(&models.User{}, "id = ?", targetID)
	if result.Error != nil {
		log.Printf("Failed to delete user %s: %v", targetID, result.Error)
		response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteUser)
		return
	}
	if result.RowsAffected == 0 {
		response.Error(c, http.StatusNotFound, ErrUserNotFound)
		return
	}

	middleware.InvalidateUserCache(c, targetID)
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
