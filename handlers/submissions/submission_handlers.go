package submissions

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"api/models"
	"api/realtime"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetAllJoinedProjects retrieves every submission, newest first
// @Summary Get all joined projects
// @Description Get all submissions across all projects, sorted by date descending
// @Tags ProjectJoined
// @Produce json
// @Success 200 {array} models.Submission
// @Failure 500 {object} map[string]string
// @Router /projectjoined [get]
func GetAllJoinedProjects(c *gin.Context) {
	submissions, err := services.GetAllSubmissions()
	if err != nil {
		log.Printf("Failed to fetch joined projects: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// GetUserJoinedProjects retrieves all submissions of one user
// @Summary Get projects joined by a user
// @Description Get all submissions created by the given user, sorted by date descending
// @Tags ProjectJoined
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} models.Submission
// @Failure 500 {object} map[string]string
// @Router /projectjoined/user/{userId} [get]
func GetUserJoinedProjects(c *gin.Context) {
	submissions, err := services.GetUserSubmissions(c.Param("userId"))
	if err != nil {
		log.Printf("Failed to fetch joined projects for user %s: %v", c.Param("userId"), err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// GetJoinedProjectByID retrieves a single submission
// @Summary Get a joined project by ID
// @Tags ProjectJoined
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} models.Submission
// @Failure 404 {object} map[string]string
// @Router /projectjoined/{id} [get]
func GetJoinedProjectByID(c *gin.Context) {
	submission, err := services.GetSubmission(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrSubmissionNotFound) {
			response.Error(c, http.StatusNotFound, ErrJoinedProjectNotFound)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	c.JSON(http.StatusOK, submission)
}

// JoinProject creates a Pending submission for a project
// @Summary Join a project
// @Description Submit a solution for a challenge. The submission starts Pending; a user can join a project only once.
// @Tags ProjectJoined
// @Accept json
// @Produce json
// @Param request body JoinProjectRequest true "Join request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projectjoined [post]
func JoinProject(c *gin.Context) {
	var req JoinProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Collect every field problem so the client can show them all at once
	fieldErrors := map[string]string{}
	if req.ProjectID == "" {
		fieldErrors["projectId"] = "projectId is required"
	}
	if req.UserID == "" {
		fieldErrors["userId"] = "userId is required"
	}
	if req.UserEmail == "" {
		fieldErrors["userEmail"] = "userEmail is required"
	}
	if len(strings.TrimSpace(req.Description)) < services.MinDescriptionLength {
		fieldErrors["description"] = services.ErrDescriptionTooShort.Error()
	}
	if req.SubmissionUrl == "" && req.SubmissionFile == "" {
		fieldErrors["submission"] = services.ErrMissingSubmission.Error()
	}
	if len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	submission, err := services.JoinProject(services.JoinInput{
		ProjectID:      req.ProjectID,
		UserID:         req.UserID,
		UserEmail:      req.UserEmail,
		Description:    req.Description,
		SubmissionUrl:  req.SubmissionUrl,
		SubmissionFile: req.SubmissionFile,
		Kind:           req.Kind,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateSubmission):
			response.Error(c, http.StatusBadRequest, ErrAlreadyJoined)
		case errors.Is(err, services.ErrProjectNotFound):
			response.Error(c, http.StatusNotFound, "Project not found")
		case errors.Is(err, services.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		default:
			log.Printf("Failed to join project %s: %v", req.ProjectID, err)
			response.Error(c, http.StatusInternalServerError, ErrFailedJoin)
		}
		return
	}

	go realtime.BroadcastSubmissionUpdate(realtime.SubmissionUpdate{
		ProjectID:  submission.ProjectID,
		Submission: submission,
		UpdateType: "new",
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Successfully joined project",
		"joinedProject": submission,
	})
}

// UpdateJoinedProjectStatus transitions a submission's status. Accepting a
// submission rejects every other pending submission of the same project.
// @Summary Update joined project status
// @Tags ProjectJoined
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param request body UpdateStatusRequest true "Target status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projectjoined/{id}/status [put]
func UpdateJoinedProjectStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidStatusValue)
		return
	}

	submission, rejected, err := services.UpdateSubmissionStatus(c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, ErrInvalidStatusValue)
		case errors.Is(err, services.ErrSubmissionNotFound):
			response.Error(c, http.StatusNotFound, ErrJoinedProjectNotFound)
		default:
			log.Printf("Failed to update status of submission %s: %v", c.Param("id"), err)
			response.Error(c, http.StatusInternalServerError, ErrFailedUpdateStatus)
		}
		return
	}

	if rejected > 0 {
		log.Printf("Submission %s accepted, %d pending sibling(s) rejected", submission.ID, rejected)
	}

	go realtime.BroadcastSubmissionUpdate(realtime.SubmissionUpdate{
		ProjectID:  submission.ProjectID,
		Submission: submission,
		UpdateType: "status",
	})
	go notifySubmitter(submission)

	c.JSON(http.StatusOK, gin.H{
		"message":       "Project status updated",
		"joinedProject": submission,
	})
}

// DeleteJoinedProject hard-deletes a submission
// @Summary Delete a joined project
// @Tags ProjectJoined
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projectjoined/{id} [delete]
func DeleteJoinedProject(c *gin.Context) {
	if err := services.DeleteSubmission(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrSubmissionNotFound) {
			response.Error(c, http.StatusNotFound, ErrJoinedProjectNotFound)
			return
		}
		log.Printf("Failed to delete submission %s: %v", c.Param("id"), err)
		response.Error(c, http.StatusInternalServerError, ErrFailedDelete)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Joined project deleted successfully"})
}

func notifySubmitter(submission models.Submission) {
	emailService := services.NewEmailService()
	if !emailService.Enabled() {
		return
	}
	if err := emailService.SendStatusUpdateEmail(submission.UserEmail, submission.Title, submission.Status); err != nil {
		log.Printf("Failed to send status email to %s: %v", submission.UserEmail, err)
	}
}
