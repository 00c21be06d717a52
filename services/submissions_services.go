package services

import (
	"errors"
	"strings"
	"time"

	"api/database"
	"api/metrics"
	"api/models"

	"gorm.io/gorm"
)

// Lifecycle errors surfaced to the HTTP layer
var (
	ErrSubmissionNotFound  = errors.New("joined project not found")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrDuplicateSubmission = errors.New("you have already joined this project")
	ErrMissingSubmission   = errors.New("either a submission URL or a submission file is required")
	ErrDescriptionTooShort = errors.New("description should be at least 20 characters")
	ErrProjectNotFound     = errors.New("project not found")
	ErrUserNotFound        = errors.New("user not found")
)

// MinDescriptionLength is the minimum accepted solution write-up length
const MinDescriptionLength = 20

// TrustStatement is the marketplace boilerplate recorded with every
// submission description. Whether it is a binding business record or
// cosmetic copy is an open product question; the backend only guarantees
// it is stored verbatim ahead of the user's text.
const TrustStatement = "I trust I give 10% for hire next\n" +
	"I trust I will give the full prize to the one who have best solution for me\n\n"

// JoinInput carries the user-provided fields of a join request. Title,
// location and company are denormalized from the referenced project, not
// trusted from the caller.
type JoinInput struct {
	ProjectID      string
	UserID         string
	UserEmail      string
	Description    string
	SubmissionUrl  string
	SubmissionFile string
	Kind           string
}

// JoinProject validates a join request and persists a Pending submission.
// The referenced project and user must exist, and a user can join a
// project only once: a friendly pre-check catches the common case and the
// composite unique index turns the concurrent-join race into a
// deterministic duplicate error.
func JoinProject(input JoinInput) (models.Submission, error) {
	if len(strings.TrimSpace(input.Description)) < MinDescriptionLength {
		return models.Submission{}, ErrDescriptionTooShort
	}
	if input.SubmissionUrl == "" && input.SubmissionFile == "" {
		return models.Submission{}, ErrMissingSubmission
	}

	var project models.Project
	if err := database.DB.First(&project, "id = ?", input.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Submission{}, ErrProjectNotFound
		}
		return models.Submission{}, err
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", input.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Submission{}, ErrUserNotFound
		}
		return models.Submission{}, err
	}

	var existing models.Submission
	err := database.DB.Where("user_id = ? AND project_id = ?", input.UserID, input.ProjectID).
		First(&existing).Error
	if err == nil {
		return models.Submission{}, ErrDuplicateSubmission
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Submission{}, err
	}

	kind := input.Kind
	if kind == "" {
		kind = models.KindChallenge
	}

	submission := models.Submission{
		CompanyID:      project.CompanyID,
		ProjectID:      project.ID,
		Title:          project.Title,
		Location:       project.Location,
		Date:           time.Now(),
		Status:         models.StatusPending,
		UserID:         input.UserID,
		UserEmail:      input.UserEmail,
		Description:    TrustStatement + strings.TrimSpace(input.Description),
		SubmissionUrl:  input.SubmissionUrl,
		SubmissionFile: input.SubmissionFile,
		Kind:           kind,
	}

	start := time.Now()
	if err := database.DB.Create(&submission).Error; err != nil {
		if isDuplicateKeyError(err) {
			return models.Submission{}, ErrDuplicateSubmission
		}
		return models.Submission{}, err
	}
	metrics.RecordDBOperation("create", "submissions", start)
	metrics.SubmissionsJoined.Inc()

	return submission, nil
}

// UpdateSubmissionStatus transitions a submission to newStatus. When the
// target moves into Accepted, every other Pending submission of the same
// project is rejected in the same transaction, so a project can never end
// up with one winner and stray pending siblings. Returns the updated
// record and the number of cascade-rejected siblings.
func UpdateSubmissionStatus(id, newStatus string) (models.Submission, int64, error) {
	if !models.ValidStatus(newStatus) {
		return models.Submission{}, 0, ErrInvalidStatus
	}

	var submission models.Submission
	var rejected int64

	start := time.Now()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&submission, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubmissionNotFound
			}
			return err
		}

		submission.Status = newStatus
		if err := tx.Model(&models.Submission{}).Where("id = ?", id).
			Update("status", newStatus).Error; err != nil {
			return err
		}

		if newStatus == models.StatusAccepted {
			result := tx.Model(&models.Submission{}).
				Where("project_id = ? AND id <> ? AND status = ?",
					submission.ProjectID, id, models.StatusPending).
				Update("status", models.StatusRejected)
			if result.Error != nil {
				return result.Error
			}
			rejected = result.RowsAffected
		}

		return nil
	})
	if err != nil {
		return models.Submission{}, 0, err
	}
	metrics.RecordDBOperation("update", "submissions", start)

	metrics.SubmissionTransitions.WithLabelValues(newStatus).Inc()
	if rejected > 0 {
		metrics.CascadeRejections.Add(float64(rejected))
	}

	return submission, rejected, nil
}

// GetAllSubmissions returns every submission, newest first
func GetAllSubmissions() ([]models.Submission, error) {
	var submissions []models.Submission
	err := database.DB.Order("date DESC").Find(&submissions).Error
	return submissions, err
}

// GetUserSubmissions returns all submissions created by a user, newest first
func GetUserSubmissions(userID string) ([]models.Submission, error) {
	var submissions []models.Submission
	err := database.DB.Where("user_id = ?", userID).
		Order("date DESC").Find(&submissions).Error
	return submissions, err
}

// GetProjectSubmissions returns all submissions for a project, newest first
func GetProjectSubmissions(projectID string) ([]models.Submission, error) {
	var submissions []models.Submission
	err := database.DB.Where("project_id = ?", projectID).
		Order("date DESC").Find(&submissions).Error
	return submissions, err
}

// GetSubmission fetches a single submission by id
func GetSubmission(id string) (models.Submission, error) {
	var submission models.Submission
	if err := database.DB.First(&submission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Submission{}, ErrSubmissionNotFound
		}
		return models.Submission{}, err
	}
	return submission, nil
}

// DeleteSubmission hard-deletes a submission
func DeleteSubmission(id string) error {
	result := database.DB.Delete(&models.Submission{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

func isDuplicateKeyError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key value")
}
