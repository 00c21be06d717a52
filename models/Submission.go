package models

import "time"

// Submission statuses
const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

// Submission kinds. A challenge submission is created when a user joins a
// project through the challenge flow; a direct submission covers the
// plain solution-link apply flow. Both share one lifecycle.
const (
	KindChallenge = "challenge"
	KindDirect    = "direct"
)

// Submission represents a user's entry for a project challenge. A user can
// hold at most one submission per project, enforced by the composite
// unique index on (user_id, project_id).
type Submission struct {
	ID             string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"_id"`
	CompanyID      string    `gorm:"type:varchar(100);not null;column:company_id" json:"companyId"`
	ProjectID      string    `gorm:"type:varchar(100);not null;column:project_id;uniqueIndex:idx_submissions_user_project" json:"projectId"`
	Title          string    `gorm:"type:varchar(255);not null" json:"title"`
	Location       string    `gorm:"type:varchar(100);not null" json:"location"`
	Date           time.Time `gorm:"type:timestamp;not null" json:"date"`
	Status         string    `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	UserID         string    `gorm:"type:uuid;not null;column:user_id;uniqueIndex:idx_submissions_user_project" json:"userId"`
	UserEmail      string    `gorm:"type:varchar(255);not null;column:user_email" json:"userEmail"`
	Description    string    `gorm:"type:text;not null" json:"description"`
	SubmissionUrl  string    `gorm:"type:varchar(512);column:submission_url" json:"submissionUrl"`
	SubmissionFile string    `gorm:"type:varchar(512);column:submission_file" json:"submissionFile"`
	Kind           string    `gorm:"type:varchar(20);not null;default:'challenge'" json:"kind"`
}

// ValidStatus reports whether s is one of the three lifecycle statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}
