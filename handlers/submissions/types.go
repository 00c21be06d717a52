package submissions

// Error message constants
const (
	ErrJoinedProjectNotFound = "Joined project not found"
	ErrInvalidStatusValue    = "Invalid status value"
	ErrAlreadyJoined         = "You have already joined this project"
	ErrFailedFetch           = "Error fetching joined projects"
	ErrFailedJoin            = "Error joining project"
	ErrFailedUpdateStatus    = "Error updating joined project status"
	ErrFailedDelete          = "Error deleting joined project"
	ErrFailedExport          = "Failed to export joined projects"
)

// JoinProjectRequest is the payload for joining a challenge. Title,
// location and company id are derived from the referenced project on the
// server; values sent by older clients are ignored.
type JoinProjectRequest struct {
	ProjectID      string `json:"projectId"`
	UserID         string `json:"userId"`
	UserEmail      string `json:"userEmail"`
	Description    string `json:"description"`
	SubmissionUrl  string `json:"submissionUrl"`
	SubmissionFile string `json:"submissionFile"`
	Kind           string `json:"kind"`
}

// UpdateStatusRequest carries the target lifecycle status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
