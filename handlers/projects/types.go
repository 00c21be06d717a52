package projects

// Error message constants
const (
	ErrProjectNotFound     = "Project not found"
	ErrCompanyNotFound     = "Referenced company does not exist"
	ErrInvalidRequest      = "Invalid request data"
	ErrFailedFetch         = "Failed to fetch projects"
	ErrFailedCreate        = "Failed to create project"
	ErrFailedUpdate        = "Failed to update project"
	ErrFailedDelete        = "Failed to delete project"
	ErrFailedToggleVisible = "Failed to toggle project visibility"
)

// CreateProjectRequest is the payload for posting a new challenge
type CreateProjectRequest struct {
	ID          string `json:"_id"`
	Title       string `json:"title" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Difficulty  string `json:"difficulty" binding:"required"`
	CompanyID   string `json:"companyId" binding:"required"`
	Description string `json:"description" binding:"required"`
	Prize       string `json:"prize" binding:"required"`
	Duration    string `json:"duration" binding:"required"`
	PostedDate  int64  `json:"postedDate"`
	Category    string `json:"category" binding:"required"`
	Visible     *bool  `json:"visible"`
}

// UpdateProjectRequest is the payload for editing a challenge; zero-value
// fields are left unchanged
type UpdateProjectRequest struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Difficulty  string `json:"difficulty"`
	Description string `json:"description"`
	Prize       string `json:"prize"`
	Duration    string `json:"duration"`
	Category    string `json:"category"`
	Visible     *bool  `json:"visible"`
}

// ToggleVisibilityRequest optionally pins the visible flag instead of
// flipping it
type ToggleVisibilityRequest struct {
	Visible *bool `json:"visible"`
}
