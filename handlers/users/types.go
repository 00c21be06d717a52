package users

// Error messages constants
const (
	ErrUserNotFound       = "User not found"
	ErrUnauthorized       = "Unauthorized access"
	ErrFailedToGetUsers   = "Failed to fetch users"
	ErrFailedToUpdateUser = "Failed to update user"
	ErrFailedToDeleteUser = "Failed to delete user"
)

// UserProfileUpdate is the payload for editing an account; zero-value
// fields are left unchanged. Only admins may change roles.
type UserProfileUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
	Role  string `json:"role"`
}
