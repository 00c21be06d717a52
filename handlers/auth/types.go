package auth

// Constants for error messages
const (
	ErrInvalidCredentials  = "Invalid email or password"
	ErrEmailInUse          = "Email already exists"
	ErrHashPasswordFailed  = "Failed to hash password"
	ErrUserCreateFailed    = "Failed to create user"
	ErrTokenGenerateFailed = "Failed to generate token"
	ErrUserNotFound        = "User not found"
)

// LoginRequest model for the login endpoint
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest model for registration. Role defaults to "user" when
// absent; it is never inferred from the name or email.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Image    string `json:"image"`
	Role     string `json:"role"`
}

// AuthResponse model for authentication responses
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
	Role  string `json:"role"`
	Token string `json:"token,omitempty"`
}
