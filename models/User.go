package models

// Roles a user account can hold
const (
	RoleUser    = "user"
	RoleCompany = "company"
	RoleAdmin   = "admin"
)

// User represents an account that can join challenges or, with the company
// or admin role, manage them
type User struct {
	ID       string `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Email    string `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	Image    string `gorm:"type:varchar(255)" json:"image"`
	Role     string `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
}
