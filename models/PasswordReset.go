package models

import "time"

// PasswordReset stores a single-use reset token. Tokens expire one hour
// after CreatedAt and are deleted once consumed.
type PasswordReset struct {
	ID        string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null" json:"user_id"`
	User      User      `gorm:"foreignkey:UserID" json:"-"`
	Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
	CreatedAt time.Time `json:"created_at"`
}
