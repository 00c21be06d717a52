package models

// Company represents an organization that posts challenges. The ID is
// derived from the company name (lowercased, spaces stripped) at
// registration time.
type Company struct {
	ID    string `gorm:"type:varchar(100);primary_key" json:"id"`
	Name  string `gorm:"type:varchar(100);not null" json:"name"`
	Email string `gorm:"type:varchar(255);unique;not null" json:"email"`
	Image string `gorm:"type:varchar(255)" json:"image"`
}
