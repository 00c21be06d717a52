package models

// Project represents a challenge posted by a company. CompanyID is a
// string reference validated at the service layer, not a database foreign
// key, so companies can be registered out of band.
type Project struct {
	ID          string `gorm:"type:varchar(100);primary_key" json:"_id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Location    string `gorm:"type:varchar(100);not null" json:"location"`
	Difficulty  string `gorm:"type:varchar(50);not null" json:"difficulty"`
	CompanyID   string `gorm:"type:varchar(100);not null;column:company_id" json:"companyId"`
	Description string `gorm:"type:text;not null" json:"description"`
	Prize       string `gorm:"type:varchar(50);not null" json:"prize"`
	Duration    string `gorm:"type:varchar(50);not null" json:"duration"`
	PostedDate  int64  `gorm:"not null;column:posted_date" json:"postedDate"`
	Category    string `gorm:"type:varchar(100);not null" json:"category"`
	Visible     bool   `gorm:"not null;default:true" json:"visible"`
}
