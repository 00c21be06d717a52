package services

import (
	"errors"
	"strings"

	"api/database"
	"api/models"

	"gorm.io/gorm"
)

var ErrCompanyNotFound = errors.New("company not found")

// GetProject fetches a project by id
func GetProject(id string) (models.Project, error) {
	var project models.Project
	if err := database.DB.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrProjectNotFound
		}
		return models.Project{}, err
	}
	return project, nil
}

// CompanyExists reports whether a company id references a registered
// company. Project references are plain strings, so this check is the
// only referential guard before a write embeds a company id.
func CompanyExists(id string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Company{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CompanyIDFromName derives the stable company identifier used across
// project and submission references
func CompanyIDFromName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "")
}

// ToggleProjectVisibility flips or sets the visible flag of a project and
// returns the updated record
func ToggleProjectVisibility(id string, visible *bool) (models.Project, error) {
	var project models.Project
	if err := database.DB.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrProjectNotFound
		}
		return models.Project{}, err
	}

	if visible != nil {
		project.Visible = *visible
	} else {
		project.Visible = !project.Visible
	}

	if err := database.DB.Model(&models.Project{}).Where("id = ?", id).
		Update("visible", project.Visible).Error; err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// ManagedProject is the per-project dashboard row: the project joined to
// its participant count. It replaces the source system's separately
// maintained manage-projects collection with a derived view.
type ManagedProject struct {
	ID           string `json:"_id"`
	Title        string `json:"title"`
	Date         int64  `json:"date"`
	Location     string `json:"location"`
	Participants int64  `json:"participants"`
	CompanyID    string `json:"companyId"`
	Visible      bool   `json:"visible"`
}

// GetManagedProjects aggregates projects with their submission counts,
// optionally scoped to one company
func GetManagedProjects(companyID string) ([]ManagedProject, error) {
	query := database.DB.Model(&models.Project{}).
		Select(`projects.id, projects.title, projects.posted_date AS date,
			projects.location, projects.company_id, projects.visible,
			COUNT(submissions.id) AS participants`).
		Joins("LEFT JOIN submissions ON submissions.project_id = projects.id").
		Group("projects.id")

	if companyID != "" {
		query = query.Where("projects.company_id = ?", companyID)
	}

	var rows []ManagedProject
	if err := query.Order("projects.posted_date DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
