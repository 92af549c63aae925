package repositories

import "moreyacht/internal/models"

// ReportRepository defines the interface for saved report and report
// template data access.
type ReportRepository interface {
	ListReports() ([]models.CustomReport, error)
	GetReportByID(id string) (*models.CustomReport, error)
	CreateReport(report *models.CustomReport) error
	UpdateReport(report *models.CustomReport) error
	DeleteReport(id string) error

	ListTemplates() ([]models.ReportTemplate, error)
	CreateTemplate(template *models.ReportTemplate) error
}
