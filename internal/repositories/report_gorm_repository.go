package repositories

import (
	"fmt"

	"moreyacht/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMReportRepository is a GORM implementation of ReportRepository.
type GORMReportRepository struct {
	db *gorm.DB
}

// NewGORMReportRepository creates a new instance of GORMReportRepository.
func NewGORMReportRepository(db *gorm.DB) *GORMReportRepository {
	return &GORMReportRepository{
		db: db,
	}
}

// ListReports retrieves all saved reports from the database.
func (r *GORMReportRepository) ListReports() ([]models.CustomReport, error) {
	var reports []models.CustomReport
	if err := r.db.Order("created_at").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// GetReportByID retrieves a single saved report by its ID from the database.
func (r *GORMReportRepository) GetReportByID(id string) (*models.CustomReport, error) {
	var report models.CustomReport
	if err := r.db.First(&report, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("report with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get report by ID %s: %w", id, err)
	}
	return &report, nil
}

// CreateReport creates a new saved report in the database.
func (r *GORMReportRepository) CreateReport(report *models.CustomReport) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if err := r.db.Create(report).Error; err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// UpdateReport updates an existing saved report in the database.
func (r *GORMReportRepository) UpdateReport(report *models.CustomReport) error {
	res := r.db.Save(report)
	if res.Error != nil {
		return fmt.Errorf("failed to update report: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("report with ID %s: %w", report.ID, ErrNotFound)
	}
	return nil
}

// DeleteReport deletes a saved report by its ID from the database.
func (r *GORMReportRepository) DeleteReport(id string) error {
	res := r.db.Delete(&models.CustomReport{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete report: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("report with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// ListTemplates retrieves all report templates from the database.
func (r *GORMReportRepository) ListTemplates() ([]models.ReportTemplate, error) {
	var templates []models.ReportTemplate
	if err := r.db.Order("created_at").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to list report templates: %w", err)
	}
	return templates, nil
}

// CreateTemplate creates a new report template in the database.
func (r *GORMReportRepository) CreateTemplate(template *models.ReportTemplate) error {
	if template.ID == "" {
		template.ID = uuid.New().String()
	}
	if err := r.db.Create(template).Error; err != nil {
		return fmt.Errorf("failed to create report template: %w", err)
	}
	return nil
}
