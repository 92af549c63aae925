package repositories

import (
	"fmt"
	"sort"
	"sync"

	"moreyacht/internal/models"

	"github.com/google/uuid"
)

// MockReportRepository is an in-memory implementation of ReportRepository.
type MockReportRepository struct {
	reports   map[string]models.CustomReport
	templates map[string]models.ReportTemplate
	mu        sync.RWMutex
}

// NewMockReportRepository creates a new instance of MockReportRepository.
func NewMockReportRepository() *MockReportRepository {
	return &MockReportRepository{
		reports:   make(map[string]models.CustomReport),
		templates: make(map[string]models.ReportTemplate),
	}
}

// ListReports returns all saved reports sorted by name.
func (r *MockReportRepository) ListReports() ([]models.CustomReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reportList := make([]models.CustomReport, 0, len(r.reports))
	for _, rep := range r.reports {
		reportList = append(reportList, rep)
	}
	sort.Slice(reportList, func(i, j int) bool { return reportList[i].Name < reportList[j].Name })
	return reportList, nil
}

// GetReportByID returns a saved report by its ID.
func (r *MockReportRepository) GetReportByID(id string) (*models.CustomReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, ok := r.reports[id]
	if !ok {
		return nil, fmt.Errorf("report with ID %s: %w", id, ErrNotFound)
	}
	return &report, nil
}

// CreateReport adds a new saved report.
func (r *MockReportRepository) CreateReport(report *models.CustomReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	r.reports[report.ID] = *report
	return nil
}

// UpdateReport modifies an existing saved report.
func (r *MockReportRepository) UpdateReport(report *models.CustomReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.reports[report.ID]
	if !ok {
		return fmt.Errorf("report with ID %s: %w", report.ID, ErrNotFound)
	}
	r.reports[report.ID] = *report
	return nil
}

// DeleteReport removes a saved report by its ID.
func (r *MockReportRepository) DeleteReport(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.reports[id]
	if !ok {
		return fmt.Errorf("report with ID %s: %w", id, ErrNotFound)
	}
	delete(r.reports, id)
	return nil
}

// ListTemplates returns all report templates sorted by name.
func (r *MockReportRepository) ListTemplates() ([]models.ReportTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	templateList := make([]models.ReportTemplate, 0, len(r.templates))
	for _, t := range r.templates {
		templateList = append(templateList, t)
	}
	sort.Slice(templateList, func(i, j int) bool { return templateList[i].Name < templateList[j].Name })
	return templateList, nil
}

// CreateTemplate adds a new report template.
func (r *MockReportRepository) CreateTemplate(template *models.ReportTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if template.ID == "" {
		template.ID = uuid.New().String()
	}
	r.templates[template.ID] = *template
	return nil
}
