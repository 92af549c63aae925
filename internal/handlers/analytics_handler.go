package handlers

import (
	"fmt"
	"log"
	"time"

	"moreyacht/internal/export"
	"moreyacht/internal/models"
	"moreyacht/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler handles back-office analytics, reports and exports.
type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
	validate         *validator.Validate
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		validate:         validator.New(),
	}
}

// RegisterRoutes registers the analytics routes under the admin group.
func (h *AnalyticsHandler) RegisterRoutes(router fiber.Router) {
	analyticsRoutes := router.Group("/analytics")
	analyticsRoutes.Get("/bookings", h.HandleBookingStats)
	analyticsRoutes.Get("/forecast", h.HandleForecast)
	analyticsRoutes.Get("/metrics", h.HandleMetrics)
	analyticsRoutes.Get("/export/csv", h.HandleExportCSV)
	analyticsRoutes.Get("/export/pdf", h.HandleExportPDF)

	reportRoutes := router.Group("/reports")
	reportRoutes.Get("/", h.HandleListReports)
	reportRoutes.Post("/", h.HandleCreateReport)
	reportRoutes.Get("/templates", h.HandleListTemplates)
	reportRoutes.Post("/templates", h.HandleCreateTemplate)
	reportRoutes.Get("/:id", h.HandleGetReport)
	reportRoutes.Delete("/:id", h.HandleDeleteReport)
	reportRoutes.Post("/:id/run", h.HandleRunReport)
	reportRoutes.Post("/:id/schedule", h.HandleScheduleReport)
	reportRoutes.Post("/:id/send", h.HandleSendReport)
}

// ScheduleReportRequest configures recurring delivery of a report.
type ScheduleReportRequest struct {
	Frequency  string   `json:"frequency" validate:"required,oneof=daily weekly monthly quarterly"`
	Delivery   string   `json:"delivery" validate:"required,oneof=email download dashboard"`
	Recipients []string `json:"recipients" validate:"omitempty,dive,email"`
}

// SendReportRequest carries the recipients for a one-off email delivery.
type SendReportRequest struct {
	Recipients []string `json:"recipients" validate:"required,min=1,dive,email"`
}

// statsPeriod reads the dateFrom/dateTo query pair, defaulting to the
// trailing twelve months.
func statsPeriod(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(-1, 0, 0)
	to := now

	if v := c.Query("dateFrom"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid dateFrom: %w", err)
		}
		from = t
	}
	if v := c.Query("dateTo"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid dateTo: %w", err)
		}
		to = t
	}
	return from, to, nil
}

// HandleBookingStats returns aggregated booking statistics for a period,
// optionally with a comparison against the preceding period of equal length.
func (h *AnalyticsHandler) HandleBookingStats(c *fiber.Ctx) error {
	from, to, err := statsPeriod(c)
	if err != nil {
		return failJSON(c, "Invalid period", err)
	}

	stats, err := h.analyticsService.GetBookingStats(from, to, c.QueryBool("compare"))
	if err != nil {
		log.Printf("Error computing booking stats: %v", err)
		return failJSON(c, "Could not compute statistics", err)
	}

	return c.JSON(stats)
}

// HandleForecast projects revenue for the next months from recent history.
func (h *AnalyticsHandler) HandleForecast(c *fiber.Ctx) error {
	months := c.QueryInt("months", 3)

	forecast, err := h.analyticsService.ForecastRevenue(months)
	if err != nil {
		log.Printf("Error forecasting revenue: %v", err)
		return failJSON(c, "Could not forecast revenue", err)
	}

	return c.JSON(forecast)
}

// HandleMetrics lists the metrics available for custom reports.
func (h *AnalyticsHandler) HandleMetrics(c *fiber.Ctx) error {
	return c.JSON(h.analyticsService.AvailableMetrics())
}

// HandleExportCSV streams the booking statistics for a period as CSV.
func (h *AnalyticsHandler) HandleExportCSV(c *fiber.Ctx) error {
	from, to, err := statsPeriod(c)
	if err != nil {
		return failJSON(c, "Invalid period", err)
	}

	stats, err := h.analyticsService.GetBookingStats(from, to, false)
	if err != nil {
		log.Printf("Error computing booking stats for CSV export: %v", err)
		return failJSON(c, "Could not export statistics", err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="booking-stats.csv"`)
	if err := export.WriteStatsCSV(c.Response().BodyWriter(), stats, from, to); err != nil {
		log.Printf("Error writing stats CSV: %v", err)
		return failJSON(c, "Could not export statistics", err)
	}
	return nil
}

// HandleExportPDF streams the booking statistics for a period as PDF.
func (h *AnalyticsHandler) HandleExportPDF(c *fiber.Ctx) error {
	from, to, err := statsPeriod(c)
	if err != nil {
		return failJSON(c, "Invalid period", err)
	}

	stats, err := h.analyticsService.GetBookingStats(from, to, false)
	if err != nil {
		log.Printf("Error computing booking stats for PDF export: %v", err)
		return failJSON(c, "Could not export statistics", err)
	}

	doc, err := export.StatsPDF(stats, from, to)
	if err != nil {
		log.Printf("Error rendering stats PDF: %v", err)
		return failJSON(c, "Could not export statistics", err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="booking-stats.pdf"`)
	return c.Send(doc)
}

// HandleListReports lists the saved custom reports.
func (h *AnalyticsHandler) HandleListReports(c *fiber.Ctx) error {
	reports, err := h.analyticsService.ListReports()
	if err != nil {
		log.Printf("Error listing reports: %v", err)
		return failJSON(c, "Could not list reports", err)
	}

	return c.JSON(reports)
}

// HandleGetReport returns a single saved report.
func (h *AnalyticsHandler) HandleGetReport(c *fiber.Ctx) error {
	id := c.Params("id")

	report, err := h.analyticsService.GetReportByID(id)
	if err != nil {
		log.Printf("Error getting report %s: %v", id, err)
		return failJSON(c, "Could not get report", err)
	}

	return c.JSON(report)
}

// HandleCreateReport saves a custom report definition.
func (h *AnalyticsHandler) HandleCreateReport(c *fiber.Ctx) error {
	var report models.CustomReport
	if err := c.BodyParser(&report); err != nil {
		log.Printf("Error parsing report body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(report); err != nil {
		return validationError(c, err)
	}

	if err := h.analyticsService.CreateReport(&report); err != nil {
		log.Printf("Error creating report: %v", err)
		return failJSON(c, "Could not create report", err)
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

// HandleDeleteReport removes a saved report.
func (h *AnalyticsHandler) HandleDeleteReport(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.analyticsService.DeleteReport(id); err != nil {
		log.Printf("Error deleting report %s: %v", id, err)
		return failJSON(c, "Could not delete report", err)
	}

	return c.JSON(fiber.Map{
		"message": "Report deleted successfully",
	})
}

// HandleRunReport evaluates a saved report over its stored period.
func (h *AnalyticsHandler) HandleRunReport(c *fiber.Ctx) error {
	id := c.Params("id")

	stats, err := h.analyticsService.RunReport(id)
	if err != nil {
		log.Printf("Error running report %s: %v", id, err)
		return failJSON(c, "Could not run report", err)
	}

	return c.JSON(stats)
}

// HandleScheduleReport configures recurring delivery of a saved report.
func (h *AnalyticsHandler) HandleScheduleReport(c *fiber.Ctx) error {
	id := c.Params("id")

	var req ScheduleReportRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing schedule body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	report, err := h.analyticsService.ScheduleReport(id, req.Frequency, req.Delivery, req.Recipients)
	if err != nil {
		log.Printf("Error scheduling report %s: %v", id, err)
		return failJSON(c, "Could not schedule report", err)
	}

	return c.JSON(report)
}

// HandleSendReport queues a one-off email delivery of a saved report.
func (h *AnalyticsHandler) HandleSendReport(c *fiber.Ctx) error {
	id := c.Params("id")

	var req SendReportRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing send body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	if err := h.analyticsService.SendReportByEmail(id, req.Recipients); err != nil {
		log.Printf("Error sending report %s: %v", id, err)
		return failJSON(c, "Could not send report", err)
	}

	return c.JSON(fiber.Map{
		"message": "Report queued for delivery",
	})
}

// HandleListTemplates lists reusable report templates.
func (h *AnalyticsHandler) HandleListTemplates(c *fiber.Ctx) error {
	templates, err := h.analyticsService.ListTemplates()
	if err != nil {
		log.Printf("Error listing report templates: %v", err)
		return failJSON(c, "Could not list templates", err)
	}

	return c.JSON(templates)
}

// HandleCreateTemplate saves a reusable report template.
func (h *AnalyticsHandler) HandleCreateTemplate(c *fiber.Ctx) error {
	var template models.ReportTemplate
	if err := c.BodyParser(&template); err != nil {
		log.Printf("Error parsing template body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(template); err != nil {
		return validationError(c, err)
	}

	if err := h.analyticsService.CreateTemplate(&template); err != nil {
		log.Printf("Error creating report template: %v", err)
		return failJSON(c, "Could not create template", err)
	}

	return c.Status(fiber.StatusCreated).JSON(template)
}
