package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"moreyacht/internal/models"
	"moreyacht/internal/repositories"

	"github.com/google/uuid"
)

const monthKeyFormat = "2006-01"

// availableMetrics is the fixed catalog of metrics selectable in custom
// reports.
var availableMetrics = []models.ReportMetric{
	{ID: "totalBookings", Name: "Total bookings", Category: "bookings", Description: "Number of bookings in the period"},
	{ID: "completedBookings", Name: "Completed bookings", Category: "bookings", Description: "Number of successfully completed bookings"},
	{ID: "cancelledBookings", Name: "Cancelled bookings", Category: "bookings", Description: "Number of cancelled bookings"},
	{ID: "revenue", Name: "Total revenue", Category: "financial", Description: "Sum of confirmed and completed booking payments"},
	{ID: "averageBookingValue", Name: "Average booking value", Category: "financial", Description: "Average price of a booking"},
	{ID: "conversionRate", Name: "Conversion rate", Category: "bookings", Description: "Share of bookings that completed"},
	{ID: "repeatCustomerRate", Name: "Repeat customer rate", Category: "customers", Description: "Share of customers with more than one booking"},
	{ID: "revenueByMonth", Name: "Revenue by month", Category: "financial", Description: "Monthly revenue breakdown"},
	{ID: "popularYachts", Name: "Popular yachts", Category: "bookings", Description: "Yachts ranked by booking count"},
	{ID: "revenueForecast", Name: "Revenue forecast", Category: "financial", Description: "Projected revenue for upcoming periods"},
}

// AnalyticsService aggregates booking statistics and manages saved reports.
type AnalyticsService struct {
	bookingRepo repositories.BookingRepository
	yachtRepo   repositories.YachtRepository
	reportRepo  repositories.ReportRepository
	mqClient    EventPublisher
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(
	bookingRepo repositories.BookingRepository,
	yachtRepo repositories.YachtRepository,
	reportRepo repositories.ReportRepository,
	mqClient EventPublisher,
) *AnalyticsService {
	return &AnalyticsService{
		bookingRepo: bookingRepo,
		yachtRepo:   yachtRepo,
		reportRepo:  reportRepo,
		mqClient:    mqClient,
	}
}

// AvailableMetrics returns the metric catalog.
func (s *AnalyticsService) AvailableMetrics() []models.ReportMetric {
	metrics := make([]models.ReportMetric, len(availableMetrics))
	copy(metrics, availableMetrics)
	return metrics
}

// GetBookingStats aggregates bookings created within [from, to]. When
// compare is set, the Comparison block holds the same aggregation over the
// preceding period of equal length.
func (s *AnalyticsService) GetBookingStats(from, to time.Time, compare bool) (*models.BookingStats, error) {
	stats, err := s.aggregate(from, to)
	if err != nil {
		return nil, err
	}

	if compare {
		length := to.Sub(from)
		prev, err := s.aggregate(from.Add(-length), from)
		if err != nil {
			return nil, err
		}
		stats.Comparison = prev
	}
	return stats, nil
}

func (s *AnalyticsService) aggregate(from, to time.Time) (*models.BookingStats, error) {
	bookings, err := s.bookingRepo.List(models.BookingFilter{})
	if err != nil {
		return nil, err
	}

	stats := &models.BookingStats{
		RevenueByMonth: []models.MonthRevenue{},
		PopularYachts:  []models.YachtPopularity{},
	}
	monthly := make(map[string]float64)
	perYacht := make(map[string]int)
	perCustomer := make(map[string]int)
	var paidBookings int

	for _, b := range bookings {
		if b.CreatedAt.Before(from) || b.CreatedAt.After(to) {
			continue
		}

		stats.TotalBookings++
		perYacht[b.YachtID]++
		perCustomer[b.UserID]++

		switch b.Status {
		case models.StatusCompleted:
			stats.CompletedBookings++
		case models.StatusCancelled:
			stats.CancelledBookings++
		}

		// Cancelled bookings never contribute revenue; pending ones are not
		// yet paid.
		if b.Status == models.StatusConfirmed || b.Status == models.StatusCompleted {
			stats.Revenue += b.TotalPrice
			monthly[b.CreatedAt.Format(monthKeyFormat)] += b.TotalPrice
			paidBookings++
		}
	}

	if paidBookings > 0 {
		stats.AverageBookingValue = stats.Revenue / float64(paidBookings)
	}
	if stats.TotalBookings > 0 {
		stats.ConversionRate = float64(stats.CompletedBookings) / float64(stats.TotalBookings) * 100
	}
	if len(perCustomer) > 0 {
		repeat := 0
		for _, n := range perCustomer {
			if n > 1 {
				repeat++
			}
		}
		stats.RepeatCustomerRate = float64(repeat) / float64(len(perCustomer)) * 100
	}

	months := make([]string, 0, len(monthly))
	for month := range monthly {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		stats.RevenueByMonth = append(stats.RevenueByMonth, models.MonthRevenue{Month: month, Value: monthly[month]})
	}

	stats.PopularYachts = s.rankYachts(perYacht)
	return stats, nil
}

// rankYachts resolves yacht names and returns the top five by booking count.
func (s *AnalyticsService) rankYachts(perYacht map[string]int) []models.YachtPopularity {
	ranking := make([]models.YachtPopularity, 0, len(perYacht))
	for yachtID, count := range perYacht {
		name := yachtID
		if yacht, err := s.yachtRepo.GetByID(yachtID); err == nil {
			name = yacht.Name
		}
		ranking = append(ranking, models.YachtPopularity{YachtID: yachtID, YachtName: name, Bookings: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Bookings != ranking[j].Bookings {
			return ranking[i].Bookings > ranking[j].Bookings
		}
		return ranking[i].YachtName < ranking[j].YachtName
	})
	if len(ranking) > 5 {
		ranking = ranking[:5]
	}
	return ranking
}

// ForecastRevenue projects monthly revenue for the given number of upcoming
// months from a linear fit over the trailing six months.
func (s *AnalyticsService) ForecastRevenue(months int) ([]models.RevenueForecast, error) {
	if months < 1 {
		return nil, fmt.Errorf("forecast months must be at least 1: %w", repositories.ErrInvalid)
	}

	const trailing = 6
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	from := firstOfMonth.AddDate(0, -trailing, 0)

	stats, err := s.aggregate(from, now)
	if err != nil {
		return nil, err
	}

	// Fill the trailing window so months without revenue weigh the fit down.
	history := make([]float64, trailing)
	byMonth := make(map[string]float64, len(stats.RevenueByMonth))
	for _, mr := range stats.RevenueByMonth {
		byMonth[mr.Month] = mr.Value
	}
	for i := 0; i < trailing; i++ {
		history[i] = byMonth[from.AddDate(0, i, 0).Format(monthKeyFormat)]
	}

	mean, slope := linearFit(history)

	forecast := make([]models.RevenueForecast, 0, months)
	for i := 1; i <= months; i++ {
		// x of the last history point is trailing-1; the fit is centered on
		// the window midpoint.
		projected := mean + slope*(float64(trailing-1)/2+float64(i))
		if projected < 0 {
			projected = 0
		}
		forecast = append(forecast, models.RevenueForecast{
			Month:       firstOfMonth.AddDate(0, i, 0).Format(monthKeyFormat),
			Projected:   projected,
			Optimistic:  projected * 1.15,
			Pessimistic: projected * 0.85,
		})
	}
	return forecast, nil
}

// linearFit returns the mean of the series and the least-squares slope per
// step, with x centered on the window midpoint.
func linearFit(series []float64) (mean, slope float64) {
	n := float64(len(series))
	if n == 0 {
		return 0, 0
	}

	var sum float64
	for _, v := range series {
		sum += v
	}
	mean = sum / n

	center := (n - 1) / 2
	var num, den float64
	for i, v := range series {
		dx := float64(i) - center
		num += dx * (v - mean)
		den += dx * dx
	}
	if den > 0 {
		slope = num / den
	}
	return mean, slope
}

// ListReports retrieves all saved reports.
func (s *AnalyticsService) ListReports() ([]models.CustomReport, error) {
	return s.reportRepo.ListReports()
}

// GetReportByID retrieves a single saved report.
func (s *AnalyticsService) GetReportByID(id string) (*models.CustomReport, error) {
	return s.reportRepo.GetReportByID(id)
}

// CreateReport validates and stores a custom report definition.
func (s *AnalyticsService) CreateReport(report *models.CustomReport) error {
	if err := s.checkMetrics(report.Metrics); err != nil {
		return err
	}
	if !report.DateTo.After(report.DateFrom) {
		return fmt.Errorf("report date range is empty: %w", repositories.ErrInvalid)
	}

	report.ID = uuid.New().String()
	report.CreatedAt = time.Now()
	report.UpdatedAt = report.CreatedAt
	return s.reportRepo.CreateReport(report)
}

// DeleteReport deletes a saved report by its ID.
func (s *AnalyticsService) DeleteReport(id string) error {
	return s.reportRepo.DeleteReport(id)
}

// RunReport computes booking stats over the saved report's date range.
func (s *AnalyticsService) RunReport(id string) (*models.BookingStats, error) {
	report, err := s.reportRepo.GetReportByID(id)
	if err != nil {
		return nil, err
	}
	return s.GetBookingStats(report.DateFrom, report.DateTo, false)
}

// ScheduleReport attaches a delivery schedule to a saved report.
func (s *AnalyticsService) ScheduleReport(id, frequency, delivery string, recipients []string) (*models.CustomReport, error) {
	switch frequency {
	case models.ScheduleDaily, models.ScheduleWeekly, models.ScheduleMonthly, models.ScheduleQuarterly:
	default:
		return nil, fmt.Errorf("unknown schedule %q: %w", frequency, repositories.ErrInvalid)
	}
	switch delivery {
	case models.DeliveryEmail, models.DeliveryDownload, models.DeliveryDashboard:
	default:
		return nil, fmt.Errorf("unknown delivery method %q: %w", delivery, repositories.ErrInvalid)
	}
	if delivery == models.DeliveryEmail && len(recipients) == 0 {
		return nil, fmt.Errorf("email delivery needs at least one recipient: %w", repositories.ErrInvalid)
	}

	report, err := s.reportRepo.GetReportByID(id)
	if err != nil {
		return nil, err
	}

	report.Schedule = frequency
	report.Delivery = delivery
	report.Recipients = recipients
	report.UpdatedAt = time.Now()
	if err := s.reportRepo.UpdateReport(report); err != nil {
		return nil, err
	}
	return report, nil
}

// SendReportByEmail publishes a report delivery event for the mail worker.
func (s *AnalyticsService) SendReportByEmail(id string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required: %w", repositories.ErrInvalid)
	}

	report, err := s.reportRepo.GetReportByID(id)
	if err != nil {
		return err
	}

	if s.mqClient == nil {
		return fmt.Errorf("report delivery is not configured")
	}
	body, err := json.Marshal(map[string]interface{}{
		"reportID":   report.ID,
		"name":       report.Name,
		"recipients": recipients,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal report delivery event: %w", err)
	}
	if err := s.mqClient.Publish("", "report.delivery", body); err != nil {
		return fmt.Errorf("failed to publish report delivery event: %w", err)
	}
	log.Printf("Queued report %s for delivery to %d recipients", report.ID, len(recipients))
	return nil
}

// ListTemplates retrieves all report templates.
func (s *AnalyticsService) ListTemplates() ([]models.ReportTemplate, error) {
	return s.reportRepo.ListTemplates()
}

// CreateTemplate validates and stores a report template.
func (s *AnalyticsService) CreateTemplate(template *models.ReportTemplate) error {
	if err := s.checkMetrics(template.Metrics); err != nil {
		return err
	}
	template.ID = uuid.New().String()
	template.CreatedAt = time.Now()
	return s.reportRepo.CreateTemplate(template)
}

func (s *AnalyticsService) checkMetrics(metrics []string) error {
	if len(metrics) == 0 {
		return fmt.Errorf("at least one metric is required: %w", repositories.ErrInvalid)
	}
	known := make(map[string]bool, len(availableMetrics))
	for _, m := range availableMetrics {
		known[m.ID] = true
	}
	for _, id := range metrics {
		if !known[id] {
			return fmt.Errorf("unknown metric %q: %w", id, repositories.ErrInvalid)
		}
	}
	return nil
}
