package services_test

import (
	"testing"
	"time"

	"moreyacht/internal/models"
	"moreyacht/internal/repositories"
	"moreyacht/internal/services"

	"github.com/stretchr/testify/assert"
)

func newAnalyticsFixture(t *testing.T) (*services.AnalyticsService, *repositories.MockBookingRepository, *repositories.MockReportRepository) {
	t.Helper()

	yachtRepo := repositories.NewMockYachtRepository()
	assert.NoError(t, yachtRepo.Create(&models.Yacht{
		ID: "1", Name: "Test Yacht", Type: "Sailing", Capacity: 6,
		PricePerDay: 25000, Available: true, Location: "Sevastopol",
	}))
	assert.NoError(t, yachtRepo.Create(&models.Yacht{
		ID: "2", Name: "Second Yacht", Type: "Motor", Capacity: 8,
		PricePerDay: 40000, Available: true, Location: "Yalta",
	}))

	bookingRepo := repositories.NewMockBookingRepository()
	reportRepo := repositories.NewMockReportRepository()
	analyticsService := services.NewAnalyticsService(bookingRepo, yachtRepo, reportRepo, &recordingPublisher{})
	return analyticsService, bookingRepo, reportRepo
}

func seedBooking(t *testing.T, repo *repositories.MockBookingRepository, id, yachtID, userID string, status models.Status, total float64, created time.Time) {
	t.Helper()
	assert.NoError(t, repo.Create(&models.Booking{
		ID:         id,
		YachtID:    yachtID,
		UserID:     userID,
		StartDate:  created.AddDate(0, 0, 7),
		EndDate:    created.AddDate(0, 0, 9),
		Guests:     2,
		TotalPrice: total,
		Status:     status,
		CreatedAt:  created,
	}))
}

func TestAnalyticsService_GetBookingStats(t *testing.T) {
	analyticsService, bookingRepo, _ := newAnalyticsFixture(t)

	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	seedBooking(t, bookingRepo, "b1", "1", "user-1", models.StatusCompleted, 50000, jan)
	seedBooking(t, bookingRepo, "b2", "1", "user-1", models.StatusConfirmed, 75000, feb)
	seedBooking(t, bookingRepo, "b3", "2", "user-2", models.StatusCancelled, 80000, feb)
	seedBooking(t, bookingRepo, "b4", "1", "user-3", models.StatusPending, 25000, feb)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	stats, err := analyticsService.GetBookingStats(from, to, false)
	assert.NoError(t, err)

	assert.Equal(t, 4, stats.TotalBookings)
	assert.Equal(t, 1, stats.CompletedBookings)
	assert.Equal(t, 1, stats.CancelledBookings)
	// Pending and cancelled bookings never count as revenue.
	assert.Equal(t, 125000.0, stats.Revenue)
	assert.Equal(t, 62500.0, stats.AverageBookingValue)
	assert.Equal(t, 25.0, stats.ConversionRate)
	// One of three customers booked more than once.
	assert.InDelta(t, 33.33, stats.RepeatCustomerRate, 0.01)

	assert.Equal(t, []models.MonthRevenue{
		{Month: "2026-01", Value: 50000},
		{Month: "2026-02", Value: 75000},
	}, stats.RevenueByMonth)

	assert.Len(t, stats.PopularYachts, 2)
	assert.Equal(t, "1", stats.PopularYachts[0].YachtID)
	assert.Equal(t, "Test Yacht", stats.PopularYachts[0].YachtName)
	assert.Equal(t, 3, stats.PopularYachts[0].Bookings)

	assert.Nil(t, stats.Comparison)
}

func TestAnalyticsService_GetBookingStats_PeriodFilterAndComparison(t *testing.T) {
	analyticsService, bookingRepo, _ := newAnalyticsFixture(t)

	// One booking in the previous period, one in the current one.
	seedBooking(t, bookingRepo, "b1", "1", "user-1", models.StatusCompleted, 50000,
		time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))
	seedBooking(t, bookingRepo, "b2", "1", "user-2", models.StatusCompleted, 75000,
		time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	stats, err := analyticsService.GetBookingStats(from, to, true)
	assert.NoError(t, err)

	assert.Equal(t, 1, stats.TotalBookings)
	assert.Equal(t, 75000.0, stats.Revenue)
	assert.NotNil(t, stats.Comparison)
	assert.Equal(t, 1, stats.Comparison.TotalBookings)
	assert.Equal(t, 50000.0, stats.Comparison.Revenue)
	assert.Nil(t, stats.Comparison.Comparison)
}

func TestAnalyticsService_ForecastRevenue(t *testing.T) {
	analyticsService, bookingRepo, _ := newAnalyticsFixture(t)

	// Steady revenue over the trailing months keeps the projection flat
	// and non-negative.
	now := time.Now()
	for i := 1; i <= 4; i++ {
		seedBooking(t, bookingRepo, "", "1", "user-1", models.StatusCompleted, 60000,
			now.AddDate(0, -i, 0))
	}

	forecast, err := analyticsService.ForecastRevenue(3)
	assert.NoError(t, err)
	assert.Len(t, forecast, 3)
	for _, f := range forecast {
		assert.GreaterOrEqual(t, f.Projected, 0.0)
		assert.InDelta(t, f.Projected*1.15, f.Optimistic, 0.001)
		assert.InDelta(t, f.Projected*0.85, f.Pessimistic, 0.001)
	}

	_, err = analyticsService.ForecastRevenue(0)
	assert.ErrorIs(t, err, repositories.ErrInvalid)
}

func TestAnalyticsService_Reports(t *testing.T) {
	analyticsService, bookingRepo, _ := newAnalyticsFixture(t)

	seedBooking(t, bookingRepo, "b1", "1", "user-1", models.StatusCompleted, 50000,
		time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))

	report := &models.CustomReport{
		Name:     "January revenue",
		Metrics:  []string{"revenue", "totalBookings"},
		DateFrom: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, analyticsService.CreateReport(report))
	assert.NotEmpty(t, report.ID)

	// Unknown metrics are rejected at creation time.
	err := analyticsService.CreateReport(&models.CustomReport{
		Name:    "Bad metrics",
		Metrics: []string{"warpSpeed"},
	})
	assert.ErrorIs(t, err, repositories.ErrInvalid)

	stats, err := analyticsService.RunReport(report.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.TotalBookings)
	assert.Equal(t, 50000.0, stats.Revenue)

	_, err = analyticsService.RunReport("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	reports, err := analyticsService.ListReports()
	assert.NoError(t, err)
	assert.Len(t, reports, 1)

	assert.NoError(t, analyticsService.DeleteReport(report.ID))
	reports, err = analyticsService.ListReports()
	assert.NoError(t, err)
	assert.Empty(t, reports)
}

func TestAnalyticsService_ScheduleReport(t *testing.T) {
	analyticsService, _, _ := newAnalyticsFixture(t)

	report := &models.CustomReport{
		Name:     "Weekly digest",
		Metrics:  []string{"revenue"},
		DateFrom: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, analyticsService.CreateReport(report))

	scheduled, err := analyticsService.ScheduleReport(report.ID, "weekly", "email", []string{"boss@moreyacht.ru"})
	assert.NoError(t, err)
	assert.Equal(t, "weekly", scheduled.Schedule)
	assert.Equal(t, "email", scheduled.Delivery)
	assert.Equal(t, []string{"boss@moreyacht.ru"}, scheduled.Recipients)

	// Email delivery needs at least one recipient.
	_, err = analyticsService.ScheduleReport(report.ID, "weekly", "email", nil)
	assert.ErrorIs(t, err, repositories.ErrInvalid)

	// Unknown frequency and delivery values are rejected.
	_, err = analyticsService.ScheduleReport(report.ID, "hourly", "email", []string{"boss@moreyacht.ru"})
	assert.ErrorIs(t, err, repositories.ErrInvalid)
	_, err = analyticsService.ScheduleReport(report.ID, "weekly", "pigeon", nil)
	assert.ErrorIs(t, err, repositories.ErrInvalid)
}
