package models

import "time"

// Report schedules and delivery methods.
const (
	ScheduleDaily     = "daily"
	ScheduleWeekly    = "weekly"
	ScheduleMonthly   = "monthly"
	ScheduleQuarterly = "quarterly"

	DeliveryEmail     = "email"
	DeliveryDownload  = "download"
	DeliveryDashboard = "dashboard"
)

// ReportMetric describes one metric selectable in custom reports.
type ReportMetric struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"` // financial, bookings or customers
	Description string `json:"description"`
}

// CustomReport is a saved analytics report definition.
type CustomReport struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Description string    `json:"description,omitempty" validate:"omitempty,max=500"`
	Metrics     []string  `json:"metrics" gorm:"serializer:json" validate:"required,min=1"`
	DateFrom    time.Time `json:"dateFrom"`
	DateTo      time.Time `json:"dateTo"`
	Schedule    string    `json:"schedule,omitempty" validate:"omitempty,oneof=daily weekly monthly quarterly"`
	Delivery    string    `json:"delivery,omitempty" validate:"omitempty,oneof=email download dashboard"`
	Recipients  []string  `json:"recipients,omitempty" gorm:"serializer:json" validate:"omitempty,dive,email"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ReportTemplate is a reusable metric selection for building reports.
type ReportTemplate struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Description string    `json:"description,omitempty" validate:"omitempty,max=500"`
	Metrics     []string  `json:"metrics" gorm:"serializer:json" validate:"required,min=1"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MonthRevenue is one month bucket in a revenue breakdown.
type MonthRevenue struct {
	Month string  `json:"month"` // "2026-01"
	Value float64 `json:"value"`
}

// YachtPopularity ranks a yacht by booking count.
type YachtPopularity struct {
	YachtID   string `json:"yachtId"`
	YachtName string `json:"yachtName"`
	Bookings  int    `json:"bookings"`
}

// BookingStats is the aggregated analytics block for a date range.
type BookingStats struct {
	TotalBookings       int               `json:"totalBookings"`
	CompletedBookings   int               `json:"completedBookings"`
	CancelledBookings   int               `json:"cancelledBookings"`
	Revenue             float64           `json:"revenue"`
	AverageBookingValue float64           `json:"averageBookingValue"`
	ConversionRate      float64           `json:"conversionRate"`
	RepeatCustomerRate  float64           `json:"repeatCustomerRate"`
	RevenueByMonth      []MonthRevenue    `json:"revenueByMonth"`
	PopularYachts       []YachtPopularity `json:"popularYachts"`
	Comparison          *BookingStats     `json:"comparison,omitempty"` // previous period of equal length
}

// RevenueForecast is one projected month of revenue.
type RevenueForecast struct {
	Month       string  `json:"month"`
	Projected   float64 `json:"projected"`
	Optimistic  float64 `json:"optimistic"`
	Pessimistic float64 `json:"pessimistic"`
}
