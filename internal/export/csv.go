package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"moreyacht/internal/models"
)

// WriteStatsCSV writes the analytics block as label/value rows: a header,
// one row per headline metric and one row per month revenue bucket.
func WriteStatsCSV(w io.Writer, stats *models.BookingStats, from, to time.Time) error {
	cw := csv.NewWriter(w)

	records := [][]string{
		{"Metric", "Value"},
		{"Period", fmt.Sprintf("%s - %s", from.Format("2006-01-02"), to.Format("2006-01-02"))},
		{"Total bookings", fmt.Sprintf("%d", stats.TotalBookings)},
		{"Completed bookings", fmt.Sprintf("%d", stats.CompletedBookings)},
		{"Cancelled bookings", fmt.Sprintf("%d", stats.CancelledBookings)},
		{"Total revenue", fmt.Sprintf("%.2f", stats.Revenue)},
		{"Average booking value", fmt.Sprintf("%.2f", stats.AverageBookingValue)},
		{"Conversion rate", fmt.Sprintf("%.1f%%", stats.ConversionRate)},
		{"Repeat customer rate", fmt.Sprintf("%.1f%%", stats.RepeatCustomerRate)},
	}
	for _, mr := range stats.RevenueByMonth {
		records = append(records, []string{fmt.Sprintf("Revenue for %s", mr.Month), fmt.Sprintf("%.2f", mr.Value)})
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write stats CSV: %w", err)
	}
	return nil
}
