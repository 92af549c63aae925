package export

import (
	"bytes"
	"fmt"
	"time"

	"moreyacht/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// StatsPDF renders the analytics block as an A4 report: title, period
// caption, a metric table, the monthly revenue breakdown and a
// generated-at footer.
func StatsPDF(stats *models.BookingStats, from, to time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Yacht booking analytics report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Yacht booking analytics report")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s - %s", from.Format("2006-01-02"), to.Format("2006-01-02")))
	pdf.Ln(12)

	writeRow := func(label, value string) {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(90, 7, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, value, "1", 1, "R", false, 0, "")
	}

	writeRow("Total bookings", fmt.Sprintf("%d", stats.TotalBookings))
	writeRow("Completed bookings", fmt.Sprintf("%d", stats.CompletedBookings))
	writeRow("Cancelled bookings", fmt.Sprintf("%d", stats.CancelledBookings))
	writeRow("Total revenue", fmt.Sprintf("%.2f", stats.Revenue))
	writeRow("Average booking value", fmt.Sprintf("%.2f", stats.AverageBookingValue))
	writeRow("Conversion rate", fmt.Sprintf("%.1f%%", stats.ConversionRate))
	writeRow("Repeat customer rate", fmt.Sprintf("%.1f%%", stats.RepeatCustomerRate))

	if len(stats.RevenueByMonth) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Revenue by month")
		pdf.Ln(9)
		for _, mr := range stats.RevenueByMonth {
			writeRow(mr.Month, fmt.Sprintf("%.2f", mr.Value))
		}
	}

	if len(stats.PopularYachts) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Popular yachts")
		pdf.Ln(9)
		for _, py := range stats.PopularYachts {
			writeRow(py.YachtName, fmt.Sprintf("%d bookings", py.Bookings))
		}
	}

	pdf.SetY(-20)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Report generated: %s", time.Now().Format("2006-01-02 15:04:05")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render stats PDF: %w", err)
	}
	return buf.Bytes(), nil
}
