package export

import (
	"fmt"
	"io"
	"strings"

	"moreyacht/internal/models"

	"github.com/tealeg/xlsx"
)

// WriteFleetExcel writes the yacht fleet as a single-sheet workbook.
func WriteFleetExcel(w io.Writer, yachts []models.Yacht) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Yachts")
	if err != nil {
		return fmt.Errorf("failed to create fleet sheet: %w", err)
	}

	headers := []string{
		"ID", "Name", "Type", "Length", "Capacity", "Cabins", "Bathrooms",
		"Year", "PricePerDay", "Location", "Available", "Features",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, y := range yachts {
		row := sheet.AddRow()
		row.AddCell().SetValue(y.ID)
		row.AddCell().SetValue(y.Name)
		row.AddCell().SetValue(y.Type)
		row.AddCell().SetValue(y.Length)
		row.AddCell().SetValue(y.Capacity)
		row.AddCell().SetValue(y.Cabins)
		row.AddCell().SetValue(y.Bathrooms)
		row.AddCell().SetValue(y.Year)
		row.AddCell().SetValue(y.PricePerDay)
		row.AddCell().SetValue(y.Location)
		row.AddCell().SetValue(y.Available)
		row.AddCell().SetValue(strings.Join(y.Features, ", "))
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write fleet workbook: %w", err)
	}
	return nil
}
