package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"propertysource-web/internal/domain"
)

const bookingsSheet = "Bookings"

var bookingColumns = []string{"Booking", "Property", "Student", "Date/time", "Status"}

// WriteBookings writes the admin bookings table as an xlsx workbook.
func WriteBookings(w io.Writer, bookings []domain.Booking) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", bookingsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeRow(f, 1, toRow(bookingColumns)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(bookingColumns), 1)
		_ = f.SetCellStyle(bookingsSheet, "A1", last, style)
	}

	for i, b := range bookings {
		row := []any{
			b.ID.String(),
			b.PropertyID.String(),
			b.StudentID.String(),
			startText(b),
			string(b.Status),
		}
		if err := writeRow(f, i+2, row); err != nil {
			return fmt.Errorf("write booking %s: %w", b.ID, err)
		}
	}

	_ = f.SetColWidth(bookingsSheet, "A", "C", 14)
	_ = f.SetColWidth(bookingsSheet, "D", "D", 20)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, rowNum int, values []any) error {
	for i, val := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(bookingsSheet, cell, val); err != nil {
			return err
		}
	}
	return nil
}

func toRow(values []string) []any {
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}

func startText(b domain.Booking) string {
	if start, ok := b.Start(); ok {
		return start.Format("2006-01-02 15:04")
	}
	return b.StartDateTime
}
