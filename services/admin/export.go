package admin

import (
	"context"
	"encoding/csv"
	"io"

	"equibook/models"
)

// csvHeader is the fixed export column order.
var csvHeader = []string{
	"ID", "Name", "Email", "Phone", "Service",
	"Date", "Time", "Duration", "Level", "Status", "Price",
}

// ExportCSV writes the filtered booking list as CSV: one header row, then
// one row per record in listing order. Returns the number of data rows.
func (m *DefaultBookingManager) ExportCSV(ctx context.Context, filter models.BookingFilter, w io.Writer) (int, error) {
	bookings, err := m.Repo.List(ctx, filter)
	if err != nil {
		return 0, err
	}
	if err := WriteCSV(bookings, w); err != nil {
		return 0, err
	}
	return len(bookings), nil
}

// WriteCSV serializes bookings in the fixed column order.
func WriteCSV(bookings []models.Booking, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, b := range bookings {
		row := []string{
			b.ID,
			b.FullName(),
			b.Email,
			b.Phone,
			b.ServiceType,
			b.Date,
			b.Time,
			b.Duration,
			b.RiderLevel,
			b.Status,
			b.Price,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
