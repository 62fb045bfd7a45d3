package admin

import (
	"context"
	"io"
	"time"

	bookingRepo "equibook/database/repository/booking"
	"equibook/models"
	"equibook/services/notification"
)

// BookingManager is the admin-side view over the booking store: listing,
// status transitions, deletion, statistics and CSV export.
type BookingManager interface {
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, newStatus string) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
	Statistics(ctx context.Context) (*models.BookingStats, error)
	ExportCSV(ctx context.Context, filter models.BookingFilter, w io.Writer) (int, error)
}

// DefaultBookingManager is the production implementation.
type DefaultBookingManager struct {
	Repo     bookingRepo.BookingRepository
	Notifier notification.NotificationService

	// Clock override for tests; nil means time.Now.
	Clock func() time.Time
}

func (m *DefaultBookingManager) now() time.Time {
	if m.Clock != nil {
		return m.Clock()
	}
	return time.Now()
}
