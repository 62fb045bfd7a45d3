package booking

import (
	"context"
	"time"

	bookingRepo "equibook/database/repository/booking"
	"equibook/models"
	"equibook/services/notification"
)

// WizardService drives the multi-step booking flow. Steps advance strictly
// in order; each submit validates its own fields and rejects with a
// ValidationError without moving the session.
type WizardService interface {
	StartSession(ctx context.Context) (*models.BookingSession, error)
	GetSession(ctx context.Context, id string) (*models.BookingSession, error)
	SubmitService(ctx context.Context, id string, sel models.ServiceSelection) (*models.BookingSession, error)
	SubmitSlot(ctx context.Context, id string, sel models.SlotSelection) (*models.BookingSession, error)
	SubmitContact(ctx context.Context, id string, det models.ContactDetails) (*models.BookingSession, error)
	StepBack(ctx context.Context, id string) (*models.BookingSession, error)
	Confirm(ctx context.Context, id string) (*models.Booking, error)
	CancelSession(ctx context.Context, id string) error

	IsSlotTaken(ctx context.Context, date, time string) (bool, error)
	DaySlots(ctx context.Context, date string) ([]SlotAvailability, error)
}

// DefaultWizardService is the production implementation.
type DefaultWizardService struct {
	Repo     bookingRepo.BookingRepository
	Sessions SessionStore
	Notifier notification.NotificationService

	// Clock override for tests; nil means time.Now.
	Clock func() time.Time
}

func (s *DefaultWizardService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
