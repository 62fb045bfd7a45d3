package booking

import (
	"context"
	"strconv"
	"strings"

	"equibook/models"
	"equibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const bookingIDPrefix = "EQB-"

// StartSession opens a new wizard session at the service-selection step.
func (s *DefaultWizardService) StartSession(ctx context.Context) (*models.BookingSession, error) {
	session := models.BookingSession{
		ID:        uuid.New().String(),
		Step:      models.StepService,
		CreatedAt: s.now(),
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetSession returns the current session state, including the read-only
// recap the review step renders.
func (s *DefaultWizardService) GetSession(ctx context.Context, id string) (*models.BookingSession, error) {
	return s.Sessions.Get(ctx, id)
}

// SubmitService records the step-one choices and advances to date/time
// selection.
func (s *DefaultWizardService) SubmitService(ctx context.Context, id string, sel models.ServiceSelection) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepService {
		return nil, &WrongStepError{Want: models.StepService, Got: session.Step}
	}
	if verr := validateServiceSelection(sel); verr != nil {
		return nil, verr
	}
	session.Service = sel
	session.Step = models.StepDateTime
	if err := s.Sessions.Save(ctx, *session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitSlot records the chosen date and time and advances to contact
// details. The slot is checked against current bookings at selection time;
// the check is advisory, not a reservation.
func (s *DefaultWizardService) SubmitSlot(ctx context.Context, id string, sel models.SlotSelection) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepDateTime {
		return nil, &WrongStepError{Want: models.StepDateTime, Got: session.Step}
	}
	if verr := validateSlotSelection(sel, s.now()); verr != nil {
		return nil, verr
	}
	taken, err := s.IsSlotTaken(ctx, sel.Date, sel.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &ValidationError{Fields: map[string]string{"time": "This time is no longer available"}}
	}
	session.Slot = sel
	session.Step = models.StepContact
	if err := s.Sessions.Save(ctx, *session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitContact records the client details and advances to review.
func (s *DefaultWizardService) SubmitContact(ctx context.Context, id string, det models.ContactDetails) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepContact {
		return nil, &WrongStepError{Want: models.StepContact, Got: session.Step}
	}
	if det.HasOwnHorse == "" {
		det.HasOwnHorse = "no"
	}
	if verr := validateContactDetails(det); verr != nil {
		return nil, verr
	}
	session.Contact = det
	session.Step = models.StepReview
	if err := s.Sessions.Save(ctx, *session); err != nil {
		return nil, err
	}
	return session, nil
}

// StepBack moves the session exactly one step backward. Entered data is
// retained so moving forward again does not re-prompt.
func (s *DefaultWizardService) StepBack(ctx context.Context, id string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	idx := models.StepIndex(session.Step)
	if idx <= 0 || session.Step == models.StepSubmitted {
		return session, nil
	}
	session.Step = models.StepOrder[idx-1]
	if err := s.Sessions.Save(ctx, *session); err != nil {
		return nil, err
	}
	return session, nil
}

// Confirm performs the submission side effect: allocate a reference, write
// the record, hand the created-booking mail to the dispatcher and mark the
// session submitted. A dispatch failure is logged and never rolls back the
// committed record or blocks the response.
func (s *DefaultWizardService) Confirm(ctx context.Context, id string) (*models.Booking, error) {
	logger := utils.GetLogger()

	session, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepReview {
		return nil, &WrongStepError{Want: models.StepReview, Got: session.Step}
	}

	// Re-check the slot against the current snapshot. Still advisory: two
	// concurrent confirms can race past this.
	taken, err := s.IsSlotTaken(ctx, session.Slot.Date, session.Slot.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &ValidationError{Fields: map[string]string{"time": "This time is no longer available"}}
	}

	now := s.now()
	price, ok := PriceForDuration(session.Service.Duration)
	if !ok {
		price = "$0"
	}

	record := models.Booking{
		ID:              allocateBookingID(now.UnixMilli()),
		ServiceType:     session.Service.ServiceType,
		Duration:        session.Service.Duration,
		RiderLevel:      session.Service.RiderLevel,
		FirstName:       session.Contact.FirstName,
		LastName:        session.Contact.LastName,
		Email:           session.Contact.Email,
		Phone:           session.Contact.Phone,
		HasOwnHorse:     session.Contact.HasOwnHorse,
		HorseName:       session.Contact.HorseName,
		SpecialRequests: session.Contact.SpecialRequests,
		Date:            session.Slot.Date,
		Time:            session.Slot.Time,
		Status:          models.StatusPending,
		CreatedAt:       now,
		Price:           price,
	}

	if err := s.Repo.Insert(ctx, record); err != nil {
		return nil, err
	}

	if err := s.Notifier.DispatchBookingCreated(ctx, record); err != nil {
		logger.Warn("Confirm: failed to dispatch booking-created notification",
			zap.String("bookingID", record.ID), zap.Error(err))
	}

	session.Step = models.StepSubmitted
	session.BookingID = record.ID
	if err := s.Sessions.Save(ctx, *session); err != nil {
		logger.Warn("Confirm: failed to persist submitted session state",
			zap.String("sessionID", session.ID), zap.Error(err))
	}

	return &record, nil
}

// CancelSession abandons a wizard run. Committed bookings are unaffected.
func (s *DefaultWizardService) CancelSession(ctx context.Context, id string) error {
	return s.Sessions.Delete(ctx, id)
}

// allocateBookingID derives a human-legible reference from a millisecond
// timestamp, base-36, upper-cased.
func allocateBookingID(unixMilli int64) string {
	return bookingIDPrefix + strings.ToUpper(strconv.FormatInt(unixMilli, 36))
}
