package admin

import (
	"context"
	"fmt"

	"equibook/models"
	"equibook/utils"

	"go.uber.org/zap"
)

// InvalidTransitionError reports a rejected status change. The record is
// left untouched.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %q to %q", e.From, e.To)
}

// transitionAllowed encodes the admin workflow: pending bookings get
// confirmed, confirmed ones get completed, and anything not already
// cancelled can be cancelled. Cancelled and completed never move forward
// again (cancelled can't be reactivated).
func transitionAllowed(from, to string) bool {
	if to == models.StatusCancelled {
		return from != models.StatusCancelled
	}
	switch from {
	case models.StatusPending:
		return to == models.StatusConfirmed
	case models.StatusConfirmed:
		return to == models.StatusCompleted
	}
	return false
}

// List returns bookings matching the conjunctive filter, newest first.
func (m *DefaultBookingManager) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	return m.Repo.List(ctx, filter)
}

// UpdateStatus applies an allowed status transition and hands the
// status-changed mail to the dispatcher. A dispatch failure is logged; the
// committed transition stands.
func (m *DefaultBookingManager) UpdateStatus(ctx context.Context, id, newStatus string) (*models.Booking, error) {
	if !models.ValidStatus(newStatus) {
		return nil, &InvalidTransitionError{From: "", To: newStatus}
	}

	booking, err := m.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(booking.Status, newStatus) {
		return nil, &InvalidTransitionError{From: booking.Status, To: newStatus}
	}

	if err := m.Repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	booking.Status = newStatus

	if err := m.Notifier.DispatchStatusChanged(ctx, *booking, newStatus); err != nil {
		utils.GetLogger().Warn("UpdateStatus: failed to dispatch status-changed notification",
			zap.String("bookingID", id), zap.String("newStatus", newStatus), zap.Error(err))
	}

	return booking, nil
}

// Delete removes a booking permanently. The handler requires an explicit
// confirm flag before calling this; there is no undo.
func (m *DefaultBookingManager) Delete(ctx context.Context, id string) error {
	if err := m.Repo.Delete(ctx, id); err != nil {
		return err
	}
	utils.GetLogger().Info("Deleted booking", zap.String("bookingID", id))
	return nil
}
