package notification

import (
	"context"
	"errors"

	"equibook/models"
)

// Statuses a status-changed mail may carry. Anything else is rejected
// before a task is enqueued.
var notifiableStatuses = map[string]bool{
	models.StatusConfirmed: true,
	models.StatusCompleted: true,
	models.StatusCancelled: true,
}

// ErrInvalidStatus is returned for a status-changed dispatch with a status
// that has no mail template.
var ErrInvalidStatus = errors.New("no notification template for status")

// ErrMissingAPIKey indicates the mail provider credential is absent. This is
// a configuration error and fails before any network call.
var ErrMissingAPIKey = errors.New("mail provider API key is not configured")

// NotificationService hands transactional booking mail to the background
// dispatcher. Each dispatch is at-most-once: no retry, failures surface in
// the worker log only. Callers must treat errors as non-fatal to the
// already-committed booking write.
type NotificationService interface {
	// DispatchBookingCreated queues one mail to the operator and one
	// confirmation to the client for a freshly created booking.
	DispatchBookingCreated(ctx context.Context, booking models.Booking) error
	// DispatchStatusChanged queues a mail to the client reflecting the new
	// status (confirmed, completed or cancelled).
	DispatchStatusChanged(ctx context.Context, booking models.Booking, newStatus string) error
}
