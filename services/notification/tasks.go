package notification

import (
	"encoding/json"

	"equibook/models"

	"github.com/hibiken/asynq"
)

// Task type names handled by the mail worker.
const (
	TypeBookingCreatedEmail = "email:booking_created"
	TypeStatusChangedEmail  = "email:status_changed"
)

// BookingCreatedPayload is the task body for a booking-created mail pair.
type BookingCreatedPayload struct {
	Booking models.Booking `json:"booking"`
}

// StatusChangedPayload is the task body for a status-changed mail.
type StatusChangedPayload struct {
	Booking   models.Booking `json:"booking"`
	NewStatus string         `json:"newStatus"`
}

// NewBookingCreatedTask builds the asynq task for a created booking.
// MaxRetry(0) keeps delivery at-most-once: a failed send is logged, never
// replayed.
func NewBookingCreatedTask(booking models.Booking) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(BookingCreatedPayload{Booking: booking})
	if err != nil {
		return nil, nil, err
	}
	opts := []asynq.Option{asynq.MaxRetry(0)}
	return asynq.NewTask(TypeBookingCreatedEmail, b), opts, nil
}

// NewStatusChangedTask builds the asynq task for a status transition mail.
func NewStatusChangedTask(booking models.Booking, newStatus string) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(StatusChangedPayload{Booking: booking, NewStatus: newStatus})
	if err != nil {
		return nil, nil, err
	}
	opts := []asynq.Option{asynq.MaxRetry(0)}
	return asynq.NewTask(TypeStatusChangedEmail, b), opts, nil
}
