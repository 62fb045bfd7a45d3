package notification

import (
	"context"
	"fmt"

	"equibook/models"
	"equibook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AsynqDispatcher queues mail tasks for the background worker. It never
// touches the mail provider itself, so enqueueing stays fast on the booking
// write path.
type AsynqDispatcher struct {
	Client *asynq.Client
}

// NewAsynqDispatcher returns a NotificationService enqueuing onto asynq.
func NewAsynqDispatcher(client *asynq.Client) *AsynqDispatcher {
	return &AsynqDispatcher{Client: client}
}

func (d *AsynqDispatcher) DispatchBookingCreated(ctx context.Context, booking models.Booking) error {
	task, opts, err := NewBookingCreatedTask(booking)
	if err != nil {
		return fmt.Errorf("failed to build booking-created task: %w", err)
	}
	if _, err := d.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue booking-created task: %w", err)
	}
	return nil
}

func (d *AsynqDispatcher) DispatchStatusChanged(ctx context.Context, booking models.Booking, newStatus string) error {
	if !notifiableStatuses[newStatus] {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}
	task, opts, err := NewStatusChangedTask(booking, newStatus)
	if err != nil {
		return fmt.Errorf("failed to build status-changed task: %w", err)
	}
	if _, err := d.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue status-changed task: %w", err)
	}
	return nil
}

// Sender renders and sends booking mail. It runs inside the worker, one
// task at a time; failures are reported back to the worker log.
type Sender struct {
	Mailer        Mailer
	OperatorEmail string
}

// SendBookingCreated delivers the operator summary and the client
// confirmation. The first failed send aborts the pair.
func (s *Sender) SendBookingCreated(ctx context.Context, booking models.Booking) error {
	logger := utils.GetLogger()
	for _, msg := range RenderBookingCreated(booking, s.OperatorEmail) {
		if err := s.Mailer.Send(ctx, msg.To, msg.Subject, msg.HTML); err != nil {
			return fmt.Errorf("booking-created mail to %s: %w", msg.To, err)
		}
		logger.Info("Sent booking-created mail",
			zap.String("bookingID", booking.ID), zap.String("to", msg.To))
	}
	return nil
}

// SendStatusChanged delivers the status transition mail to the client.
func (s *Sender) SendStatusChanged(ctx context.Context, booking models.Booking, newStatus string) error {
	msg, err := RenderStatusChanged(booking, newStatus)
	if err != nil {
		return err
	}
	if err := s.Mailer.Send(ctx, msg.To, msg.Subject, msg.HTML); err != nil {
		return fmt.Errorf("status-changed mail to %s: %w", msg.To, err)
	}
	utils.GetLogger().Info("Sent status-changed mail",
		zap.String("bookingID", booking.ID), zap.String("newStatus", newStatus))
	return nil
}
