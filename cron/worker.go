package cron

import (
	"context"
	"encoding/json"
	"log"

	"equibook/config"
	"equibook/services/notification"
	"equibook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitMailWorker runs the background mail worker. Tasks are enqueued with
// MaxRetry(0), so every send is at-most-once: a failure lands in the log
// and nowhere else.
func InitMailWorker(sender *notification.Sender) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeBookingCreatedEmail, handleBookingCreated(sender))
	mux.HandleFunc(notification.TypeStatusChangedEmail, handleStatusChanged(sender))

	go func() {
		log.Println("[MailWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[MailWorker] failed to start worker: %v", err)
		}
	}()
}

func handleBookingCreated(sender *notification.Sender) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p notification.BookingCreatedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("MailWorker: invalid booking-created payload", zap.Error(err))
			return err
		}

		if err := sender.SendBookingCreated(ctx, p.Booking); err != nil {
			logger.Error("MailWorker: booking-created mail failed",
				zap.String("bookingID", p.Booking.ID), zap.Error(err))
			return err
		}
		return nil
	}
}

func handleStatusChanged(sender *notification.Sender) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p notification.StatusChangedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("MailWorker: invalid status-changed payload", zap.Error(err))
			return err
		}

		if err := sender.SendStatusChanged(ctx, p.Booking, p.NewStatus); err != nil {
			logger.Error("MailWorker: status-changed mail failed",
				zap.String("bookingID", p.Booking.ID),
				zap.String("newStatus", p.NewStatus), zap.Error(err))
			return err
		}
		return nil
	}
}
