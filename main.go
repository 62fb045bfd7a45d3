// File: equibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"equibook/config"
	"equibook/cron"
	"equibook/database"
	bookingRepo "equibook/database/repository/booking"
	"equibook/handlers"
	"equibook/middleware"
	"equibook/routes"
	"equibook/services/admin"
	"equibook/services/booking"
	"equibook/services/notification"
	"equibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Background mail queue.
	queueOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
	queueClient := asynq.NewClient(queueOpts)
	defer queueClient.Close()

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()

	// services.
	notifier := notification.NewAsynqDispatcher(queueClient)

	wizardService := &booking.DefaultWizardService{
		Repo:     bookings,
		Sessions: booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Notifier: notifier,
	}

	bookingManager := &admin.DefaultBookingManager{
		Repo:     bookings,
		Notifier: notifier,
	}

	authenticator := &admin.Authenticator{
		AdminEmail:   config.AppConfig.AdminEmail,
		PasswordHash: config.AppConfig.AdminPasswordHash,
		TokenTTL:     time.Duration(config.AppConfig.AdminTokenTTLMin) * time.Minute,
	}

	bookingHandler := handlers.NewBookingHandler(wizardService, logger)
	adminHandler := handlers.NewAdminHandler(bookingManager, authenticator)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Booking wizard endpoints.
		StartSession:   bookingHandler.StartSession,
		GetSession:     bookingHandler.GetSession,
		SubmitService:  bookingHandler.SubmitService,
		SubmitSlot:     bookingHandler.SubmitSlot,
		SubmitContact:  bookingHandler.SubmitContact,
		StepBack:       bookingHandler.StepBack,
		ConfirmBooking: bookingHandler.ConfirmBooking,
		CancelSession:  bookingHandler.CancelSession,
		DaySlots:       bookingHandler.DaySlots,
		GetCatalogue:   bookingHandler.GetCatalogue,

		// Admin endpoints.
		AdminLogin:         adminHandler.LoginHandler,
		AdminListBookings:  adminHandler.ListBookingsHandler,
		AdminUpdateStatus:  adminHandler.UpdateStatusHandler,
		AdminDeleteBooking: adminHandler.DeleteBookingHandler,
		AdminStats:         adminHandler.StatsHandler,
		AdminExportCSV:     adminHandler.ExportCSVHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the background mail worker.
	sender := &notification.Sender{
		Mailer:        notification.NewResendMailer(config.AppConfig.ResendAPIKey, config.AppConfig.MailFrom),
		OperatorEmail: config.AppConfig.OperatorEmail,
	}
	cron.InitMailWorker(sender)

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
