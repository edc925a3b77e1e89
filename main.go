package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carelink/config"
	"carelink/cron"
	"carelink/database"
	auditRepoPkg "carelink/database/repository/audit"
	bookingRepoPkg "carelink/database/repository/booking"
	profileRepoPkg "carelink/database/repository/profile"
	"carelink/handlers"
	"carelink/routes"
	"carelink/services/audit"
	"carelink/services/availability"
	"carelink/services/booking"
	"carelink/services/messaging"
	"carelink/services/notification"
	"carelink/services/payment"
	"carelink/services/tasks"
	"carelink/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookings := bookingRepoPkg.NewMongoBookingRepo()
	patients := profileRepoPkg.NewMongoPatientRepo()
	caregivers := profileRepoPkg.NewMongoCaregiverRepo()
	audits := auditRepoPkg.NewMongoAuditRepo()

	// services.
	resolver := &availability.DefaultResolver{
		Caregivers:  caregivers,
		Bookings:    bookings,
		Granularity: config.AppConfig.SlotGranularityMinutes,
		Cache:       utils.GetCacheClient(),
	}
	notifier := notification.NewFCMDispatcher(patients, caregivers, logger)
	settlement := payment.NewStripeSettlementProcessor(logger)
	recorder := audit.NewDefaultRecorder(audits, logger)
	guard := messaging.NewDefaultGuard(logger)

	taskClient := asynq.NewClient(cron.RedisTaskOpt())
	defer taskClient.Close()
	scheduler := tasks.NewAsynqScheduler(taskClient)

	bookingService := &booking.DefaultBookingService{
		Repo:       bookings,
		Patients:   patients,
		Caregivers: caregivers,
		Resolver:   resolver,
		Notifier:   notifier,
		Settlement: settlement,
		Audit:      recorder,
		Scheduler:  scheduler,
		Policy:     booking.PolicyFromConfig(),
		Logger:     logger,
	}

	// Background worker: visit reminders, safety check-ins, no-show sweep.
	cron.InitVisitWorker(bookingService, notifier)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	handlerBundle := &handlers.HandlerBundle{
		Auth:         handlers.NewAuthHandler(patients, caregivers),
		Booking:      handlers.NewBookingHandler(bookingService, logger),
		Availability: handlers.NewAvailabilityHandler(resolver),
		Messaging:    handlers.NewMessagingHandler(guard, recorder),
		Device:       handlers.NewDeviceHandler(patients, caregivers),
	}
	routes.RegisterRoutes(router, handlerBundle)

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
