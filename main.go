// File: salonbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonbook/config"
	"salonbook/cron"
	"salonbook/database"
	appointmentRepo "salonbook/database/repository/appointment"
	closeddayRepo "salonbook/database/repository/closedday"
	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/routes"
	"salonbook/services/booking"
	"salonbook/services/notification"
	"salonbook/services/tasks"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	closedRepo := closeddayRepo.NewMongoClosedDayRepo()

	// notification pipeline: bookings enqueue, the worker delivers. With SMTP
	// unconfigured nothing would ever drain the queue, so the dispatcher is
	// not created at all and bookings skip the enqueue.
	var notifier booking.NotificationDispatcher
	notifSvc, err := notification.NewEmailNotificationService(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPFrom,
		config.AppConfig.NotifyEmail,
		config.AppConfig.SalonName,
	)
	if err != nil {
		logger.Sugar().Warnf("main: notifications disabled: %v", err)
	} else {
		dispatcher := tasks.NewDispatcher(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		})
		defer dispatcher.Close()
		cron.InitNotificationWorker(notifSvc)
		notifier = dispatcher
	}

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:       apptRepo,
		ClosedRepo: closedRepo,
		Notifier:   notifier,
		Cache:      utils.GetCacheClient(),
	}

	bookingHandler := handlers.NewBookingHandler(bookingService)
	adminHandler := handlers.NewAdminHandler(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateAppointment:       bookingHandler.CreateAppointmentHandler,
		ListAppointments:        bookingHandler.ListAppointmentsHandler,
		AvailableSlots:          bookingHandler.AvailableSlotsHandler,
		UpdateAppointmentStatus: bookingHandler.UpdateStatusHandler,

		AdminCreateAppointment: adminHandler.CreateAppointmentHandler,
		AdminListAppointments:  adminHandler.ListAppointmentsHandler,
		ListClosedDays:         adminHandler.ListClosedDaysHandler,
		AddClosedDay:           adminHandler.AddClosedDayHandler,
		RemoveClosedDay:        adminHandler.RemoveClosedDayHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
	database.CloseDB(ctx)

	logger.Sugar().Info("main: server stopped gracefully")
}
