// File: clipperz/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clipperz/config"
	"clipperz/handlers"
	"clipperz/middleware"
	"clipperz/routes"
	"clipperz/services/booking"
	"clipperz/services/notification"
	"clipperz/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mailer, err := notification.NewMailer(&config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize mailer: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	notificationService := &notification.DefaultNotificationService{
		Mailer:  mailer,
		From:    config.AppConfig.SalonEmailFrom,
		OwnerTo: config.AppConfig.SalonEmailTo,
		Phone:   config.AppConfig.SalonPhone,
		Address: config.AppConfig.SalonAddress,
		Logger:  logger,
	}

	bookingService := &booking.DefaultBookingService{
		Notifier:     notificationService,
		SalonAddress: config.AppConfig.SalonAddress,
		Logger:       logger,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	contactHandler := handlers.NewContactHandler(notificationService, logger)

	// Register routes with the assembled handlers.
	routes.RegisterRoutes(router, bookingHandler, contactHandler)

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
