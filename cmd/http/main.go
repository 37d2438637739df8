package main

import (
	"context"
	"mentorportal-service/internal/app/config"
	"mentorportal-service/internal/app/delivery/http/middlewares"
	"mentorportal-service/internal/app/delivery/http/routers"
	"mentorportal-service/internal/app/drivers/database"
	"mentorportal-service/internal/app/drivers/logger"
	"mentorportal-service/internal/app/services/bookings"
	"mentorportal-service/internal/app/services/core/auth"
	"mentorportal-service/internal/app/services/core/session"
	"mentorportal-service/internal/app/services/dashboard"
	"mentorportal-service/internal/app/services/mentors"
	sharedRedis "mentorportal-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Error closing application resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)

	// Session
	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Auth
	authHubClient := auth.NewAuthHubClient(bootstrap.InternalConfig.MentorHub.BaseUrl)
	authUsecase := auth.NewAuthUsecase(authHubClient, redisRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Mentor availability
	mentorHubClient := mentors.NewMentorHubClient(bootstrap.InternalConfig.MentorHub.BaseUrl)
	availabilityUsecase := mentors.NewAvailabilityUsecase(mentorHubClient, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	mentorController := mentors.NewMentorController(bootstrap.Logger, availabilityUsecase)

	// Bookings
	bookingHubClient := bookings.NewBookingHubClient(bootstrap.InternalConfig.MentorHub.BaseUrl)
	bookingUsecase := bookings.NewBookingUsecase(bookingHubClient, redisRepository, sessionService, bootstrap.Logger)
	bookingController := bookings.NewBookingController(bootstrap.Logger, bookingUsecase)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(availabilityUsecase, bookingUsecase, sessionService, bootstrap.Logger)
	dashboardController := dashboard.NewDashboardController(bootstrap.Logger, dashboardUsecase)

	bootstrap.Router.Use(appMiddlewares.RequestIDMiddleware)
	bootstrap.Router.Use(appMiddlewares.Logging(bootstrap.Logger))
	bootstrap.Router.Use(appMiddlewares.RequestLogger(bootstrap.InternalConfig.App, logrus.StandardLogger()))

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		authController,
		mentorController,
		bookingController,
		dashboardController,
	)
}
