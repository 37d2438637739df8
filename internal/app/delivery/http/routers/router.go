package routers

import (
	"fmt"
	"mentorportal-service/internal/app/config"
	"mentorportal-service/internal/app/delivery/http/middlewares"
	"mentorportal-service/internal/app/services/bookings"
	"mentorportal-service/internal/app/services/core/auth"
	"mentorportal-service/internal/app/services/dashboard"
	"mentorportal-service/internal/app/services/mentors"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	mentorController *mentors.MentorController,
	bookingController *bookings.BookingController,
	dashboardController *dashboard.DashboardController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	bookingLimiter := middlewares.BookingRateLimiter()

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/mentors", func(r chi.Router) {
				attachMentorRoutes(r, middlewares, mentorController)
			})

			r.Route("/mentees", func(r chi.Router) {
				attachMenteeRoutes(r, middlewares, bookingLimiter, bookingController)
			})

			r.Route("/dashboard", func(r chi.Router) {
				attachDashboardRoutes(r, middlewares, dashboardController)
			})
		})
	})
}
