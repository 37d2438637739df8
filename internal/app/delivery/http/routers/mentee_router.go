package routers

import (
	"mentorportal-service/internal/app/delivery/http/middlewares"
	"mentorportal-service/internal/app/services/bookings"

	"github.com/go-chi/chi/v5"
)

func attachMenteeRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingLimiter *middlewares.RateLimiter, bookingController *bookings.BookingController) {
	router.With(middlewares.Authenticate).Get("/bookings", bookingController.GetMyBookings)
	router.With(middlewares.Authenticate, bookingLimiter.Limit).Post("/bookings", bookingController.CreateBooking)
}
