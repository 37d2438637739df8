package routers

import (
	"mentorportal-service/internal/app/delivery/http/middlewares"
	"mentorportal-service/internal/app/services/mentors"

	"github.com/go-chi/chi/v5"
)

func attachMentorRoutes(router chi.Router, _ *middlewares.Middlewares, mentorController *mentors.MentorController) {
	router.Get("/availability", mentorController.GetAvailability)
}
