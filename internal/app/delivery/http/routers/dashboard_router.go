package routers

import (
	"mentorportal-service/internal/app/delivery/http/middlewares"
	"mentorportal-service/internal/app/services/dashboard"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *dashboard.DashboardController) {
	router.With(middlewares.OptionalAuthenticate).Get("/", dashboardController.GetDashboard)
}
