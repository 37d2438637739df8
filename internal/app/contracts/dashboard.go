package contracts

import (
	"context"
	"mentorportal-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	// GetDashboard composes the mentee dashboard. sessionData may be empty:
	// anonymous visitors still get availability, with an empty booked set.
	GetDashboard(ctx context.Context, sessionData string) (*responses.Dashboard, error)
}
