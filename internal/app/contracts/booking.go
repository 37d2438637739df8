package contracts

import (
	"context"
	"mentorportal-service/internal/pkg/dto/requests"
	"mentorportal-service/internal/pkg/dto/responses"
	"mentorportal-service/internal/pkg/mentorhub_dto"
)

// BookingHubClient talks to the authenticated mentee endpoints of mentorhub.
// Every call needs the mentee's upstream bearer token.
type BookingHubClient interface {
	FindMenteeBookings(ctx context.Context, upstreamToken string) ([]mentorhub_dto.Booking, error)
	CreateBooking(ctx context.Context, upstreamToken string, request *mentorhub_dto.CreateBookingRequest) (*mentorhub_dto.CreateBookingResponse, error)
}

type BookingUsecase interface {
	FindMyBookings(ctx context.Context, sessionData string) ([]responses.Booking, error)
	GetBookedSlotIDs(ctx context.Context, sessionData string) ([]string, error)
	CreateBooking(ctx context.Context, sessionData string, request *requests.CreateBooking) (*responses.CreateBooking, error)
}
