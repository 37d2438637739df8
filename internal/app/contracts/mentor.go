package contracts

import (
	"context"
	"mentorportal-service/internal/pkg/dto/responses"
	"mentorportal-service/internal/pkg/mentorhub_dto"
)

// MentorHubClient retrieves mentor availability from the remote mentorhub
// service. Neither call requires a credential.
type MentorHubClient interface {
	FindAvailableSlotsByDay(ctx context.Context, day string) ([]mentorhub_dto.Slot, error)
	FindAllAvailableSlots(ctx context.Context) ([]mentorhub_dto.MentorWithSlots, error)
}

type AvailabilityUsecase interface {
	GetAvailabilityIndex(ctx context.Context) ([]responses.DayAvailability, error)
}
