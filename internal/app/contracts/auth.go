package contracts

import (
	"context"
	"mentorportal-service/internal/pkg/dto/requests"
	"mentorportal-service/internal/pkg/dto/responses"
	"mentorportal-service/internal/pkg/mentorhub_dto"
)

type AuthUsecase interface {
	LoginMentee(ctx context.Context, request *requests.Login) (*responses.Login, error)
	LogoutMentee(ctx context.Context, sessionData string) error
}

// AuthHubClient talks to the mentorhub identity endpoint. The identity
// provider itself stays an external collaborator.
type AuthHubClient interface {
	Login(ctx context.Context, request *mentorhub_dto.LoginRequest) (*mentorhub_dto.LoginResponse, error)
}
