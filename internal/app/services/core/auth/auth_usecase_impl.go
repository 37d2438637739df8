package auth

import (
	"context"
	"fmt"
	"mentorportal-service/internal/app/config"
	"mentorportal-service/internal/app/contracts"
	"mentorportal-service/internal/app/models"
	"mentorportal-service/internal/pkg/constvars"
	"mentorportal-service/internal/pkg/dto/requests"
	"mentorportal-service/internal/pkg/dto/responses"
	"mentorportal-service/internal/pkg/mentorhub_dto"
	"mentorportal-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type authUsecase struct {
	AuthHubClient   contracts.AuthHubClient
	RedisRepository contracts.RedisRepository
	SessionService  contracts.SessionService
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	authHubClient contracts.AuthHubClient,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			AuthHubClient:   authHubClient,
			RedisRepository: redisRepository,
			SessionService:  sessionService,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) LoginMentee(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginMentee called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	loginResponse, err := uc.AuthHubClient.Login(ctx, &mentorhub_dto.LoginRequest{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		uc.Log.Error("authUsecase.LoginMentee upstream login failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	session := &models.Session{
		SessionID:     utils.GenerateSessionID(),
		MenteeID:      loginResponse.User.ID,
		MenteeName:    loginResponse.User.Name,
		Email:         loginResponse.User.Email,
		UpstreamToken: loginResponse.Token,
		ExpiresAt:     time.Now().Add(expiry),
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}

	err = uc.RedisRepository.Set(ctx, fmt.Sprintf(constvars.RedisSessionKeyFormat, session.SessionID), sessionJSON, expiry)
	if err != nil {
		uc.Log.Error("authUsecase.LoginMentee error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.LoginMentee succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.Login{
		Token:      token,
		MenteeName: session.MenteeName,
		Email:      session.Email,
	}, nil
}

func (uc *authUsecase) LogoutMentee(ctx context.Context, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LogoutMentee called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	err = uc.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisSessionKeyFormat, session.SessionID))
	if err != nil {
		uc.Log.Error("authUsecase.LogoutMentee error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	// The optimistic booked-slot set is scoped to the mentee, not the
	// session, but it is cheap to rebuild from the authoritative booking
	// list on next login.
	err = uc.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisBookedSlotsKeyFormat, session.MenteeID))
	if err != nil {
		return err
	}

	uc.Log.Info("authUsecase.LogoutMentee succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
