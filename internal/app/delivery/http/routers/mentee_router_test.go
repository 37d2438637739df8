package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mentorportal-service/internal/app/config"
	"mentorportal-service/internal/app/delivery/http/middlewares"
	"mentorportal-service/internal/app/models"
	"mentorportal-service/internal/app/services/bookings"
	"mentorportal-service/internal/pkg/dto/requests"
	"mentorportal-service/internal/pkg/dto/responses"
	"mentorportal-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) FindMyBookings(ctx context.Context, sessionData string) ([]responses.Booking, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Booking), args.Error(1)
}

func (m *MockBookingUsecase) GetBookedSlotIDs(ctx context.Context, sessionData string) ([]string, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookingUsecase) CreateBooking(ctx context.Context, sessionData string, request *requests.CreateBooking) (*responses.CreateBooking, error) {
	args := m.Called(ctx, sessionData, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CreateBooking), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func TestMenteeRouter_BookingEndpoints(t *testing.T) {
	logger := zap.NewNop()
	jwtSecret := "test-jwt-secret"

	internalConfig := &config.InternalConfig{
		App: config.App{
			BookingRateLimitPerMinute: 100,
			BookingBlockTimeInMinutes: 1,
		},
		JWT: config.JWT{Secret: jwtSecret, ExpTimeInHour: 1},
	}

	sessionService := new(MockSessionService)
	mockBookingUsecase := new(MockBookingUsecase)

	bookingController := bookings.NewBookingController(logger, mockBookingUsecase)
	middlewareInstance := middlewares.NewMiddlewares(logger, sessionService, internalConfig)
	bookingLimiter := middlewareInstance.BookingRateLimiter()

	router := chi.NewRouter()
	attachMenteeRoutes(router, middlewareInstance, bookingLimiter, bookingController)

	t.Run("GetBookings without token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bookings", nil)
		req.RemoteAddr = "10.0.0.1:52000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockBookingUsecase.AssertNotCalled(t, "FindMyBookings", mock.Anything, mock.Anything)
	})

	t.Run("GetBookings with valid token", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-1", jwtSecret, 1)
		assert.NoError(t, err)

		sessionService.On("GetSessionData", mock.Anything, "sess-1").Return(`{"session_id":"sess-1"}`, nil)
		mockBookingUsecase.On("FindMyBookings", mock.Anything, `{"session_id":"sess-1"}`).Return([]responses.Booking{
			{ID: "b1", SlotID: "slot-1", MentorName: "Dr. Ayu", Day: "Monday"},
		}, nil)

		req := httptest.NewRequest("GET", "/bookings", nil)
		req.RemoteAddr = "10.0.0.2:52000"
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("CreateBooking with valid token", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-1", jwtSecret, 1)
		assert.NoError(t, err)

		sessionService.On("GetSessionData", mock.Anything, "sess-1").Return(`{"session_id":"sess-1"}`, nil)
		mockBookingUsecase.On("CreateBooking", mock.Anything, `{"session_id":"sess-1"}`, mock.AnythingOfType("*requests.CreateBooking")).Return(&responses.CreateBooking{
			BookingID: "b1",
			SlotID:    "slot-1",
		}, nil)

		requestBody := requests.CreateBooking{
			MentorID: "m1",
			SlotID:   "slot-1",
			Slot:     "09:00 - 10:00",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/bookings", bytes.NewBuffer(jsonBody))
		req.RemoteAddr = "10.0.0.3:52000"
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("CreateBooking with incomplete body", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-1", jwtSecret, 1)
		assert.NoError(t, err)

		sessionService.On("GetSessionData", mock.Anything, "sess-1").Return(`{"session_id":"sess-1"}`, nil)

		jsonBody, _ := json.Marshal(map[string]string{"mentor_id": "m1"})

		req := httptest.NewRequest("POST", "/bookings", bytes.NewBuffer(jsonBody))
		req.RemoteAddr = "10.0.0.4:52000"
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
