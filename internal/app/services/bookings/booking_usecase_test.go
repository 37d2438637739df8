package bookings

import (
	"context"
	"errors"
	"mentorportal-service/internal/app/models"
	"mentorportal-service/internal/pkg/constvars"
	"mentorportal-service/internal/pkg/dto/requests"
	"mentorportal-service/internal/pkg/exceptions"
	"mentorportal-service/internal/pkg/mentorhub_dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingHubClient struct {
	mock.Mock
}

func (m *MockBookingHubClient) FindMenteeBookings(ctx context.Context, upstreamToken string) ([]mentorhub_dto.Booking, error) {
	args := m.Called(ctx, upstreamToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mentorhub_dto.Booking), args.Error(1)
}

func (m *MockBookingHubClient) CreateBooking(ctx context.Context, upstreamToken string, request *mentorhub_dto.CreateBookingRequest) (*mentorhub_dto.CreateBookingResponse, error) {
	args := m.Called(ctx, upstreamToken, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mentorhub_dto.CreateBookingResponse), args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) AddToSet(ctx context.Context, key string, values ...interface{}) error {
	args := m.Called(ctx, key, values)
	return args.Error(0)
}

func (m *MockRedisRepository) GetSetMembers(ctx context.Context, key string) ([]string, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRedisRepository) ReplaceSet(ctx context.Context, key string, values ...interface{}) error {
	args := m.Called(ctx, key, values)
	return args.Error(0)
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

func testSession() *models.Session {
	return &models.Session{
		SessionID:     "sess-1",
		MenteeID:      "mentee-1",
		MenteeName:    "Rina",
		Email:         "rina@example.com",
		UpstreamToken: "hub-token",
	}
}

func newTestBookingUsecase(hubClient *MockBookingHubClient, redisRepo *MockRedisRepository, sessionService *MockSessionService) *bookingUsecase {
	return &bookingUsecase{
		BookingHubClient: hubClient,
		RedisRepository:  redisRepo,
		SessionService:   sessionService,
		Log:              zap.NewNop(),
	}
}

func TestBookingUsecase_CreateBooking_RecordsSlotAndRefreshes(t *testing.T) {
	hubClient := new(MockBookingHubClient)
	redisRepo := new(MockRedisRepository)
	sessionService := new(MockSessionService)
	uc := newTestBookingUsecase(hubClient, redisRepo, sessionService)

	sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(testSession(), nil)
	hubClient.On("CreateBooking", mock.Anything, "hub-token", mock.AnythingOfType("*mentorhub_dto.CreateBookingRequest")).Return(&mentorhub_dto.CreateBookingResponse{
		ID:        "b1",
		SlotID:    "slot-10",
		Day:       "Monday",
		StartTime: "09:00",
		EndTime:   "10:00",
	}, nil)
	hubClient.On("FindMenteeBookings", mock.Anything, "hub-token").Return([]mentorhub_dto.Booking{
		{ID: "b0", SlotID: "slot-5"},
	}, nil)

	bookedSlotsKey := "booked-slots:mentee-1"
	redisRepo.On("AddToSet", mock.Anything, bookedSlotsKey, []interface{}{"slot-10"}).Return(nil)
	redisRepo.On("ReplaceSet", mock.Anything, bookedSlotsKey, []interface{}{"slot-10", "slot-5"}).Return(nil)

	response, err := uc.CreateBooking(context.Background(), "session-json", &requests.CreateBooking{
		MentorID: "m1",
		SlotID:   "slot-10",
		Slot:     "09:00 - 10:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, "b1", response.BookingID)
	assert.Equal(t, "slot-10", response.SlotID)
	redisRepo.AssertExpectations(t)
	hubClient.AssertExpectations(t)
}

func TestBookingUsecase_CreateBooking_FallsBackToRequestSlotID(t *testing.T) {
	hubClient := new(MockBookingHubClient)
	redisRepo := new(MockRedisRepository)
	sessionService := new(MockSessionService)
	uc := newTestBookingUsecase(hubClient, redisRepo, sessionService)

	sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(testSession(), nil)
	hubClient.On("CreateBooking", mock.Anything, "hub-token", mock.Anything).Return(&mentorhub_dto.CreateBookingResponse{ID: "b1"}, nil)
	hubClient.On("FindMenteeBookings", mock.Anything, "hub-token").Return([]mentorhub_dto.Booking{}, nil)

	redisRepo.On("AddToSet", mock.Anything, "booked-slots:mentee-1", []interface{}{"slot-10"}).Return(nil)
	redisRepo.On("ReplaceSet", mock.Anything, "booked-slots:mentee-1", []interface{}{"slot-10"}).Return(nil)

	response, err := uc.CreateBooking(context.Background(), "session-json", &requests.CreateBooking{
		MentorID: "m1",
		SlotID:   "slot-10",
		Slot:     "09:00 - 10:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, "slot-10", response.SlotID)
	redisRepo.AssertExpectations(t)
}

func TestBookingUsecase_CreateBooking_RejectedUpstreamLeavesSetUntouched(t *testing.T) {
	hubClient := new(MockBookingHubClient)
	redisRepo := new(MockRedisRepository)
	sessionService := new(MockSessionService)
	uc := newTestBookingUsecase(hubClient, redisRepo, sessionService)

	sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(testSession(), nil)
	hubClient.On("CreateBooking", mock.Anything, "hub-token", mock.Anything).Return(nil, exceptions.ErrBookingRejected(errors.New("slot already booked")))

	response, err := uc.CreateBooking(context.Background(), "session-json", &requests.CreateBooking{
		MentorID: "m1",
		SlotID:   "slot-10",
		Slot:     "09:00 - 10:00",
	})

	assert.Error(t, err)
	assert.Nil(t, response)
	redisRepo.AssertNotCalled(t, "AddToSet", mock.Anything, mock.Anything, mock.Anything)
	redisRepo.AssertNotCalled(t, "ReplaceSet", mock.Anything, mock.Anything, mock.Anything)
	hubClient.AssertNotCalled(t, "FindMenteeBookings", mock.Anything, mock.Anything)
}

func TestBookingUsecase_CreateBooking_InvalidSessionNeverCallsUpstream(t *testing.T) {
	hubClient := new(MockBookingHubClient)
	redisRepo := new(MockRedisRepository)
	sessionService := new(MockSessionService)
	uc := newTestBookingUsecase(hubClient, redisRepo, sessionService)

	sessionService.On("ParseSessionData", mock.Anything, "bad-session").Return(nil, exceptions.ErrSessionInvalid(errors.New("no session")))

	response, err := uc.CreateBooking(context.Background(), "bad-session", &requests.CreateBooking{
		MentorID: "m1",
		SlotID:   "slot-10",
		Slot:     "09:00 - 10:00",
	})

	assert.Error(t, err)
	assert.Nil(t, response)
	hubClient.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
	hubClient.AssertNotCalled(t, "FindMenteeBookings", mock.Anything, mock.Anything)
}

func TestBookingUsecase_GetBookedSlotIDs_UnionsCacheAndBookings(t *testing.T) {
	hubClient := new(MockBookingHubClient)
	redisRepo := new(MockRedisRepository)
	sessionService := new(MockSessionService)
	uc := newTestBookingUsecase(hubClient, redisRepo, sessionService)

	sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(testSession(), nil)
	redisRepo.On("GetSetMembers", mock.Anything, "booked-slots:mentee-1").Return([]string{"slot-1", "slot-2"}, nil)
	hubClient.On("FindMenteeBookings", mock.Anything, "hub-token").Return([]mentorhub_dto.Booking{
		{ID: "b1", SlotID: "slot-2"},
		{ID: "b2", SlotID: "slot-3"},
		{ID: "b3"},
	}, nil)

	slotIDs, err := uc.GetBookedSlotIDs(context.Background(), "session-json")

	assert.NoError(t, err)
	assert.Equal(t, []string{"slot-1", "slot-2", "slot-3", "b3"}, slotIDs)
}

func TestBookingUsecase_GetBookedSlotIDs_ToleratesCacheFailure(t *testing.T) {
	hubClient := new(MockBookingHubClient)
	redisRepo := new(MockRedisRepository)
	sessionService := new(MockSessionService)
	uc := newTestBookingUsecase(hubClient, redisRepo, sessionService)

	sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(testSession(), nil)
	redisRepo.On("GetSetMembers", mock.Anything, "booked-slots:mentee-1").Return(nil, exceptions.ErrRedisGetSetMembers(errors.New("redis down")))
	hubClient.On("FindMenteeBookings", mock.Anything, "hub-token").Return([]mentorhub_dto.Booking{
		{ID: "b1", SlotID: "slot-7"},
	}, nil)

	slotIDs, err := uc.GetBookedSlotIDs(context.Background(), "session-json")

	assert.NoError(t, err)
	assert.Equal(t, []string{"slot-7"}, slotIDs)
}

func TestBookingUsecase_FindMyBookings_UsesPlaceholderForMissingMentor(t *testing.T) {
	hubClient := new(MockBookingHubClient)
	redisRepo := new(MockRedisRepository)
	sessionService := new(MockSessionService)
	uc := newTestBookingUsecase(hubClient, redisRepo, sessionService)

	sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(testSession(), nil)
	hubClient.On("FindMenteeBookings", mock.Anything, "hub-token").Return([]mentorhub_dto.Booking{
		{ID: "b1", SlotID: "slot-1", Mentor: &mentorhub_dto.MentorReference{ID: "m1", Name: "Ayu", Prefix: "Dr."}, Day: "Monday"},
		{ID: "b2", SlotID: "slot-2", Mentor: nil, Day: "Tuesday"},
	}, nil)

	bookings, err := uc.FindMyBookings(context.Background(), "session-json")

	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
	assert.Equal(t, "Dr. Ayu", bookings[0].MentorName)
	assert.Equal(t, constvars.MentorNamePlaceholder, bookings[1].MentorName)
}
