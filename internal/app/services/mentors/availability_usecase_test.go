package mentors

import (
	"context"
	"errors"
	"mentorportal-service/internal/app/config"
	"mentorportal-service/internal/pkg/constvars"
	"mentorportal-service/internal/pkg/mentorhub_dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockMentorHubClient struct {
	mock.Mock
}

func (m *MockMentorHubClient) FindAvailableSlotsByDay(ctx context.Context, day string) ([]mentorhub_dto.Slot, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mentorhub_dto.Slot), args.Error(1)
}

func (m *MockMentorHubClient) FindAllAvailableSlots(ctx context.Context) ([]mentorhub_dto.MentorWithSlots, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mentorhub_dto.MentorWithSlots), args.Error(1)
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

func newTestAvailabilityUsecase(hubClient *MockMentorHubClient, redisRepo *MockRedisRepository) *availabilityUsecase {
	return &availabilityUsecase{
		MentorHubClient: hubClient,
		RedisRepository: redisRepo,
		InternalConfig: &config.InternalConfig{
			App: config.App{AvailabilityCacheTTLInSec: 30},
		},
		Log: zap.NewNop(),
	}
}

func TestAvailabilityUsecase_GetAvailabilityIndex_ServesFromCache(t *testing.T) {
	hubClient := new(MockMentorHubClient)
	redisRepo := new(MockRedisRepository)
	uc := newTestAvailabilityUsecase(hubClient, redisRepo)

	cached := `[{"day":"Monday","mentors":[{"mentor_id":"m1","name":"Ayu","slots":[]}]}]`
	redisRepo.On("Get", mock.Anything, constvars.RedisAvailabilityIndexKey).Return(cached, nil)

	index, err := uc.GetAvailabilityIndex(context.Background())

	assert.NoError(t, err)
	assert.Len(t, index, 1)
	assert.Equal(t, "m1", index[0].Mentors[0].MentorID)
	hubClient.AssertNotCalled(t, "FindAvailableSlotsByDay", mock.Anything, mock.Anything)
}

func TestAvailabilityUsecase_GetAvailabilityIndex_FailedDayYieldsEmptySection(t *testing.T) {
	hubClient := new(MockMentorHubClient)
	redisRepo := new(MockRedisRepository)
	uc := newTestAvailabilityUsecase(hubClient, redisRepo)

	redisRepo.On("Get", mock.Anything, constvars.RedisAvailabilityIndexKey).Return("", nil)
	redisRepo.On("Set", mock.Anything, constvars.RedisAvailabilityIndexKey, mock.Anything, mock.Anything).Return(nil)

	for _, day := range constvars.DaysOfWeek {
		if day == "Monday" {
			hubClient.On("FindAvailableSlotsByDay", mock.Anything, day).Return([]mentorhub_dto.Slot{
				{ID: "s1", Day: "Monday", StartTime: "09:00", EndTime: "10:00", Mentor: mentorRef("m1", "Ayu", "")},
			}, nil)
			continue
		}
		if day == "Tuesday" {
			hubClient.On("FindAvailableSlotsByDay", mock.Anything, day).Return(nil, errors.New("mentorhub unreachable"))
			continue
		}
		hubClient.On("FindAvailableSlotsByDay", mock.Anything, day).Return([]mentorhub_dto.Slot{}, nil)
	}

	index, err := uc.GetAvailabilityIndex(context.Background())

	assert.NoError(t, err)
	assert.Len(t, index, 7)
	assert.Len(t, index[0].Mentors, 1)
	assert.Empty(t, index[1].Mentors)
}

func TestAvailabilityUsecase_GetAvailabilityIndex_FallsBackToAllSlotsEndpoint(t *testing.T) {
	hubClient := new(MockMentorHubClient)
	redisRepo := new(MockRedisRepository)
	uc := newTestAvailabilityUsecase(hubClient, redisRepo)

	redisRepo.On("Get", mock.Anything, constvars.RedisAvailabilityIndexKey).Return("", nil)
	redisRepo.On("Set", mock.Anything, constvars.RedisAvailabilityIndexKey, mock.Anything, mock.Anything).Return(nil)

	for _, day := range constvars.DaysOfWeek {
		hubClient.On("FindAvailableSlotsByDay", mock.Anything, day).Return(nil, errors.New("mentorhub unreachable"))
	}
	hubClient.On("FindAllAvailableSlots", mock.Anything).Return([]mentorhub_dto.MentorWithSlots{
		{ID: "m1", Name: "Ayu", Slots: []mentorhub_dto.NestedSlot{
			{ID: "s1", Day: "Friday", StartTime: "09:00", EndTime: "10:00"},
		}},
	}, nil)

	index, err := uc.GetAvailabilityIndex(context.Background())

	assert.NoError(t, err)
	assert.Len(t, index, 7)
	assert.Len(t, index[4].Mentors, 1)
	assert.Equal(t, "m1", index[4].Mentors[0].MentorID)
}

func TestAvailabilityUsecase_GetAvailabilityIndex_EverythingDownStillReturnsSkeleton(t *testing.T) {
	hubClient := new(MockMentorHubClient)
	redisRepo := new(MockRedisRepository)
	uc := newTestAvailabilityUsecase(hubClient, redisRepo)

	redisRepo.On("Get", mock.Anything, constvars.RedisAvailabilityIndexKey).Return("", errors.New("redis down"))
	redisRepo.On("Set", mock.Anything, constvars.RedisAvailabilityIndexKey, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	for _, day := range constvars.DaysOfWeek {
		hubClient.On("FindAvailableSlotsByDay", mock.Anything, day).Return(nil, errors.New("mentorhub unreachable"))
	}
	hubClient.On("FindAllAvailableSlots", mock.Anything).Return(nil, errors.New("mentorhub unreachable"))

	index, err := uc.GetAvailabilityIndex(context.Background())

	assert.NoError(t, err)
	assert.Len(t, index, 7)
	for _, day := range index {
		assert.Empty(t, day.Mentors)
	}
}
