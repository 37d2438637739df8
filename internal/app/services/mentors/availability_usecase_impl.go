package mentors

import (
	"context"
	"mentorportal-service/internal/app/config"
	"mentorportal-service/internal/app/contracts"
	"mentorportal-service/internal/pkg/constvars"
	"mentorportal-service/internal/pkg/dto/responses"
	"mentorportal-service/internal/pkg/mentorhub_dto"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type availabilityUsecase struct {
	MentorHubClient contracts.MentorHubClient
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

func NewAvailabilityUsecase(
	mentorHubClient contracts.MentorHubClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		availabilityUsecaseInstance = &availabilityUsecase{
			MentorHubClient: mentorHubClient,
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return availabilityUsecaseInstance
}

func (uc *availabilityUsecase) GetAvailabilityIndex(ctx context.Context) ([]responses.DayAvailability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.GetAvailabilityIndex called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if cached := uc.readCachedIndex(ctx); cached != nil {
		uc.Log.Info("availabilityUsecase.GetAvailabilityIndex served from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return cached, nil
	}

	slots := uc.fetchAllWeekdays(ctx)
	if len(slots) == 0 {
		// All seven per-day fetches came back empty or failed; fall back to
		// the pre-aggregated endpoint before concluding there is nothing.
		mentorsWithSlots, err := uc.MentorHubClient.FindAllAvailableSlots(ctx)
		if err != nil {
			uc.Log.Warn("availabilityUsecase.GetAvailabilityIndex fallback fetch failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else {
			slots = FlattenMentorSlots(mentorsWithSlots)
		}
	}

	index := BuildAvailabilityIndex(slots)
	uc.writeCachedIndex(ctx, index)

	uc.Log.Info("availabilityUsecase.GetAvailabilityIndex succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(slots)),
	)
	return index, nil
}

// fetchAllWeekdays issues one request per weekday concurrently and waits for
// every one of them to settle. A failed day contributes an empty list so one
// unavailable weekday never blanks the rest of the dashboard.
func (uc *availabilityUsecase) fetchAllWeekdays(ctx context.Context) []mentorhub_dto.Slot {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	perDay := make([][]mentorhub_dto.Slot, len(constvars.DaysOfWeek))
	var wg sync.WaitGroup

	for i, day := range constvars.DaysOfWeek {
		wg.Add(1)
		go func(i int, day string) {
			defer wg.Done()
			slots, err := uc.MentorHubClient.FindAvailableSlotsByDay(ctx, day)
			if err != nil {
				uc.Log.Warn("availabilityUsecase.fetchAllWeekdays day fetch failed",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingDayKey, day),
					zap.Error(err),
				)
				return
			}
			perDay[i] = slots
		}(i, day)
	}

	wg.Wait()

	var all []mentorhub_dto.Slot
	for _, slots := range perDay {
		all = append(all, slots...)
	}
	return all
}

func (uc *availabilityUsecase) readCachedIndex(ctx context.Context) []responses.DayAvailability {
	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisAvailabilityIndexKey)
	if err != nil || cached == "" {
		return nil
	}

	var index []responses.DayAvailability
	if err := json.Unmarshal([]byte(cached), &index); err != nil {
		return nil
	}
	return index
}

func (uc *availabilityUsecase) writeCachedIndex(ctx context.Context, index []responses.DayAvailability) {
	indexJSON, err := json.Marshal(index)
	if err != nil {
		return
	}

	ttl := time.Duration(uc.InternalConfig.App.AvailabilityCacheTTLInSec) * time.Second
	if err := uc.RedisRepository.Set(ctx, constvars.RedisAvailabilityIndexKey, indexJSON, ttl); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("availabilityUsecase.writeCachedIndex cache write failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
