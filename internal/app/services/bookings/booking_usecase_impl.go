package bookings

import (
	"context"
	"fmt"
	"mentorportal-service/internal/app/contracts"
	"mentorportal-service/internal/pkg/constvars"
	"mentorportal-service/internal/pkg/dto/requests"
	"mentorportal-service/internal/pkg/dto/responses"
	"mentorportal-service/internal/pkg/mentorhub_dto"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingHubClient contracts.BookingHubClient
	RedisRepository  contracts.RedisRepository
	SessionService   contracts.SessionService
	Log              *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	bookingHubClient contracts.BookingHubClient,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			BookingHubClient: bookingHubClient,
			RedisRepository:  redisRepository,
			SessionService:   sessionService,
			Log:              logger,
		}
	})
	return bookingUsecaseInstance
}

func (uc *bookingUsecase) FindMyBookings(ctx context.Context, sessionData string) ([]responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.FindMyBookings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.BookingHubClient.FindMenteeBookings(ctx, session.UpstreamToken)
	if err != nil {
		uc.Log.Error("bookingUsecase.FindMyBookings error fetching bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.Booking, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, responses.Booking{
			ID:         booking.ID,
			SlotID:     booking.SlotID,
			MentorName: mentorDisplayName(booking.Mentor),
			Day:        booking.Day,
			StartTime:  booking.StartTime,
			EndTime:    booking.EndTime,
		})
	}

	uc.Log.Info("bookingUsecase.FindMyBookings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookingCountKey, len(result)),
	)
	return result, nil
}

// GetBookedSlotIDs reconciles the mentee's booked-slot set: the union of the
// optimistic Redis set and the slot ids carried by the authoritative booking
// list. Taking the union means a slot the mentee just booked stays marked
// even when mentorhub has not surfaced the new booking yet.
func (uc *bookingUsecase) GetBookedSlotIDs(ctx context.Context, sessionData string) ([]string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	optimistic, err := uc.RedisRepository.GetSetMembers(ctx, fmt.Sprintf(constvars.RedisBookedSlotsKeyFormat, session.MenteeID))
	if err != nil {
		// The cached set is an accelerator, not the source of truth.
		uc.Log.Warn("bookingUsecase.GetBookedSlotIDs error reading cached set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		optimistic = nil
	}

	bookings, err := uc.BookingHubClient.FindMenteeBookings(ctx, session.UpstreamToken)
	if err != nil {
		uc.Log.Error("bookingUsecase.GetBookedSlotIDs error fetching bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return unionSlotIDs(optimistic, bookings), nil
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, sessionData string, request *requests.CreateBooking) (*responses.CreateBooking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, request.SlotID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	booking, err := uc.BookingHubClient.CreateBooking(ctx, session.UpstreamToken, &mentorhub_dto.CreateBookingRequest{
		MentorID: request.MentorID,
		Slot:     request.Slot,
	})
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking upstream booking failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, request.SlotID),
			zap.Error(err),
		)
		return nil, err
	}

	bookedSlotID := booking.SlotID
	if bookedSlotID == "" {
		bookedSlotID = request.SlotID
	}

	bookedSlotsKey := fmt.Sprintf(constvars.RedisBookedSlotsKeyFormat, session.MenteeID)
	err = uc.RedisRepository.AddToSet(ctx, bookedSlotsKey, bookedSlotID)
	if err != nil {
		// The booking already succeeded upstream. A stale cached set only
		// costs one re-fetch, so report success regardless.
		uc.Log.Warn("bookingUsecase.CreateBooking error recording optimistic slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.refreshBookedSlotSet(ctx, requestID, session.UpstreamToken, bookedSlotsKey, bookedSlotID)

	uc.Log.Info("bookingUsecase.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, bookedSlotID),
	)
	return &responses.CreateBooking{
		BookingID:  booking.ID,
		SlotID:     bookedSlotID,
		Day:        booking.Day,
		StartTime:  booking.StartTime,
		EndTime:    booking.EndTime,
		MenteeName: booking.MenteeName,
	}, nil
}

// refreshBookedSlotSet replaces the cached set with the authoritative booking
// list unioned with the slot that was just booked, so the fresh booking never
// flips back to available while mentorhub catches up.
func (uc *bookingUsecase) refreshBookedSlotSet(ctx context.Context, requestID, upstreamToken, bookedSlotsKey, bookedSlotID string) {
	bookings, err := uc.BookingHubClient.FindMenteeBookings(ctx, upstreamToken)
	if err != nil {
		uc.Log.Warn("bookingUsecase.refreshBookedSlotSet error fetching bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	slotIDs := unionSlotIDs([]string{bookedSlotID}, bookings)
	values := make([]interface{}, 0, len(slotIDs))
	for _, slotID := range slotIDs {
		values = append(values, slotID)
	}

	err = uc.RedisRepository.ReplaceSet(ctx, bookedSlotsKey, values...)
	if err != nil {
		uc.Log.Warn("bookingUsecase.refreshBookedSlotSet error replacing cached set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

// unionSlotIDs merges the optimistic slot ids with the ones derived from the
// booking list, preserving first-seen order. Bookings without a slot id fall
// back to the booking's own id so old records still occupy the set.
func unionSlotIDs(optimistic []string, bookings []mentorhub_dto.Booking) []string {
	seen := make(map[string]bool, len(optimistic)+len(bookings))
	result := make([]string, 0, len(optimistic)+len(bookings))

	appendID := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		result = append(result, id)
	}

	for _, id := range optimistic {
		appendID(id)
	}
	for _, booking := range bookings {
		if booking.SlotID != "" {
			appendID(booking.SlotID)
		} else {
			appendID(booking.ID)
		}
	}

	return result
}

func mentorDisplayName(mentor *mentorhub_dto.MentorReference) string {
	if mentor == nil {
		return constvars.MentorNamePlaceholder
	}

	displayName := strings.TrimSpace(strings.Join([]string{mentor.Prefix, mentor.Name}, " "))
	if displayName == "" {
		return constvars.MentorNamePlaceholder
	}
	return displayName
}
