package dashboard

import (
	"context"
	"mentorportal-service/internal/app/contracts"
	"mentorportal-service/internal/pkg/constvars"
	"mentorportal-service/internal/pkg/dto/responses"
	"sync"

	"go.uber.org/zap"
)

type dashboardUsecase struct {
	AvailabilityUsecase contracts.AvailabilityUsecase
	BookingUsecase      contracts.BookingUsecase
	SessionService      contracts.SessionService
	Log                 *zap.Logger
}

var (
	dashboardUsecaseInstance contracts.DashboardUsecase
	onceDashboardUsecase     sync.Once
)

func NewDashboardUsecase(
	availabilityUsecase contracts.AvailabilityUsecase,
	bookingUsecase contracts.BookingUsecase,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	onceDashboardUsecase.Do(func() {
		dashboardUsecaseInstance = &dashboardUsecase{
			AvailabilityUsecase: availabilityUsecase,
			BookingUsecase:      bookingUsecase,
			SessionService:      sessionService,
			Log:                 logger,
		}
	})
	return dashboardUsecaseInstance
}

// GetDashboard assembles the mentee dashboard in one round trip. The
// availability and booking legs run concurrently and settle independently: a
// failure on either leg degrades that part of the page instead of failing
// the whole response.
func (uc *dashboardUsecase) GetDashboard(ctx context.Context, sessionData string) (*responses.Dashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.GetDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var (
		wg            sync.WaitGroup
		availability  []responses.DayAvailability
		bookings      []responses.Booking
		bookedSlotIDs []string
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		dayAvailability, err := uc.AvailabilityUsecase.GetAvailabilityIndex(ctx)
		if err != nil {
			uc.Log.Warn("dashboardUsecase.GetDashboard availability degraded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return
		}
		availability = dayAvailability
	}()

	if sessionData != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			menteeBookings, err := uc.BookingUsecase.FindMyBookings(ctx, sessionData)
			if err != nil {
				uc.Log.Warn("dashboardUsecase.GetDashboard bookings degraded",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
				return
			}
			bookings = menteeBookings
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			slotIDs, err := uc.BookingUsecase.GetBookedSlotIDs(ctx, sessionData)
			if err != nil {
				uc.Log.Warn("dashboardUsecase.GetDashboard booked set degraded",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
				return
			}
			bookedSlotIDs = slotIDs
		}()
	}

	wg.Wait()

	if availability == nil {
		availability = emptyAvailabilityIndex()
	}
	if bookings == nil {
		bookings = []responses.Booking{}
	}
	if bookedSlotIDs == nil {
		bookedSlotIDs = []string{}
	}

	markBookedSlots(availability, bookedSlotIDs)

	response := &responses.Dashboard{
		User:          uc.resolveUser(ctx, sessionData),
		Availability:  availability,
		Bookings:      bookings,
		BookedSlotIDs: bookedSlotIDs,
	}

	uc.Log.Info("dashboardUsecase.GetDashboard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookingCountKey, len(bookings)),
	)
	return response, nil
}

// resolveUser turns the session into the identity block. Anonymous visitors
// and unreadable sessions both yield nil, which the client renders as the
// signed-out state.
func (uc *dashboardUsecase) resolveUser(ctx context.Context, sessionData string) *responses.DashboardUser {
	if sessionData == "" {
		return nil
	}

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil
	}

	return &responses.DashboardUser{
		MenteeID:   session.MenteeID,
		MenteeName: session.MenteeName,
		Email:      session.Email,
	}
}

// markBookedSlots flags every availability slot whose id is in the booked
// set so the client can disable its button without a second lookup.
func markBookedSlots(availability []responses.DayAvailability, bookedSlotIDs []string) {
	if len(bookedSlotIDs) == 0 {
		return
	}

	booked := make(map[string]bool, len(bookedSlotIDs))
	for _, slotID := range bookedSlotIDs {
		booked[slotID] = true
	}

	for dayIdx := range availability {
		for mentorIdx := range availability[dayIdx].Mentors {
			slots := availability[dayIdx].Mentors[mentorIdx].Slots
			for slotIdx := range slots {
				if booked[slots[slotIdx].ID] {
					slots[slotIdx].Booked = true
				}
			}
		}
	}
}

// emptyAvailabilityIndex keeps the weekday skeleton present even when the
// availability leg failed, so the client always receives all seven sections.
func emptyAvailabilityIndex() []responses.DayAvailability {
	index := make([]responses.DayAvailability, 0, len(constvars.DaysOfWeek))
	for _, day := range constvars.DaysOfWeek {
		index = append(index, responses.DayAvailability{
			Day:     day,
			Mentors: []responses.MentorAvailability{},
		})
	}
	return index
}
