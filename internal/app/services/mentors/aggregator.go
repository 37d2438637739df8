package mentors

import (
	"mentorportal-service/internal/pkg/constvars"
	"mentorportal-service/internal/pkg/dto/responses"
	"mentorportal-service/internal/pkg/mentorhub_dto"
	"mentorportal-service/internal/pkg/utils"
)

// BuildAvailabilityIndex turns a flat slot list into the day -> mentor ->
// slots structure the dashboard renders. The outer order is always the
// canonical seven weekdays; mentors within a day and slots within a mentor
// keep input arrival order. A mentor appearing twice on the same day is
// merged into one entry. Slots without a resolvable mentor id are dropped
// since they cannot be grouped.
func BuildAvailabilityIndex(slots []mentorhub_dto.Slot) []responses.DayAvailability {
	index := make([]responses.DayAvailability, 0, len(constvars.DaysOfWeek))

	for _, day := range constvars.DaysOfWeek {
		var mentorOrder []string
		mentorsByID := make(map[string]*responses.MentorAvailability)

		for _, slot := range slots {
			if slot.Day != day {
				continue
			}
			if slot.Mentor == nil || slot.Mentor.ID == "" {
				continue
			}

			entry, ok := mentorsByID[slot.Mentor.ID]
			if !ok {
				name := slot.Mentor.Name
				if name == "" {
					name = constvars.MentorNamePlaceholder
				}
				entry = &responses.MentorAvailability{
					MentorID: slot.Mentor.ID,
					Name:     name,
					Prefix:   slot.Mentor.Prefix,
					Slots:    []responses.Slot{},
				}
				mentorsByID[slot.Mentor.ID] = entry
				mentorOrder = append(mentorOrder, slot.Mentor.ID)
			}

			entry.Slots = append(entry.Slots, responses.Slot{
				ID:        slot.ID,
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
				Time:      utils.FormatSlotRange(slot.StartTime, slot.EndTime),
			})
		}

		mentorEntries := make([]responses.MentorAvailability, 0, len(mentorOrder))
		for _, mentorID := range mentorOrder {
			mentorEntries = append(mentorEntries, *mentorsByID[mentorID])
		}

		index = append(index, responses.DayAvailability{
			Day:     day,
			Mentors: mentorEntries,
		})
	}

	return index
}

// FlattenMentorSlots converts the pre-aggregated all-available-slots shape
// into the flat slot list the aggregator consumes, so both fetch strategies
// funnel through one grouping implementation.
func FlattenMentorSlots(mentors []mentorhub_dto.MentorWithSlots) []mentorhub_dto.Slot {
	var slots []mentorhub_dto.Slot
	for _, mentor := range mentors {
		if mentor.ID == "" {
			continue
		}
		ref := &mentorhub_dto.MentorReference{
			ID:     mentor.ID,
			Name:   mentor.Name,
			Prefix: mentor.Prefix,
		}
		for _, nested := range mentor.Slots {
			slots = append(slots, mentorhub_dto.Slot{
				ID:        nested.ID,
				Day:       nested.Day,
				StartTime: nested.StartTime,
				EndTime:   nested.EndTime,
				Mentor:    ref,
			})
		}
	}
	return slots
}
