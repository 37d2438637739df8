package requests

// CreateBooking carries the book click. Slot is the formatted
// "startTime - endTime" descriptor mentorhub expects on its write endpoint,
// SlotID is the identifier of the slot button the mentee pressed.
type CreateBooking struct {
	MentorID string `json:"mentor_id" validate:"required"`
	SlotID   string `json:"slot_id" validate:"required"`
	Slot     string `json:"slot" validate:"required"`
}
