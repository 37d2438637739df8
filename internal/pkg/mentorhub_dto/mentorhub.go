// Package mentorhub_dto mirrors the wire types of the remote mentor/mentee
// management service ("mentorhub"). The service is an external collaborator;
// these structs describe its JSON, not ours.
package mentorhub_dto

// MentorReference is the denormalized mentor object mentorhub embeds on
// slots and bookings. It may be absent entirely when the mentor record was
// deleted upstream, which is why consumers must treat it as optional.
type MentorReference struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
}

// Slot is a single bookable time window as returned by the per-weekday
// available-slots endpoint.
type Slot struct {
	ID        string           `json:"_id"`
	Day       string           `json:"day"`
	StartTime string           `json:"startTime"`
	EndTime   string           `json:"endTime"`
	Mentor    *MentorReference `json:"mentorId"`
}

// MentorWithSlots is the shape of the all-available-slots endpoint: one entry
// per mentor with that mentor's open slots nested inside.
type MentorWithSlots struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Prefix string       `json:"prefix"`
	Slots  []NestedSlot `json:"slots"`
}

type NestedSlot struct {
	ID        string `json:"_id"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Booking is one confirmed reservation belonging to the authenticated mentee.
// SlotID references the slot the booking was created from; older records may
// carry an empty SlotID.
type Booking struct {
	ID        string           `json:"_id"`
	SlotID    string           `json:"slotId"`
	Mentor    *MentorReference `json:"mentorId"`
	Day       string           `json:"day"`
	StartTime string           `json:"startTime"`
	EndTime   string           `json:"endTime"`
}

type CreateBookingRequest struct {
	MentorID string `json:"mentorId"`
	Slot     string `json:"slot"`
}

type CreateBookingResponse struct {
	ID         string `json:"_id"`
	SlotID     string `json:"slotId"`
	Day        string `json:"day"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	MenteeName string `json:"menteeName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}

// Identity is the authenticated mentee as known by mentorhub.
type Identity struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// HubError is the error payload mentorhub returns on non-2xx responses.
type HubError struct {
	Message string `json:"message"`
}
