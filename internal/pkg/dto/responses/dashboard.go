package responses

// DashboardUser distinguishes "confirmed absent" from "present": when User
// is nil the client shows the sign-in control instead of redirecting on a
// timer.
type DashboardUser struct {
	MenteeID   string `json:"mentee_id"`
	MenteeName string `json:"mentee_name"`
	Email      string `json:"email"`
}

type Dashboard struct {
	User          *DashboardUser    `json:"user"`
	Availability  []DayAvailability `json:"availability"`
	Bookings      []Booking         `json:"bookings"`
	BookedSlotIDs []string          `json:"booked_slot_ids"`
}
