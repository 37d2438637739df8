package responses

type Booking struct {
	ID         string `json:"id"`
	SlotID     string `json:"slot_id,omitempty"`
	MentorName string `json:"mentor_name"`
	Day        string `json:"day"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

type CreateBooking struct {
	BookingID  string `json:"booking_id"`
	SlotID     string `json:"slot_id"`
	Day        string `json:"day"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	MenteeName string `json:"mentee_name"`
}
