package responses

// Slot is one bookable window rendered as a button. Booked is filled in by
// the dashboard composition, not by the aggregator.
type Slot struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Time      string `json:"time"`
	Booked    bool   `json:"booked"`
}

// MentorAvailability is one mentor's card within a weekday section.
type MentorAvailability struct {
	MentorID string `json:"mentor_id"`
	Name     string `json:"name"`
	Prefix   string `json:"prefix,omitempty"`
	Slots    []Slot `json:"slots"`
}

// DayAvailability is one weekday section of the availability index. The
// index is a slice rather than a map so the canonical weekday order survives
// JSON encoding.
type DayAvailability struct {
	Day     string               `json:"day"`
	Mentors []MentorAvailability `json:"mentors"`
}
