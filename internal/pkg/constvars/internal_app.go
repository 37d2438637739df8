package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourceAuth     = "auth"
	ResourceMentors  = "mentors"
	ResourceMentees  = "mentees"
	ResourceSlot     = "Slot"
	ResourceMentor   = "Mentor"
	ResourceBooking  = "Booking"
	ResourceIdentity = "Identity"
)

// DaysOfWeek is the canonical weekday order the dashboard renders in.
// The availability index always carries exactly these keys, in this order.
var DaysOfWeek = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

const (
	// MentorNamePlaceholder is rendered when a booking or slot carries no
	// resolvable mentor reference.
	MentorNamePlaceholder = "Mentor information unavailable"
)

const (
	RedisSessionKeyFormat     = "session:%s"
	RedisBookedSlotsKeyFormat = "booked-slots:%s"
	RedisAvailabilityIndexKey = "availability-index"
)
