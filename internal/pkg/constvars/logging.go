package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingSessionDataKey   = "session_data"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingDayKey           = "day"
	LoggingMentorIDKey      = "mentor_id"
	LoggingSlotIDKey        = "slot_id"
	LoggingBookingIDKey     = "booking_id"
	LoggingSlotCountKey     = "slot_count"
	LoggingBookingCountKey  = "booking_count"
	LoggingResponseCountKey = "response_count"
)
