package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"

	// Dashboard messages
	GetDashboardSuccess    = "get dashboard successfully"
	GetAvailabilitySuccess = "get mentor availability successfully"
	GetBookingsSuccess     = "get bookings successfully"
	CreateBookingSuccess   = "session booked successfully"
)
