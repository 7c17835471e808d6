package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess    = "successfully logged in"
	LogoutSuccess   = "successfully logged out"
	RegisterSuccess = "registration succeeded, you can log in now"

	// Visit messages
	VisitReservedSuccess  = "visit reserved for %s"
	VisitCancelledSuccess = "visit cancelled successfully"

	// Profile messages
	SmsNotificationsUpdatedSuccess = "SMS notification preference updated"
)
