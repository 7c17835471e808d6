package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingDataKey       = "data"
	LoggingSelectionKey  = "selection"
	LoggingEndpointKey   = "endpoint"
	LoggingStatusCodeKey = "status_code"
	LoggingVisitIDKey    = "visit_id"
	LoggingDoctorIDKey   = "doctor_id"
	LoggingPatientIDKey  = "patient_id"
	LoggingUsernameKey   = "username"
	LoggingDateKey       = "date"
	LoggingHourKey       = "hour"
	LoggingRoleKey       = "role"
)
