package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	REQUEST_ID_PREFIX = "MDVST_CLI_"
)

// Roles as reported by the backend in the profile payload.
const (
	RolePatient = "ROLE_PATIENT"
	RoleDoctor  = "ROLE_DOCTOR"
)

// Role selectors used on registration forms.
const (
	RegisterRolePatient = "patient"
	RegisterRoleDoctor  = "doctor"
)

// Keys persisted in the durable session file.
const (
	SessionKeyToken     = "token"
	SessionKeyTokenType = "tokenType"
	SessionKeyUser      = "user"
	SessionKeyPatientID = "patientId"
	SessionKeyDoctorID  = "doctorId"
)

// Wire formats used by the backend for dates and timestamps.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
