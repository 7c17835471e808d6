package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"alphanum":     "must contain only alphanumeric characters",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"numeric":      "must be a number",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"password":     "must be at least 8 characters long",
	"phone_number": "must contain 9 to 15 digits",
	"pesel":        "must be exactly 11 digits",
	"role_type":    "must be either 'patient' or 'doctor'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "something is wrong with the application, please contact the administrator"
	ErrClientNotLoggedIn                   = "you are not logged in, please log in first"
	ErrClientSessionExpired                = "your session has expired, please log in again"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientServerUnreachable             = "cannot reach the server, please check your connection and try again"
	ErrClientServerLongRespond             = "server takes too long to respond, please try again later"
	ErrClientNoPatientAccount              = "no patient account is linked to this profile"
	ErrClientNoDoctorAccount               = "no doctor account is linked to this profile"
	ErrClientSlotAlreadyTaken              = "this time slot is already taken"
)

// Error messages for developers
const (
	ErrDevValidationFailed       = "VALIDATION_FAILED"
	ErrDevInvalidInput           = "INVALID_INPUT"
	ErrDevCannotMarshalJSON      = "CANNOT_MARSHAL_JSON"
	ErrDevCannotParseDate        = "CANNOT_PARSE_DATE"
	ErrDevCreateHTTPRequest      = "FAILED_TO_CREATE_HTTP_REQUEST"
	ErrDevSendHTTPRequest        = "FAILED_TO_SEND_HTTP_REQUEST"
	ErrDevDecodeResponse         = "FAILED_TO_DECODE_RESPONSE: %s"
	ErrDevBackendRejected        = "BACKEND_REJECTED_REQUEST: %s"
	ErrDevAuthTokenMissing       = "AUTH_TOKEN_MISSING"
	ErrDevAuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	ErrDevAuthTokenRejected      = "AUTH_TOKEN_REJECTED_BY_BACKEND"
	ErrDevServerDeadlineExceeded = "SERVER_DEADLINE_EXCEEDED"
	ErrDevSessionStoreWrite      = "SESSION_STORE_WRITE_FAILED"
	ErrDevPatientIDMissing       = "PATIENT_ID_MISSING_IN_PROFILE"
	ErrDevDoctorIDMissing        = "DOCTOR_ID_MISSING_IN_PROFILE"
	ErrDevSlotNotBookable        = "SLOT_NOT_BOOKABLE"
	ErrDevEmptyTokenInResponse   = "EMPTY_TOKEN_IN_LOGIN_RESPONSE"
)
