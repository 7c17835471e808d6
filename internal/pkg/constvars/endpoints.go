package constvars

// Backend REST paths consumed by the client. {id} style segments are
// formatted in at call sites.
const (
	EndpointLogin           = "/api/auth/login"
	EndpointRegisterPatient = "/api/auth/register/patient"
	EndpointRegisterDoctor  = "/api/auth/register/doctor"
	EndpointWhoAmI          = "/api/auth/me"

	EndpointDoctorByID = "/api/doctors/%s"

	EndpointVisitsList        = "/api/visits/list"
	EndpointVisitsListLegacy  = "/api/visit/list"
	EndpointVisitsListPatient = "/api/visits/list/patient/%s"
	EndpointVisitsListDoctor  = "/api/visits/list/doctor/%s"
	EndpointVisitReservation  = "/api/visits/reservation"
	EndpointVisitByID         = "/api/visit/%s"

	EndpointPatientNotifications = "/api/patients/%s/notifications"
)
