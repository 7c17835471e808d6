package requests

type VisitList struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// VisitReservation mirrors the backend wire shape: ids travel as strings
// and timestamps as "2006-01-02 15:04:05" in local time.
type VisitReservation struct {
	PatientID string `json:"patientId" validate:"required"`
	DoctorID  string `json:"doctorId" validate:"required"`
	DateStart string `json:"dateStart" validate:"required"`
	DateEnd   string `json:"dateEnd" validate:"required"`
}
