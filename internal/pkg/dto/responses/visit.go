package responses

import "medvisit-client/internal/app/models"

type VisitList struct {
	Visits []models.Visit `json:"visits"`
}

type VisitReservation struct {
	VisitID   int64  `json:"visitId"`
	DoctorID  int64  `json:"doctorId"`
	PatientID int64  `json:"patientId"`
	DateStart string `json:"dateStart"`
	DateEnd   string `json:"dateEnd"`
}
