package models

import (
	"time"

	"medvisit-client/internal/pkg/constvars"
)

// Visit is a read-through copy of a backend visit. dateStart < dateEnd is
// assumed from the backend and not validated locally.
type Visit struct {
	VisitID   int64   `json:"visitId"`
	DoctorID  int64   `json:"doctorId"`
	PatientID int64   `json:"patientId,omitempty"`
	DateStart string  `json:"dateStart"`
	DateEnd   string  `json:"dateEnd"`
	Doctor    *Doctor `json:"doctor,omitempty"`
}

// StartTime parses the wire timestamp in local time. The backend has been
// seen emitting both "2006-01-02 15:04:05" and RFC 3339; a zero time is
// returned for anything else so a bad row sorts first instead of failing
// the whole list.
func (v *Visit) StartTime() time.Time {
	if t, err := time.ParseInLocation(constvars.DateTimeFormat, v.DateStart, time.Local); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, v.DateStart); err == nil {
		return t.In(time.Local)
	}
	return time.Time{}
}

func (v *Visit) StartHour() int {
	return v.StartTime().Hour()
}
