package utils

import (
	"time"

	"medvisit-client/internal/pkg/constvars"
)

// nowFunc is swapped in tests.
var nowFunc = time.Now

func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(constvars.DateFormat, date, time.Local)
}

// VisitWindow computes the reservation timestamps for a one hour visit
// starting at the given wall-clock hour of the selected date, in local
// time, formatted the way the backend expects them.
func VisitWindow(date string, hour int) (dateStart, dateEnd string, err error) {
	day, err := ParseDate(date)
	if err != nil {
		return "", "", err
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.Local)
	end := start.Add(time.Hour)
	return start.Format(constvars.DateTimeFormat), end.Format(constvars.DateTimeFormat), nil
}

// IsPastHour reports whether the slot at the given hour of the selected
// date starts before now.
func IsPastHour(date string, hour int, now time.Time) bool {
	day, err := ParseDate(date)
	if err != nil {
		return false
	}
	slot := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.Local)
	return slot.Before(now)
}
