package schedule

import (
	"sort"
	"time"

	"medvisit-client/internal/app/models"
	"medvisit-client/internal/pkg/utils"
)

// Practitioner is a static, UI-owned schedule rule: Interval is the
// divisor applied to the base-hour list, so a practitioner offers a base
// hour iff hour % Interval == 0.
type Practitioner struct {
	ID          int64
	DisplayName string
	Interval    int
}

// BaseHours is the fixed list of offerable wall-clock hours.
var BaseHours = []int{8, 10, 12, 14, 16}

// DefaultPractitioners is the static practitioner table the booking
// screen renders.
func DefaultPractitioners() []Practitioner {
	return []Practitioner{
		{ID: 1, DisplayName: "Dr. Polak", Interval: 2},
		{ID: 2, DisplayName: "Dr. Niemiec", Interval: 3},
		{ID: 3, DisplayName: "Dr. Europejski", Interval: 2},
	}
}

type SlotStatus string

const (
	SlotAvailable   SlotStatus = "available"
	SlotTaken       SlotStatus = "taken"
	SlotOwnConflict SlotStatus = "ownConflict"
)

// Slot is one practitioner/hour pair of the availability grid.
type Slot struct {
	Practitioner Practitioner
	Hour         int
	Status       SlotStatus
}

// Bookable reports whether the slot is an active control.
func (s Slot) Bookable() bool {
	return s.Status == SlotAvailable
}

// CandidateHours filters the base hours by the practitioner's interval
// rule.
func CandidateHours(p Practitioner) []int {
	if p.Interval <= 0 {
		return nil
	}
	var hours []int
	for _, hour := range BaseHours {
		if hour%p.Interval == 0 {
			hours = append(hours, hour)
		}
	}
	return hours
}

// BuildGrid derives the bookable grid for a date from the fetched visit
// list, the static practitioner table and the current moment.
// Past slots are omitted entirely, not merely disabled. A slot is taken
// when a visit exists for that practitioner at that hour; it is an own
// conflict when the current patient already holds a visit at that hour
// with any practitioner. currentPatientID zero disables conflict
// detection (no patient account resolved).
func BuildGrid(date string, visits []models.Visit, practitioners []Practitioner, currentPatientID int64, now time.Time) []Slot {
	takenHours := make(map[int64]map[int]bool)
	ownHours := make(map[int]bool)
	for i := range visits {
		visit := &visits[i]
		hour := visit.StartHour()
		if takenHours[visit.DoctorID] == nil {
			takenHours[visit.DoctorID] = make(map[int]bool)
		}
		takenHours[visit.DoctorID][hour] = true
		if currentPatientID != 0 && visit.PatientID == currentPatientID {
			ownHours[hour] = true
		}
	}

	var grid []Slot
	for _, practitioner := range practitioners {
		for _, hour := range CandidateHours(practitioner) {
			if utils.IsPastHour(date, hour, now) {
				continue
			}
			status := SlotAvailable
			switch {
			case takenHours[practitioner.ID][hour]:
				status = SlotTaken
			case ownHours[hour]:
				status = SlotOwnConflict
			}
			grid = append(grid, Slot{
				Practitioner: practitioner,
				Hour:         hour,
				Status:       status,
			})
		}
	}

	sort.SliceStable(grid, func(i, j int) bool {
		if grid[i].Practitioner.ID != grid[j].Practitioner.ID {
			return grid[i].Practitioner.ID < grid[j].Practitioner.ID
		}
		return grid[i].Hour < grid[j].Hour
	})
	return grid
}
