package schedule

import (
	"testing"
	"time"

	"medvisit-client/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestCandidateHours(t *testing.T) {
	t.Run("Interval Two Offers All Even Base Hours", func(t *testing.T) {
		hours := CandidateHours(Practitioner{ID: 1, Interval: 2})
		assert.Equal(t, []int{8, 10, 12, 14, 16}, hours, "every base hour is even")
	})

	t.Run("Interval Three Offers Only Noon", func(t *testing.T) {
		hours := CandidateHours(Practitioner{ID: 2, Interval: 3})
		assert.Equal(t, []int{12}, hours, "12 is the only base hour divisible by 3")
	})

	t.Run("Non Positive Interval Offers Nothing", func(t *testing.T) {
		assert.Nil(t, CandidateHours(Practitioner{ID: 9, Interval: 0}))
		assert.Nil(t, CandidateHours(Practitioner{ID: 9, Interval: -1}))
	})
}

func TestBuildGrid(t *testing.T) {
	date := "2026-09-14"
	practitioners := DefaultPractitioners()
	earlyMorning := time.Date(2026, 9, 14, 6, 0, 0, 0, time.Local)

	t.Run("Full Grid Shape", func(t *testing.T) {
		grid := BuildGrid(date, nil, practitioners, 0, earlyMorning)

		assert.Len(t, grid, 11, "5 + 1 + 5 candidate hours")
		for _, slot := range grid {
			assert.Equal(t, SlotAvailable, slot.Status)
			assert.True(t, slot.Bookable())
		}
		assert.Equal(t, int64(1), grid[0].Practitioner.ID, "grid is ordered by practitioner then hour")
		assert.Equal(t, 8, grid[0].Hour)
		assert.Equal(t, int64(2), grid[5].Practitioner.ID)
		assert.Equal(t, 12, grid[5].Hour)
	})

	t.Run("Past Hours Are Omitted Not Disabled", func(t *testing.T) {
		nineAM := time.Date(2026, 9, 14, 9, 0, 0, 0, time.Local)
		grid := BuildGrid(date, nil, practitioners, 0, nineAM)

		for _, slot := range grid {
			assert.GreaterOrEqual(t, slot.Hour, 10, "slots before now must not appear at all")
		}
		assert.Len(t, grid, 9, "the two 8:00 slots are gone")
	})

	t.Run("Taken Slot Is Scoped To Its Doctor", func(t *testing.T) {
		visits := []models.Visit{
			{VisitID: 1, DoctorID: 1, PatientID: 42, DateStart: "2026-09-14 10:00:00"},
		}
		grid := BuildGrid(date, visits, practitioners, 0, earlyMorning)

		for _, slot := range grid {
			if slot.Practitioner.ID == 1 && slot.Hour == 10 {
				assert.Equal(t, SlotTaken, slot.Status)
				assert.False(t, slot.Bookable())
				continue
			}
			if slot.Practitioner.ID == 3 && slot.Hour == 10 {
				assert.Equal(t, SlotAvailable, slot.Status, "other doctors keep the hour")
			}
		}
	})

	t.Run("Own Visit Blocks The Hour Across Doctors", func(t *testing.T) {
		visits := []models.Visit{
			{VisitID: 1, DoctorID: 1, PatientID: 42, DateStart: "2026-09-14 12:00:00"},
		}
		grid := BuildGrid(date, visits, practitioners, 42, earlyMorning)

		for _, slot := range grid {
			if slot.Hour != 12 {
				continue
			}
			switch slot.Practitioner.ID {
			case 1:
				assert.Equal(t, SlotTaken, slot.Status, "taken wins over own conflict")
			default:
				assert.Equal(t, SlotOwnConflict, slot.Status)
				assert.False(t, slot.Bookable())
			}
		}
	})

	t.Run("Other Patients Visit Does Not Raise Own Conflict", func(t *testing.T) {
		visits := []models.Visit{
			{VisitID: 1, DoctorID: 2, PatientID: 7, DateStart: "2026-09-14 12:00:00"},
		}
		grid := BuildGrid(date, visits, practitioners, 42, earlyMorning)

		for _, slot := range grid {
			if slot.Hour == 12 && slot.Practitioner.ID != 2 {
				assert.Equal(t, SlotAvailable, slot.Status)
			}
		}
	})

	t.Run("Zero Patient ID Disables Conflict Detection", func(t *testing.T) {
		visits := []models.Visit{
			{VisitID: 1, DoctorID: 2, PatientID: 0, DateStart: "2026-09-14 12:00:00"},
		}
		grid := BuildGrid(date, visits, practitioners, 0, earlyMorning)

		for _, slot := range grid {
			if slot.Hour == 12 && slot.Practitioner.ID != 2 {
				assert.Equal(t, SlotAvailable, slot.Status, "anonymous rows never mark own hours")
			}
		}
	})
}
