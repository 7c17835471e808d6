package views

import (
	"context"
	"fmt"
	"sync"
	"time"

	"medvisit-client/internal/app/config"
	"medvisit-client/internal/app/contracts"
	"medvisit-client/internal/app/models"
	"medvisit-client/internal/app/services/schedule"
	"medvisit-client/internal/pkg/constvars"
	"medvisit-client/internal/pkg/exceptions"
	"medvisit-client/internal/pkg/utils"

	"go.uber.org/zap"
)

// BookingView is the slot-availability screen state. Each fetch is tagged
// with the selection it was issued for; a response whose tag no longer
// matches the current selection is discarded instead of clobbering newer
// data.
type BookingView struct {
	AuthUsecase          contracts.AuthUsecase
	VisitUsecase         contracts.VisitUsecase
	Practitioners        []schedule.Practitioner
	ConfirmBeforeReserve bool
	Timeout              time.Duration
	Log                  *zap.Logger

	mu           sync.Mutex
	seq          uint64
	selectedDate string
	visits       []models.Visit
	grid         []schedule.Slot
	loadErr      error
}

func NewBookingView(
	internalConfig *config.InternalConfig,
	authUsecase contracts.AuthUsecase,
	visitUsecase contracts.VisitUsecase,
	logger *zap.Logger,
) *BookingView {
	return &BookingView{
		AuthUsecase:          authUsecase,
		VisitUsecase:         visitUsecase,
		Practitioners:        schedule.DefaultPractitioners(),
		ConfirmBeforeReserve: internalConfig.Booking.ConfirmBeforeReserve,
		Timeout:              time.Duration(internalConfig.API.RequestTimeoutInSec) * time.Second,
		Log:                  logger,
	}
}

// SelectDate fetches the day's visits and re-derives the grid. On a fetch
// failure the grid is cleared so no slot is ever falsely shown as free.
func (v *BookingView) SelectDate(ctx context.Context, date string) error {
	ctx = utils.WithRequestID(ctx)
	ctx, cancel := context.WithTimeout(ctx, v.Timeout)
	defer cancel()

	v.mu.Lock()
	v.selectedDate = date
	v.seq++
	fetchSeq := v.seq
	v.mu.Unlock()

	visits, fetchErr := v.VisitUsecase.ListVisits(ctx, date)

	var patientID int64
	if fetchErr == nil {
		profile, profileErr := v.AuthUsecase.FreshProfile(ctx)
		switch {
		case profileErr != nil:
			// The grid still renders, but no slot can be marked as the
			// viewer's own conflict.
			v.Log.Warn("bookingView.SelectDate profile lookup failed, own-conflict marking disabled",
				zap.String(constvars.LoggingDateKey, date),
				zap.Error(profileErr),
			)
		case profile.Patient != nil:
			patientID = profile.Patient.ID
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.seq != fetchSeq || v.selectedDate != date {
		// A newer selection superseded this fetch; drop the response.
		v.Log.Debug("bookingView.SelectDate dropping stale response",
			zap.String(constvars.LoggingSelectionKey, date),
		)
		return nil
	}

	if fetchErr != nil {
		v.visits = nil
		v.grid = nil
		v.loadErr = fetchErr
		return fetchErr
	}

	v.visits = visits
	v.grid = schedule.BuildGrid(date, visits, v.Practitioners, patientID, time.Now())
	v.loadErr = nil
	return nil
}

// Grid returns the current derivation. After a failed fetch it fails
// closed: no grid, the stored error.
func (v *BookingView) Grid() ([]schedule.Slot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.loadErr != nil {
		return nil, v.loadErr
	}
	grid := make([]schedule.Slot, len(v.grid))
	copy(grid, v.grid)
	return grid, nil
}

func (v *BookingView) SelectedDate() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selectedDate
}

// Reserve books an available slot. confirm implements the mandatory
// confirmation step; when the policy is on and confirm declines, no call
// is made and the empty notice signals the abort. On success the day is
// re-fetched and the grid re-derived against backend truth.
func (v *BookingView) Reserve(ctx context.Context, practitionerID int64, hour int, confirm func(schedule.Slot) bool) (string, error) {
	v.mu.Lock()
	date := v.selectedDate
	var slot *schedule.Slot
	for i := range v.grid {
		if v.grid[i].Practitioner.ID == practitionerID && v.grid[i].Hour == hour {
			slot = &v.grid[i]
			break
		}
	}
	loadErr := v.loadErr
	v.mu.Unlock()

	if loadErr != nil {
		return "", loadErr
	}
	if slot == nil || !slot.Bookable() {
		return "", exceptions.ErrSlotNotBookable(nil)
	}

	if v.ConfirmBeforeReserve {
		// A missing confirm callback counts as a decline, never as consent.
		if confirm == nil || !confirm(*slot) {
			return "", nil
		}
	}

	reserveCtx := utils.WithRequestID(ctx)
	reserveCtx, cancel := context.WithTimeout(reserveCtx, v.Timeout)
	defer cancel()

	reservation, err := v.VisitUsecase.Reserve(reserveCtx, practitionerID, date, hour)
	if err != nil {
		// Inline error, no state mutation; the grid stays as rendered.
		return "", err
	}

	notice := fmt.Sprintf(constvars.VisitReservedSuccess, reservation.DateStart)
	if refreshErr := v.SelectDate(ctx, date); refreshErr != nil {
		v.Log.Warn("bookingView.Reserve refresh after booking failed",
			zap.String(constvars.LoggingDateKey, date),
			zap.Error(refreshErr),
		)
	}
	return notice, nil
}
