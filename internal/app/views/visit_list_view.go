package views

import (
	"context"
	"sync"
	"time"

	"medvisit-client/internal/app/config"
	"medvisit-client/internal/app/contracts"
	"medvisit-client/internal/app/models"
	"medvisit-client/internal/pkg/utils"

	"go.uber.org/zap"
)

// VisitListView is the "my visits" screen state. The list is a
// read-through cache: after every mutation it is re-fetched, never
// locally spliced.
type VisitListView struct {
	VisitUsecase contracts.VisitUsecase
	Timeout      time.Duration
	Log          *zap.Logger

	mu     sync.Mutex
	seq    uint64
	visits []models.Visit
}

func NewVisitListView(
	internalConfig *config.InternalConfig,
	visitUsecase contracts.VisitUsecase,
	logger *zap.Logger,
) *VisitListView {
	return &VisitListView{
		VisitUsecase: visitUsecase,
		Timeout:      time.Duration(internalConfig.API.RequestTimeoutInSec) * time.Second,
		Log:          logger,
	}
}

// Refresh re-fetches the caller's visit history. An older in-flight
// refresh can never overwrite the result of a newer one.
func (v *VisitListView) Refresh(ctx context.Context) error {
	ctx = utils.WithRequestID(ctx)
	ctx, cancel := context.WithTimeout(ctx, v.Timeout)
	defer cancel()

	v.mu.Lock()
	v.seq++
	fetchSeq := v.seq
	v.mu.Unlock()

	visits, err := v.VisitUsecase.ListVisitsForUser(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.seq != fetchSeq {
		return nil
	}
	if err != nil {
		return err
	}
	v.visits = visits
	return nil
}

// Visits returns the cached list; with upcomingOnly set, rows starting
// before now are filtered out. Order is the usecase's ascending
// dateStart sort.
func (v *VisitListView) Visits(upcomingOnly bool) []models.Visit {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !upcomingOnly {
		out := make([]models.Visit, len(v.visits))
		copy(out, v.visits)
		return out
	}
	now := time.Now()
	var out []models.Visit
	for _, visit := range v.visits {
		if !visit.StartTime().Before(now) {
			out = append(out, visit)
		}
	}
	return out
}

// Cancel deletes the visit and re-fetches the list so the rendered state
// matches backend truth. A failed cancellation leaves the cached list
// untouched.
func (v *VisitListView) Cancel(ctx context.Context, visitID int64) error {
	cancelCtx := utils.WithRequestID(ctx)
	cancelCtx, cancel := context.WithTimeout(cancelCtx, v.Timeout)
	defer cancel()

	if err := v.VisitUsecase.Cancel(cancelCtx, visitID); err != nil {
		return err
	}
	return v.Refresh(ctx)
}
