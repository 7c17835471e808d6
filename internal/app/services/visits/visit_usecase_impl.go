package visits

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"medvisit-client/internal/app/config"
	"medvisit-client/internal/app/contracts"
	"medvisit-client/internal/app/models"
	"medvisit-client/internal/pkg/constvars"
	"medvisit-client/internal/pkg/dto/requests"
	"medvisit-client/internal/pkg/dto/responses"
	"medvisit-client/internal/pkg/exceptions"
	"medvisit-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type visitUsecase struct {
	AuthUsecase  contracts.AuthUsecase
	VisitClient  contracts.VisitClient
	DoctorClient contracts.DoctorClient
	Workers      int
	Log          *zap.Logger
}

func NewVisitUsecase(
	authUsecase contracts.AuthUsecase,
	visitClient contracts.VisitClient,
	doctorClient contracts.DoctorClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.VisitUsecase {
	workers := internalConfig.API.DoctorLookupWorkers
	if workers < 1 {
		workers = 1
	}
	return &visitUsecase{
		AuthUsecase:  authUsecase,
		VisitClient:  visitClient,
		DoctorClient: doctorClient,
		Workers:      workers,
		Log:          logger,
	}
}

func (uc *visitUsecase) ListVisits(ctx context.Context, date string) ([]models.Visit, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("visitUsecase.ListVisits called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	if _, err := utils.ParseDate(date); err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	session, err := uc.AuthUsecase.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}

	visits, err := uc.VisitClient.ListVisitsByDate(ctx, session.Token, date)
	if err != nil {
		uc.Log.Error("visitUsecase.ListVisits backend call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, date),
			zap.Error(err),
		)
		return nil, err
	}

	sortVisits(visits)
	uc.Log.Info("visitUsecase.ListVisits succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("visit_count", len(visits)),
	)
	return visits, nil
}

func (uc *visitUsecase) ListVisitsForUser(ctx context.Context) ([]models.Visit, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("visitUsecase.ListVisitsForUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.AuthUsecase.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := uc.AuthUsecase.FreshProfile(ctx)
	if err != nil {
		return nil, err
	}

	var visits []models.Visit
	switch {
	case profile.HasRole(constvars.RoleDoctor):
		if profile.Doctor == nil {
			return nil, exceptions.ErrDoctorIDMissing(nil)
		}
		visits, err = uc.VisitClient.ListVisitsByDoctor(ctx, session.Token, profile.Doctor.ID)
	default:
		if profile.Patient == nil {
			return nil, exceptions.ErrPatientIDMissing(nil)
		}
		visits, err = uc.VisitClient.ListVisitsByPatient(ctx, session.Token, profile.Patient.ID)
	}
	if err != nil {
		uc.Log.Error("visitUsecase.ListVisitsForUser backend call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.decorateWithDoctors(ctx, session.Token, visits)
	sortVisits(visits)

	uc.Log.Info("visitUsecase.ListVisitsForUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("visit_count", len(visits)),
	)
	return visits, nil
}

// decorateWithDoctors enriches each row with practitioner details through
// a bounded set of parallel lookups. One failed lookup degrades that
// single row to id-only display and never fails the list.
func (uc *visitUsecase) decorateWithDoctors(ctx context.Context, token string, visits []models.Visit) {
	requestID := utils.RequestIDFromContext(ctx)
	semaphore := make(chan struct{}, uc.Workers)
	var wg sync.WaitGroup

	for i := range visits {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(visit *models.Visit) {
			defer wg.Done()
			defer func() { <-semaphore }()

			doctor, err := uc.DoctorClient.FindDoctorByID(ctx, token, visit.DoctorID)
			if err != nil {
				uc.Log.Warn("visitUsecase.decorateWithDoctors lookup failed, row degrades to id-only",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Int64(constvars.LoggingDoctorIDKey, visit.DoctorID),
					zap.Error(err),
				)
				return
			}
			visit.Doctor = doctor
		}(&visits[i])
	}
	wg.Wait()
}

func (uc *visitUsecase) Reserve(ctx context.Context, doctorID int64, date string, hour int) (*responses.VisitReservation, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("visitUsecase.Reserve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, date),
		zap.Int(constvars.LoggingHourKey, hour),
	)

	session, err := uc.AuthUsecase.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}

	// The booking subject is always the freshly fetched profile's patient
	// id, never a previously cached one.
	profile, err := uc.AuthUsecase.FreshProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile.Patient == nil {
		return nil, exceptions.ErrPatientIDMissing(nil)
	}

	dateStart, dateEnd, err := utils.VisitWindow(date, hour)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	request := &requests.VisitReservation{
		PatientID: strconv.FormatInt(profile.Patient.ID, 10),
		DoctorID:  strconv.FormatInt(doctorID, 10),
		DateStart: dateStart,
		DateEnd:   dateEnd,
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	reservation, err := uc.VisitClient.CreateReservation(ctx, session.Token, request)
	if err != nil {
		uc.Log.Error("visitUsecase.Reserve backend call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("visitUsecase.Reserve succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingVisitIDKey, reservation.VisitID),
	)
	return reservation, nil
}

func (uc *visitUsecase) Cancel(ctx context.Context, visitID int64) error {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("visitUsecase.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingVisitIDKey, visitID),
	)

	session, err := uc.AuthUsecase.CurrentSession(ctx)
	if err != nil {
		return err
	}

	if err := uc.VisitClient.CancelVisit(ctx, session.Token, visitID); err != nil {
		uc.Log.Error("visitUsecase.Cancel backend call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingVisitIDKey, visitID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("visitUsecase.Cancel succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingVisitIDKey, visitID),
	)
	return nil
}

// sortVisits orders ascending by dateStart; the sort is stable so ties
// keep their input order.
func sortVisits(visits []models.Visit) {
	sort.SliceStable(visits, func(i, j int) bool {
		return visits[i].StartTime().Before(visits[j].StartTime())
	})
}
