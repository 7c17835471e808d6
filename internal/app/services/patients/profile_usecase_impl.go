package patients

import (
	"context"

	"medvisit-client/internal/app/contracts"
	"medvisit-client/internal/app/models"
	"medvisit-client/internal/pkg/constvars"
	"medvisit-client/internal/pkg/exceptions"
	"medvisit-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type profileUsecase struct {
	AuthUsecase   contracts.AuthUsecase
	PatientClient contracts.PatientClient
	Log           *zap.Logger
}

func NewProfileUsecase(
	authUsecase contracts.AuthUsecase,
	patientClient contracts.PatientClient,
	logger *zap.Logger,
) contracts.ProfileUsecase {
	return &profileUsecase{
		AuthUsecase:   authUsecase,
		PatientClient: patientClient,
		Log:           logger,
	}
}

func (uc *profileUsecase) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("profileUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.AuthUsecase.FreshProfile(ctx)
}

func (uc *profileUsecase) ToggleSmsNotifications(ctx context.Context) (bool, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("profileUsecase.ToggleSmsNotifications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.AuthUsecase.CurrentSession(ctx)
	if err != nil {
		return false, err
	}

	// The patient id always comes from a freshly fetched profile, never
	// from the cached session copy.
	profile, err := uc.AuthUsecase.FreshProfile(ctx)
	if err != nil {
		return false, err
	}
	if profile.Patient == nil {
		return false, exceptions.ErrPatientIDMissing(nil)
	}

	enabled := !profile.Patient.SmsNotificationsEnabled
	err = uc.PatientClient.UpdateSmsNotifications(ctx, session.Token, profile.Patient.ID, enabled)
	if err != nil {
		uc.Log.Error("profileUsecase.ToggleSmsNotifications backend call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPatientIDKey, profile.Patient.ID),
			zap.Error(err),
		)
		// The prior value stands; the state only flips once the backend
		// confirmed the change.
		return profile.Patient.SmsNotificationsEnabled, err
	}

	uc.Log.Info("profileUsecase.ToggleSmsNotifications succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("sms_notifications_enabled", enabled),
	)
	return enabled, nil
}
