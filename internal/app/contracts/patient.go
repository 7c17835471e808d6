package contracts

import (
	"context"

	"medvisit-client/internal/app/models"
)

type PatientClient interface {
	UpdateSmsNotifications(ctx context.Context, token string, patientID int64, enabled bool) error
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context) (*models.UserProfile, error)
	// ToggleSmsNotifications flips the preference on the backend first;
	// the returned value is the new state and is only reported after the
	// call succeeded.
	ToggleSmsNotifications(ctx context.Context) (bool, error)
}
