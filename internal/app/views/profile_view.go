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

// ProfileView is the account screen state. A failed initial load is
// terminal for the view: it renders the error state and does not retry.
type ProfileView struct {
	ProfileUsecase contracts.ProfileUsecase
	Timeout        time.Duration
	Log            *zap.Logger

	mu      sync.Mutex
	profile *models.UserProfile
	loadErr error
	loaded  bool
}

func NewProfileView(
	internalConfig *config.InternalConfig,
	profileUsecase contracts.ProfileUsecase,
	logger *zap.Logger,
) *ProfileView {
	return &ProfileView{
		ProfileUsecase: profileUsecase,
		Timeout:        time.Duration(internalConfig.API.RequestTimeoutInSec) * time.Second,
		Log:            logger,
	}
}

func (v *ProfileView) Load(ctx context.Context) error {
	ctx = utils.WithRequestID(ctx)
	ctx, cancel := context.WithTimeout(ctx, v.Timeout)
	defer cancel()

	profile, err := v.ProfileUsecase.GetProfile(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loaded = true
	if err != nil {
		v.profile = nil
		v.loadErr = err
		return err
	}
	v.profile = profile
	v.loadErr = nil
	return nil
}

func (v *ProfileView) Profile() (*models.UserProfile, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.loadErr != nil {
		return nil, v.loadErr
	}
	return v.profile, nil
}

// ToggleSmsNotifications flips the preference. The local copy only
// changes once the backend confirmed; on failure the prior value stays.
func (v *ProfileView) ToggleSmsNotifications(ctx context.Context) (bool, error) {
	v.mu.Lock()
	if v.loadErr != nil {
		err := v.loadErr
		v.mu.Unlock()
		return false, err
	}
	v.mu.Unlock()

	ctx = utils.WithRequestID(ctx)
	ctx, cancel := context.WithTimeout(ctx, v.Timeout)
	defer cancel()

	enabled, err := v.ProfileUsecase.ToggleSmsNotifications(ctx)
	if err != nil {
		return false, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.profile != nil && v.profile.Patient != nil {
		v.profile.Patient.SmsNotificationsEnabled = enabled
	}
	return enabled, nil
}
