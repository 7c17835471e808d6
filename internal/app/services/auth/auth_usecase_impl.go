package auth

import (
	"context"
	"strconv"

	"medvisit-client/internal/app/contracts"
	"medvisit-client/internal/app/models"
	"medvisit-client/internal/pkg/constvars"
	"medvisit-client/internal/pkg/dto/requests"
	"medvisit-client/internal/pkg/dto/responses"
	"medvisit-client/internal/pkg/exceptions"
	"medvisit-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	SessionStore contracts.SessionStore
	AuthClient   contracts.AuthClient
	Log          *zap.Logger
}

func NewAuthUsecase(
	sessionStore contracts.SessionStore,
	authClient contracts.AuthClient,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		SessionStore: sessionStore,
		AuthClient:   authClient,
		Log:          logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, username, password string) (*models.Session, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, username),
	)

	request := &requests.LoginUser{
		Username: username,
		Password: password,
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	result, err := uc.AuthClient.Login(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Login backend call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	profile, err := uc.AuthClient.WhoAmI(ctx, result.Token)
	if err != nil {
		uc.Log.Error("authUsecase.Login could not resolve profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	session := buildSession(result, profile)
	if err := uc.SessionStore.Set(ctx, session); err != nil {
		uc.Log.Error("authUsecase.Login could not persist session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, username),
	)
	return session, nil
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser, role string) (string, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	if err := utils.ValidateVar(role, "required,role_type"); err != nil {
		return "", exceptions.ErrInputValidation(err)
	}
	request.Roles = []string{role}
	if err := utils.ValidateStruct(request); err != nil {
		return "", exceptions.ErrInputValidation(err)
	}

	var err error
	switch role {
	case constvars.RegisterRolePatient:
		if peselErr := utils.ValidateVar(request.Pesel, "required,pesel"); peselErr != nil {
			return "", exceptions.ErrInputValidation(peselErr)
		}
		err = uc.AuthClient.RegisterPatient(ctx, request)
	case constvars.RegisterRoleDoctor:
		if jobErr := utils.ValidateVar(request.JobIdNumber, "required"); jobErr != nil {
			return "", exceptions.ErrInputValidation(jobErr)
		}
		err = uc.AuthClient.RegisterDoctor(ctx, request)
	}
	if err != nil {
		uc.Log.Error("authUsecase.Register backend call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	// Registration never auto-authenticates; the caller goes back to the
	// login form with a success notice.
	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return constvars.RegisterSuccess, nil
}

func (uc *authUsecase) Logout(ctx context.Context) error {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.SessionStore.Clear(ctx)
}

func (uc *authUsecase) CurrentSession(ctx context.Context) (*models.Session, error) {
	session, err := uc.SessionStore.Get(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrTokenMissing(nil)
	}
	if utils.IsTokenExpired(session.Token) {
		return nil, exceptions.ErrTokenExpired(nil)
	}
	return session, nil
}

func (uc *authUsecase) FreshProfile(ctx context.Context) (*models.UserProfile, error) {
	session, err := uc.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	return uc.AuthClient.WhoAmI(ctx, session.Token)
}

func buildSession(result *responses.LoginResult, profile *models.UserProfile) *models.Session {
	session := &models.Session{
		Token:     result.Token,
		TokenType: result.Type,
		UserID:    profile.ID,
		Roles:     profile.Roles,
		Profile:   profile,
	}
	if profile.Patient != nil {
		session.PatientID = strconv.FormatInt(profile.Patient.ID, 10)
	}
	if profile.Doctor != nil {
		session.DoctorID = strconv.FormatInt(profile.Doctor.ID, 10)
	}
	return session
}
