package views

import (
	"context"

	"medvisit-client/internal/app/config"
	"medvisit-client/internal/app/models"
	"medvisit-client/internal/pkg/dto/requests"
	"medvisit-client/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Login(ctx context.Context, username, password string) (*models.Session, error) {
	args := m.Called(ctx, username, password)
	if session := args.Get(0); session != nil {
		return session.(*models.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthUsecase) Register(ctx context.Context, request *requests.RegisterUser, role string) (string, error) {
	args := m.Called(ctx, request, role)
	return args.String(0), args.Error(1)
}

func (m *mockAuthUsecase) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockAuthUsecase) CurrentSession(ctx context.Context) (*models.Session, error) {
	args := m.Called(ctx)
	if session := args.Get(0); session != nil {
		return session.(*models.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthUsecase) FreshProfile(ctx context.Context) (*models.UserProfile, error) {
	args := m.Called(ctx)
	if profile := args.Get(0); profile != nil {
		return profile.(*models.UserProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockVisitUsecase struct {
	mock.Mock
}

func (m *mockVisitUsecase) ListVisits(ctx context.Context, date string) ([]models.Visit, error) {
	args := m.Called(ctx, date)
	if visits := args.Get(0); visits != nil {
		return visits.([]models.Visit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVisitUsecase) ListVisitsForUser(ctx context.Context) ([]models.Visit, error) {
	args := m.Called(ctx)
	if visits := args.Get(0); visits != nil {
		return visits.([]models.Visit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVisitUsecase) Reserve(ctx context.Context, doctorID int64, date string, hour int) (*responses.VisitReservation, error) {
	args := m.Called(ctx, doctorID, date, hour)
	if reservation := args.Get(0); reservation != nil {
		return reservation.(*responses.VisitReservation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVisitUsecase) Cancel(ctx context.Context, visitID int64) error {
	args := m.Called(ctx, visitID)
	return args.Error(0)
}

type mockProfileUsecase struct {
	mock.Mock
}

func (m *mockProfileUsecase) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	args := m.Called(ctx)
	if profile := args.Get(0); profile != nil {
		return profile.(*models.UserProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileUsecase) ToggleSmsNotifications(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		API: config.API{RequestTimeoutInSec: 10},
		Booking: config.Booking{
			ConfirmBeforeReserve: true,
		},
	}
}
