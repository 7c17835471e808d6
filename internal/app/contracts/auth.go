package contracts

import (
	"context"

	"medvisit-client/internal/app/models"
	"medvisit-client/internal/pkg/dto/requests"
	"medvisit-client/internal/pkg/dto/responses"
)

type AuthClient interface {
	Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginResult, error)
	RegisterPatient(ctx context.Context, request *requests.RegisterUser) error
	RegisterDoctor(ctx context.Context, request *requests.RegisterUser) error
	WhoAmI(ctx context.Context, token string) (*models.UserProfile, error)
}

type AuthUsecase interface {
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Register(ctx context.Context, request *requests.RegisterUser, role string) (string, error)
	Logout(ctx context.Context) error
	// CurrentSession gates protected operations: a missing or locally
	// expired token returns an authorization error the front end maps to
	// the login screen.
	CurrentSession(ctx context.Context) (*models.Session, error)
	// FreshProfile re-resolves the caller's profile from the backend. The
	// cached session copy is never authoritative; anything that needs a
	// patient or doctor id goes through this.
	FreshProfile(ctx context.Context) (*models.UserProfile, error)
}
