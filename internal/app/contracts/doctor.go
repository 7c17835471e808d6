package contracts

import (
	"context"

	"medvisit-client/internal/app/models"
)

type DoctorClient interface {
	FindDoctorByID(ctx context.Context, token string, doctorID int64) (*models.Doctor, error)
}
