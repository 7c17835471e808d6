package contracts

import (
	"context"

	"medvisit-client/internal/app/models"
	"medvisit-client/internal/pkg/dto/requests"
	"medvisit-client/internal/pkg/dto/responses"
)

type VisitClient interface {
	// ListVisitsByDate returns the booked visits of a day. A backend 404
	// means "no visits that day" and comes back as an empty list.
	ListVisitsByDate(ctx context.Context, token, date string) ([]models.Visit, error)
	ListVisitsByPatient(ctx context.Context, token string, patientID int64) ([]models.Visit, error)
	ListVisitsByDoctor(ctx context.Context, token string, doctorID int64) ([]models.Visit, error)
	CreateReservation(ctx context.Context, token string, request *requests.VisitReservation) (*responses.VisitReservation, error)
	CancelVisit(ctx context.Context, token string, visitID int64) error
}

type VisitUsecase interface {
	ListVisits(ctx context.Context, date string) ([]models.Visit, error)
	// ListVisitsForUser resolves the caller's role from a fresh profile
	// fetch and decorates each row with doctor details; a failed lookup
	// degrades that row to id-only display.
	ListVisitsForUser(ctx context.Context) ([]models.Visit, error)
	Reserve(ctx context.Context, doctorID int64, date string, hour int) (*responses.VisitReservation, error)
	Cancel(ctx context.Context, visitID int64) error
}
