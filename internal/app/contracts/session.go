package contracts

import (
	"context"

	"medvisit-client/internal/app/models"
)

// SessionStore is the single injected capability for durable session
// state. Views never touch the underlying storage directly.
type SessionStore interface {
	// Set persists the session atomically: token, token type, serialized
	// profile and the derived patient/doctor ids land together.
	Set(ctx context.Context, session *models.Session) error
	// Get reconstructs the persisted session. A missing or unreadable
	// store yields (nil, nil): not authenticated, not an error.
	Get(ctx context.Context) (*models.Session, error)
	// Clear removes every persisted key.
	Clear(ctx context.Context) error
}
