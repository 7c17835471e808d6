package utils

import (
	"context"

	"medvisit-client/internal/pkg/constvars"

	"github.com/google/uuid"
)

// WithRequestID tags the context with a fresh operation id so every log
// line of a single user action can be correlated.
func WithRequestID(ctx context.Context) context.Context {
	requestID := constvars.REQUEST_ID_PREFIX + uuid.NewString()
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
