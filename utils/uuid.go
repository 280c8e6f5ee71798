package utils

import (
	"context"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string, used as request id
func GenerateID() string {
	return uuid.New().String()
}

// ValidID reports whether s is a well-formed identifier
func ValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

type requestIDKey struct{}

// WithRequestID stores the inbound request id on ctx
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the id stored by WithRequestID, or a fresh one
func RequestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return GenerateID()
}
