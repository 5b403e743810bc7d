package scope

import (
	"context"

	"engagement-srv/internal/model"
)

// Payload is the verified token payload handed to scope construction.
type Payload struct {
	UserID   string
	Subject  string
	Username string
	Email    string
	Role     string
}

// Manager verifies tokens into payloads. Implemented by pkg/jwt.
type Manager interface {
	Verify(token string) (Payload, error)
}

type contextKey string

const (
	payloadKey contextKey = "scope_payload"
	scopeKey   contextKey = "scope"
)

// NewScope creates a new scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

// SetPayloadToContext stores the raw payload in the context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey, payload)
}

// GetPayloadFromContext returns the payload stored by the auth middleware.
func GetPayloadFromContext(ctx context.Context) Payload {
	if p, ok := ctx.Value(payloadKey).(Payload); ok {
		return p
	}
	return Payload{}
}

// SetScopeToContext stores the scope in the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey, sc)
}

// GetScopeFromContext returns the scope stored by the auth middleware.
func GetScopeFromContext(ctx context.Context) model.Scope {
	if sc, ok := ctx.Value(scopeKey).(model.Scope); ok {
		return sc
	}
	return model.Scope{}
}
