package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/kbukum/apistate/executor"
)

// callIDKey is an unexported type for context keys to avoid collisions.
type callIDKey struct{}

// RequestID injects a unique call id into the context of every call, unless
// one is already present.
func RequestID() executor.Middleware {
	return func(next executor.Handler) executor.Handler {
		return func(ctx context.Context, key string, op executor.Operation, opts executor.Options) error {
			if CallIDFromContext(ctx) == "" {
				ctx = WithCallID(ctx, uuid.New().String())
			}
			return next(ctx, key, op, opts)
		}
	}
}

// WithCallID returns a context carrying the given call id.
func WithCallID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, callIDKey{}, id)
}

// CallIDFromContext returns the call id from ctx, or "".
func CallIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(callIDKey{}).(string); ok {
		return id
	}
	return ""
}
