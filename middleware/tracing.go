package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/kbukum/apistate/callstate"
	"github.com/kbukum/apistate/executor"
	"github.com/kbukum/apistate/observability"
)

// Tracing returns middleware that wraps every call in an OpenTelemetry span
// carrying the call key and terminal status.
func Tracing(store *callstate.Store) executor.Middleware {
	return func(next executor.Handler) executor.Handler {
		return func(ctx context.Context, key string, op executor.Operation, opts executor.Options) error {
			ctx, span := observability.StartSpan(ctx, observability.SpanAPICall)
			defer span.End()

			span.SetAttributes(attribute.String(observability.AttrCallKey, key))
			if id := CallIDFromContext(ctx); id != "" {
				span.SetAttributes(attribute.String(observability.AttrCallID, id))
			}

			err := next(ctx, key, op, opts)

			view := store.View(key)
			switch {
			case err != nil:
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			case view.IsError:
				span.SetAttributes(attribute.String(observability.AttrCallStatus, string(callstate.StatusError)))
				if view.Err != nil {
					span.RecordError(view.Err)
					span.SetStatus(codes.Error, view.Err.Message)
				}
			default:
				span.SetAttributes(attribute.String(observability.AttrCallStatus, string(callstate.StatusSuccess)))
			}
			return err
		}
	}
}
