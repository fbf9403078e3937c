package middleware

import (
	"context"
	"time"

	"github.com/kbukum/apistate/callstate"
	"github.com/kbukum/apistate/executor"
	"github.com/kbukum/apistate/logger"
)

// Logging returns middleware that logs every call with its key, terminal
// status, and duration. Failures log at error level, everything else at info.
func Logging(log *logger.Logger, store *callstate.Store) executor.Middleware {
	if log == nil {
		log = logger.Nop()
	}
	return func(next executor.Handler) executor.Handler {
		return func(ctx context.Context, key string, op executor.Operation, opts executor.Options) error {
			start := time.Now()
			err := next(ctx, key, op, opts)
			duration := time.Since(start)

			fields := logger.DurationFields(key, duration)
			if id := CallIDFromContext(ctx); id != "" {
				fields[logger.FieldCallID] = id
			}

			view := store.View(key)
			switch {
			case err != nil:
				fields[logger.FieldError] = err.Error()
				log.Error("call aborted by middleware", fields)
			case view.IsError:
				fields[logger.FieldStatus] = string(callstate.StatusError)
				if view.Err != nil {
					fields[logger.FieldError] = view.Err.Error()
				}
				log.Error("call failed", fields)
			default:
				fields[logger.FieldStatus] = string(callstate.StatusSuccess)
				log.Info("call completed", fields)
			}
			return err
		}
	}
}
