package middleware

import (
	"context"
	"time"

	"github.com/kbukum/apistate/callstate"
	"github.com/kbukum/apistate/executor"
	"github.com/kbukum/apistate/observability"
)

// Metrics returns middleware that records call counts, durations, and
// in-flight gauges for every call. A nil Metrics disables recording.
func Metrics(m *observability.Metrics, store *callstate.Store) executor.Middleware {
	return func(next executor.Handler) executor.Handler {
		return func(ctx context.Context, key string, op executor.Operation, opts executor.Options) error {
			start := time.Now()
			m.RecordCallStart(ctx, key)

			err := next(ctx, key, op, opts)

			status := string(callstate.StatusSuccess)
			if err != nil || store.View(key).IsError {
				status = string(callstate.StatusError)
			}
			m.RecordCallEnd(ctx, key, status, time.Since(start))
			return err
		}
	}
}
