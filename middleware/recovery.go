package middleware

import (
	"context"
	"runtime/debug"

	apierrors "github.com/kbukum/apistate/errors"
	"github.com/kbukum/apistate/executor"
	"github.com/kbukum/apistate/logger"
)

// Recovery returns middleware that recovers panics raised by downstream
// middleware, logging the stack and returning the panic as an error. The
// executor's innermost handler already recovers panics from the operation
// itself; this guards the chain.
func Recovery(log *logger.Logger) executor.Middleware {
	if log == nil {
		log = logger.Nop()
	}
	return func(next executor.Handler) executor.Handler {
		return func(ctx context.Context, key string, op executor.Operation, opts executor.Options) (err error) {
			defer func() {
				if r := recover(); r != nil {
					callErr := apierrors.FromPanic(r)
					log.Error("panic in call middleware", logger.Fields(
						logger.FieldKey, key,
						logger.FieldError, callErr.Error(),
						"stack", string(debug.Stack()),
					))
					err = callErr
				}
			}()
			return next(ctx, key, op, opts)
		}
	}
}
