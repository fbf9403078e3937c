// Package composer provides typed, per-endpoint accessors over an executor.
//
// An API binds a fixed call key to a parameter type and a response type, so
// call sites get compile-time checked payloads instead of the store's untyped
// data field. It adds no runtime behavior beyond delegating to the executor.
package composer

import (
	"context"

	apierrors "github.com/kbukum/apistate/errors"
	"github.com/kbukum/apistate/executor"
)

// Operation is a typed one-shot asynchronous operation.
type Operation[P, R any] func(ctx context.Context, params P) (R, error)

// Composer binds endpoints to one executor.
type Composer struct {
	exec *executor.Executor
}

// New creates a Composer over exec.
func New(exec *executor.Executor) *Composer {
	return &Composer{exec: exec}
}

// API is the typed accessor for one endpoint.
type API[P, R any] struct {
	c    *Composer
	name string
	op   Operation[P, R]
}

// Endpoint declares a typed endpoint under the given name. The name is the
// call key used in the underlying store.
func Endpoint[P, R any](c *Composer, name string, op Operation[P, R]) *API[P, R] {
	return &API[P, R]{c: c, name: name, op: op}
}

// Name returns the call key this endpoint is bound to.
func (a *API[P, R]) Name() string { return a.name }

// Call runs the endpoint's operation with the given params through the
// executor under the fixed key.
func (a *API[P, R]) Call(ctx context.Context, params P, opts *executor.Options) error {
	return a.c.exec.HandleAPI(ctx, a.name, func(ctx context.Context) (any, error) {
		return a.op(ctx, params)
	}, opts)
}

// View is the typed read projection for one endpoint.
type View[R any] struct {
	IsLoading bool
	IsSuccess bool
	IsError   bool
	// Data is the typed payload. HasData reports whether the stored
	// payload asserted to R; state rehydrated from storage carries generic
	// JSON values and will not.
	Data    R
	HasData bool
	Err     *apierrors.CallError
}

// View derives the typed projection from the endpoint's current call state.
func (a *API[P, R]) View() View[R] {
	raw := a.c.exec.Store().View(a.name)
	out := View[R]{
		IsLoading: raw.IsLoading,
		IsSuccess: raw.IsSuccess,
		IsError:   raw.IsError,
		Err:       raw.Err,
	}
	if raw.Data != nil {
		if typed, ok := raw.Data.(R); ok {
			out.Data = typed
			out.HasData = true
		}
	}
	return out
}

// Reset clears the endpoint's call state, as if it never ran.
func (a *API[P, R]) Reset() {
	a.c.exec.Store().Reset(a.name)
}
