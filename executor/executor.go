package executor

import (
	"context"
	"sync"

	"github.com/kbukum/apistate/callstate"
	apierrors "github.com/kbukum/apistate/errors"
	"github.com/kbukum/apistate/logger"
)

// Operation is a one-shot asynchronous function producing a result payload.
// Once invoked it runs to completion or fails; the executor has no way to
// abandon it early beyond the ctx it passes through.
type Operation func(ctx context.Context) (any, error)

// Options carries per-call settings.
type Options struct {
	// OnSuccess is invoked with the resolved payload after the success
	// state is recorded.
	OnSuccess func(data any)
	// OnError is invoked with the normalized error after the error state
	// is recorded and every error handler has run.
	OnError func(err *apierrors.CallError)
	// Persist marks the key's state for mirroring to durable storage. It
	// governs the loading and terminal writes identically.
	Persist bool
}

// Handler executes one call. Middleware wrap it; the innermost handler is
// supplied by the Executor.
type Handler func(ctx context.Context, key string, op Operation, opts Options) error

// Middleware wraps a Handler with additional behavior. A middleware that
// never calls next leaves the key stuck at loading; that is a caller error,
// not a framework guarantee.
type Middleware func(next Handler) Handler

// ErrorHandler observes every call failure, in registration order.
type ErrorHandler func(err *apierrors.CallError, key string)

// Chain composes multiple middleware. The first in the list is the outermost
// (runs first before the call, last after it).
func Chain(middlewares ...Middleware) Middleware {
	return func(final Handler) Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}

// Executor coordinates call execution against a single Store.
type Executor struct {
	store *callstate.Store
	log   *logger.Logger

	mu         sync.Mutex
	middleware []Middleware
	handlers   []ErrorHandler
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the diagnostic logger.
func WithLogger(log *logger.Logger) Option {
	return func(e *Executor) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates an Executor bound to store.
func New(store *callstate.Store, opts ...Option) *Executor {
	e := &Executor{
		store: store,
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Store returns the Store this executor records into.
func (e *Executor) Store() *callstate.Store { return e.store }

// Use appends middleware to the chain. Middleware are append-only for the
// process lifetime; the first added becomes the outermost wrapper.
func (e *Executor) Use(mw ...Middleware) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, m := range mw {
		if m != nil {
			e.middleware = append(e.middleware, m)
		}
	}
}

// OnError appends error handlers. Every call failure is delivered to each
// handler once, in registration order, with the normalized error and the key.
func (e *Executor) OnError(handlers ...ErrorHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, h := range handlers {
		if h != nil {
			e.handlers = append(e.handlers, h)
		}
	}
}

// HandleAPI runs op for key through the middleware chain, updating the
// store's call state around it. The returned error is reserved for failures
// raised by middleware; op failures are recorded in state and never
// propagated.
func (e *Executor) HandleAPI(ctx context.Context, key string, op Operation, opts *Options) error {
	options := Options{}
	if opts != nil {
		options = *opts
	}

	e.mu.Lock()
	mws := make([]Middleware, len(e.middleware))
	copy(mws, e.middleware)
	e.mu.Unlock()

	handler := Chain(mws...)(e.run)
	return handler(ctx, key, op, options)
}

// run is the innermost handler.
func (e *Executor) run(ctx context.Context, key string, op Operation, opts Options) error {
	e.store.Set(key, callstate.Patch{Status: callstate.StatusLoading}, opts.Persist)

	data, err := invoke(ctx, op)
	if err != nil {
		callErr := apierrors.Normalize(err)
		e.store.Set(key, callstate.Patch{
			Status:    callstate.StatusError,
			ClearData: true,
			Error:     callErr,
		}, opts.Persist)
		e.log.Debug("call failed", logger.ErrorFields(key, callErr))

		for _, h := range e.snapshotHandlers() {
			h(callErr, key)
		}
		if opts.OnError != nil {
			opts.OnError(callErr)
		}
		return nil
	}

	e.store.Set(key, callstate.Patch{
		Status:     callstate.StatusSuccess,
		Data:       data,
		ClearData:  data == nil,
		ClearError: true,
	}, opts.Persist)
	if opts.OnSuccess != nil {
		opts.OnSuccess(data)
	}
	return nil
}

func (e *Executor) snapshotHandlers() []ErrorHandler {
	e.mu.Lock()
	defer e.mu.Unlock()
	handlers := make([]ErrorHandler, len(e.handlers))
	copy(handlers, e.handlers)
	return handlers
}

// invoke runs op, converting a recovered panic into an operation failure.
func invoke(ctx context.Context, op Operation) (data any, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, apierrors.FromPanic(r)
		}
	}()
	return op(ctx)
}
