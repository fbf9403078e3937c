// Package executor runs one-shot asynchronous operations through a
// composable middleware chain, recording their lifecycle in a callstate.Store.
//
// A call transitions its key to loading, awaits the operation, then records
// success (payload) or error (normalized CallError) and fans the failure out
// to registered error handlers. Call failures are fully recovered: HandleAPI
// only returns an error raised by middleware itself.
package executor
