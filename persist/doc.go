// Package persist mirrors the persistent subset of a callstate.Store to a
// storage backend and restores it on startup.
//
// The mirror is eventually consistent: every store mutation enqueues the
// recomputed persistent view into a latest-wins buffer that a background
// goroutine flushes to storage. Storage failures are logged and never
// propagated; a corrupt or missing snapshot leaves the store empty.
package persist
