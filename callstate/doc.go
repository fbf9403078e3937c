// Package callstate holds the per-key lifecycle state of tracked API calls.
//
// A Store maps string keys to State records (idle/loading/success/error),
// tracks which keys are marked persistent, and notifies registered watchers
// on every mutation. Mutations are serialized: a watcher callback always runs
// to completion before the next mutation is observed. Watchers receive copies
// of everything they need and must not call back into the Store.
//
// Read projections (View, AnyLoading) treat an absent key as idle with no
// data and no error.
package callstate
