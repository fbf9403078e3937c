package callstate

import (
	apierrors "github.com/kbukum/apistate/errors"
)

// Status represents the lifecycle phase of a tracked call.
type Status string

const (
	// StatusIdle is the state before any call ever started for a key,
	// or after an explicit reset.
	StatusIdle Status = "idle"
	// StatusLoading means a call is in flight.
	StatusLoading Status = "loading"
	// StatusSuccess means the most recent call resolved with a payload.
	StatusSuccess Status = "success"
	// StatusError means the most recent call failed.
	StatusError Status = "error"
)

// State is the tracked record for one key.
//
// Invariant (maintained by the executor's patches, not enforced here):
// StatusSuccess implies Error == nil, StatusError implies Data == nil.
type State struct {
	Status Status               `json:"status"`
	Data   any                  `json:"data,omitempty"`
	Error  *apierrors.CallError `json:"error,omitempty"`
}

// Patch is a shallow partial update applied to a key's State. Zero-valued
// fields leave the current value unchanged; the Clear flags remove a field
// explicitly.
type Patch struct {
	Status     Status
	Data       any
	ClearData  bool
	Error      *apierrors.CallError
	ClearError bool
}

// View is the read projection for one key.
type View struct {
	IsLoading bool
	IsSuccess bool
	IsError   bool
	Data      any
	Err       *apierrors.CallError
}

// Snapshot is the wire form of the persistent subset of a Store. The key set
// is serialized as a sorted list and rebuilt as a set on load, a documented
// lossy-order round-trip.
type Snapshot struct {
	APIStates      map[string]State `json:"apiStates"`
	PersistentKeys []string         `json:"persistentKeys"`
}

// Change describes one Store mutation, delivered to watchers. Persistent is
// the filtered view recomputed after the mutation, ready to mirror to
// storage.
type Change struct {
	Key        string
	State      State
	Reset      bool
	Persistent Snapshot
}

// Watcher observes Store mutations. Callbacks run synchronously under the
// Store's mutation lock and must not call Store methods.
type Watcher func(Change)
