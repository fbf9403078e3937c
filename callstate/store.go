package callstate

import (
	"sync"

	"github.com/kbukum/apistate/util"
)

// Store owns all call states for one application. Construct it explicitly
// with New and pass it to consumers; there is no package-level instance.
type Store struct {
	mu         sync.Mutex
	states     map[string]State
	persistent map[string]struct{}
	watchers   []Watcher
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		states:     make(map[string]State),
		persistent: make(map[string]struct{}),
	}
}

// Set merges patch into the State for key, creating it as idle first if
// absent. Persistence membership is re-declared on every write: persist=true
// adds the key to the persistent set, persist=false removes it. Watchers are
// notified before Set returns.
func (s *Store) Set(key string, patch Patch, persist bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[key]
	if !ok {
		st = State{Status: StatusIdle}
	}
	if patch.Status != "" {
		st.Status = patch.Status
	}
	if patch.ClearData {
		st.Data = nil
	} else if patch.Data != nil {
		st.Data = patch.Data
	}
	if patch.ClearError {
		st.Error = nil
	} else if patch.Error != nil {
		st.Error = patch.Error
	}
	s.states[key] = st

	if persist {
		s.persistent[key] = struct{}{}
	} else {
		delete(s.persistent, key)
	}

	s.notifyLocked(Change{Key: key, State: st, Persistent: s.snapshotLocked()})
}

// Reset deletes the State for key and removes it from the persistent set.
// Subsequent reads behave as if the key never existed.
func (s *Store) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, key)
	delete(s.persistent, key)

	s.notifyLocked(Change{Key: key, Reset: true, Persistent: s.snapshotLocked()})
}

// State returns the raw State for key and whether it exists.
func (s *Store) State(key string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[key]
	return st, ok
}

// View derives the read projection for key. An absent key yields the zero
// View (idle, no data, no error).
func (s *Store) View(key string) View {
	s.mu.Lock()
	st, ok := s.states[key]
	s.mu.Unlock()
	if !ok {
		return View{}
	}
	return View{
		IsLoading: st.Status == StatusLoading,
		IsSuccess: st.Status == StatusSuccess,
		IsError:   st.Status == StatusError,
		Data:      st.Data,
		Err:       st.Error,
	}
}

// AnyLoading reports whether any of the given keys is currently loading.
// With no keys it scans every key in the Store.
func (s *Store) AnyLoading(keys ...string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(keys) == 0 {
		for _, st := range s.states {
			if st.Status == StatusLoading {
				return true
			}
		}
		return false
	}
	for _, key := range keys {
		if st, ok := s.states[key]; ok && st.Status == StatusLoading {
			return true
		}
	}
	return false
}

// Keys returns all tracked keys in ascending order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return util.SortedKeys(s.states)
}

// PersistentSnapshot returns the filtered view of states whose keys are
// marked persistent.
func (s *Store) PersistentSnapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Import merges a restored snapshot into the Store, marking its keys
// persistent. Only keys listed in snap.PersistentKeys are restored. Watchers
// are not notified: this is the rehydration path and runs before any watcher
// should care.
func (s *Store) Import(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range snap.PersistentKeys {
		st, ok := snap.APIStates[key]
		if !ok {
			continue
		}
		s.states[key] = st
		s.persistent[key] = struct{}{}
	}
}

// Watch registers a mutation watcher. Watchers are append-only for the
// lifetime of the Store; there is no removal API.
func (s *Store) Watch(fn Watcher) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		APIStates:      make(map[string]State, len(s.persistent)),
		PersistentKeys: util.SortedKeys(s.persistent),
	}
	for key := range s.persistent {
		if st, ok := s.states[key]; ok {
			snap.APIStates[key] = st
		}
	}
	return snap
}

func (s *Store) notifyLocked(change Change) {
	for _, fn := range s.watchers {
		fn(change)
	}
}
