package callstate

import (
	"testing"

	apierrors "github.com/kbukum/apistate/errors"
)

func TestView_UnwrittenKeyIsIdle(t *testing.T) {
	s := New()
	v := s.View("never")
	if v.IsLoading || v.IsSuccess || v.IsError {
		t.Errorf("expected idle view, got %+v", v)
	}
	if v.Data != nil || v.Err != nil {
		t.Errorf("expected no data and no error, got %+v", v)
	}
	if _, ok := s.State("never"); ok {
		t.Error("expected no raw state for an unwritten key")
	}
}

func TestSet_CreatesAndMerges(t *testing.T) {
	s := New()
	s.Set("user", Patch{Status: StatusLoading}, false)

	st, ok := s.State("user")
	if !ok || st.Status != StatusLoading {
		t.Fatalf("expected loading state, got %+v (ok=%v)", st, ok)
	}

	// Merging data must not disturb the status.
	s.Set("user", Patch{Data: map[string]any{"id": 1}}, false)
	st, _ = s.State("user")
	if st.Status != StatusLoading {
		t.Errorf("Status = %s, want %s", st.Status, StatusLoading)
	}
	if st.Data == nil {
		t.Error("expected data to be set")
	}

	s.Set("user", Patch{Status: StatusSuccess, ClearError: true}, false)
	st, _ = s.State("user")
	if st.Status != StatusSuccess || st.Data == nil {
		t.Errorf("expected success with data preserved, got %+v", st)
	}
}

func TestSet_ClearFlags(t *testing.T) {
	s := New()
	s.Set("k", Patch{Status: StatusSuccess, Data: "payload"}, false)
	s.Set("k", Patch{
		Status:    StatusError,
		ClearData: true,
		Error:     apierrors.New(apierrors.ErrCodeCallFailed, "boom"),
	}, false)

	st, _ := s.State("k")
	if st.Data != nil {
		t.Error("expected data cleared on error")
	}
	if st.Error == nil || st.Error.Message != "boom" {
		t.Errorf("expected recorded error, got %+v", st.Error)
	}
}

func TestSet_PersistMembershipRedeclaredEveryWrite(t *testing.T) {
	s := New()
	s.Set("user", Patch{Status: StatusSuccess, Data: 1}, true)

	snap := s.PersistentSnapshot()
	if len(snap.PersistentKeys) != 1 || snap.PersistentKeys[0] != "user" {
		t.Fatalf("expected [user], got %v", snap.PersistentKeys)
	}

	// A later non-persisting write drops the key from the persistent set.
	s.Set("user", Patch{Status: StatusLoading}, false)
	snap = s.PersistentSnapshot()
	if len(snap.PersistentKeys) != 0 {
		t.Errorf("expected empty persistent set, got %v", snap.PersistentKeys)
	}
}

func TestReset_BehavesLikeNeverWritten(t *testing.T) {
	s := New()
	s.Set("user", Patch{Status: StatusSuccess, Data: 42}, true)
	s.Reset("user")

	if _, ok := s.State("user"); ok {
		t.Error("expected state entry removed")
	}
	v := s.View("user")
	if v.IsSuccess || v.Data != nil {
		t.Errorf("expected idle view after reset, got %+v", v)
	}
	if snap := s.PersistentSnapshot(); len(snap.PersistentKeys) != 0 {
		t.Errorf("expected key removed from persistent set, got %v", snap.PersistentKeys)
	}
}

func TestAnyLoading(t *testing.T) {
	s := New()
	s.Set("a", Patch{Status: StatusSuccess}, false)
	s.Set("b", Patch{Status: StatusLoading}, false)

	tests := []struct {
		name string
		keys []string
		want bool
	}{
		{"no keys scans all", nil, true},
		{"matching subset", []string{"x", "b"}, true},
		{"non-loading subset", []string{"a"}, false},
		{"unknown keys", []string{"x", "y"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.AnyLoading(tc.keys...); got != tc.want {
				t.Errorf("AnyLoading(%v) = %v, want %v", tc.keys, got, tc.want)
			}
		})
	}

	s.Set("b", Patch{Status: StatusSuccess}, false)
	if s.AnyLoading() {
		t.Error("expected no loading keys after b resolved")
	}
}

func TestWatch_NotifiedPerMutationWithPersistentView(t *testing.T) {
	s := New()
	var changes []Change
	s.Watch(func(c Change) { changes = append(changes, c) })

	s.Set("user", Patch{Status: StatusLoading}, true)
	s.Set("other", Patch{Status: StatusLoading}, false)
	s.Reset("user")

	if len(changes) != 3 {
		t.Fatalf("expected 3 changes, got %d", len(changes))
	}
	if changes[0].Key != "user" || changes[0].State.Status != StatusLoading {
		t.Errorf("unexpected first change: %+v", changes[0])
	}
	if got := changes[0].Persistent.PersistentKeys; len(got) != 1 || got[0] != "user" {
		t.Errorf("expected persistent view [user], got %v", got)
	}
	if got := changes[1].Persistent.PersistentKeys; len(got) != 1 {
		t.Errorf("expected other to stay out of the persistent view, got %v", got)
	}
	if !changes[2].Reset {
		t.Error("expected third change marked as reset")
	}
	if got := changes[2].Persistent.PersistentKeys; len(got) != 0 {
		t.Errorf("expected empty persistent view after reset, got %v", got)
	}
}

func TestImport_RestoresOnlyListedKeys(t *testing.T) {
	s := New()
	s.Import(Snapshot{
		APIStates: map[string]State{
			"user":  {Status: StatusSuccess, Data: map[string]any{"id": float64(1)}},
			"stray": {Status: StatusSuccess},
		},
		PersistentKeys: []string{"user", "ghost"},
	})

	if st, ok := s.State("user"); !ok || st.Status != StatusSuccess {
		t.Errorf("expected user restored, got %+v (ok=%v)", st, ok)
	}
	if _, ok := s.State("stray"); ok {
		t.Error("expected unlisted key to stay absent")
	}
	if _, ok := s.State("ghost"); ok {
		t.Error("expected key without state to stay absent")
	}

	snap := s.PersistentSnapshot()
	if len(snap.PersistentKeys) != 1 || snap.PersistentKeys[0] != "user" {
		t.Errorf("expected [user] persistent, got %v", snap.PersistentKeys)
	}
}

func TestKeys_Sorted(t *testing.T) {
	s := New()
	s.Set("b", Patch{Status: StatusIdle}, false)
	s.Set("a", Patch{Status: StatusIdle}, false)
	got := s.Keys()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Keys() = %v, want [a b]", got)
	}
}
