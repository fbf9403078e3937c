package local

import (
	"context"
	"errors"
	"testing"

	"github.com/kbukum/apistate/storage"
)

func TestStorage_RoundTrip(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}

	if err := s.Set(ctx, "snapshot", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, "snapshot")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("Get = %s, want {\"a\":1}", got)
	}

	ok, err := s.Exists(ctx, "snapshot")
	if err != nil || !ok {
		t.Errorf("Exists = (%v, %v), want (true, nil)", ok, err)
	}

	if err := s.Set(ctx, "snapshot", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, _ = s.Get(ctx, "snapshot")
	if string(got) != `{"a":2}` {
		t.Errorf("Get after overwrite = %s, want {\"a\":2}", got)
	}

	if err := s.Delete(ctx, "snapshot"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if ok, _ := s.Exists(ctx, "snapshot"); ok {
		t.Error("expected key gone after delete")
	}
	if err := s.Delete(ctx, "snapshot"); err != nil {
		t.Errorf("deleting a missing key should not error, got %v", err)
	}
}

func TestStorage_KeysCannotEscapeBasePath(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStorage(dir)
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	ctx := context.Background()

	if err := s.Set(ctx, "../outside", []byte("x")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, "../outside")
	if err != nil || string(got) != "x" {
		t.Errorf("escaped key round trip failed: (%s, %v)", got, err)
	}
}

func TestFactoryRegistration(t *testing.T) {
	s, err := storage.New(storage.Config{Provider: storage.ProviderLocal, BasePath: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}
	if _, ok := s.(*Storage); !ok {
		t.Errorf("expected *local.Storage, got %T", s)
	}
}
