package counterstore

import (
	"testing"

	pebblestore "github.com/srccircumflex/ulid-tool/internal/storage/pebble"
	"github.com/srccircumflex/ulid-tool/pkg/ulid"
)

func openTestDB(t *testing.T) *pebblestore.DB {
	t.Helper()
	db, err := pebblestore.Open(pebblestore.Options{
		DataDir: t.TempDir(),
		Fsync:   pebblestore.FsyncModeNever,
	})
	if err != nil {
		t.Fatalf("open pebble: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPebbleLoadMissing(t *testing.T) {
	s := NewPebble(openTestDB(t))

	v, ok, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if ok {
		t.Fatalf("Load() ok = true for empty database")
	}
	if !v.IsZero() {
		t.Fatalf("Load() = %s, want 0", v)
	}
}

func TestPebbleRoundTrip(t *testing.T) {
	s := NewPebble(openTestDB(t))

	want := ulid.U128(0xFFFF, ^uint64(0))
	if err := s.Store(want); err != nil {
		t.Fatalf("Store() error: %v", err)
	}
	got, ok, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !ok {
		t.Fatalf("Load() ok = false after Store")
	}
	if got != want {
		t.Fatalf("Load() = %s, want %s", got, want)
	}
}

func TestPebbleStoreTooWide(t *testing.T) {
	s := NewPebble(openTestDB(t))

	if err := s.Store(ulid.U128(0x1_0000, 0)); err == nil {
		t.Fatalf("Store() error = nil for value wider than the randomness field")
	}
}
