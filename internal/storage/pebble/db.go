package pebblestore

import (
	"errors"
	"time"

	"github.com/cockroachdb/pebble"
)

// ErrNotFound reports a missing key.
var ErrNotFound = pebble.ErrNotFound

// FsyncMode defines durability behavior for write operations.
type FsyncMode int

const (
	FsyncModeUnspecified FsyncMode = iota
	// FsyncModeAlways requests a WAL fsync on each write. The counter store
	// writes once per process lifecycle, so this is the default.
	FsyncModeAlways
	// FsyncModeInterval lets Pebble coalesce WAL syncs for writes within the
	// configured interval.
	FsyncModeInterval
	// FsyncModeNever avoids forcing WAL syncs from the application. Trades
	// durability for latency; a crash can lose the last counter flush.
	FsyncModeNever
)

// Options configures the Pebble store wrapper.
type Options struct {
	// DataDir is the path to the Pebble database directory.
	DataDir string
	// Fsync determines when to sync the WAL.
	Fsync FsyncMode
	// FsyncInterval controls group-commit when Fsync=FsyncModeInterval.
	FsyncInterval time.Duration
}

// DB wraps a Pebble database instance with the configured fsync policy.
type DB struct {
	inner     *pebble.DB
	writeSync bool
}

// Open creates or opens a Pebble database with the provided options.
func Open(opts Options) (*DB, error) {
	if opts.DataDir == "" {
		return nil, errors.New("pebble: Options.DataDir is required")
	}

	po := &pebble.Options{}
	switch opts.Fsync {
	case FsyncModeInterval:
		if opts.FsyncInterval <= 0 {
			opts.FsyncInterval = 5 * time.Millisecond
		}
		interval := opts.FsyncInterval
		po.WALMinSyncInterval = func() time.Duration { return interval }
	case FsyncModeNever, FsyncModeAlways:
		// Sync behavior is chosen per write below.
	default:
		opts.Fsync = FsyncModeAlways
	}

	inner, err := pebble.Open(opts.DataDir, po)
	if err != nil {
		return nil, err
	}
	return &DB{inner: inner, writeSync: opts.Fsync == FsyncModeAlways}, nil
}

// Close closes the Pebble database.
func (db *DB) Close() error {
	if db == nil || db.inner == nil {
		return nil
	}
	return db.inner.Close()
}

// Set writes a key respecting the fsync policy.
func (db *DB) Set(key, value []byte) error {
	wo := pebble.NoSync
	if db.writeSync {
		wo = pebble.Sync
	}
	return db.inner.Set(key, value, wo)
}

// Delete removes a key respecting the fsync policy.
func (db *DB) Delete(key []byte) error {
	wo := pebble.NoSync
	if db.writeSync {
		wo = pebble.Sync
	}
	return db.inner.Delete(key, wo)
}

// Get copies the value for the given key. Returns ErrNotFound for missing
// keys.
func (db *DB) Get(key []byte) ([]byte, error) {
	val, closer, err := db.inner.Get(key)
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return append([]byte(nil), val...), nil
}
