package counterstore

import (
	"encoding/binary"
	"errors"
	"fmt"

	pebblestore "github.com/srccircumflex/ulid-tool/internal/storage/pebble"
	"github.com/srccircumflex/ulid-tool/pkg/ulid"
)

// counterKey is the fixed key the counter lives under. The DB may be shared
// with other state later; the prefix keeps the namespace open.
var counterKey = []byte("counter/local")

// Pebble persists the counter in a Pebble database. The value is stored as
// 10 big-endian bytes, the width of the randomness field.
type Pebble struct {
	db *pebblestore.DB
}

// NewPebble returns a store writing through db. The caller owns db and its
// lifecycle.
func NewPebble(db *pebblestore.DB) *Pebble { return &Pebble{db: db} }

// Load reads the persisted counter value.
func (s *Pebble) Load() (ulid.Uint128, bool, error) {
	raw, err := s.db.Get(counterKey)
	if errors.Is(err, pebblestore.ErrNotFound) {
		return ulid.Uint128{}, false, nil
	}
	if err != nil {
		return ulid.Uint128{}, false, fmt.Errorf("counterstore: pebble get: %w", err)
	}
	if len(raw) != 10 {
		return ulid.Uint128{}, false, fmt.Errorf("counterstore: pebble value has %d bytes, want 10", len(raw))
	}
	hi := uint64(binary.BigEndian.Uint16(raw[0:2]))
	lo := binary.BigEndian.Uint64(raw[2:10])
	return ulid.U128(hi, lo), true, nil
}

// Store overwrites the persisted counter value. Values wider than the
// randomness field are rejected.
func (s *Pebble) Store(v ulid.Uint128) error {
	if v.Hi > 0xFFFF {
		return fmt.Errorf("counterstore: value %s exceeds %d bits", v, ulid.RandomnessBits)
	}
	var raw [10]byte
	binary.BigEndian.PutUint16(raw[0:2], uint16(v.Hi))
	binary.BigEndian.PutUint64(raw[2:10], v.Lo)
	return s.db.Set(counterKey, raw[:])
}
