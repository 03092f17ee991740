package ulid

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

const (
	// TimestampBits is the width of the millisecond timestamp field.
	TimestampBits = 48
	// RandomnessBits is the width of the full-format randomness field.
	RandomnessBits = 80
	// SLIDRandomnessBits is the width of the compact-format randomness field.
	SLIDRandomnessBits = 16

	// MaxTimestamp is the largest representable millisecond timestamp
	// (roughly the year 10889).
	MaxTimestamp = uint64(1)<<TimestampBits - 1
)

// ErrTimestampOverflow reports a wall clock beyond the 48-bit millisecond
// range. It is fatal: every identifier depends on a truthful timestamp, so
// construction is refused rather than retried.
var ErrTimestampOverflow = errors.New("ulid: timestamp exceeds 48 bits")

// MaxRandomness is the largest full-format randomness field value, 2^80 - 1.
var MaxRandomness = U128(0xFFFF, ^uint64(0))

// ULID is a 128-bit, lexicographically sortable identifier encoded as
// 16 bytes big-endian: [6 bytes ms_timestamp][10 bytes randomness].
type ULID [16]byte

// SLID is the compact 64-bit variant: [6 bytes ms_timestamp][2 bytes
// randomness].
type SLID [8]byte

// Minimum and maximum identifiers of each format.
var (
	MinULID = ULID{}
	MaxULID = ULID{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	MinSLID = SLID{}
	MaxSLID = SLID{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
)

// Now supplies the current time in milliseconds since the Unix epoch.
// Overridable in tests.
var Now = func() int64 { return time.Now().UnixMilli() }

// New constructs a ULID from the current time and the strategy's next
// randomness field. The strategy may mutate its counter as a side effect.
// The only failure modes are a failed integrity check and timestamp
// overflow.
func New(s Strategy) (ULID, error) {
	if err := ensureInit(); err != nil {
		return ULID{}, err
	}
	ms, err := timestamp()
	if err != nil {
		return ULID{}, err
	}
	return pack(ms, s.Next()), nil
}

// NewAt is New with an explicit timestamp instead of the wall clock.
func NewAt(t time.Time, s Strategy) (ULID, error) {
	if err := ensureInit(); err != nil {
		return ULID{}, err
	}
	ms := t.UnixMilli()
	if ms < 0 || uint64(ms) > MaxTimestamp {
		return ULID{}, ErrTimestampOverflow
	}
	return pack(uint64(ms), s.Next()), nil
}

// NewSLID constructs a compact identifier from the current time and the
// compact strategy's next 16-bit randomness field.
func NewSLID(s SLIDStrategy) (SLID, error) {
	if err := ensureInit(); err != nil {
		return SLID{}, err
	}
	ms, err := timestamp()
	if err != nil {
		return SLID{}, err
	}
	return packSLID(ms, s.Next()), nil
}

func timestamp() (uint64, error) {
	ms := Now()
	if ms < 0 || uint64(ms) > MaxTimestamp {
		return 0, ErrTimestampOverflow
	}
	return uint64(ms), nil
}

// pack lays the two fields out big-endian. ts must fit 48 bits and rand
// 80 bits; callers validate.
func pack(ts uint64, rand Uint128) ULID {
	var id ULID
	id[0] = byte(ts >> 40)
	id[1] = byte(ts >> 32)
	id[2] = byte(ts >> 24)
	id[3] = byte(ts >> 16)
	id[4] = byte(ts >> 8)
	id[5] = byte(ts)
	binary.BigEndian.PutUint16(id[6:8], uint16(rand.Hi))
	binary.BigEndian.PutUint64(id[8:16], rand.Lo)
	return id
}

func packSLID(ts uint64, rand uint16) SLID {
	var id SLID
	id[0] = byte(ts >> 40)
	id[1] = byte(ts >> 32)
	id[2] = byte(ts >> 24)
	id[3] = byte(ts >> 16)
	id[4] = byte(ts >> 8)
	id[5] = byte(ts)
	binary.BigEndian.PutUint16(id[6:8], rand)
	return id
}

// FromParts builds a ULID directly from its two fields, bypassing any
// strategy. It fails when a field exceeds its bit width.
func FromParts(ts uint64, rand Uint128) (ULID, error) {
	if ts > MaxTimestamp {
		return ULID{}, decodeErr("parts", fmt.Sprintf("%d", ts), "timestamp exceeds 48 bits")
	}
	if rand.Cmp(MaxRandomness) > 0 {
		return ULID{}, decodeErr("parts", rand.String(), "randomness exceeds 80 bits")
	}
	return pack(ts, rand), nil
}

// SLIDFromParts builds a SLID directly from its two fields.
func SLIDFromParts(ts uint64, rand uint16) (SLID, error) {
	if ts > MaxTimestamp {
		return SLID{}, decodeErr("parts", fmt.Sprintf("%d", ts), "timestamp exceeds 48 bits")
	}
	return packSLID(ts, rand), nil
}

// Timestamp returns the 48-bit millisecond field.
func (id ULID) Timestamp() uint64 {
	return uint64(id[0])<<40 | uint64(id[1])<<32 | uint64(id[2])<<24 |
		uint64(id[3])<<16 | uint64(id[4])<<8 | uint64(id[5])
}

// Randomness returns the 80-bit randomness field.
func (id ULID) Randomness() Uint128 {
	return Uint128{
		Hi: uint64(binary.BigEndian.Uint16(id[6:8])),
		Lo: binary.BigEndian.Uint64(id[8:16]),
	}
}

// Prime returns the leading byte of the randomness field. The env and
// thread-scoped strategies place their one-time seed there.
func (id ULID) Prime() byte { return id[6] }

// ShortPrime returns the seed nibble of the short layout, which packs the
// whole randomness into the lowest byte.
func (id ULID) ShortPrime() byte { return id[15] >> 4 }

// Time returns the timestamp field as a UTC time.
func (id ULID) Time() time.Time {
	return time.UnixMilli(int64(id.Timestamp())).UTC()
}

// Compare returns -1, 0 or 1 ordering identifiers by their packed unsigned
// value. Byte-wise and chronological order coincide.
func (id ULID) Compare(other ULID) int {
	for i := 0; i < len(id); i++ {
		if id[i] != other[i] {
			if id[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Timestamp returns the 48-bit millisecond field.
func (id SLID) Timestamp() uint64 {
	return uint64(id[0])<<40 | uint64(id[1])<<32 | uint64(id[2])<<24 |
		uint64(id[3])<<16 | uint64(id[4])<<8 | uint64(id[5])
}

// Randomness returns the 16-bit randomness field.
func (id SLID) Randomness() uint16 { return binary.BigEndian.Uint16(id[6:8]) }

// Prime returns the seed byte of the randomness field.
func (id SLID) Prime() byte { return id[6] }

// Time returns the timestamp field as a UTC time.
func (id SLID) Time() time.Time {
	return time.UnixMilli(int64(id.Timestamp())).UTC()
}

// Compare returns -1, 0 or 1 ordering identifiers by their packed unsigned
// value.
func (id SLID) Compare(other SLID) int {
	a, b := id.Uint64(), other.Uint64()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
