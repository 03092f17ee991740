package ulid

import (
	"errors"
	"fmt"
	"sync"
)

// ErrIntegrity marks a failed host integrity check. A failure latches:
// construction is refused for the rest of the process, since partial trust
// in a broken bit-width assumption is worse than refusing to run.
var ErrIntegrity = errors.New("ulid: host integrity check failed")

// Options configures package initialization. SkipChecks disables the
// integrity checks; it is consumed exactly once, by the first Init or
// construction.
type Options struct {
	SkipChecks bool
}

var (
	initOnce sync.Once
	initErr  error
)

// Init runs the host integrity checks (unless opts.SkipChecks) and latches
// the result. Calling Init is optional: the first construction initializes
// with checks enabled. Only the first initialization wins.
func Init(opts Options) error {
	initOnce.Do(func() {
		if !opts.SkipChecks {
			initErr = Verify()
		}
	})
	return initErr
}

func ensureInit() error {
	initOnce.Do(func() { initErr = Verify() })
	return initErr
}

// Verify validates the integer-width, byte-order and wrap-arithmetic
// assumptions the rest of the package depends on. It is pure and
// repeatable; Init runs it once at initialization.
func Verify() error {
	if err := verifyUint128(); err != nil {
		return fmt.Errorf("%w: %w", ErrIntegrity, err)
	}
	if err := verifyByteOrder(); err != nil {
		return fmt.Errorf("%w: %w", ErrIntegrity, err)
	}
	for _, width := range []uint{8, 16, 72, 80} {
		if err := verifyCounterWrap(width); err != nil {
			return fmt.Errorf("%w: %w", ErrIntegrity, err)
		}
	}
	return nil
}

// verifyUint128 exercises 128-bit arithmetic for silent truncation.
func verifyUint128() error {
	if got := MaxUint128.Add64(1); !got.IsZero() {
		return fmt.Errorf("2^128-1 + 1 = %v, want 0", got)
	}
	if got := (Uint128{}).Sub64(1); got != MaxUint128 {
		return fmt.Errorf("0 - 1 = %v, want 2^128-1", got)
	}
	carry := U128(0, ^uint64(0)).Add64(1)
	if carry != U128(1, 0) {
		return fmt.Errorf("low-word carry produced %v, want 2^64", carry)
	}
	if back, ok := U128FromBig(MaxUint128.Big()); !ok || back != MaxUint128 {
		return fmt.Errorf("big.Int round-trip of 2^128-1 produced %v", back)
	}
	return nil
}

// verifyByteOrder checks that field packing and unpacking round-trip
// exactly through the big-endian layout.
func verifyByteOrder() error {
	const ts = uint64(0x0102030405A5)
	rand := U128(0xBEEF, 0x1122334455667788)
	id := pack(ts, rand)
	if id[0] != 0x01 || id[5] != 0xA5 || id[6] != 0xBE {
		return fmt.Errorf("packed layout is not big-endian: % x", id[:])
	}
	if id.Timestamp() != ts || id.Randomness() != rand {
		return fmt.Errorf("pack/unpack round-trip lost bits: % x", id[:])
	}
	s := packSLID(ts, 0x0203)
	if s.Timestamp() != ts || s.Randomness() != 0x0203 {
		return fmt.Errorf("compact pack/unpack round-trip lost bits: % x", s[:])
	}
	return nil
}

// verifyCounterWrap checks mod-2^width behavior at the boundary.
func verifyCounterWrap(width uint) error {
	max := MaxUint128.Mask(width)
	c := NewCounterAt(width, max)
	if got := c.Next(); got != max {
		return fmt.Errorf("width %d: counter at maximum emitted %v", width, got)
	}
	if got := c.Next(); !got.IsZero() {
		return fmt.Errorf("width %d: counter wrapped to %v, want 0", width, got)
	}
	if got := max.Add64(1).Mask(width); !got.IsZero() {
		return fmt.Errorf("width %d: (2^%d-1)+1 mod 2^%d = %v, want 0", width, width, width, got)
	}
	return nil
}
