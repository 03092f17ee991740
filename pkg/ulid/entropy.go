package ulid

import (
	crand "crypto/rand"
	"io"
	"sync"
)

// DefaultEntropy is the process-wide entropy source, crypto/rand by
// default. Strategies that take a nil reader fall back to it. Overridable
// in tests; randomness here defends against collision, not against an
// adversary.
var DefaultEntropy io.Reader = crand.Reader

// randBits reads width random bits (width <= 80) from r.
func randBits(r io.Reader, width uint) Uint128 {
	var buf [10]byte
	n := int(width+7) / 8
	if _, err := io.ReadFull(r, buf[10-n:]); err != nil {
		// Entropy exhaustion from crypto/rand does not happen on supported
		// platforms; an injected reader that fails yields zero bits.
		return Uint128{}
	}
	v := Uint128{
		Hi: uint64(buf[0])<<8 | uint64(buf[1]),
		Lo: uint64(buf[2])<<56 | uint64(buf[3])<<48 | uint64(buf[4])<<40 |
			uint64(buf[5])<<32 | uint64(buf[6])<<24 | uint64(buf[7])<<16 |
			uint64(buf[8])<<8 | uint64(buf[9]),
	}
	return v.Mask(width)
}

var (
	procSeedOnce sync.Once
	procSeed     byte
)

// ProcessSeed returns the one-time process seed byte, derived from
// DefaultEntropy on first use and cached for the life of the process. It is
// what differentiates identifiers generated by concurrently running
// processes inside the env-family strategies.
func ProcessSeed() byte {
	procSeedOnce.Do(func() {
		var b [1]byte
		_, _ = io.ReadFull(DefaultEntropy, b[:])
		procSeed = b[0]
	})
	return procSeed
}

// ProcessSeedNibble returns the high nibble of the process seed, used by the
// short layout.
func ProcessSeedNibble() byte { return ProcessSeed() >> 4 }

// ScopeRegistry hands out stable 8-bit seeds to execution scopes. Native
// goroutines carry no public identity, so a scope acquires its seed
// explicitly: seeds are assigned sequentially to first-seen scopes and
// collide only above 256 concurrent scopes.
type ScopeRegistry struct {
	mu   sync.Mutex
	next uint64
}

// Assign returns the next scope seed, wrapping at 256.
func (r *ScopeRegistry) Assign() byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := byte(r.next % 256)
	r.next++
	return s
}

// DefaultScopes is the process-wide scope registry used when a strategy is
// not given an explicit one.
var DefaultScopes = &ScopeRegistry{}
