package ulid

import (
	"io"
	"time"
)

// Strategy produces the next 80-bit randomness field of a ULID. Counter-
// based strategies mutate their counter on every call; they never fail,
// they wrap. Each strategy is safe only within the concurrency topology its
// documentation names: the caller picks a scope matching the deployment,
// the package does not compensate for a mismatched choice.
type Strategy interface {
	Next() Uint128
}

// SLIDStrategy produces the next 16-bit randomness field of a SLID.
type SLIDStrategy interface {
	Next() uint16
}

// Default fills the field with 80 fresh random bits per call. Safe at any
// concurrency level; identifiers from the same millisecond have no ordering
// beyond the randomness itself.
type Default struct {
	entropy io.Reader
}

// NewDefault returns the fresh-entropy strategy. A nil reader selects
// DefaultEntropy.
func NewDefault(entropy io.Reader) *Default {
	if entropy == nil {
		entropy = DefaultEntropy
	}
	return &Default{entropy: entropy}
}

// Next returns 80 fresh random bits.
func (s *Default) Next() Uint128 { return randBits(s.entropy, RandomnessBits) }

// RuntimeLexical fills the field from an 80-bit process-scoped counter that
// starts at zero each run, so same-millisecond identifiers sort in creation
// order. Single-threaded use only: the counter is unsynchronized and
// concurrent callers race on the increment.
type RuntimeLexical struct {
	c *Counter
}

// NewRuntimeLexical returns a runtime-scoped counter strategy.
func NewRuntimeLexical() *RuntimeLexical {
	return &RuntimeLexical{c: NewCounter(RandomnessBits)}
}

// Next emits the counter value and advances it.
func (s *RuntimeLexical) Next() Uint128 { return s.c.Next() }

// LocalLexical is RuntimeLexical with a counter that survives process
// restarts: the last-used value is read from a CounterStore on open and
// written back on Close. Single-threaded use only, and the store must have
// a single writing process. Scoped acquisition: callers must Close on every
// normal exit path or the persisted value goes stale.
type LocalLexical struct {
	c     *Counter
	store CounterStore
	last  Uint128
}

// OpenLocalLexical acquires the persisted counter. The first emitted value
// is the stored value plus one.
func OpenLocalLexical(store CounterStore) (*LocalLexical, error) {
	var start Uint128
	v, ok, err := store.Load()
	if err != nil {
		return nil, err
	}
	if ok {
		start = v
	}
	return &LocalLexical{
		c:     NewCounterAt(RandomnessBits, start.Add64(1).Mask(RandomnessBits)),
		store: store,
		last:  start,
	}, nil
}

// Next emits the counter value and advances it.
func (s *LocalLexical) Next() Uint128 {
	s.last = s.c.Next()
	return s.last
}

// Close flushes the last-used value back to the store.
func (s *LocalLexical) Close() error { return s.store.Store(s.last) }

// EnvLexical prefixes a one-time process seed byte (top 8 bits) to a 72-bit
// monotonic counter that starts at zero each run. The seed differentiates
// up to 256 concurrently running processes sharing a millisecond; the
// counter differentiates calls. Unsafe across threads within one process;
// the counter is unsynchronized.
type EnvLexical struct {
	seed byte
	c    *Counter
}

// NewEnvLexical returns a process-seeded counter strategy.
func NewEnvLexical() *EnvLexical {
	return &EnvLexical{seed: ProcessSeed(), c: NewCounter(RandomnessBits - 8)}
}

// Seed returns the strategy's one-time seed byte.
func (s *EnvLexical) Seed() byte { return s.seed }

// Next emits seed<<72 | counter and advances the counter.
func (s *EnvLexical) Next() Uint128 {
	return U128From64(uint64(s.seed)).Lsh(RandomnessBits - 8).Add(s.c.Next())
}

// ThreadEnvLexical has EnvLexical's bit split, but the seed identifies an
// execution scope instead of the process: each scope (typically one worker
// goroutine) acquires its own handle with a registry-assigned seed and its
// own counter, eliminating the increment race without locks. Seeds collide
// above 256 concurrent scopes.
type ThreadEnvLexical struct {
	seed byte
	c    *Counter
}

// NewThreadEnvLexical acquires a scope handle from reg. A nil registry
// selects DefaultScopes. The handle must not be shared across scopes.
func NewThreadEnvLexical(reg *ScopeRegistry) *ThreadEnvLexical {
	if reg == nil {
		reg = DefaultScopes
	}
	return &ThreadEnvLexical{seed: reg.Assign(), c: NewCounter(RandomnessBits - 8)}
}

// Seed returns the scope seed assigned to this handle.
func (s *ThreadEnvLexical) Seed() byte { return s.seed }

// Next emits seed<<72 | counter and advances the counter.
func (s *ThreadEnvLexical) Next() Uint128 {
	return U128From64(uint64(s.seed)).Lsh(RandomnessBits - 8).Add(s.c.Next())
}

// ShortEnvLexical spends only 8 bits of the randomness field: a one-time
// process seed nibble above a 4-bit counter wrapping at 16. Safe across at
// most 16 concurrently running processes; used when identifier compactness
// in derived encodings matters more than collision margin.
type ShortEnvLexical struct {
	seed byte // nibble
	c    *Counter
}

// NewShortEnvLexical returns the short seeded-counter strategy.
func NewShortEnvLexical() *ShortEnvLexical {
	return &ShortEnvLexical{seed: ProcessSeedNibble(), c: NewCounter(4)}
}

// Seed returns the strategy's one-time seed nibble.
func (s *ShortEnvLexical) Seed() byte { return s.seed }

// Next emits seed<<4 | counter in the low byte of the field.
func (s *ShortEnvLexical) Next() Uint128 {
	return U128From64(uint64(s.seed)<<4 | s.c.Next().Lo)
}

// SLIDLexical fills the compact format's 16-bit field with a one-time
// process seed byte above an 8-bit counter wrapping at 256. Safe across at
// most 256 concurrently running processes.
type SLIDLexical struct {
	seed byte
	c    *Counter
}

// NewSLIDLexical returns the compact-format strategy.
func NewSLIDLexical() *SLIDLexical {
	return &SLIDLexical{seed: ProcessSeed(), c: NewCounter(8)}
}

// Seed returns the strategy's one-time seed byte.
func (s *SLIDLexical) Seed() byte { return s.seed }

// Next emits seed<<8 | counter and advances the counter.
func (s *SLIDLexical) Next() uint16 {
	return uint16(s.seed)<<8 | uint16(s.c.Next().Lo)
}

// Plain returns the canonical string of a fresh-entropy ULID in one shot.
func Plain() (string, error) {
	id, err := New(NewDefault(nil))
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// PlainAt is Plain with an explicit timestamp.
func PlainAt(t time.Time) (string, error) {
	id, err := NewAt(t, NewDefault(nil))
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
