package ulid

// Counter is a monotonic counter of fixed bit width. Next returns the
// current value and then advances, wrapping to zero past 2^width; the wrap
// is silent, never an error. Counters carry no synchronization of their
// own; the owning strategy defines the scope in which increments are safe.
type Counter struct {
	value Uint128
	width uint
}

// NewCounter returns a counter of the given width starting at zero.
func NewCounter(width uint) *Counter { return &Counter{width: width} }

// NewCounterAt returns a counter of the given width whose next emitted
// value is start (masked to width).
func NewCounterAt(width uint, start Uint128) *Counter {
	return &Counter{width: width, value: start.Mask(width)}
}

// Next emits the current value and advances by one modulo 2^width.
func (c *Counter) Next() Uint128 {
	v := c.value
	c.value = c.value.Add64(1).Mask(c.width)
	return v
}

// Value returns the value Next would emit, without advancing.
func (c *Counter) Value() Uint128 { return c.value }

// Width returns the counter's bit width.
func (c *Counter) Width() uint { return c.width }

// CounterStore persists the last-used counter value of the file-scoped
// strategy across process runs. Implementations live outside the core; the
// store is assumed single-writer-per-process, no cross-process locking is
// provided.
type CounterStore interface {
	// Load returns the persisted value. ok is false when no prior state
	// exists.
	Load() (v Uint128, ok bool, err error)
	// Store overwrites the persisted value.
	Store(v Uint128) error
}
