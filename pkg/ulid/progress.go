package ulid

// Progression treats the packed value as one unsigned integer of the
// format's total width. Because timestamp and randomness are adjacent bit
// fields of that integer, stepping past the randomness carries into the
// timestamp, and stepping past the whole width wraps to zero: the order is
// total and cyclic, and the arithmetic branch-free.

// Forward returns the identifier n steps ahead, wrapping at 2^128.
func (id ULID) Forward(n Uint128) ULID { return FromUint128(id.Int().Add(n)) }

// Backward returns the identifier n steps back, wrapping at 2^128.
func (id ULID) Backward(n Uint128) ULID { return FromUint128(id.Int().Sub(n)) }

// Next returns the immediate successor.
func (id ULID) Next() ULID { return id.Forward(U128From64(1)) }

// Prev returns the immediate predecessor.
func (id ULID) Prev() ULID { return id.Backward(U128From64(1)) }

// Forward returns the identifier n steps ahead, wrapping at 2^64.
func (id SLID) Forward(n uint64) SLID { return SLIDFromUint64(id.Uint64() + n) }

// Backward returns the identifier n steps back, wrapping at 2^64.
func (id SLID) Backward(n uint64) SLID { return SLIDFromUint64(id.Uint64() - n) }

// Next returns the immediate successor.
func (id SLID) Next() SLID { return id.Forward(1) }

// Prev returns the immediate predecessor.
func (id SLID) Prev() SLID { return id.Backward(1) }

// Sequence is a finite progression of identifiers: count consecutive
// values starting at Start, ascending by default. It captures the starting
// value only; iterating never mutates it, and every Iter call replays the
// same sequence.
type Sequence struct {
	Start ULID
	Count int

	desc bool
}

// NewSequence returns the ascending sequence Start, Start+1, ...,
// Start+Count-1 (values wrap at the width boundary).
func NewSequence(start ULID, count int) Sequence {
	return Sequence{Start: start, Count: count}
}

// Reversed returns the same elements in descending order, beginning at the
// sequence's last element and stepping -1 back to Start.
func (s Sequence) Reversed() Sequence {
	return Sequence{Start: s.Start, Count: s.Count, desc: !s.desc}
}

// Iter starts a fresh pass over the sequence.
func (s Sequence) Iter() *SequenceIter {
	it := &SequenceIter{cur: s.Start, remaining: s.Count, desc: s.desc}
	if s.desc && s.Count > 0 {
		it.cur = s.Start.Forward(U128From64(uint64(s.Count - 1)))
	}
	return it
}

// Collect materializes the whole sequence. Intended for small counts; a
// non-positive count yields an empty slice.
func (s Sequence) Collect() []ULID {
	if s.Count <= 0 {
		return nil
	}
	out := make([]ULID, 0, s.Count)
	it := s.Iter()
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		out = append(out, id)
	}
	return out
}

// SequenceIter is a single lazy pass over a Sequence.
type SequenceIter struct {
	cur       ULID
	remaining int
	desc      bool
}

// Next returns the next identifier. ok is false once the sequence is
// exhausted.
func (it *SequenceIter) Next() (id ULID, ok bool) {
	if it.remaining <= 0 {
		return ULID{}, false
	}
	id = it.cur
	it.remaining--
	if it.remaining > 0 {
		if it.desc {
			it.cur = it.cur.Prev()
		} else {
			it.cur = it.cur.Next()
		}
	}
	return id, true
}

// SLIDSequence is Sequence for the compact format.
type SLIDSequence struct {
	Start SLID
	Count int

	desc bool
}

// NewSLIDSequence returns the ascending compact sequence.
func NewSLIDSequence(start SLID, count int) SLIDSequence {
	return SLIDSequence{Start: start, Count: count}
}

// Reversed returns the same elements in descending order.
func (s SLIDSequence) Reversed() SLIDSequence {
	return SLIDSequence{Start: s.Start, Count: s.Count, desc: !s.desc}
}

// Iter starts a fresh pass over the sequence.
func (s SLIDSequence) Iter() *SLIDSequenceIter {
	it := &SLIDSequenceIter{cur: s.Start, remaining: s.Count, desc: s.desc}
	if s.desc && s.Count > 0 {
		it.cur = s.Start.Forward(uint64(s.Count - 1))
	}
	return it
}

// Collect materializes the whole sequence. Intended for small counts; a
// non-positive count yields an empty slice.
func (s SLIDSequence) Collect() []SLID {
	if s.Count <= 0 {
		return nil
	}
	out := make([]SLID, 0, s.Count)
	it := s.Iter()
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		out = append(out, id)
	}
	return out
}

// SLIDSequenceIter is a single lazy pass over a SLIDSequence.
type SLIDSequenceIter struct {
	cur       SLID
	remaining int
	desc      bool
}

// Next returns the next identifier. ok is false once the sequence is
// exhausted.
func (it *SLIDSequenceIter) Next() (id SLID, ok bool) {
	if it.remaining <= 0 {
		return SLID{}, false
	}
	id = it.cur
	it.remaining--
	if it.remaining > 0 {
		if it.desc {
			it.cur = it.cur.Prev()
		} else {
			it.cur = it.cur.Next()
		}
	}
	return id, true
}
