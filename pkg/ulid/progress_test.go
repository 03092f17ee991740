package ulid

import "testing"

func TestForwardBackwardInverse(t *testing.T) {
	id := mustFromParts(t, 0x016F4D2A1B2C, U128(0x3D4E, 0xF00DFACE))
	for _, n := range []Uint128{U128From64(0), U128From64(1), U128From64(1 << 40), U128(5, 0), MaxUint128} {
		if got := id.Forward(n).Backward(n); got != id {
			t.Fatalf("backward(forward(id, %v)) = %v", n, got)
		}
		if got := id.Backward(n).Forward(n); got != id {
			t.Fatalf("forward(backward(id, %v)) = %v", n, got)
		}
	}
}

func TestNextPrev(t *testing.T) {
	id := mustFromParts(t, 1000, U128From64(7))
	if id.Next().Prev() != id {
		t.Fatalf("next/prev inverse")
	}
	if id.Next().Compare(id) != 1 || id.Prev().Compare(id) != -1 {
		t.Fatalf("ordering around id")
	}
}

// Overflowing the randomness field carries into the timestamp, and
// overflowing the whole width wraps to zero.
func TestProgressionCarriesAndWraps(t *testing.T) {
	id := mustFromParts(t, 41, MaxRandomness)
	next := id.Next()
	if next.Timestamp() != 42 || !next.Randomness().IsZero() {
		t.Fatalf("carry into timestamp: ts=%d rand=%v", next.Timestamp(), next.Randomness())
	}
	if MaxULID.Next() != MinULID {
		t.Fatalf("max+1 must wrap to min")
	}
	if MinULID.Prev() != MaxULID {
		t.Fatalf("min-1 must wrap to max")
	}
	// forward by 2^width is the identity: split as two half-range steps.
	half := U128(1<<63, 0)
	if got := id.Forward(half).Forward(half); got != id {
		t.Fatalf("forward by 2^128 must be identity, got %v", got)
	}
}

func TestSLIDProgression(t *testing.T) {
	id := SLIDFromUint64(0x0000002900000000)
	if id.Forward(10).Backward(10) != id {
		t.Fatalf("inverse")
	}
	if MaxSLID.Next() != MinSLID || MinSLID.Prev() != MaxSLID {
		t.Fatalf("wrap at 2^64")
	}
	carry, err := SLIDFromParts(41, 0xFFFF)
	if err != nil {
		t.Fatalf("from parts: %v", err)
	}
	if next := carry.Next(); next.Timestamp() != 42 || next.Randomness() != 0 {
		t.Fatalf("carry into timestamp")
	}
}

func TestSequenceYieldsCountAscending(t *testing.T) {
	start := mustFromParts(t, 1000, U128From64(5))
	seq := NewSequence(start, 10)

	got := seq.Collect()
	if len(got) != 10 {
		t.Fatalf("yielded %d elements", len(got))
	}
	for i, id := range got {
		want := start.Forward(U128From64(uint64(i)))
		if id != want {
			t.Fatalf("element %d = %v, want %v", i, id, want)
		}
		if i > 0 && got[i-1].Compare(id) != -1 {
			t.Fatalf("sequence must be strictly increasing")
		}
	}
}

func TestSequenceReversedSameElements(t *testing.T) {
	start := mustFromParts(t, 1000, U128From64(5))
	asc := NewSequence(start, 8).Collect()
	desc := NewSequence(start, 8).Reversed().Collect()

	if len(desc) != len(asc) {
		t.Fatalf("reversed yielded %d elements", len(desc))
	}
	for i := range desc {
		if desc[i] != asc[len(asc)-1-i] {
			t.Fatalf("reversed element %d = %v", i, desc[i])
		}
		if i > 0 && desc[i-1].Compare(desc[i]) != 1 {
			t.Fatalf("reversed sequence must be strictly decreasing")
		}
	}
}

func TestSequenceRestartable(t *testing.T) {
	start := mustFromParts(t, 1000, U128From64(5))
	seq := NewSequence(start, 4)

	first := seq.Collect()
	second := seq.Collect()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("re-iteration diverged at %d", i)
		}
	}
	if seq.Start != start {
		t.Fatalf("iteration must not mutate the captured start")
	}

	it := seq.Iter()
	it.Next()
	fresh := seq.Iter()
	if id, ok := fresh.Next(); !ok || id != start {
		t.Fatalf("fresh iterator must restart at the base")
	}
}

func TestSequenceEdgeCounts(t *testing.T) {
	start := mustFromParts(t, 1, Uint128{})
	if got := NewSequence(start, 0).Collect(); len(got) != 0 {
		t.Fatalf("count 0 yielded %d", len(got))
	}
	if got := NewSequence(start, 1).Reversed().Collect(); len(got) != 1 || got[0] != start {
		t.Fatalf("count 1 reversed: %v", got)
	}
	if got := NewSequence(start, -1).Collect(); len(got) != 0 {
		t.Fatalf("negative count yielded %d", len(got))
	}
	if got := NewSequence(start, -1).Reversed().Collect(); len(got) != 0 {
		t.Fatalf("negative count reversed yielded %d", len(got))
	}
	if got := NewSLIDSequence(SLIDFromUint64(1), -1).Collect(); len(got) != 0 {
		t.Fatalf("negative compact count yielded %d", len(got))
	}
}

func TestSLIDSequence(t *testing.T) {
	start := SLIDFromUint64(100)
	asc := NewSLIDSequence(start, 5).Collect()
	desc := NewSLIDSequence(start, 5).Reversed().Collect()
	if len(asc) != 5 || len(desc) != 5 {
		t.Fatalf("lengths %d/%d", len(asc), len(desc))
	}
	for i := range asc {
		if asc[i].Uint64() != 100+uint64(i) {
			t.Fatalf("asc[%d] = %v", i, asc[i])
		}
		if desc[i] != asc[len(asc)-1-i] {
			t.Fatalf("desc[%d] = %v", i, desc[i])
		}
	}
}
