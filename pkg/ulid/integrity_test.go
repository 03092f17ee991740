package ulid

import "testing"

func TestVerifyPasses(t *testing.T) {
	if err := Verify(); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestVerifyIsRepeatable(t *testing.T) {
	for i := 0; i < 3; i++ {
		if err := Verify(); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
}

func TestCounterWrapAtEveryWidth(t *testing.T) {
	for _, width := range []uint{4, 8, 16, 72, 80} {
		max := MaxUint128.Mask(width)
		c := NewCounterAt(width, max)
		if got := c.Next(); got != max {
			t.Fatalf("width %d: emitted %v at maximum", width, got)
		}
		if got := c.Next(); !got.IsZero() {
			t.Fatalf("width %d: wrapped to %v", width, got)
		}
		if got := c.Next(); got != U128From64(1) {
			t.Fatalf("width %d: continued with %v", width, got)
		}
	}
}

func TestInitLatchAllowsConstruction(t *testing.T) {
	if err := Init(Options{}); err != nil {
		t.Fatalf("init: %v", err)
	}
	withNow(t, 1000)
	if _, err := New(NewDefault(nil)); err != nil {
		t.Fatalf("construction after init: %v", err)
	}
}
