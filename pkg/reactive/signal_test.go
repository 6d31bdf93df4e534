package reactive

import "testing"

func TestSignalGetSet(t *testing.T) {
	s := NewSignal(41)

	if s.Get() != 41 {
		t.Errorf("expected 41, got %d", s.Get())
	}

	s.Set(42)
	if s.Get() != 42 {
		t.Errorf("expected 42, got %d", s.Get())
	}
}

func TestSignalSetEqualValueDoesNotNotify(t *testing.T) {
	s := NewSignal("hello")

	fired := 0
	r := NewReaction("test", func() { fired++ })
	defer r.Dispose()

	r.Track(func() { s.Get() })

	s.Set("hello")
	if fired != 0 {
		t.Errorf("expected no invalidation for an equal value, got %d", fired)
	}

	s.Set("world")
	if fired != 1 {
		t.Errorf("expected 1 invalidation, got %d", fired)
	}
}

func TestSignalPeekDoesNotSubscribe(t *testing.T) {
	s := NewSignal(1)

	fired := 0
	r := NewReaction("test", func() { fired++ })
	defer r.Dispose()

	r.Track(func() { s.Peek() })

	s.Set(2)
	if fired != 0 {
		t.Errorf("expected Peek not to subscribe, got %d invalidations", fired)
	}
}

func TestSignalUpdate(t *testing.T) {
	s := NewSignal(10)
	s.Update(func(v int) int { return v * 2 })

	if s.Peek() != 20 {
		t.Errorf("expected 20, got %d", s.Peek())
	}
}

func TestSignalCustomEquality(t *testing.T) {
	// Treat values as equal when they round to the same integer.
	s := NewSignal(1.1).WithEquals(func(a, b float64) bool {
		return int(a) == int(b)
	})

	fired := 0
	r := NewReaction("test", func() { fired++ })
	defer r.Dispose()

	r.Track(func() { s.Get() })

	s.Set(1.9)
	if fired != 0 {
		t.Errorf("expected custom equality to suppress the change, got %d", fired)
	}

	s.Set(2.5)
	if fired != 1 {
		t.Errorf("expected 1 invalidation, got %d", fired)
	}
}

func TestSignalDeepEqualFallbackForSlices(t *testing.T) {
	s := NewSignal([]int{1, 2, 3})

	fired := 0
	r := NewReaction("test", func() { fired++ })
	defer r.Dispose()

	r.Track(func() { s.Get() })

	// Equivalent slice contents: no change.
	s.Set([]int{1, 2, 3})
	if fired != 0 {
		t.Errorf("expected no invalidation for deep-equal slices, got %d", fired)
	}

	s.Set([]int{1, 2, 4})
	if fired != 1 {
		t.Errorf("expected 1 invalidation, got %d", fired)
	}
}

func TestBatchCoalescesNotifications(t *testing.T) {
	first := NewSignal(1)
	second := NewSignal(2)

	fired := 0
	r := NewReaction("test", func() { fired++ })
	defer r.Dispose()

	r.Track(func() {
		first.Get()
		second.Get()
	})

	Batch(func() {
		first.Set(10)
		second.Set(20)
	})

	if fired != 1 {
		t.Errorf("expected a single coalesced invalidation, got %d", fired)
	}
}

func TestNestedBatchesFlushOnce(t *testing.T) {
	s := NewSignal(0)

	fired := 0
	r := NewReaction("test", func() { fired++ })
	defer r.Dispose()

	r.Track(func() { s.Get() })

	Batch(func() {
		s.Set(1)
		Batch(func() {
			s.Set(2)
		})
		if fired != 0 {
			t.Errorf("expected no notifications before the outermost batch completes, got %d", fired)
		}
	})

	if fired != 1 {
		t.Errorf("expected 1 deduplicated notification, got %d", fired)
	}
}
