package reactive

import "testing"

func TestReactionInvalidatesOnTrackedChange(t *testing.T) {
	a := NewAtom("test")

	fired := 0
	r := NewReaction("test", func() { fired++ })
	defer r.Dispose()

	r.Track(func() { a.ReportObserved() })

	a.ReportChanged()
	if fired != 1 {
		t.Errorf("expected 1 invalidation, got %d", fired)
	}
}

func TestReactionSwapsDependenciesBetweenRuns(t *testing.T) {
	first := NewAtom("first")
	second := NewAtom("second")

	fired := 0
	r := NewReaction("test", func() { fired++ })
	defer r.Dispose()

	r.Track(func() { first.ReportObserved() })
	r.Track(func() { second.ReportObserved() })

	first.ReportChanged()
	if fired != 0 {
		t.Errorf("expected no invalidation from the dropped dependency, got %d", fired)
	}

	second.ReportChanged()
	if fired != 1 {
		t.Errorf("expected 1 invalidation from the current dependency, got %d", fired)
	}
	if first.observerCount() != 0 {
		t.Errorf("expected first atom to have 0 observers, got %d", first.observerCount())
	}
}

func TestReactionDisposeStopsInvalidations(t *testing.T) {
	a := NewAtom("test")

	fired := 0
	r := NewReaction("test", func() { fired++ })
	r.Track(func() { a.ReportObserved() })

	r.Dispose()

	a.ReportChanged()
	if fired != 0 {
		t.Errorf("expected no invalidations after dispose, got %d", fired)
	}
	if a.observerCount() != 0 {
		t.Errorf("expected dispose to unsubscribe, got %d observers", a.observerCount())
	}
}

func TestReactionDisposeIdempotent(t *testing.T) {
	r := NewReaction("test", func() {})

	// Never tracked, disposed twice: both must be no-ops.
	r.Dispose()
	r.Dispose()

	if !r.IsDisposed() {
		t.Error("expected reaction to report disposed")
	}
}

func TestReactionTrackPropagatesPanic(t *testing.T) {
	a := NewAtom("test")
	r := NewReaction("test", func() {})
	defer r.Dispose()

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate through Track")
			}
		}()
		r.Track(func() {
			a.ReportObserved()
			panic("render failed")
		})
	}()

	// The listener must be restored: untracked reads after the panic do not
	// subscribe anything new.
	if currentListener() != nil {
		t.Error("expected no current listener after panicking Track")
	}
}

func TestReactionTrackAfterDisposeRunsUntracked(t *testing.T) {
	a := NewAtom("test")
	r := NewReaction("test", func() {})
	r.Dispose()

	ran := false
	r.Track(func() {
		ran = true
		a.ReportObserved()
	})

	if !ran {
		t.Error("expected Track to still run the function")
	}
	if a.observerCount() != 0 {
		t.Errorf("expected no subscriptions from a disposed reaction, got %d", a.observerCount())
	}
}
