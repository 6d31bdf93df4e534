package observe

import (
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"

	"github.com/reactview-dev/reactview/pkg/reactive"
)

func TestStaticRenderingDropsDeliveryAndLogs(t *testing.T) {
	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})

	flag := reactive.NewSignal(false)
	o, err := Observe(&flagComponent{flag: flag},
		WithStaticRendering(),
		WithLogger(log),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := o.Render(); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	o.Mount()

	notifies := 0
	o.Cell().Subscribe(func() { notifies++ })

	flag.Set(true)

	if notifies != 0 {
		t.Errorf("expected static rendering to drop delivery, got %d notifications", notifies)
	}
	if len(lines) != 1 || !strings.Contains(lines[0], "static rendering") {
		t.Errorf("expected one diagnostic line about static rendering, got %v", lines)
	}

	// Staleness is still recorded so a later interactive pass catches up.
	a := o.admin
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending == a.committed {
		t.Error("expected dropped delivery to still leave the instance stale")
	}
}

func TestWithNameOverridesDiagnosticLabel(t *testing.T) {
	o, err := Observe(&flagComponent{flag: reactive.NewSignal(false)}, WithName("Toggle"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Name() != "Toggle" {
		t.Errorf("expected name Toggle, got %q", o.Name())
	}
}
