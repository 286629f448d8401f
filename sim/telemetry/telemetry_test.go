package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mousebaiker/smolosc/sim"
)

func TestRegister_IsIdempotent(t *testing.T) {
	reg := prometheus.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := Register(reg); err != nil {
		t.Fatalf("second Register should be a no-op, got: %v", err)
	}
}

func TestObserve_ReportsEnsembleState(t *testing.T) {
	reg := prometheus.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatal(err)
	}

	e, err := sim.NewEnsemble(sim.EnsembleConfig{Kernel: sim.ConstantKernel{}, Seed: 1, SSmall: 50})
	if err != nil {
		t.Fatal(err)
	}
	if err := e.AddMonomers(10); err != nil {
		t.Fatal(err)
	}

	Observe(e)

	if got := testutil.ToFloat64(numParticles); got != 10 {
		t.Errorf("smolosc_num_particles = %v, want 10", got)
	}
	if got := testutil.ToFloat64(distinctBuckets); got != 1 {
		t.Errorf("smolosc_distinct_buckets = %v, want 1", got)
	}
}
