// Package telemetry provides optional Prometheus instrumentation for a
// running Ensemble: step count, total collision rate R, and number of
// distinct occupied buckets, following
// etalazz-vsa/internal/ratelimiter/telemetry/churn/prom_counters.go's
// package-level prometheus.NewGaugeVec style. Unlike that package,
// registration is never automatic at package init() — the core stays a
// pure library (spec §5: "no shared mutable state"), so a caller (the
// CLI) must call Register explicitly before these gauges report anything.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mousebaiker/smolosc/sim"
)

var (
	stepCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "smolosc_step_count",
		Help: "Number of completed RunStep calls.",
	})
	totalRate = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "smolosc_total_rate",
		Help: "Current incrementally maintained total collision rate R.",
	})
	distinctBuckets = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "smolosc_distinct_buckets",
		Help: "Number of distinct occupied particle-size buckets.",
	})
	numParticles = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "smolosc_num_particles",
		Help: "Current computational particle count.",
	})
)

// Register adds this package's gauges to reg. It is idempotent: a gauge
// that reg already holds (the client's AlreadyRegisteredError) is skipped,
// so calling it twice on the same registry returns nil. Any other
// registration error is returned.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{stepCount, totalRate, distinctBuckets, numParticles} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// Observe reads the ensemble's current state into the registered gauges.
// Call it periodically (e.g. once per checkpoint boundary) from the
// driving loop; it does not run automatically since the core never
// depends on telemetry.
func Observe(e *sim.Ensemble) {
	stepCount.Set(float64(e.StepCounter()))
	totalRate.Set(e.TotalRate())
	distinctBuckets.Set(float64(len(e.Distribution())))
	numParticles.Set(float64(e.NumParticles()))
}
