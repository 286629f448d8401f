package sim

import "gonum.org/v1/gonum/floats"

// weightedRateSum computes sum(count_i * rate_i) over the first n logical
// indices of store, the quantity recompute_total resyncs R against. It is
// factored out of rateindex.go so the summation itself — not the bucket
// walk — is a named, reusable numerical primitive: gonum's floats.Sum
// accumulates over a contiguous slice, which plays better with modern
// vectorized float summation than a hand-rolled running total and keeps
// the recompute path consistent with the rest of the ensemble's numerical
// code (see stats.go for the companion gonum/stat usage).
func weightedRateSum(store *ParticleStore, n int) float64 {
	terms := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		b := store.Get(i)
		if b.Count == 0 {
			continue
		}
		terms = append(terms, float64(b.Count)*b.CollisionRate)
	}
	return floats.Sum(terms)
}
