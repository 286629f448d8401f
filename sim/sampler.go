package sim

import "math"

// sampler converts a uniform draw on [0, R) into an ordered pair of
// logical bucket indices (i, j), proportional to count_i * count_j *
// K(size_i, size_j), with i == j permitted but self-collision of a single
// physical particle excluded via the count-1 correction in findSecond.
type sampler struct {
	store  *ParticleStore
	kernel Kernel
}

func newSampler(store *ParticleStore, kernel Kernel) *sampler {
	return &sampler{store: store, kernel: kernel}
}

// FindPair runs both selection stages. oob signals that stage 1 exhausted
// every bucket without the residual reaching zero — accumulated floating
// point drift between R and the true weighted sum — and is expected to be
// vanishingly rare; the degenerate (firstIdx=0) result still flows into
// stage 2 rather than being discarded, per spec.
func (s *sampler) FindPair(u float64) (i, j int) {
	firstIdx, rem, _ := s.findFirst(u)
	second := s.findSecond(firstIdx, rem)
	return firstIdx, second
}

// findFirst is stage 1: walk logical indices 1, 2, ... tracking lastValid
// (the most recent count>0 bucket) and a running residual. Termination
// reduces the residual modulo the terminating bucket's collision rate
// (subtracting the largest whole multiple of it), so which of that
// bucket's count particles is
// "first" is uniform rather than biased toward the earliest-inserted one.
func (s *sampler) findFirst(u float64) (firstIdx int, rem float64, outOfBounds bool) {
	n := s.store.Len()
	lastValid := 0
	rem = u
	for i := 1; i < n; i++ {
		cnt := s.store.CountAt(i)
		rate := s.store.RateAt(i)
		if cnt <= 0 {
			continue
		}
		lastValid = i
		groupRate := float64(cnt) * rate
		if rem-groupRate <= 0 {
			if rate != 0 {
				rem -= math.Floor(rem/rate) * rate
			}
			return lastValid, rem, false
		}
		rem -= groupRate
	}
	return 0, rem, true
}

// findSecond is stage 2: recompute K(s1, b.size) directly rather than
// reading stored per-bucket rates, since those accumulate contributions
// from every other size, not just s1. The first particle's own bucket has
// its effective count reduced by one so it cannot be paired with itself.
func (s *sampler) findSecond(firstIdx int, rem float64) int {
	s1 := s.store.SizeAt(firstIdx)
	n := s.store.Len()
	lastValid := 0
	for i := 1; i < n; i++ {
		cnt := s.store.CountAt(i)
		if i == firstIdx {
			cnt--
		}
		if cnt <= 0 {
			continue
		}
		lastValid = i
		kv := s.kernel.Eval(s1, s.store.SizeAt(i))
		groupRate := float64(cnt) * kv
		if rem-groupRate <= 0 {
			return lastValid
		}
		rem -= groupRate
	}
	return lastValid
}
