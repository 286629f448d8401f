package sim

import "gonum.org/v1/gonum/stat"

// DistributionStats summarizes a snapshot of the size distribution: the
// count-weighted mean and variance of particle size, mirroring what the
// teacher's end-of-run summary reports for request latency.
type DistributionStats struct {
	Mean     float64
	Variance float64
	Buckets  int
	Total    int64
}

// ComputeDistributionStats weights each bucket's size by its count via
// gonum/stat's weighted moment functions rather than hand-rolling a
// weighted mean/variance accumulator.
func ComputeDistributionStats(dist []Bucket) DistributionStats {
	if len(dist) == 0 {
		return DistributionStats{}
	}

	sizes := make([]float64, len(dist))
	weights := make([]float64, len(dist))
	var total int64
	for i, b := range dist {
		sizes[i] = float64(b.Size)
		weights[i] = float64(b.Count)
		total += int64(b.Count)
	}

	mean := stat.Mean(sizes, weights)
	variance := stat.Variance(sizes, weights)

	return DistributionStats{
		Mean:     mean,
		Variance: variance,
		Buckets:  len(dist),
		Total:    total,
	}
}
