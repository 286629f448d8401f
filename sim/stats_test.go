package sim

import "testing"

func TestComputeDistributionStats_Empty(t *testing.T) {
	got := ComputeDistributionStats(nil)
	if got != (DistributionStats{}) {
		t.Errorf("ComputeDistributionStats(nil) = %+v, want zero value", got)
	}
}

func TestComputeDistributionStats_WeightedMean(t *testing.T) {
	dist := []Bucket{
		{Size: 1, Count: 3, CollisionRate: 0},
		{Size: 5, Count: 1, CollisionRate: 0},
	}
	got := ComputeDistributionStats(dist)

	wantMean := (1.0*3 + 5.0*1) / 4.0
	if d := got.Mean - wantMean; d > 1e-9 || d < -1e-9 {
		t.Errorf("Mean = %v, want %v", got.Mean, wantMean)
	}
	if got.Total != 4 {
		t.Errorf("Total = %d, want 4", got.Total)
	}
	if got.Buckets != 2 {
		t.Errorf("Buckets = %d, want 2", got.Buckets)
	}
	if got.Variance <= 0 {
		t.Errorf("Variance = %v, want > 0 for a non-degenerate distribution", got.Variance)
	}
}

func TestComputeDistributionStats_SingleBucketZeroVariance(t *testing.T) {
	dist := []Bucket{{Size: 7, Count: 10, CollisionRate: 0}}
	got := ComputeDistributionStats(dist)
	if got.Mean != 7 {
		t.Errorf("Mean = %v, want 7", got.Mean)
	}
	if got.Variance != 0 {
		t.Errorf("Variance = %v, want 0 for a single distinct size", got.Variance)
	}
}
