package sim

import "time"

// Driver accumulates caller-side simulated time across repeated RunStep
// calls and fires a checkpoint callback after the first step and after
// every step that moves simulated time into a later checkpoint interval,
// the shape of the reference
// implementation's RunSimulation loop (original_source/FDMCS/
// simulation_main.cc). It is a convenience wrapper, not part of the core
// engine: nothing here touches the store, the rate index, or the RNG
// directly, only the Ensemble's public surface.
type Driver struct {
	Ensemble *Ensemble

	// Duration is the simulated-time budget; Run stops once the
	// accumulated Δτ reaches it.
	Duration float64

	// CheckpointInterval is the simulated-time spacing between
	// checkpoints. Zero disables checkpointing entirely.
	CheckpointInterval float64

	// OnCheckpoint is invoked once per crossed checkpoint boundary with
	// the simulated time at the crossing and the wall-clock elapsed since
	// Run started. A non-nil error aborts the run.
	OnCheckpoint func(simTime float64, elapsed time.Duration) error
}

// Run drives the ensemble until Duration simulated-time has elapsed,
// returning the total wall-clock time spent. It stops early and returns
// the error if RunStep or OnCheckpoint fails.
func (d *Driver) Run() (time.Duration, error) {
	simTime := 0.0
	lastCheckpointNum := -1
	start := time.Now()

	for simTime < d.Duration {
		dt, err := d.Ensemble.RunStep()
		if err != nil {
			return time.Since(start), err
		}
		simTime += dt

		if d.CheckpointInterval <= 0 {
			continue
		}
		checkpointNum := int(simTime / d.CheckpointInterval)
		if checkpointNum <= lastCheckpointNum {
			continue
		}
		lastCheckpointNum = checkpointNum
		if d.OnCheckpoint == nil {
			continue
		}
		if err := d.OnCheckpoint(simTime, time.Since(start)); err != nil {
			return time.Since(start), err
		}
	}

	return time.Since(start), nil
}
