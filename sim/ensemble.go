package sim

const (
	defaultSSmall            = 1000
	defaultRecomputeInterval = 1000
	driftBound               = 1.0
)

// Ensemble is the public façade over the DSMC engine: it owns the
// particle store, the incremental rate index, the sampler, the
// partitioned RNG, and the step counters, and exposes the operations an
// external driver (a CLI, a benchmark harness, a restored checkpoint)
// needs: seeding, stepping, population control, and snapshotting.
type Ensemble struct {
	store  *ParticleStore
	rates  *rateIndex
	sample *sampler
	rng    *PartitionedRNG

	fragmentationRate float64
	recomputeInterval int64

	numParticles    int64
	maxNumParticles int64
	stepCounter     int64
}

// EnsembleConfig carries the construction parameters spec §6 names:
// the kernel, an RNG seed, and the fragmentation rate φ. SSmall and
// RecomputeInterval default to the engine-level constants (spec §9) when
// left zero.
type EnsembleConfig struct {
	Kernel            Kernel
	Seed              int64
	FragmentationRate float64
	SSmall            int
	RecomputeInterval int64
}

// NewEnsemble constructs an empty Ensemble. A negative fragmentation rate
// or a nil kernel is a bad-input error surfaced immediately, never
// retried.
func NewEnsemble(cfg EnsembleConfig) (*Ensemble, error) {
	if cfg.Kernel == nil {
		return nil, &BadInputError{Msg: "kernel must not be nil"}
	}
	if cfg.FragmentationRate < 0 {
		return nil, &BadInputError{Msg: "fragmentation_rate must be >= 0"}
	}
	sSmall := cfg.SSmall
	if sSmall == 0 {
		sSmall = defaultSSmall
	}
	recomputeInterval := cfg.RecomputeInterval
	if recomputeInterval == 0 {
		recomputeInterval = defaultRecomputeInterval
	}

	store := NewParticleStore(sSmall)
	return &Ensemble{
		store:             store,
		rates:             newRateIndex(store, cfg.Kernel),
		sample:            newSampler(store, cfg.Kernel),
		rng:               NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
		fragmentationRate: cfg.FragmentationRate,
		recomputeInterval: recomputeInterval,
	}, nil
}

// AddParticle inserts a single particle of the given size.
func (e *Ensemble) AddParticle(size int) error {
	if size <= 0 {
		return &BadInputError{Msg: "particle size must be positive"}
	}
	e.rates.addParticle(size)
	e.numParticles++
	e.bumpPeak()
	return nil
}

// AddMonomers inserts count fresh monomers (mass-1 particles) as a single
// batch. It walks the buckets once instead of count times, and leaves the
// store and total rate exactly as count calls to AddParticle(1) would (see
// rateindex.go's addMonomers doc comment for the double-count correction
// that keeps the two equal).
func (e *Ensemble) AddMonomers(count int) error {
	if count <= 0 {
		return &BadInputError{Msg: "monomer count must be positive"}
	}
	e.rates.addMonomers(count)
	e.numParticles += int64(count)
	e.bumpPeak()
	return nil
}

// AddParticleRepeated is caller glue (spec §6: "not primitive") for
// restoring a checkpoint bucket or seeding SMALLEST_N initial conditions:
// it calls AddParticle size-for-size, count times, rather than batching
// like AddMonomers.
func (e *Ensemble) AddParticleRepeated(size, count int) error {
	if count <= 0 {
		return &BadInputError{Msg: "repeat count must be positive"}
	}
	for k := 0; k < count; k++ {
		if err := e.AddParticle(size); err != nil {
			return err
		}
	}
	return nil
}

// DeleteParticle removes one particle from the bucket at logical index i.
func (e *Ensemble) DeleteParticle(i int) {
	e.rates.deleteParticle(i)
	e.numParticles--
}

// DeletePair removes one particle from each of two (possibly identical)
// bucket indices, normalizing removal order internally.
func (e *Ensemble) DeletePair(i, j int) {
	e.rates.deletePair(i, j)
	e.numParticles -= 2
}

// RecomputeTotal resyncs R from a from-scratch weighted sum, bounding
// floating-point drift accumulated by the incremental updates.
func (e *Ensemble) RecomputeTotal() {
	e.rates.recomputeTotal()
}

// TotalRate returns the current incrementally maintained R.
func (e *Ensemble) TotalRate() float64 { return e.rates.Total() }

// NumParticles returns the current computational particle count.
func (e *Ensemble) NumParticles() int64 { return e.numParticles }

// Distribution returns every occupied bucket, ordered ascending by size.
func (e *Ensemble) Distribution() []Bucket {
	return e.store.Distribution()
}

// StepCounter returns the number of completed RunStep calls.
func (e *Ensemble) StepCounter() int64 { return e.stepCounter }

func (e *Ensemble) bumpPeak() {
	if e.numParticles > e.maxNumParticles {
		e.maxNumParticles = e.numParticles
	}
}

// RunStep executes one Monte Carlo step (spec §4.5): sample a pair
// proportional to the collision kernel, flip an aggregation/fragmentation
// coin, mutate the store, assert the rate invariant before any periodic
// resync masks drift, conditionally duplicate the population, and report
// the simulated-time increment Δτ = 1/R for this step.
//
// RunStep returns an *InvariantError if the drift assertion fails; the
// caller must halt stepping (spec §7: invariant-drift is fatal, never
// retried).
func (e *Ensemble) RunStep() (float64, error) {
	if e.store.Len() == 0 || e.rates.Total() <= 0 {
		return 0, &BadInputError{Msg: "run_step called on an empty or zero-rate ensemble"}
	}

	pairRNG := e.rng.ForSubsystem(SubsystemPairSelection)
	coinRNG := e.rng.ForSubsystem(SubsystemBranchCoin)

	R := e.rates.Total()
	u := pairRNG.Float64() * R
	i, j := e.sample.FindPair(u)

	sizeNew := e.store.SizeAt(i) + e.store.SizeAt(j)

	v := coinRNG.Float64() * (1 + e.fragmentationRate)
	if v < 1 {
		e.rates.addParticle(sizeNew)
		e.numParticles++
	} else {
		e.rates.addMonomers(sizeNew)
		e.numParticles += int64(sizeNew)
	}
	e.rates.deletePair(i, j)
	e.numParticles -= 2
	e.bumpPeak()

	if drift := e.rates.drift(); drift >= driftBound {
		return 0, &InvariantError{Step: e.stepCounter, Drift: drift}
	}
	if e.recomputeInterval > 0 && e.stepCounter%e.recomputeInterval == 0 {
		e.rates.recomputeTotal()
	}

	if e.numParticles <= e.maxNumParticles/2 {
		e.duplicateParticles()
	}

	e.stepCounter++
	return 1 / R, nil
}

// duplicateParticles implements spec §4.6: replay every occupied bucket's
// (size, count) through add_particle/add_monomers to exactly double the
// population while preserving the joint size distribution. It snapshots
// the pre-duplication distribution first since add_particle mutates the
// very store being iterated.
func (e *Ensemble) duplicateParticles() {
	snapshot := e.store.Distribution()
	for _, b := range snapshot {
		if b.Size == 1 {
			e.rates.addMonomers(b.Count)
			e.numParticles += int64(b.Count)
			continue
		}
		for k := 0; k < b.Count; k++ {
			e.rates.addParticle(b.Size)
			e.numParticles++
		}
	}
	e.bumpPeak()
	e.rates.recomputeTotal()
}
