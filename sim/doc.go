// Package sim provides the core Monte Carlo engine for a Marcus–Lushnikov
// / direct-simulation (DSMC) particle aggregation–fragmentation model.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - kernel.go: the collision kernel K(a,b) and its pluggable variants
//   - store.go: the bucketed-by-size particle store (dense + dynamic regions)
//   - rateindex.go: incremental maintenance of per-bucket and total collision rates
//   - sampler.go: proportional two-stage weighted pair selection
//   - ensemble.go: the façade (constructors, mutation API, RunStep, Distribution)
//
// # Architecture
//
// The sim package is a self-contained library with no I/O of its own;
// configuration loading, checkpoint persistence, and telemetry live in
// sibling packages (sim/config, sim/checkpoint, sim/telemetry, cmd/) that
// depend on sim but never the reverse.
//
// # Key Interfaces
//
// The one extension point is small and single-method, in the same spirit
// as this codebase's other pluggable policies:
//   - Kernel: Eval(a, b int) float64 — the collision propensity function
package sim
