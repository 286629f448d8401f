package sim

import "fmt"

// InvariantError reports that the total-rate drift assertion (|R - sum
// count*rate| < 1, spec invariant I2) failed at a step boundary. This is
// the one fatal error kind in the engine: it indicates a logic bug or
// catastrophic floating-point cancellation, not a recoverable condition.
// RunStep returns it instead of panicking so embedding callers choose how
// to halt (log.Fatal, process exit, structured alert) — the core itself
// never calls os.Exit.
type InvariantError struct {
	Step  int64
	Drift float64
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("sim: rate invariant violated at step %d: drift %v exceeds bound 1.0", e.Step, e.Drift)
}

// BadInputError reports a caller error: non-positive size or count, an
// operation on an empty ensemble, a negative fragmentation rate, or a nil
// kernel. These are never retried by the core. An unrecognized kernel name
// is reported by NewKernel as a plain error instead.
type BadInputError struct {
	Msg string
}

func (e *BadInputError) Error() string { return "sim: " + e.Msg }
