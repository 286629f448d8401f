// Package checkpoint implements the text, line-oriented checkpoint format
// from spec §6: line 1 is elapsed wall-clock nanoseconds, every line after
// is "<size> <count> <collision_rate>". It generalizes the bufio.Scanner/
// bufio.Writer idiom the teacher's sim/simulator.go uses for its own
// line-oriented file ingestion (loop_step_time.txt) to checkpoint I/O.
package checkpoint

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mousebaiker/smolosc/sim"
)

// NewRunID mints a fresh run identifier embedding checkpoints in their own
// directory, so concurrent independent Ensemble runs (spec §5) never
// collide on checkpoint paths even if they share an output_dir.
func NewRunID() string {
	return uuid.New().String()
}

// Path builds the checkpoint filename for a given output directory, run
// ID, and simulation time, per spec §6's "<simulation_time>.cpt inside the
// configured output directory" convention, namespaced under the run ID.
func Path(outputDir, runID string, simTime float64) string {
	name := strconv.FormatFloat(simTime, 'f', -1, 64) + ".cpt"
	return filepath.Join(outputDir, runID, name)
}

// Save writes dist and the elapsed wall-clock duration to path, creating
// parent directories as needed.
func Save(path string, dist []sim.Bucket, elapsed time.Duration) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("sim/checkpoint: creating directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sim/checkpoint: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", elapsed.Nanoseconds())
	for _, b := range dist {
		fmt.Fprintf(w, "%d %d %g\n", b.Size, b.Count, b.CollisionRate)
	}
	return w.Flush()
}

// Load restores the ensemble e from the checkpoint file at path, returning
// the elapsed wall-clock duration recorded on line 1. A size-1 bucket is
// restored via AddMonomers; any other bucket via AddParticleRepeated. The
// stored collision_rate is never read back — rateindex.go recomputes it
// incrementally as each particle is reinserted.
func Load(path string, e *sim.Ensemble) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("sim/checkpoint: opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return 0, fmt.Errorf("sim/checkpoint: %s is empty", path)
	}
	elapsedNs, err := strconv.ParseInt(strings.TrimSpace(scanner.Text()), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("sim/checkpoint: parsing elapsed time in %s: %w", path, err)
	}

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return 0, fmt.Errorf("sim/checkpoint: %s line %d: want 3 fields, got %d", path, lineNo, len(fields))
		}
		size, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, fmt.Errorf("sim/checkpoint: %s line %d: invalid size %q: %w", path, lineNo, fields[0], err)
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, fmt.Errorf("sim/checkpoint: %s line %d: invalid count %q: %w", path, lineNo, fields[1], err)
		}

		if size == 1 {
			if err := e.AddMonomers(count); err != nil {
				return 0, fmt.Errorf("sim/checkpoint: %s line %d: %w", path, lineNo, err)
			}
			continue
		}
		if err := e.AddParticleRepeated(size, count); err != nil {
			return 0, fmt.Errorf("sim/checkpoint: %s line %d: %w", path, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("sim/checkpoint: reading %s: %w", path, err)
	}

	return time.Duration(elapsedNs), nil
}
