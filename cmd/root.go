// Package cmd implements the command-line entrypoint: one positional
// argument (a configuration document path), exit code 0 on success, 1 on
// an unrecognized kernel or initial-condition variant, 2 on a missing
// argument — following the teacher's cmd/root.go shape (a cobra.Command
// with logrus-backed leveled logging, Execute()/os.Exit ownership split
// between main.go and this package).
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mousebaiker/smolosc/sim"
	"github.com/mousebaiker/smolosc/sim/checkpoint"
	simconfig "github.com/mousebaiker/smolosc/sim/config"
	"github.com/mousebaiker/smolosc/sim/telemetry"
)

// errMissingConfigPath is the sentinel Execute checks to distinguish exit
// code 2 (missing argument) from exit code 1 (unrecognized kernel or
// initial-condition variant).
var errMissingConfigPath = errors.New("cmd: exactly one configuration path argument is required")

// errBadConfig wraps an unrecognized kernel or initial-condition variant;
// Execute maps it to exit code 1.
var errBadConfig = errors.New("cmd: unrecognized kernel or initial condition")

var (
	logLevel   string
	seedFlag   int64
	enableProm bool
)

var rootCmd = &cobra.Command{
	Use:   "smolosc [config.yaml]",
	Short: "DSMC Marcus-Lushnikov particle aggregation/fragmentation simulator",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errMissingConfigPath
		}
		return nil
	},
	RunE: runSimulation,
}

func init() {
	rootCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().Int64Var(&seedFlag, "seed", 0, "Override the configuration document's RNG seed")
	rootCmd.Flags().BoolVar(&enableProm, "telemetry", false, "Register Prometheus gauges for step count, total rate, and bucket count")
}

// Execute runs the root command and translates its error into the exit
// codes spec §6 mandates. It is the sole owner of process exit codes;
// runSimulation and everything it calls only ever returns errors.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if errors.Is(err, errMissingConfigPath) {
		os.Exit(2)
	}
	os.Exit(1)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("%w: invalid log level %q", errBadConfig, logLevel)
	}
	logrus.SetLevel(level)

	cfg, err := simconfig.Load(args[0])
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed = seedFlag
	}

	kernel, err := sim.NewKernel(cfg.KernelType, sim.KernelParams{
		MultiplicativeC: cfg.MultiplicativeKernelParams.C,
		BrownianAlpha:   cfg.BrownianKernelParams.Alpha,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errBadConfig, err)
	}

	ensemble, err := sim.NewEnsemble(sim.EnsembleConfig{
		Kernel:            kernel,
		Seed:              seed,
		FragmentationRate: cfg.FragmentationRate,
		SSmall:            cfg.SSmall,
		RecomputeInterval: cfg.RecomputeInterval,
	})
	if err != nil {
		return err
	}

	if enableProm {
		if err := telemetry.Register(prometheus.DefaultRegisterer); err != nil {
			return err
		}
	}

	if err := seedEnsemble(ensemble, cfg); err != nil {
		return err
	}

	runID := checkpoint.NewRunID()
	driver := &sim.Driver{
		Ensemble:           ensemble,
		Duration:           cfg.Duration,
		CheckpointInterval: cfg.SaveOptions.CheckpointInterval,
		OnCheckpoint: func(simTime float64, elapsed time.Duration) error {
			if enableProm {
				telemetry.Observe(ensemble)
			}
			path := checkpoint.Path(cfg.SaveOptions.OutputDir, runID, simTime)
			logrus.Infof("writing checkpoint %s at simulated time %.6f", path, simTime)
			return checkpoint.Save(path, ensemble.Distribution(), elapsed)
		},
	}

	logrus.Infof("starting run %s: kernel=%s fragmentation_rate=%v duration=%v", runID, cfg.KernelType, cfg.FragmentationRate, cfg.Duration)
	if _, err := driver.Run(); err != nil {
		return err
	}

	stats := sim.ComputeDistributionStats(ensemble.Distribution())
	logrus.Infof("run %s complete: steps=%d buckets=%d mean_size=%.3f", runID, ensemble.StepCounter(), stats.Buckets, stats.Mean)
	return nil
}

func seedEnsemble(e *sim.Ensemble, cfg simconfig.Config) error {
	if cfg.LoadOptions != nil {
		_, err := checkpoint.Load(cfg.LoadOptions.CheckpointPath, e)
		return err
	}

	if sn := cfg.InitialConditions.SmallestN; sn != nil {
		if sn.NumSizes == 0 {
			return fmt.Errorf("%w: smallest_n_params.num_sizes must not be 0", errBadConfig)
		}
		if err := e.AddMonomers(sn.ParticleCountForEachSize); err != nil {
			return err
		}
		for size := 2; size <= sn.NumSizes; size++ {
			if err := e.AddParticleRepeated(size, sn.ParticleCountForEachSize); err != nil {
				return err
			}
		}
		return nil
	}

	if cfg.MonomerCount > 0 {
		return e.AddMonomers(cfg.MonomerCount)
	}

	return fmt.Errorf("%w: configuration specifies no initial condition", errBadConfig)
}
