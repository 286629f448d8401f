// Package config decodes the simulation configuration document (spec §6):
// kernel selection, fragmentation rate, initial conditions, and save/load
// options. Decoding is strict (yaml.v3's KnownFields(true)) so a typo'd
// field name fails loudly instead of being silently ignored, following
// cmd/default_config.go's loadDefaultsConfig pattern in the teacher repo
// this module was adapted from.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MultiplicativeKernelParams holds the normalization constant for the
// "multiplicative" kernel variant.
type MultiplicativeKernelParams struct {
	C float64 `yaml:"c"`
}

// BrownianKernelParams holds the exponent for the "brownian" kernel
// variant.
type BrownianKernelParams struct {
	Alpha float64 `yaml:"alpha"`
}

// SmallestNParams describes the SMALLEST_N initial condition: for each
// size in 1..NumSizes, insert ParticleCountForEachSize particles of that
// size.
type SmallestNParams struct {
	NumSizes                  int `yaml:"num_sizes"`
	ParticleCountForEachSize int `yaml:"particle_count_for_each_size"`
}

// InitialConditions selects the seeding strategy when no checkpoint is
// being restored. Exactly one of MonomerCount or SmallestN should be set;
// SmallestN takes precedence if both are present.
type InitialConditions struct {
	SmallestN *SmallestNParams `yaml:"smallest_n_params,omitempty"`
}

// SaveOptions controls where and how often checkpoints are written.
type SaveOptions struct {
	OutputDir          string  `yaml:"output_dir"`
	CheckpointInterval float64 `yaml:"checkpoint_interval"`
}

// LoadOptions, when present, restores from an existing checkpoint instead
// of seeding from InitialConditions.
type LoadOptions struct {
	CheckpointPath string `yaml:"checkpoint_path"`
}

// Config is the full decoded configuration document (spec §6). All
// top-level and nested fields must be listed to satisfy KnownFields(true)
// strict parsing.
type Config struct {
	KernelType                 string                      `yaml:"kernel_type"`
	MultiplicativeKernelParams MultiplicativeKernelParams `yaml:"multiplicative_kernel_params"`
	BrownianKernelParams       BrownianKernelParams        `yaml:"brownian_kernel_params"`
	FragmentationRate          float64                     `yaml:"fragmentation_rate"`
	MonomerCount               int                         `yaml:"monomer_count"`
	InitialConditions          InitialConditions           `yaml:"initial_conditions"`
	Duration                   float64                     `yaml:"duration"`
	SaveOptions                SaveOptions                 `yaml:"save_options"`
	LoadOptions                *LoadOptions                `yaml:"load_options,omitempty"`
	Seed                       int64                       `yaml:"seed"`
	SSmall                     int                         `yaml:"s_small"`
	RecomputeInterval          int64                       `yaml:"recompute_interval"`
}

// Load reads and strictly decodes the configuration document at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("sim/config: reading %s: %w", path, err)
	}
	return Decode(data)
}

// Decode strictly decodes a configuration document from raw YAML bytes.
func Decode(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("sim/config: parsing YAML: %w", err)
	}
	return cfg, nil
}
