package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode_FullDocument(t *testing.T) {
	// GIVEN a configuration document exercising every field except
	// multiplicative_kernel_params and load_options
	doc := []byte(`
kernel_type: brownian
brownian_kernel_params:
  alpha: 0.5
fragmentation_rate: 2.5
monomer_count: 1000
initial_conditions:
  smallest_n_params:
    num_sizes: 10
    particle_count_for_each_size: 5
duration: 100.0
save_options:
  output_dir: /tmp/out
  checkpoint_interval: 1.0
seed: 42
s_small: 2000
recompute_interval: 500
`)

	// WHEN it is decoded
	cfg, err := Decode(doc)

	// THEN every field it sets round-trips
	require.NoError(t, err)
	require.Equal(t, "brownian", cfg.KernelType)
	require.Equal(t, 0.5, cfg.BrownianKernelParams.Alpha)
	require.Equal(t, 2.5, cfg.FragmentationRate)
	require.Equal(t, 1000, cfg.MonomerCount)
	require.NotNil(t, cfg.InitialConditions.SmallestN)
	require.Equal(t, 10, cfg.InitialConditions.SmallestN.NumSizes)
	require.Equal(t, 5, cfg.InitialConditions.SmallestN.ParticleCountForEachSize)
	require.Equal(t, "/tmp/out", cfg.SaveOptions.OutputDir)
	require.Equal(t, 1.0, cfg.SaveOptions.CheckpointInterval)
	require.Equal(t, int64(42), cfg.Seed)
	require.Equal(t, 2000, cfg.SSmall)
	require.Equal(t, int64(500), cfg.RecomputeInterval)
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	// GIVEN a document with a typo'd field name
	doc := []byte(`
kernel_type: constant
fragmentaiton_rate: 1.0
`)

	// WHEN it is decoded
	_, err := Decode(doc)

	// THEN strict decoding rejects it instead of silently ignoring it
	require.Error(t, err)
}

func TestDecode_LoadOptionsOptional(t *testing.T) {
	doc := []byte(`
kernel_type: constant
`)
	cfg, err := Decode(doc)
	require.NoError(t, err)
	require.Nil(t, cfg.LoadOptions)
}

func TestDecode_WithLoadOptions(t *testing.T) {
	doc := []byte(`
kernel_type: constant
load_options:
  checkpoint_path: /tmp/out/run/100.cpt
`)
	cfg, err := Decode(doc)
	require.NoError(t, err)
	require.NotNil(t, cfg.LoadOptions)
	require.Equal(t, "/tmp/out/run/100.cpt", cfg.LoadOptions.CheckpointPath)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/to/config.yaml")
	require.Error(t, err)
}
