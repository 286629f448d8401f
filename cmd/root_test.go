package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Flags_Registered(t *testing.T) {
	// GIVEN the root command with its registered flags
	logFlag := rootCmd.Flags().Lookup("log")
	seedFlagDef := rootCmd.Flags().Lookup("seed")
	telemetryFlag := rootCmd.Flags().Lookup("telemetry")

	// THEN all three must be present with sane defaults
	assert.NotNil(t, logFlag, "log flag must be registered")
	assert.Equal(t, "info", logFlag.DefValue)
	assert.NotNil(t, seedFlagDef, "seed flag must be registered")
	assert.NotNil(t, telemetryFlag, "telemetry flag must be registered")
	assert.Equal(t, "false", telemetryFlag.DefValue)
}

func TestRootCmd_Args_RejectsWrongArgCount(t *testing.T) {
	// GIVEN the root command's positional-argument validator
	// WHEN called with zero or two arguments
	// THEN it reports errMissingConfigPath in both cases (spec §6: exit code 2)
	err := rootCmd.Args(rootCmd, nil)
	assert.ErrorIs(t, err, errMissingConfigPath)

	err = rootCmd.Args(rootCmd, []string{"a.yaml", "b.yaml"})
	assert.ErrorIs(t, err, errMissingConfigPath)

	err = rootCmd.Args(rootCmd, []string{"a.yaml"})
	assert.NoError(t, err)
}

func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunSimulation_UnknownKernel_ReturnsBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
kernel_type: not-a-real-kernel
monomer_count: 10
duration: 0.0
`)

	err := runSimulation(rootCmd, []string{path})
	require.Error(t, err)
	assert.ErrorIs(t, err, errBadConfig)
}

func TestRunSimulation_EndToEnd_MonomerSeed(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	path := writeConfig(t, dir, `
kernel_type: constant
monomer_count: 20
duration: 0.05
seed: 7
s_small: 50
save_options:
  output_dir: `+outDir+`
  checkpoint_interval: 0.01
`)

	err := runSimulation(rootCmd, []string{path})
	require.NoError(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "expected exactly one run directory under output_dir")
}

func TestRunSimulation_NoInitialCondition_ReturnsBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
kernel_type: constant
duration: 0.0
`)

	err := runSimulation(rootCmd, []string{path})
	require.Error(t, err)
	assert.ErrorIs(t, err, errBadConfig)
}
