// SPDX-License-Identifier: MIT

package element_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minplus/element"
)

// 1) TestDefaultSettings_Documented verifies that DefaultSettings equals the documented constants.
func TestDefaultSettings_Documented(t *testing.T) {
	s := element.DefaultSettings()
	assert.Equal(t, element.DefaultUseParallelComputeIntervals, s.UseParallelComputeIntervals)
	assert.Equal(t, element.DefaultParallelComputeIntervalsThreshold, s.ParallelComputeIntervalsThreshold)
	assert.Equal(t, element.DefaultUseParallelInsertionComputeIntervals, s.UseParallelInsertionComputeIntervals)
	assert.Equal(t, element.DefaultUseRepresentationMinimization, s.UseRepresentationMinimization)
	assert.NoError(t, s.Validate())
}

// 2) TestNewSettings_LastWriterWins ensures each option toggles exactly its field.
func TestNewSettings_LastWriterWins(t *testing.T) {
	s := element.NewSettings(
		element.WithParallelComputeIntervals(false),
		element.WithParallelComputeIntervals(true),
		element.WithParallelThreshold(10),
		element.WithParallelInsertion(false),
		element.WithRepresentationMinimization(false),
	)
	assert.True(t, s.UseParallelComputeIntervals)
	assert.Equal(t, 10, s.ParallelComputeIntervalsThreshold)
	assert.False(t, s.UseParallelInsertionComputeIntervals)
	assert.False(t, s.UseRepresentationMinimization)

	assert.Panics(t, func() { element.WithParallelThreshold(-1) })
}

// 3) TestLoadSettings_YAML applies overrides on top of the defaults.
func TestLoadSettings_YAML(t *testing.T) {
	s, err := element.LoadSettings([]byte(`
use_parallel_compute_intervals: false
parallel_compute_intervals_threshold: 5000
`))
	require.NoError(t, err)
	assert.False(t, s.UseParallelComputeIntervals)
	assert.Equal(t, 5000, s.ParallelComputeIntervalsThreshold)
	assert.True(t, s.UseParallelInsertionComputeIntervals, "absent key keeps its default")
	assert.True(t, s.UseRepresentationMinimization, "absent key keeps its default")

	_, err = element.LoadSettings([]byte("parallel_compute_intervals_threshold: -3\n"))
	assert.ErrorIs(t, err, element.ErrInvalidSettings)

	_, err = element.LoadSettings([]byte("use_parallel_compute_intervals: [1, 2\n"))
	assert.ErrorIs(t, err, element.ErrInvalidSettings)
}

// 4) TestLoadSettingsFile reads a file and reports missing ones.
func TestLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minplus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("use_representation_minimization: false\n"), 0o600))

	s, err := element.LoadSettingsFile(path)
	require.NoError(t, err)
	assert.False(t, s.UseRepresentationMinimization)

	_, err = element.LoadSettingsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
