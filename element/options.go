// SPDX-License-Identifier: MIT

// Package element: computation settings. This file defines:
//   - Settings, the flags consumed by ComputeIntervals and the curve layer,
//   - documented defaults (constants),
//   - With* functional options (panic on nonsensical values),
//   - YAML loading on top of the defaults (LoadSettings / LoadSettingsFile).
//
// Notes:
//   - Settings is a plain value; there is no package-level mutable state.
//   - The parallel flags only select an execution strategy. Results of
//     ComputeIntervals are identical, element by element and in order,
//     whatever the flags say.
//   - Options are applied left to right; the last writer wins.
package element

import (
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultUseParallelComputeIntervals enables the parallel ComputeIntervals
	// path for inputs at or above DefaultParallelComputeIntervalsThreshold.
	DefaultUseParallelComputeIntervals = true

	// DefaultParallelComputeIntervalsThreshold is the element count from which
	// the parallel path is taken.
	DefaultParallelComputeIntervalsThreshold = 1000

	// DefaultUseParallelInsertionComputeIntervals groups element→interval pairs
	// by interval and appends each group in one batch across workers. When
	// false, pairs are inserted one by one in input order.
	DefaultUseParallelInsertionComputeIntervals = true

	// DefaultUseRepresentationMinimization lets the curve layer merge collinear
	// elements and shorten pseudo-period starts of its results.
	DefaultUseRepresentationMinimization = true
)

const panicThresholdInvalid = "element: WithParallelThreshold: threshold must be non-negative"

// Settings carries the computation flags.
// Field tags are the YAML keys understood by LoadSettings.
type Settings struct {
	UseParallelComputeIntervals          bool `koanf:"use_parallel_compute_intervals"`
	ParallelComputeIntervalsThreshold    int  `koanf:"parallel_compute_intervals_threshold"`
	UseParallelInsertionComputeIntervals bool `koanf:"use_parallel_insertion_compute_intervals"`
	UseRepresentationMinimization        bool `koanf:"use_representation_minimization"`
}

// Option mutates Settings. Safe to apply repeatedly.
type Option func(*Settings)

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		UseParallelComputeIntervals:          DefaultUseParallelComputeIntervals,
		ParallelComputeIntervalsThreshold:    DefaultParallelComputeIntervalsThreshold,
		UseParallelInsertionComputeIntervals: DefaultUseParallelInsertionComputeIntervals,
		UseRepresentationMinimization:        DefaultUseRepresentationMinimization,
	}
}

// NewSettings applies opts on top of DefaultSettings.
func NewSettings(opts ...Option) Settings {
	s := DefaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// WithParallelComputeIntervals toggles the parallel ComputeIntervals path.
func WithParallelComputeIntervals(on bool) Option {
	return func(s *Settings) { s.UseParallelComputeIntervals = on }
}

// WithParallelThreshold sets the element count from which the parallel path
// is taken. Panics on a negative threshold.
func WithParallelThreshold(n int) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}
	return func(s *Settings) { s.ParallelComputeIntervalsThreshold = n }
}

// WithParallelInsertion toggles grouped batch insertion.
func WithParallelInsertion(on bool) Option {
	return func(s *Settings) { s.UseParallelInsertionComputeIntervals = on }
}

// WithRepresentationMinimization toggles result optimization in the curve layer.
func WithRepresentationMinimization(on bool) Option {
	return func(s *Settings) { s.UseRepresentationMinimization = on }
}

// Validate reports ErrInvalidSettings for values outside their domain.
func (s Settings) Validate() error {
	if s.ParallelComputeIntervalsThreshold < 0 {
		return elementDetailf(ErrInvalidSettings, "Settings.Validate",
			"parallel_compute_intervals_threshold=%d", s.ParallelComputeIntervalsThreshold)
	}
	return nil
}

// useParallel reports whether n elements take the parallel path.
func (s Settings) useParallel(n int) bool {
	return s.UseParallelComputeIntervals && n >= s.ParallelComputeIntervalsThreshold
}

// LoadSettings reads YAML settings on top of DefaultSettings. Keys absent from
// data keep their default value.
//
// Example:
//
//	use_parallel_compute_intervals: false
//	parallel_compute_intervals_threshold: 5000
func LoadSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return s, elementDetailf(ErrInvalidSettings, "LoadSettings", "parse: %v", err)
	}
	if err := k.UnmarshalWithConf("", &s, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return s, elementDetailf(ErrInvalidSettings, "LoadSettings", "decode: %v", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	log.Debugf("settings loaded: %+v", s)
	return s, nil
}

// LoadSettingsFile reads the YAML file at path; see LoadSettings.
func LoadSettingsFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings(), elementErrorf("LoadSettingsFile", err)
	}
	return LoadSettings(data)
}
