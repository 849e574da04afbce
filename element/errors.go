// SPDX-License-Identifier: MIT
// Package element: sentinel error set.
//
// Every failure surfaced by this package is one of the sentinels below,
// wrapped with the name of the operation that detected it. Callers and tests
// discriminate causes with errors.Is; no operation in the package recovers
// from or suppresses these conditions.

package element

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrNonOverlap indicates that the operands of a pairwise operation
	// (add, subtract, minimum, maximum, cut) share no common defined time.
	ErrNonOverlap = errors.New("element: operands do not overlap")

	// ErrEmptyAggregate indicates an N-ary operation (sum, minimum, maximum,
	// envelope) invoked with zero elements.
	ErrEmptyAggregate = errors.New("element: empty aggregate")

	// ErrUndefinedOperation indicates an operation that has no meaning for the
	// given operands: inverse of a constant segment, deconvolution of an
	// infinite element, a segment with an empty support or with opposite-sign
	// infinite parameters, a non-positive pseudo-period.
	ErrUndefinedOperation = errors.New("element: undefined operation")

	// ErrAlignmentInconsistency indicates that ComputeIntervals found a gap, an
	// overlap-count mismatch or an alternation violation while placing an
	// element into the prebuilt tiling.
	ErrAlignmentInconsistency = errors.New("element: alignment inconsistency")

	// ErrInvalidSettings indicates a Settings value outside its documented domain.
	ErrInvalidSettings = errors.New("element: invalid settings")
)

// elementErrorf tags err with the operation that produced it.
// The sentinel stays reachable through errors.Is.
func elementErrorf(tag string, err error) error {
	return pkgerrors.Wrap(err, tag)
}

// elementDetailf tags err with the operation and a formatted detail.
func elementDetailf(err error, tag, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(err, tag+": "+format, args...)
}
