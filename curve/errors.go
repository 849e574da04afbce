// SPDX-License-Identifier: MIT
// Package curve: sentinel error set.
//
// Errors coming from the element algebra (ErrNonOverlap,
// ErrUndefinedOperation, ...) are passed through unchanged, so errors.Is
// works across both packages.

package curve

import (
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/minplus/element"
)

var (
	// ErrInvalidCurve indicates a base sequence or pseudo-period that does not
	// describe an ultimately pseudo-periodic function on [0, ∞).
	ErrInvalidCurve = errors.New("curve: invalid curve")

	// ErrNotPseudoPeriodic indicates a minimum whose result cannot be given a
	// pseudo-period: a steeper curve is not dominated because every curve of
	// the lowest slope has +∞ gaps in its period.
	ErrNotPseudoPeriodic = errors.New("curve: result is not pseudo-periodic")

	// ErrEmptyAggregate is element.ErrEmptyAggregate, re-exported for N-ary
	// curve operations invoked with no operand.
	ErrEmptyAggregate = element.ErrEmptyAggregate

	// ErrUndefinedOperation is element.ErrUndefinedOperation, re-exported for
	// closures of −∞ elements and non-positive pseudo-periods.
	ErrUndefinedOperation = element.ErrUndefinedOperation
)

// curveErrorf tags err with the operation that produced it.
func curveErrorf(tag string, err error) error {
	return pkgerrors.Wrap(err, tag)
}

// curveDetailf tags err with the operation and a formatted detail.
func curveDetailf(err error, tag, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(err, tag+": "+format, args...)
}
