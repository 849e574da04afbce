// Package element implements the building blocks of piecewise-linear
// functions over exact rationals, and their (min,+) / (max,+) algebra.
//
// 🚀 What is an Element?
//
//	An Element is one piece of a function of time:
//	  • Point(t, v)            : defined at the single instant t;
//	  • Segment(a, b, r, s)    : f(t) = r + s·(t − a) on the open span (a, b).
//	Values may be ±∞; an infinite segment is constant. Everything is exact:
//	times, values and slopes are rational.Rational.
//
// ✨ Key features:
//   - transformations: ValueAt, Scale, Delay, Anticipate, VerticalShift,
//     Negate, Inverse;
//   - pairwise and N-ary Add / Sum, Minimum / Maximum (with crossing split);
//   - min-plus Convolution (cut-end, cut-ceiling), Deconvolution,
//     MaxPlusConvolution;
//   - Interval alignment: ComputeIntervals for an arbitrary bag of elements
//     (interval-tree lookup, optional parallel fan-out) and
//     ComputeIntervalsLinear for two ordered sequences;
//   - LowerEnvelope / UpperEnvelope of the elements of an Interval by
//     divide and conquer over slopes.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/minplus/element"
//	  "github.com/katalvlaran/minplus/rational"
//	)
//
//	a := element.MustSegment(rational.Zero, rational.FromInt(2), rational.Zero, rational.One)
//	b := element.MustSegment(rational.Zero, rational.FromInt(2), rational.One, rational.Zero)
//	low, err := element.Minimum(a, b) // [Segment(0,1,0,1), Point(1,1), Segment(1,2,1,0)]
//
//	cells, err := element.ComputeIntervals(elems, element.DefaultSettings())
//	for _, c := range cells {
//	  env, _ := c.LowerEnvelope()
//	  ...
//	}
//
// Errors:
//
//	ErrNonOverlap, ErrEmptyAggregate, ErrUndefinedOperation,
//	ErrAlignmentInconsistency, ErrInvalidSettings; test with errors.Is.
//
// Performance:
//
//   - pairwise operations: O(1) rational operations
//   - ComputeIntervals:       O(n log n)
//   - ComputeIntervalsLinear: O(n + m)
//   - Interval.LowerEnvelope: O(k log k) for k distinct slopes
//
// See example_test.go for runnable walkthroughs.
package element
