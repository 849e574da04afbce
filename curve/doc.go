// Package curve stitches elements into functions on [0, ∞) and implements
// the sub-additive closure algorithms of the (min,+) algebra.
//
// 🚀 What is a Curve?
//
//	A Curve is an ultimately pseudo-periodic function:
//	  • a base Sequence of elements over [0, T+d);
//	  • a pseudo-period (T, d, c): f(t + k·d) = f(t) + k·c for t ≥ T.
//	A Sequence is the finite part: an ordered, gap-free element list.
//
// ✨ Key features:
//   - Sequence: NewSequence, ValueAt, Cut, Optimize, LowerEnvelope of many
//     sequences (linear alignment for two, ComputeIntervals for more);
//   - Curve: New, ValueAt, Cut (unrolls periods), DelayBy, ShiftBy,
//     Optimize, DeltaZero, PlusInfinite;
//   - Minimum of curves with an exact pseudo-period bound;
//   - SubAdditiveClosure of a point or segment;
//   - PeriodicClosure of a point or segment repeating with a given
//     pseudo-period (case dispatch on slopes, transversal views, shifted
//     copies).
//
// ⚙️ Usage:
//
//	e := element.MustSegment(rational.One, rational.FromInt(2), rational.One, rational.FromInt(2))
//	star, err := curve.SubAdditiveClosure(e)
//	if err != nil {
//	  return err
//	}
//	v := star.ValueAt(rational.FromInt(7))
//
// Errors:
//
//	ErrInvalidCurve, ErrNotPseudoPeriodic, ErrEmptyAggregate and
//	ErrUndefinedOperation (the last two shared with package element).
//
// Settings:
//
//	Operations that align elements take element.Settings (or element.Option
//	values); UseRepresentationMinimization makes results go through Optimize.
//
// See example_test.go for runnable walkthroughs.
package curve
