// Package rational provides the exact number type used by every algorithm in
// minplus: an arbitrary-precision signed rational extended with +∞ and −∞.
//
// What is it?
//
//	Min-plus and max-plus algebra work over ℚ ∪ {+∞, −∞}. Floating point is
//	not an option: crossing points of segments, slope ties and floor/ceil of
//	period ratios must be computed exactly or boundary cases get
//	misclassified. Rational wraps math/big.Rat (never mutated after
//	construction) and adds the two signed infinities.
//
// Key properties:
//   - Immutable value type: every operation returns a new Rational, so values
//     can be shared freely between goroutines.
//   - The zero value is the number 0.
//   - Total order: −∞ < every finite value < +∞.
//   - finite ∘ ∞ = ∞ (sign-aware), 0·∞ = 0.
//   - ∞ − ∞, ∞ / ∞ and x / 0 are indeterminate and panic with ErrIndeterminate.
//     Higher layers validate operands first and report their own errors.
//
// Usage:
//
//	a := rational.New(3, 4)
//	b := rational.MustParse("1/4")
//	sum := a.Add(b)                       // 1
//	lim := sum.Add(rational.PlusInfinity) // +Inf
//	k := rational.New(7, 2).FloorInt64()  // 3
//
// Complexity: arithmetic costs what math/big costs; comparisons are O(size of
// numerators/denominators).
package rational
