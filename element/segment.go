// SPDX-License-Identifier: MIT

package element

import (
	"fmt"

	"github.com/katalvlaran/minplus/rational"
)

// Segment is an affine function over the open support (start, end):
//
//	f(t) = rightLimit + slope·(t − start),  start < t < end.
//
// Invariants (enforced by NewSegment):
//   - start < end, both finite;
//   - an infinite segment has slope 0 and rightLimit equal to the common ∞.
type Segment struct {
	start, end rational.Rational
	rightLimit rational.Rational
	slope      rational.Rational
}

// NewSegment validates and normalizes a segment.
// A ±∞ rightLimit or slope makes the whole segment ±∞; mixing +∞ and −∞ is
// ErrUndefinedOperation, as is an empty or infinite support.
func NewSegment(start, end, rightLimit, slope rational.Rational) (Segment, error) {
	if start.IsInfinite() || end.IsInfinite() {
		return Segment{}, elementDetailf(ErrUndefinedOperation, "NewSegment",
			"infinite support (%s, %s)", start, end)
	}
	if !start.Less(end) {
		return Segment{}, elementDetailf(ErrUndefinedOperation, "NewSegment",
			"empty support (%s, %s)", start, end)
	}
	return normalizeSegment(start, end, rightLimit, slope)
}

// MustSegment is NewSegment that panics on error. Meant for literals.
func MustSegment(start, end, rightLimit, slope rational.Rational) Segment {
	s, err := NewSegment(start, end, rightLimit, slope)
	if err != nil {
		panic(err)
	}
	return s
}

// normalizeSegment applies the infinity rule; the support is assumed valid.
func normalizeSegment(start, end, rightLimit, slope rational.Rational) (Segment, error) {
	if rightLimit.IsInfinite() || slope.IsInfinite() {
		if rightLimit.IsInfinite() && slope.IsInfinite() && rightLimit.Sign() != slope.Sign() {
			return Segment{}, elementDetailf(ErrUndefinedOperation, "NewSegment",
				"opposite infinities (rightLimit %s, slope %s)", rightLimit, slope)
		}
		inf := rightLimit
		if !inf.IsInfinite() {
			inf = slope
		}
		return Segment{start: start, end: end, rightLimit: inf, slope: rational.Zero}, nil
	}
	return Segment{start: start, end: end, rightLimit: rightLimit, slope: slope}, nil
}

// mustNormalize is normalizeSegment for call sites that cannot mix infinities.
func mustNormalize(start, end, rightLimit, slope rational.Rational) Segment {
	s, err := normalizeSegment(start, end, rightLimit, slope)
	if err != nil {
		panic(err)
	}
	return s
}

func (Segment) sealed() {}

func (Segment) Kind() Kind { return SegmentKind }

func (s Segment) StartTime() rational.Rational             { return s.start }
func (s Segment) EndTime() rational.Rational               { return s.end }
func (s Segment) Length() rational.Rational                { return s.end.Sub(s.start) }
func (s Segment) RightLimitAtStartTime() rational.Rational { return s.rightLimit }
func (s Segment) Slope() rational.Rational                 { return s.slope }

// LeftLimitAtEndTime returns the limit of f(t) as t → end from the left.
func (s Segment) LeftLimitAtEndTime() rational.Rational {
	return s.lineAt(s.end)
}

// lineAt evaluates the supporting line at t, ignoring the support.
func (s Segment) lineAt(t rational.Rational) rational.Rational {
	if s.rightLimit.IsInfinite() {
		return s.rightLimit
	}
	return s.rightLimit.Add(s.slope.Mul(t.Sub(s.start)))
}

// ValueAt returns f(t) inside (start, end) and +∞ elsewhere.
func (s Segment) ValueAt(t rational.Rational) rational.Rational {
	if !s.IsDefinedFor(t) {
		return rational.PlusInfinity
	}
	return s.lineAt(t)
}

func (s Segment) IsDefinedFor(t rational.Rational) bool {
	return s.start.Less(t) && t.Less(s.end)
}

// Contains reports whether [start, end] lies inside the closure of the support.
func (s Segment) Contains(start, end rational.Rational) bool {
	return s.start.LessOrEqual(start) && end.LessOrEqual(s.end)
}

func (s Segment) IsFinite() bool        { return s.rightLimit.IsFinite() }
func (s Segment) IsInfinite() bool      { return s.rightLimit.IsInfinite() }
func (s Segment) IsPlusInfinite() bool  { return s.rightLimit.IsPlusInfinite() }
func (s Segment) IsMinusInfinite() bool { return s.rightLimit.IsMinusInfinite() }
func (s Segment) IsZero() bool          { return s.rightLimit.IsZero() && s.slope.IsZero() }

// IsConstant reports a zero slope (infinite segments are constant).
func (s Segment) IsConstant() bool { return s.slope.IsZero() }

func (s Segment) Scale(k rational.Rational) Element {
	return mustNormalize(s.start, s.end, s.rightLimit.Mul(k), s.slope.Mul(k))
}

func (s Segment) Delay(d rational.Rational) Element {
	return Segment{start: s.start.Add(d), end: s.end.Add(d), rightLimit: s.rightLimit, slope: s.slope}
}

func (s Segment) Anticipate(d rational.Rational) Element {
	return Segment{start: s.start.Sub(d), end: s.end.Sub(d), rightLimit: s.rightLimit, slope: s.slope}
}

// VerticalShift panics with rational.ErrIndeterminate on opposite infinities.
func (s Segment) VerticalShift(v rational.Rational) Element {
	return mustNormalize(s.start, s.end, s.rightLimit.Add(v), s.slope)
}

func (s Segment) Negate() Element {
	if s.IsZero() {
		return s
	}
	return Segment{start: s.start, end: s.end, rightLimit: s.rightLimit.Neg(), slope: s.slope.Neg()}
}

// Inverse returns the inverse function of a strictly monotone finite segment.
// Constant and infinite segments yield ErrUndefinedOperation.
func (s Segment) Inverse() (Element, error) {
	if s.IsInfinite() || s.slope.IsZero() {
		return nil, elementDetailf(ErrUndefinedOperation, "Segment.Inverse", "not invertible: %s", s)
	}
	left := s.LeftLimitAtEndTime()
	inv := s.slope.Inverse()
	if s.slope.IsPositive() {
		return Segment{start: s.rightLimit, end: left, rightLimit: s.start, slope: inv}, nil
	}
	return Segment{start: left, end: s.rightLimit, rightLimit: s.end, slope: inv}, nil
}

// Cut restricts the segment to (from, to). The new support must be non-empty
// and inside the current one, otherwise ErrNonOverlap.
func (s Segment) Cut(from, to rational.Rational) (Segment, error) {
	if !from.Less(to) || !s.Contains(from, to) {
		return Segment{}, elementDetailf(ErrNonOverlap, "Segment.Cut",
			"(%s, %s) outside %s", from, to, s)
	}
	if from.Equal(s.start) && to.Equal(s.end) {
		return s, nil
	}
	return Segment{start: from, end: to, rightLimit: s.lineAt(from), slope: s.slope}, nil
}

// Split breaks the segment at an interior time t into left, Point(t) and right.
func (s Segment) Split(t rational.Rational) (Segment, Point, Segment, error) {
	if !s.IsDefinedFor(t) {
		return Segment{}, Point{}, Segment{}, elementDetailf(ErrNonOverlap, "Segment.Split",
			"%s not inside %s", t, s)
	}
	v := s.lineAt(t)
	left := Segment{start: s.start, end: t, rightLimit: s.rightLimit, slope: s.slope}
	right := Segment{start: t, end: s.end, rightLimit: v, slope: s.slope}
	return left, Point{Time: t, Value: v}, right, nil
}

// SampleAt returns Point(t, f(t)) for t inside the support, or ErrNonOverlap.
func (s Segment) SampleAt(t rational.Rational) (Point, error) {
	if !s.IsDefinedFor(t) {
		return Point{}, elementDetailf(ErrNonOverlap, "Segment.SampleAt", "%s not inside %s", t, s)
	}
	return Point{Time: t, Value: s.lineAt(t)}, nil
}

func (s Segment) Equal(other Element) bool {
	o, ok := other.(Segment)
	return ok &&
		s.start.Equal(o.start) && s.end.Equal(o.end) &&
		s.rightLimit.Equal(o.rightLimit) && s.slope.Equal(o.slope)
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment(%s, %s, %s, %s)", s.start, s.end, s.rightLimit, s.slope)
}
