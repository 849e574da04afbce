// SPDX-License-Identifier: MIT

package element

import (
	"fmt"

	"github.com/katalvlaran/minplus/rational"
)

// Kind tags the two Element variants.
type Kind uint8

const (
	// PointKind marks a Point.
	PointKind Kind = iota + 1
	// SegmentKind marks a Segment.
	SegmentKind
)

// String returns "Point" or "Segment".
func (k Kind) String() string {
	switch k {
	case PointKind:
		return "Point"
	case SegmentKind:
		return "Segment"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Element is the sealed sum of Point and Segment: one piece of a
// piecewise-linear function over exact rationals. Elements are immutable
// values; every transformation returns a new Element.
//
// Callers discriminate variants with a type switch on Point / Segment.
type Element interface {
	Kind() Kind

	// StartTime and EndTime bound the support. For a Point both equal its time;
	// for a Segment the support is the open interval (StartTime, EndTime).
	StartTime() rational.Rational
	EndTime() rational.Rational
	Length() rational.Rational

	// ValueAt returns the value at t, or +∞ when t is outside the support.
	ValueAt(t rational.Rational) rational.Rational
	IsDefinedFor(t rational.Rational) bool

	IsFinite() bool
	IsInfinite() bool
	IsPlusInfinite() bool
	IsMinusInfinite() bool
	// IsZero reports whether the element is identically 0 on its support.
	IsZero() bool

	// Scale multiplies values by k.
	Scale(k rational.Rational) Element
	// Delay moves the support right by d.
	Delay(d rational.Rational) Element
	// Anticipate moves the support left by d.
	Anticipate(d rational.Rational) Element
	// VerticalShift adds s to every value.
	VerticalShift(s rational.Rational) Element
	// Negate returns -e; a zero element is returned unchanged.
	Negate() Element
	// Inverse returns the inverse function, or ErrUndefinedOperation.
	Inverse() (Element, error)

	Equal(other Element) bool
	String() string

	sealed()
}

// PlusInfiniteSegment returns the +∞ segment over (start, end).
func PlusInfiniteSegment(start, end rational.Rational) (Segment, error) {
	return NewSegment(start, end, rational.PlusInfinity, rational.Zero)
}

// MinusInfiniteSegment returns the −∞ segment over (start, end).
func MinusInfiniteSegment(start, end rational.Rational) (Segment, error) {
	return NewSegment(start, end, rational.MinusInfinity, rational.Zero)
}

// ZeroSegment returns the constant 0 segment over (start, end).
func ZeroSegment(start, end rational.Rational) (Segment, error) {
	return NewSegment(start, end, rational.Zero, rational.Zero)
}

// Origin returns Point(0, 0), the neutral element of min-plus convolution.
func Origin() Point {
	return Point{}
}
