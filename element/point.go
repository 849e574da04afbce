// SPDX-License-Identifier: MIT

package element

import (
	"fmt"

	"github.com/katalvlaran/minplus/rational"
)

// Point is a function defined at a single instant.
// Time must be finite; Value may be ±∞.
type Point struct {
	Time  rational.Rational
	Value rational.Rational
}

// NewPoint returns Point(t, v).
func NewPoint(t, v rational.Rational) Point {
	return Point{Time: t, Value: v}
}

func (Point) sealed() {}

func (Point) Kind() Kind { return PointKind }

func (p Point) StartTime() rational.Rational { return p.Time }
func (p Point) EndTime() rational.Rational   { return p.Time }
func (p Point) Length() rational.Rational    { return rational.Zero }

// ValueAt returns Value at Time and +∞ elsewhere.
func (p Point) ValueAt(t rational.Rational) rational.Rational {
	if !t.Equal(p.Time) {
		return rational.PlusInfinity
	}
	return p.Value
}

func (p Point) IsDefinedFor(t rational.Rational) bool { return t.Equal(p.Time) }

func (p Point) IsFinite() bool        { return p.Value.IsFinite() }
func (p Point) IsInfinite() bool      { return p.Value.IsInfinite() }
func (p Point) IsPlusInfinite() bool  { return p.Value.IsPlusInfinite() }
func (p Point) IsMinusInfinite() bool { return p.Value.IsMinusInfinite() }
func (p Point) IsZero() bool          { return p.Value.IsZero() }

func (p Point) Scale(k rational.Rational) Element {
	return Point{Time: p.Time, Value: p.Value.Mul(k)}
}

func (p Point) Delay(d rational.Rational) Element {
	return Point{Time: p.Time.Add(d), Value: p.Value}
}

func (p Point) Anticipate(d rational.Rational) Element {
	return Point{Time: p.Time.Sub(d), Value: p.Value}
}

// VerticalShift panics with rational.ErrIndeterminate on opposite infinities.
func (p Point) VerticalShift(s rational.Rational) Element {
	return Point{Time: p.Time, Value: p.Value.Add(s)}
}

func (p Point) Negate() Element {
	if p.IsZero() {
		return p
	}
	return Point{Time: p.Time, Value: p.Value.Neg()}
}

// Inverse swaps time and value. An infinite value has no inverse.
func (p Point) Inverse() (Element, error) {
	if p.Value.IsInfinite() {
		return nil, elementDetailf(ErrUndefinedOperation, "Point.Inverse", "infinite value at %s", p.Time)
	}
	return Point{Time: p.Value, Value: p.Time}, nil
}

func (p Point) Equal(other Element) bool {
	q, ok := other.(Point)
	return ok && p.Time.Equal(q.Time) && p.Value.Equal(q.Value)
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%s, %s)", p.Time, p.Value)
}
