// SPDX-License-Identifier: MIT

package curve

import (
	"fmt"

	"github.com/katalvlaran/minplus/element"
	"github.com/katalvlaran/minplus/rational"
)

// Curve is an ultimately pseudo-periodic piecewise-linear function on [0, ∞).
//
// The base sequence describes f over [0, T+d); beyond T the function repeats:
//
//	f(t + k·d) = f(t) + k·c   for t ≥ T, k ∈ ℕ
//
// with T the pseudo-period start, d its length and c its height.
type Curve struct {
	base   []element.Element
	start  rational.Rational
	length rational.Rational
	height rational.Rational
}

// New validates the base sequence and pseudo-period and returns the curve.
//
// Requirements (ErrInvalidCurve otherwise):
//   - start finite and ≥ 0, length finite and > 0, height finite;
//   - base in time sequence, beginning with a Point at 0 and ending with a
//     Segment whose end is start+length.
func New(base []element.Element, start, length, height rational.Rational) (*Curve, error) {
	const tag = "curve.New"
	switch {
	case !start.IsFinite() || start.IsNegative():
		return nil, curveDetailf(ErrInvalidCurve, tag, "pseudo-period start %s", start)
	case !length.IsFinite() || !length.IsPositive():
		return nil, curveDetailf(ErrInvalidCurve, tag, "pseudo-period length %s", length)
	case !height.IsFinite():
		return nil, curveDetailf(ErrInvalidCurve, tag, "pseudo-period height %s", height)
	case len(base) == 0:
		return nil, curveDetailf(ErrInvalidCurve, tag, "empty base")
	case !element.AreInTimeSequence(base):
		return nil, curveDetailf(ErrInvalidCurve, tag, "base not in time sequence")
	}
	if first, ok := base[0].(element.Point); !ok || !first.Time.IsZero() {
		return nil, curveDetailf(ErrInvalidCurve, tag, "base starts with %s, want a point at 0", base[0])
	}
	last := base[len(base)-1]
	if last.Kind() != element.SegmentKind || !last.EndTime().Equal(start.Add(length)) {
		return nil, curveDetailf(ErrInvalidCurve, tag, "base ends with %s, want a segment ending at %s",
			last, start.Add(length))
	}
	return &Curve{
		base:   append([]element.Element(nil), base...),
		start:  start,
		length: length,
		height: height,
	}, nil
}

// mustCurve is New for internally built curves; a failure is a bug.
func mustCurve(base []element.Element, start, length, height rational.Rational) *Curve {
	c, err := New(base, start, length, height)
	if err != nil {
		panic(err)
	}
	return c
}

// PlusInfinite returns the curve that is +∞ everywhere, the neutral
// element of the minimum.
func PlusInfinite() *Curve {
	return mustCurve([]element.Element{
		element.NewPoint(rational.Zero, rational.PlusInfinity),
		plusInfinite(rational.Zero, rational.One),
	}, rational.Zero, rational.One, rational.Zero)
}

// DeltaZero returns δ0: 0 at the origin, +∞ elsewhere. It is the neutral
// element of min-plus convolution.
func DeltaZero() *Curve {
	return mustCurve([]element.Element{
		element.Origin(),
		plusInfinite(rational.Zero, rational.One),
		element.NewPoint(rational.One, rational.PlusInfinity),
		plusInfinite(rational.One, rational.FromInt(2)),
	}, rational.One, rational.One, rational.Zero)
}

// Base returns a copy of the base sequence over [0, T+d).
func (c *Curve) Base() []element.Element {
	return append([]element.Element(nil), c.base...)
}

// BaseSequence returns the base as a Sequence.
func (c *Curve) BaseSequence() *Sequence {
	return &Sequence{elems: c.Base()}
}

func (c *Curve) PseudoPeriodStart() rational.Rational  { return c.start }
func (c *Curve) PseudoPeriodLength() rational.Rational { return c.length }
func (c *Curve) PseudoPeriodHeight() rational.Rational { return c.height }

// FirstPseudoPeriodEnd returns T+d, the end of the base.
func (c *Curve) FirstPseudoPeriodEnd() rational.Rational { return c.start.Add(c.length) }

// Slope returns the long-run slope c/d.
func (c *Curve) Slope() rational.Rational { return c.height.Div(c.length) }

// periodPart returns the elements of [T, T+d).
func (c *Curve) periodPart() []element.Element {
	return element.CutElements(c.base, c.start, c.FirstPseudoPeriodEnd(), true, false)
}

// IsUltimatelyPlusInfinite reports whether f is +∞ from T on.
func (c *Curve) IsUltimatelyPlusInfinite() bool {
	for _, e := range c.periodPart() {
		if !e.IsPlusInfinite() {
			return false
		}
	}
	return true
}

// IsUltimatelyPlain reports whether f is finite everywhere from T on.
func (c *Curve) IsUltimatelyPlain() bool {
	for _, e := range c.periodPart() {
		if e.IsInfinite() {
			return false
		}
	}
	return true
}

// ValueAt returns f(t); negative times yield +∞.
func (c *Curve) ValueAt(t rational.Rational) rational.Rational {
	if t.IsNegative() {
		return rational.PlusInfinity
	}
	if t.Less(c.FirstPseudoPeriodEnd()) {
		return valueIn(c.base, t)
	}
	k := t.Sub(c.start).Div(c.length).Floor()
	v := valueIn(c.base, t.Sub(k.Mul(c.length)))
	if v.IsInfinite() {
		return v
	}
	return v.Add(k.Mul(c.height))
}

// Cut returns the elements describing f over [from, to), unrolling as many
// pseudo-periods as needed. An empty span yields nil.
func (c *Curve) Cut(from, to rational.Rational) []element.Element {
	if !from.Less(to) {
		return nil
	}
	return element.CutElements(c.unroll(to), from, to, true, false)
}

// unroll returns the base followed by pseudo-period copies until to is covered.
func (c *Curve) unroll(to rational.Rational) []element.Element {
	out := c.Base()
	if !to.Greater(c.FirstPseudoPeriodEnd()) {
		return out
	}
	period := c.periodPart()
	for k := int64(1); c.start.Add(c.length.MulInt(k)).Less(to); k++ {
		shift, lift := c.length.MulInt(k), c.height.MulInt(k)
		for _, e := range period {
			out = append(out, e.Delay(shift).VerticalShift(lift))
		}
	}
	return out
}

// DelayBy returns t ↦ f(t−d), +∞ before d. Delays must be finite and ≥ 0.
func (c *Curve) DelayBy(d rational.Rational) (*Curve, error) {
	if !d.IsFinite() || d.IsNegative() {
		return nil, curveDetailf(ErrUndefinedOperation, "Curve.DelayBy", "delay %s", d)
	}
	if d.IsZero() {
		return c, nil
	}
	base := []element.Element{
		element.NewPoint(rational.Zero, rational.PlusInfinity),
		plusInfinite(rational.Zero, d),
	}
	for _, e := range c.base {
		base = append(base, e.Delay(d))
	}
	return New(base, c.start.Add(d), c.length, c.height)
}

// ShiftBy returns f + v for a finite v.
func (c *Curve) ShiftBy(v rational.Rational) (*Curve, error) {
	if !v.IsFinite() {
		return nil, curveDetailf(ErrUndefinedOperation, "Curve.ShiftBy", "shift %s", v)
	}
	base := make([]element.Element, len(c.base))
	for i, e := range c.base {
		base[i] = e.VerticalShift(v)
	}
	return New(base, c.start, c.length, c.height)
}

// withOrigin returns the curve with f(0) replaced by v. The pseudo-period
// start is moved past 0 first, so the origin is not repeated.
func (c *Curve) withOrigin(v rational.Rational) *Curve {
	start := c.start
	base := c.Base()
	if start.IsZero() {
		start = c.length
		base = c.unroll(c.length.MulInt(2))
	}
	base[0] = element.NewPoint(rational.Zero, v)
	return mustCurve(base, start, c.length, c.height)
}

func (c *Curve) String() string {
	return fmt.Sprintf("Curve(T=%s, d=%s, c=%s, base=%v)", c.start, c.length, c.height, c.base)
}

func plusInfinite(start, end rational.Rational) element.Segment {
	return element.MustSegment(start, end, rational.PlusInfinity, rational.Zero)
}
