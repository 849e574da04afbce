// SPDX-License-Identifier: MIT

package element

import (
	"github.com/katalvlaran/minplus/rational"
)

// addValues returns x + y, or false on (+∞) + (−∞).
func addValues(x, y rational.Rational) (rational.Rational, bool) {
	if x.IsInfinite() && y.IsInfinite() && x.Sign() != y.Sign() {
		return rational.Zero, false
	}
	return x.Add(y), true
}

// commonSupport returns the intersection of two segment supports.
func commonSupport(a, b Segment) (lo, hi rational.Rational, ok bool) {
	lo = rational.Max(a.start, b.start)
	hi = rational.Min(a.end, b.end)
	return lo, hi, lo.Less(hi)
}

// cutToCommon cuts both segments to their common support.
func cutToCommon(a, b Segment, tag string) (Segment, Segment, error) {
	lo, hi, ok := commonSupport(a, b)
	if !ok {
		return Segment{}, Segment{}, elementDetailf(ErrNonOverlap, tag, "%s and %s", a, b)
	}
	ac, _ := a.Cut(lo, hi)
	bc, _ := b.Cut(lo, hi)
	return ac, bc, nil
}

// Add returns a + b over their common support: Point+Point at the same time,
// Point+Segment at a time inside the segment, Segment+Segment over the
// overlap of the supports. Disjoint operands yield ErrNonOverlap.
func Add(a, b Element) (Element, error) {
	if p, ok := a.(Point); ok {
		return addToPoint(p, b)
	}
	if p, ok := b.(Point); ok {
		return addToPoint(p, a)
	}
	x, y := a.(Segment), b.(Segment)
	xc, yc, err := cutToCommon(x, y, "Add")
	if err != nil {
		return nil, err
	}
	rl, ok := addValues(xc.rightLimit, yc.rightLimit)
	if !ok {
		return nil, elementDetailf(ErrUndefinedOperation, "Add", "%s + %s", x, y)
	}
	return mustNormalize(xc.start, xc.end, rl, xc.slope.Add(yc.slope)), nil
}

func addToPoint(p Point, other Element) (Element, error) {
	if !other.IsDefinedFor(p.Time) {
		return nil, elementDetailf(ErrNonOverlap, "Add", "%s and %s", p, other)
	}
	v, ok := addValues(p.Value, other.ValueAt(p.Time))
	if !ok {
		return nil, elementDetailf(ErrUndefinedOperation, "Add", "%s + %s", p, other)
	}
	return Point{Time: p.Time, Value: v}, nil
}

// Subtract returns a − b, defined as Add(a, −b).
func Subtract(a, b Element) (Element, error) {
	return Add(a, b.Negate())
}

// IntersectionTime returns the time at which two finite segments with
// different slopes cross inside their common support.
func IntersectionTime(a, b Segment) (rational.Rational, bool) {
	if a.IsInfinite() || b.IsInfinite() || a.slope.Equal(b.slope) {
		return rational.Zero, false
	}
	lo, hi, ok := commonSupport(a, b)
	if !ok {
		return rational.Zero, false
	}
	// rl_a + s_a(t − st_a) = rl_b + s_b(t − st_b)
	num := b.rightLimit.Sub(a.rightLimit).
		Add(a.slope.Mul(a.start)).
		Sub(b.slope.Mul(b.start))
	t := num.Div(a.slope.Sub(b.slope))
	if !lo.Less(t) || !t.Less(hi) {
		return rational.Zero, false
	}
	return t, true
}

// Minimum returns min(a, b) over the common support. Two crossing segments
// yield three pieces: the lower one up to the crossing, the crossing point,
// the other one after it.
func Minimum(a, b Element) ([]Element, error) {
	return extremum(a, b, true, "Minimum")
}

// Maximum is the max-plus counterpart of Minimum.
func Maximum(a, b Element) ([]Element, error) {
	return extremum(a, b, false, "Maximum")
}

// better reports whether x wins over y (smaller when lower, larger otherwise).
func better(x, y rational.Rational, lower bool) bool {
	if lower {
		return x.Less(y)
	}
	return x.Greater(y)
}

func extremum(a, b Element, lower bool, tag string) ([]Element, error) {
	var p Point
	var other Element
	switch {
	case a.Kind() == PointKind:
		p, other = a.(Point), b
	case b.Kind() == PointKind:
		p, other = b.(Point), a
	}
	if other != nil {
		if !other.IsDefinedFor(p.Time) {
			return nil, elementDetailf(ErrNonOverlap, tag, "%s and %s", a, b)
		}
		v := other.ValueAt(p.Time)
		if better(p.Value, v, lower) {
			v = p.Value
		}
		return []Element{Point{Time: p.Time, Value: v}}, nil
	}

	x, y, err := cutToCommon(a.(Segment), b.(Segment), tag)
	if err != nil {
		return nil, err
	}
	if x.IsInfinite() || y.IsInfinite() {
		return []Element{infiniteWinner(x, y, lower)}, nil
	}

	t, crossing := IntersectionTime(x, y)
	if !crossing {
		first := x
		if better(y.rightLimit, x.rightLimit, lower) ||
			(y.rightLimit.Equal(x.rightLimit) && better(y.slope, x.slope, lower)) {
			first = y
		}
		return []Element{first}, nil
	}

	// Before the crossing the lower function is the one with the larger slope.
	before, after := x, y
	if better(y.slope, x.slope, !lower) {
		before, after = y, x
	}
	left, _ := before.Cut(before.start, t)
	right, _ := after.Cut(t, after.end)
	return []Element{left, Point{Time: t, Value: x.lineAt(t)}, right}, nil
}

// infiniteWinner resolves an extremum where at least one side is infinite.
func infiniteWinner(x, y Segment, lower bool) Segment {
	absorbing, neutral := x.IsMinusInfinite, x.IsPlusInfinite
	yAbsorbing, yNeutral := y.IsMinusInfinite, y.IsPlusInfinite
	if !lower {
		absorbing, neutral = x.IsPlusInfinite, x.IsMinusInfinite
		yAbsorbing, yNeutral = y.IsPlusInfinite, y.IsMinusInfinite
	}
	switch {
	case absorbing():
		return x
	case yAbsorbing():
		return y
	case neutral():
		return y
	case yNeutral():
		return x
	}
	return x
}

// shortest returns the element with the smallest Length; ties keep the first.
func shortest(elems []Element) Element {
	ref := elems[0]
	for _, e := range elems[1:] {
		if e.Length().Less(ref.Length()) {
			ref = e
		}
	}
	return ref
}

// containingSegments checks that every element is a segment covering
// (ref.start, ref.end) and returns them cut to that support.
func containingSegments(elems []Element, ref Segment, tag string) ([]Segment, error) {
	out := make([]Segment, 0, len(elems))
	for _, e := range elems {
		s, ok := e.(Segment)
		if !ok || !s.Contains(ref.start, ref.end) {
			return nil, elementDetailf(ErrNonOverlap, tag, "%s does not cover %s", e, ref)
		}
		c, _ := s.Cut(ref.start, ref.end)
		out = append(out, c)
	}
	return out, nil
}

// Sum returns the sum of all elements over the support of the shortest one.
// Every element must be defined over that support, otherwise ErrNonOverlap.
func Sum(elems ...Element) (Element, error) {
	switch len(elems) {
	case 0:
		return nil, elementErrorf("Sum", ErrEmptyAggregate)
	case 1:
		return elems[0], nil
	case 2:
		return Add(elems[0], elems[1])
	}

	if p, ok := shortest(elems).(Point); ok {
		v := rational.Zero
		for _, e := range elems {
			if !e.IsDefinedFor(p.Time) {
				return nil, elementDetailf(ErrNonOverlap, "Sum", "%s undefined at %s", e, p.Time)
			}
			var ok bool
			if v, ok = addValues(v, e.ValueAt(p.Time)); !ok {
				return nil, elementDetailf(ErrUndefinedOperation, "Sum", "opposite infinities at %s", p.Time)
			}
		}
		return Point{Time: p.Time, Value: v}, nil
	}

	ref := shortest(elems).(Segment)
	segs, err := containingSegments(elems, ref, "Sum")
	if err != nil {
		return nil, err
	}
	rl, slope := rational.Zero, rational.Zero
	for _, s := range segs {
		var ok bool
		if rl, ok = addValues(rl, s.rightLimit); !ok {
			return nil, elementDetailf(ErrUndefinedOperation, "Sum", "opposite infinities over %s", ref)
		}
		if s.IsFinite() {
			slope = slope.Add(s.slope)
		}
	}
	return mustNormalize(ref.start, ref.end, rl, slope), nil
}

// MinimumOf returns the lower envelope of all elements over the support of
// the shortest one. Zero inputs yield ErrEmptyAggregate.
func MinimumOf(elems ...Element) ([]Element, error) {
	return extremumOf(elems, true, "MinimumOf")
}

// MaximumOf returns the upper envelope; see MinimumOf.
func MaximumOf(elems ...Element) ([]Element, error) {
	return extremumOf(elems, false, "MaximumOf")
}

func extremumOf(elems []Element, lower bool, tag string) ([]Element, error) {
	switch len(elems) {
	case 0:
		return nil, elementErrorf(tag, ErrEmptyAggregate)
	case 1:
		return []Element{elems[0]}, nil
	case 2:
		return extremum(elems[0], elems[1], lower, tag)
	}

	if p, ok := shortest(elems).(Point); ok {
		best := rational.PlusInfinity
		if !lower {
			best = rational.MinusInfinity
		}
		for _, e := range elems {
			if !e.IsDefinedFor(p.Time) {
				return nil, elementDetailf(ErrNonOverlap, tag, "%s undefined at %s", e, p.Time)
			}
			if v := e.ValueAt(p.Time); better(v, best, lower) {
				best = v
			}
		}
		return []Element{Point{Time: p.Time, Value: best}}, nil
	}

	ref := shortest(elems).(Segment)
	segs, err := containingSegments(elems, ref, tag)
	if err != nil {
		return nil, err
	}
	iv := newSegmentInterval(ref.start, ref.end)
	for _, s := range segs {
		iv.AddUnchecked(s)
	}
	if lower {
		return iv.LowerEnvelope()
	}
	return iv.UpperEnvelope()
}
