// SPDX-License-Identifier: MIT

package element

import (
	"slices"

	"github.com/katalvlaran/minplus/rational"
)

// LowerEnvelope returns the pointwise minimum of the held elements over the
// interval, as an ordered gap-free list. A point interval yields one point.
//
// Segment intervals:
//   - any −∞ segment makes the result −∞;
//   - +∞ segments are discarded (all +∞ yields +∞);
//   - per slope only the lowest segment survives;
//   - the rest is merged by divide and conquer over slopes sorted descending,
//     O(n log n) for n distinct slopes.
//
// An empty interval yields ErrEmptyAggregate.
func (i *Interval) LowerEnvelope() ([]Element, error) {
	if i.IsEmpty() {
		return nil, elementDetailf(ErrEmptyAggregate, "Interval.LowerEnvelope", "%s", i)
	}
	fitted := i.Elements()
	if i.point {
		v := rational.PlusInfinity
		for _, e := range fitted {
			v = rational.Min(v, e.(Point).Value)
		}
		return []Element{Point{Time: i.start, Value: v}}, nil
	}

	segs := make([]Segment, 0, len(fitted))
	for _, e := range fitted {
		s := e.(Segment)
		if s.IsMinusInfinite() {
			return []Element{s}, nil
		}
		if !s.IsPlusInfinite() {
			segs = append(segs, s)
		}
	}
	if len(segs) == 0 {
		return []Element{fitted[0]}, nil
	}

	segs = lowestPerSlope(segs)
	if len(segs) == 1 {
		return []Element{segs[0]}, nil
	}
	if len(segs) == 2 {
		return extremum(segs[0], segs[1], true, "Interval.LowerEnvelope")
	}
	slices.SortFunc(segs, func(a, b Segment) int { return b.slope.Cmp(a.slope) })
	return lowerEnvelopeOf(segs, i.start, i.end), nil
}

// UpperEnvelope returns the pointwise maximum, computed as the negated lower
// envelope of the negated elements.
func (i *Interval) UpperEnvelope() ([]Element, error) {
	if i.IsEmpty() {
		return nil, elementDetailf(ErrEmptyAggregate, "Interval.UpperEnvelope", "%s", i)
	}
	negated := &Interval{start: i.start, end: i.end, point: i.point, elements: make([]Element, len(i.elements))}
	for k, e := range i.elements {
		negated.elements[k] = e.Negate()
	}
	lower, err := negated.LowerEnvelope()
	if err != nil {
		return nil, err
	}
	for k, e := range lower {
		lower[k] = e.Negate()
	}
	return lower, nil
}

// lowestPerSlope keeps, for every slope, the segment with the lowest start value.
// The first occurrence order of slopes is kept.
func lowestPerSlope(segs []Segment) []Segment {
	out := segs[:0:0]
	index := make(map[string]int, len(segs))
	for _, s := range segs {
		key := s.slope.String()
		if k, ok := index[key]; ok {
			if s.rightLimit.Less(out[k].rightLimit) {
				out[k] = s
			}
			continue
		}
		index[key] = len(out)
		out = append(out, s)
	}
	return out
}

// lowerEnvelopeOf merges finite segments over (start, end) with strictly
// decreasing slopes.
func lowerEnvelopeOf(segs []Segment, start, end rational.Rational) []Element {
	if len(segs) == 1 {
		return []Element{segs[0]}
	}
	mid := len(segs) / 2
	a := lowerEnvelopeOf(segs[:mid], start, end)
	b := lowerEnvelopeOf(segs[mid:], start, end)
	return conquer(a, b, start, end)
}

// conquer merges two lower envelopes over (start, end) where every slope of a
// exceeds every slope of b. a − b is then strictly increasing, so the two
// cross at most once: the result is a before the crossing and b after it.
func conquer(a, b []Element, start, end rational.Rational) []Element {
	aFirst, bFirst := a[0].(Segment), b[0].(Segment)
	if !aFirst.rightLimit.Less(bFirst.rightLimit) {
		return b
	}
	aLast, bLast := a[len(a)-1].(Segment), b[len(b)-1].(Segment)
	if !aLast.LeftLimitAtEndTime().Greater(bLast.LeftLimitAtEndTime()) {
		return a
	}

	// Scan the common refinement backwards for the last cell where a < b.
	cells := ComputeIntervalsLinear(a, b)
	var crossing rational.Rational
	for k := len(cells) - 1; k >= 0; k-- {
		fitted := cells[k].Elements()
		if cells[k].IsPointInterval() {
			pa, pb := fitted[0].(Point), fitted[1].(Point)
			if !pa.Value.Greater(pb.Value) {
				crossing = cells[k].start
				break
			}
			continue
		}
		sa, sb := fitted[0].(Segment), fitted[1].(Segment)
		gap := sa.rightLimit.Sub(sb.rightLimit)
		if gap.IsNegative() {
			crossing = sa.start.Add(gap.Neg().Div(sa.slope.Sub(sb.slope)))
			break
		}
	}

	out := CutElements(a, start, crossing, false, false)
	out = append(out, Point{Time: crossing, Value: valueOn(a, crossing)})
	return append(out, CutElements(b, crossing, end, false, false)...)
}

// valueOn evaluates a continuous gap-free list at t.
func valueOn(elems []Element, t rational.Rational) rational.Rational {
	for _, e := range elems {
		switch x := e.(type) {
		case Point:
			if x.Time.Equal(t) {
				return x.Value
			}
		case Segment:
			if x.IsDefinedFor(t) || x.end.Equal(t) {
				return x.lineAt(t)
			}
		}
	}
	return rational.PlusInfinity
}
