// SPDX-License-Identifier: MIT

package element

import (
	"github.com/katalvlaran/minplus/rational"
)

// AreInTimeSequence reports whether elems are ordered and contiguous: every
// element starts where the previous one ends, and no two points share a time.
// An empty or single-element list is in sequence.
func AreInTimeSequence(elems []Element) bool {
	for i := 1; i < len(elems); i++ {
		prev, cur := elems[i-1], elems[i]
		if prev.Kind() == PointKind && cur.Kind() == PointKind {
			return false
		}
		if !cur.StartTime().Equal(prev.EndTime()) {
			return false
		}
	}
	return true
}

// CutElements restricts an ordered list to the span between from and to.
// The bounds themselves are kept only when includeFrom / includeTo are set;
// a segment crossing an included bound contributes its sampled point there.
func CutElements(elems []Element, from, to rational.Rational, includeFrom, includeTo bool) []Element {
	var out []Element
	for _, e := range elems {
		switch x := e.(type) {
		case Point:
			if (x.Time.Greater(from) || (includeFrom && x.Time.Equal(from))) &&
				(x.Time.Less(to) || (includeTo && x.Time.Equal(to))) {
				out = append(out, x)
			}
		case Segment:
			if includeFrom && x.IsDefinedFor(from) {
				out = append(out, Point{Time: from, Value: x.lineAt(from)})
			}
			lo, hi := rational.Max(x.start, from), rational.Min(x.end, to)
			if lo.Less(hi) {
				c, _ := x.Cut(lo, hi)
				out = append(out, c)
			}
			if includeTo && x.IsDefinedFor(to) && from.Less(to) {
				out = append(out, Point{Time: to, Value: x.lineAt(to)})
			}
		}
	}
	return out
}

// Merge joins every segment–point–segment run lying on one line into a
// single segment. The result describes the same function with fewer elements.
func Merge(elems []Element) []Element {
	out := make([]Element, 0, len(elems))
	for _, e := range elems {
		out = append(out, e)
		for len(out) >= 3 {
			n := len(out)
			l, okL := out[n-3].(Segment)
			p, okP := out[n-2].(Point)
			r, okR := out[n-1].(Segment)
			if !okL || !okP || !okR || !collinear(l, p, r) {
				break
			}
			out = append(out[:n-3], Segment{start: l.start, end: r.end, rightLimit: l.rightLimit, slope: l.slope})
		}
	}
	return out
}

func collinear(l Segment, p Point, r Segment) bool {
	return l.end.Equal(p.Time) && r.start.Equal(p.Time) &&
		l.slope.Equal(r.slope) &&
		l.LeftLimitAtEndTime().Equal(p.Value) &&
		r.rightLimit.Equal(p.Value)
}
