// SPDX-License-Identifier: MIT

package element

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/minplus/rational"
)

// Interval is one cell of an alignment: either a single instant {Start} or
// an open span (Start, End), holding the elements defined over all of it.
//
// Invariants:
//   - a point interval holds only elements defined at Start;
//   - a segment interval holds only segments whose support covers (Start, End).
//
// Elements added later are appended in call order. An Interval is not safe
// for concurrent mutation; ComputeIntervals gives each worker disjoint intervals.
type Interval struct {
	start, end rational.Rational
	point      bool
	elements   []Element
}

// NewPointInterval returns the empty interval {t}.
func NewPointInterval(t rational.Rational) *Interval {
	return &Interval{start: t, end: t, point: true}
}

// NewSegmentInterval returns the empty interval (start, end).
// start must be less than end, otherwise ErrUndefinedOperation.
func NewSegmentInterval(start, end rational.Rational) (*Interval, error) {
	if !start.Less(end) {
		return nil, elementDetailf(ErrUndefinedOperation, "NewSegmentInterval", "empty span (%s, %s)", start, end)
	}
	return newSegmentInterval(start, end), nil
}

func newSegmentInterval(start, end rational.Rational) *Interval {
	return &Interval{start: start, end: end}
}

// intervalFor returns the empty interval matching the support of e.
func intervalFor(e Element) *Interval {
	if e.Kind() == PointKind {
		return NewPointInterval(e.StartTime())
	}
	return newSegmentInterval(e.StartTime(), e.EndTime())
}

func (i *Interval) Start() rational.Rational { return i.start }
func (i *Interval) End() rational.Rational   { return i.end }
func (i *Interval) IsPointInterval() bool    { return i.point }
func (i *Interval) IsSegmentInterval() bool  { return !i.point }
func (i *Interval) Count() int               { return len(i.elements) }
func (i *Interval) IsEmpty() bool            { return len(i.elements) == 0 }

// Length returns End − Start (0 for a point interval).
func (i *Interval) Length() rational.Rational { return i.end.Sub(i.start) }

// sameSupport reports whether e spans exactly this interval.
func (i *Interval) sameSupport(e Element) bool {
	return (e.Kind() == PointKind) == i.point &&
		e.StartTime().Equal(i.start) && e.EndTime().Equal(i.end)
}

// RawElements returns a copy of the held elements as they were added.
func (i *Interval) RawElements() []Element {
	out := make([]Element, len(i.elements))
	copy(out, i.elements)
	return out
}

// Elements returns the held elements fitted to the interval: segments in a
// point interval are sampled at Start, segments in a segment interval are
// cut to (Start, End). Order follows insertion order.
func (i *Interval) Elements() []Element {
	out := make([]Element, 0, len(i.elements))
	for _, e := range i.elements {
		out = append(out, i.fit(e))
	}
	return out
}

func (i *Interval) fit(e Element) Element {
	s, ok := e.(Segment)
	if !ok {
		return e
	}
	if i.point {
		return Point{Time: i.start, Value: s.lineAt(i.start)}
	}
	if s.start.Equal(i.start) && s.end.Equal(i.end) {
		return s
	}
	return Segment{start: i.start, end: i.end, rightLimit: s.lineAt(i.start), slope: s.slope}
}

// Classify reports how e overlaps the interval.
func (i *Interval) Classify(e Element) Overlap {
	if p, ok := e.(Point); ok {
		if i.point {
			if p.Time.Equal(i.start) {
				return PointInside
			}
			return NoOverlap
		}
		if i.start.Less(p.Time) && p.Time.Less(i.end) {
			return PointInside
		}
		return NoOverlap
	}

	s := e.(Segment)
	if i.point {
		if s.IsDefinedFor(i.start) {
			return SegmentSupportContainsInterval
		}
		return NoOverlap
	}
	switch {
	case !s.end.Greater(i.start) || !s.start.Less(i.end):
		return NoOverlap
	case !s.start.Greater(i.start) && !s.end.Less(i.end):
		return SegmentSupportContainsInterval
	case !s.start.Less(i.start) && !s.end.Greater(i.end):
		return SegmentFullyContained
	case s.start.Greater(i.start):
		return SegmentStartContained
	default:
		return SegmentEndContained
	}
}

// accepts reports whether e is defined over the whole interval.
func (i *Interval) accepts(e Element) bool {
	switch i.Classify(e) {
	case SegmentSupportContainsInterval:
		return true
	case PointInside:
		return i.point
	}
	return false
}

// Add appends e after checking that it is defined over the whole interval.
func (i *Interval) Add(e Element) error {
	if !i.accepts(e) {
		return elementDetailf(ErrNonOverlap, "Interval.Add", "%s does not cover %s", e, i)
	}
	i.elements = append(i.elements, e)
	return nil
}

// AddRange appends elems if every one of them passes the Add check;
// otherwise nothing is added.
func (i *Interval) AddRange(elems []Element) error {
	for _, e := range elems {
		if !i.accepts(e) {
			return elementDetailf(ErrNonOverlap, "Interval.AddRange", "%s does not cover %s", e, i)
		}
	}
	i.elements = append(i.elements, elems...)
	return nil
}

// AddUnchecked appends elems without validation. Callers guarantee coverage.
func (i *Interval) AddUnchecked(elems ...Element) {
	i.elements = append(i.elements, elems...)
}

// SplitOver returns the tiling of this interval refined by the boundaries of
// e: one piece when e covers the interval, three when one boundary of e falls
// inside it, five when both do. Every held element goes to every piece; e
// goes to the pieces it covers. The receiver is left unchanged.
func (i *Interval) SplitOver(e Element) ([]*Interval, error) {
	if i.Classify(e) == NoOverlap {
		return nil, elementDetailf(ErrNonOverlap, "Interval.SplitOver", "%s outside %s", e, i)
	}

	var cuts []rational.Rational
	if !i.point {
		for _, t := range []rational.Rational{e.StartTime(), e.EndTime()} {
			if i.start.Less(t) && t.Less(i.end) && (len(cuts) == 0 || !cuts[len(cuts)-1].Equal(t)) {
				cuts = append(cuts, t)
			}
		}
	}

	pieces := make([]*Interval, 0, 2*len(cuts)+1)
	if len(cuts) == 0 {
		pieces = append(pieces, i.cloneAs(i.start, i.end, i.point))
	} else {
		prev := i.start
		for _, t := range cuts {
			pieces = append(pieces, i.cloneAs(prev, t, false), i.cloneAs(t, t, true))
			prev = t
		}
		pieces = append(pieces, i.cloneAs(prev, i.end, false))
	}
	for _, p := range pieces {
		if p.accepts(e) {
			p.elements = append(p.elements, e)
		}
	}
	return pieces, nil
}

// cloneAs copies the held elements into a new interval with the given span.
func (i *Interval) cloneAs(start, end rational.Rational, point bool) *Interval {
	return &Interval{start: start, end: end, point: point, elements: i.RawElements()}
}

func (i *Interval) String() string {
	var b strings.Builder
	if i.point {
		fmt.Fprintf(&b, "{%s}", i.start)
	} else {
		fmt.Fprintf(&b, "(%s, %s)", i.start, i.end)
	}
	fmt.Fprintf(&b, " x%d", len(i.elements))
	return b.String()
}
