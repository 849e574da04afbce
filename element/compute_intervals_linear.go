// SPDX-License-Identifier: MIT

package element

import (
	"github.com/katalvlaran/minplus/rational"
)

// ComputeIntervalsLinear aligns two ordered gap-free sequences in a single
// merge pass, O(len(a)+len(b)).
//
// Precondition (not checked): a and b each satisfy AreInTimeSequence, with
// points between consecutive segments. Other inputs give unspecified output.
//
// Whenever one sequence has a boundary strictly inside a segment of the other,
// that segment is split there; the part before the boundary is emitted and the
// sampled point plus the remainder are processed next. Within a cell holding
// elements of both sequences, the element of a comes first. The result equals
// ComputeIntervals(append(a, b...)) cell by cell after fitting.
func ComputeIntervalsLinear(a, b []Element) []*Interval {
	sa, sb := &cursor{elems: a}, &cursor{elems: b}
	var t tiling
	for {
		ha, hb := sa.head(), sb.head()
		switch {
		case ha == nil && hb == nil:
			return t.cells
		case ha == nil:
			t.emit(hb)
			sb.advance()
		case hb == nil:
			t.emit(ha)
			sa.advance()
		default:
			switch c := ha.StartTime().Cmp(hb.StartTime()); {
			case c < 0:
				t.emit(leading(sa, hb.StartTime()))
			case c > 0:
				t.emit(leading(sb, ha.StartTime()))
			default:
				alignHeads(sa, sb, &t)
			}
		}
	}
}

// leading consumes the head of c, which starts before other, up to other.
func leading(c *cursor, other rational.Rational) Element {
	h := c.head()
	if s, ok := h.(Segment); ok && s.end.Greater(other) {
		return c.splitHead(other)
	}
	c.advance()
	return h
}

// alignHeads handles two heads starting at the same time.
func alignHeads(sa, sb *cursor, t *tiling) {
	ha, hb := sa.head(), sb.head()
	switch {
	case ha.Kind() == PointKind && hb.Kind() == PointKind:
		t.emit(ha, hb)
		sa.advance()
		sb.advance()
	case ha.Kind() == PointKind:
		t.emit(ha)
		sa.advance()
	case hb.Kind() == PointKind:
		t.emit(hb)
		sb.advance()
	default:
		switch c := ha.EndTime().Cmp(hb.EndTime()); {
		case c == 0:
			t.emit(ha, hb)
			sa.advance()
			sb.advance()
		case c < 0:
			left := sb.splitHead(ha.EndTime())
			t.emit(ha, left)
			sa.advance()
		default:
			left := sa.splitHead(hb.EndTime())
			t.emit(left, hb)
			sb.advance()
		}
	}
}

// cursor walks one sequence; pending holds the pieces of a split head.
type cursor struct {
	elems   []Element
	next    int
	pending []Element
}

func (c *cursor) head() Element {
	if len(c.pending) > 0 {
		return c.pending[0]
	}
	if c.next < len(c.elems) {
		return c.elems[c.next]
	}
	return nil
}

func (c *cursor) advance() {
	if len(c.pending) > 0 {
		c.pending = c.pending[1:]
		return
	}
	c.next++
}

// splitHead consumes the head segment, returns its part before t and queues
// the point at t followed by the remainder.
func (c *cursor) splitHead(t rational.Rational) Segment {
	left, p, right, err := c.head().(Segment).Split(t)
	if err != nil {
		panic(err)
	}
	c.advance()
	c.pending = append([]Element{p, right}, c.pending...)
	return left
}

// tiling accumulates consecutive emissions with the same support into one cell.
type tiling struct {
	cells []*Interval
}

func (t *tiling) emit(elems ...Element) {
	last := len(t.cells) - 1
	if last < 0 || !t.cells[last].sameSupport(elems[0]) {
		t.cells = append(t.cells, intervalFor(elems[0]))
		last++
	}
	t.cells[last].AddUnchecked(elems...)
}
