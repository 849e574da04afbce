// SPDX-License-Identifier: MIT

package curve

import (
	"sort"
	"strings"

	"github.com/katalvlaran/minplus/element"
	"github.com/katalvlaran/minplus/rational"
)

// Sequence is an ordered, gap-free list of elements: a piecewise-linear
// function over a finite domain. A Sequence is immutable.
type Sequence struct {
	elems []element.Element
}

// NewSequence validates elems and wraps a copy of them.
// An empty list or a list with gaps yields ErrInvalidCurve.
func NewSequence(elems []element.Element) (*Sequence, error) {
	if len(elems) == 0 {
		return nil, curveDetailf(ErrInvalidCurve, "NewSequence", "no elements")
	}
	if !element.AreInTimeSequence(elems) {
		return nil, curveDetailf(ErrInvalidCurve, "NewSequence", "elements not in time sequence")
	}
	return &Sequence{elems: append([]element.Element(nil), elems...)}, nil
}

// Elements returns a copy of the elements.
func (s *Sequence) Elements() []element.Element {
	return append([]element.Element(nil), s.elems...)
}

func (s *Sequence) Len() int { return len(s.elems) }

// DefinedFrom is the start of the first element.
func (s *Sequence) DefinedFrom() rational.Rational { return s.elems[0].StartTime() }

// DefinedUntil is the end of the last element.
func (s *Sequence) DefinedUntil() rational.Rational { return s.elems[len(s.elems)-1].EndTime() }

// IsRightOpen reports whether the domain excludes DefinedUntil.
func (s *Sequence) IsRightOpen() bool {
	return s.elems[len(s.elems)-1].Kind() == element.SegmentKind
}

// ValueAt returns f(t), or +∞ outside the domain.
func (s *Sequence) ValueAt(t rational.Rational) rational.Rational {
	return valueIn(s.elems, t)
}

// Cut restricts the sequence to the span between from and to, each bound
// included when asked. An empty restriction yields ErrInvalidCurve.
func (s *Sequence) Cut(from, to rational.Rational, includeFrom, includeTo bool) (*Sequence, error) {
	cut := element.CutElements(s.elems, from, to, includeFrom, includeTo)
	if len(cut) == 0 {
		return nil, curveDetailf(ErrInvalidCurve, "Sequence.Cut", "[%s, %s] outside the domain", from, to)
	}
	return &Sequence{elems: cut}, nil
}

// Optimize merges collinear runs; the function is unchanged.
func (s *Sequence) Optimize() *Sequence {
	return &Sequence{elems: element.Merge(s.elems)}
}

func (s *Sequence) String() string {
	parts := make([]string, len(s.elems))
	for i, e := range s.elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// LowerEnvelope returns the pointwise minimum of seqs over the union of
// their domains. Two sequences are aligned by the linear two-pointer walk,
// more by the general ComputeIntervals; each interval is then reduced by
// Interval.LowerEnvelope.
//
// Complexity: O(n) for two sequences, O(n log n) otherwise.
func LowerEnvelope(settings element.Settings, seqs ...*Sequence) (*Sequence, error) {
	switch len(seqs) {
	case 0:
		return nil, curveDetailf(ErrEmptyAggregate, "LowerEnvelope", "no sequence")
	case 1:
		return seqs[0], nil
	}

	var cells []*element.Interval
	if len(seqs) == 2 {
		cells = element.ComputeIntervalsLinear(seqs[0].elems, seqs[1].elems)
	} else {
		var all []element.Element
		for _, s := range seqs {
			all = append(all, s.elems...)
		}
		var err error
		if cells, err = element.ComputeIntervals(all, settings); err != nil {
			return nil, curveErrorf("LowerEnvelope", err)
		}
	}

	var out []element.Element
	for _, c := range cells {
		env, err := c.LowerEnvelope()
		if err != nil {
			return nil, curveErrorf("LowerEnvelope", err)
		}
		out = append(out, env...)
	}
	return NewSequence(out)
}

// valueIn evaluates an ordered gap-free list at t, +∞ outside it.
func valueIn(elems []element.Element, t rational.Rational) rational.Rational {
	i := sort.Search(len(elems), func(i int) bool {
		return elems[i].EndTime().GreaterOrEqual(t)
	})
	for ; i < len(elems) && elems[i].StartTime().LessOrEqual(t); i++ {
		if elems[i].IsDefinedFor(t) {
			return elems[i].ValueAt(t)
		}
	}
	return rational.PlusInfinity
}
