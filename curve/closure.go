// SPDX-License-Identifier: MIT

package curve

import (
	"github.com/katalvlaran/minplus/element"
	"github.com/katalvlaran/minplus/rational"
)

// segmentType classifies a finite segment e over (a, b) by comparing the
// slopes r/a and e(b⁻)/b of the lines through the origin and its two ends.
type segmentType int

const (
	// typeA: r/a ≤ e(b⁻)/b. Long-run the most copies win; period a, height r.
	typeA segmentType = iota
	// typeB: r/a > e(b⁻)/b, or a = 0. Long-run the fewest copies win;
	// period b, height e(b⁻).
	typeB
)

func (t segmentType) String() string {
	if t == typeA {
		return "A"
	}
	return "B"
}

// SubAdditiveClosure returns the sub-additive closure
//
//	e* = δ0 ∧ e ∧ e⊗e ∧ e⊗e⊗e ∧ …
//
// of a single element, as a pseudo-periodic curve.
//
//   - Point(0, v): δ0 for v ≥ 0.
//   - Point(a, v), a > 0: the point train (n·a, n·v).
//   - Segment over (0, b): the copies are nested; for r ≥ 0 the fewest
//     copies win, giving pseudo-period (b, e(b⁻)) from b.
//   - Segment over (a, b), a > 0: with L = b − a and k = ⌊a/L⌋+1 the copies
//     eⁿ, n ≥ k, overlap each other. Type A repeats with (a, r) from
//     (k+1)·a, type B with (b, e(b⁻)) from k·b; the base is the lower
//     envelope of e¹ … e^{k+1}.
//
// Elements at negative times, −∞ elements and elements whose copies reach
// −∞ (a point or right limit below 0 at the origin) yield
// ErrUndefinedOperation. +∞ elements yield δ0.
func SubAdditiveClosure(e element.Element, opts ...element.Option) (*Curve, error) {
	settings := element.NewSettings(opts...)
	if err := checkClosureOperand(e, "SubAdditiveClosure"); err != nil {
		return nil, err
	}
	if e.IsPlusInfinite() {
		return DeltaZero(), nil
	}

	j, err := strictClosure(e, settings)
	if err != nil {
		return nil, curveErrorf("SubAdditiveClosure", err)
	}
	out := j.withOrigin(rational.Zero)
	if settings.UseRepresentationMinimization {
		out = out.Optimize()
	}
	return out, nil
}

// checkClosureOperand rejects operands no closure is defined for.
func checkClosureOperand(e element.Element, tag string) error {
	if e.StartTime().IsNegative() {
		return curveDetailf(ErrUndefinedOperation, tag, "%s starts before 0", e)
	}
	if e.IsMinusInfinite() {
		return curveDetailf(ErrUndefinedOperation, tag, "closure of %s is −∞", e)
	}
	return nil
}

// strictClosure returns e ∧ e⊗e ∧ …, the closure without δ0, for a finite e
// at non-negative times. Its value at 0 is +∞ unless e is a point at 0.
func strictClosure(e element.Element, settings element.Settings) (*Curve, error) {
	switch x := e.(type) {
	case element.Point:
		return pointStrictClosure(x)
	case element.Segment:
		j, _, err := segmentStrictClosure(x, settings)
		return j, err
	}
	return nil, curveDetailf(ErrUndefinedOperation, "strictClosure", "unknown element %s", e)
}

func pointStrictClosure(p element.Point) (*Curve, error) {
	a, v := p.Time, p.Value
	if a.IsZero() {
		if v.IsNegative() {
			return nil, curveDetailf(ErrUndefinedOperation, "pointStrictClosure",
				"%s: repeated negative value at the origin", p)
		}
		// (0, n·v) for every n: the minimum is v.
		return mustCurve([]element.Element{
			p,
			plusInfinite(rational.Zero, rational.One),
			element.NewPoint(rational.One, rational.PlusInfinity),
			plusInfinite(rational.One, rational.FromInt(2)),
		}, rational.One, rational.One, rational.Zero), nil
	}
	log.Debugf("SubAdditiveClosure: point train %s", p)
	return mustCurve([]element.Element{
		element.NewPoint(rational.Zero, rational.PlusInfinity),
		plusInfinite(rational.Zero, a),
		p,
		plusInfinite(a, a.MulInt(2)),
	}, a, a, v), nil
}

// segmentStrictClosure returns the closure without δ0 of a finite segment
// and its type.
func segmentStrictClosure(s element.Segment, settings element.Settings) (*Curve, segmentType, error) {
	a, b := s.StartTime(), s.EndTime()
	r, slope := s.RightLimitAtStartTime(), s.Slope()
	end := s.LeftLimitAtEndTime()

	if a.IsZero() {
		if r.IsNegative() {
			return nil, typeB, curveDetailf(ErrUndefinedOperation, "segmentStrictClosure",
				"%s: negative right limit at the origin", s)
		}
		// eⁿ covers (0, n·b) with value n·r + slope·t: on [(n−1)·b, n·b)
		// the fewest copies, n, are the lowest.
		b2 := b.MulInt(2)
		log.Debugf("SubAdditiveClosure: %s starts at the origin", s)
		return mustCurve([]element.Element{
			element.NewPoint(rational.Zero, rational.PlusInfinity),
			s,
			element.NewPoint(b, r.MulInt(2).Add(slope.Mul(b))),
			element.MustSegment(b, b2, r.MulInt(2).Add(slope.Mul(b)), slope),
		}, b, b, end), typeB, nil
	}

	length := s.Length()
	k := a.Div(length).Floor().Add(rational.One)
	kind := typeB
	if r.Mul(b).LessOrEqual(end.Mul(a)) {
		kind = typeA
	}

	var start, period, height rational.Rational
	if kind == typeA {
		start, period, height = k.Add(rational.One).Mul(a), a, r
	} else {
		start, period, height = k.Mul(b), b, end
	}
	limit := start.Add(period)
	log.Debugf("SubAdditiveClosure: %s type %s, k=%s, T=%s d=%s c=%s", s, kind, k, start, period, height)

	copies := k.Add(rational.One).FloorInt64()
	seqs := make([]*Sequence, 0, copies)
	var power element.Element = s
	for n := int64(1); n <= copies; n++ {
		if n > 1 {
			pieces, err := element.Convolution(power, s)
			if err != nil {
				return nil, kind, curveErrorf("segmentStrictClosure", err)
			}
			power = pieces[0]
		}
		if power.StartTime().Less(limit) {
			seqs = append(seqs, &Sequence{elems: padded(power, limit)})
		}
	}
	env, err := LowerEnvelope(settings, seqs...)
	if err != nil {
		return nil, kind, curveErrorf("segmentStrictClosure", err)
	}
	j, err := New(env.elems, start, period, height)
	if err != nil {
		return nil, kind, curveErrorf("segmentStrictClosure", err)
	}
	return j, kind, nil
}

// padded returns a gap-free list over [0, end) holding e (cut at end) and
// +∞ everywhere else. e must start before end.
func padded(e element.Element, end rational.Rational) []element.Element {
	from, to := e.StartTime(), e.EndTime()
	var out []element.Element
	if from.IsPositive() {
		out = append(out,
			element.NewPoint(rational.Zero, rational.PlusInfinity),
			plusInfinite(rational.Zero, from))
	}
	switch x := e.(type) {
	case element.Point:
		out = append(out, x, plusInfinite(from, end))
	case element.Segment:
		out = append(out, element.NewPoint(from, rational.PlusInfinity))
		if to.Less(end) {
			out = append(out, x, element.NewPoint(to, rational.PlusInfinity), plusInfinite(to, end))
		} else {
			cut, _ := x.Cut(from, end)
			out = append(out, cut)
		}
	}
	return out
}
