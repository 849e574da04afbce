// SPDX-License-Identifier: MIT

package curve

import (
	"github.com/katalvlaran/minplus/element"
	"github.com/katalvlaran/minplus/rational"
)

// Minimum returns the pointwise minimum of curves.
//
// The pseudo-period of the result is derived from the operands:
//   - curves that are ultimately +∞ only push the start to their own start;
//   - among the others, the curves of lowest slope ρ fix the period: the lcm
//     of their lengths, with height ρ·lcm;
//   - every steeper curve g is dominated from some time t* on by a lowest
//     curve f with no +∞ in its period, t* = (M_f − m_g)/(ρ_g − ρ) where M_f
//     and m_g bound f(t) − ρ·t and g(t) − ρ_g·t; without such f the result
//     has no pseudo-period and ErrNotPseudoPeriodic is returned.
//
// The base is the lower envelope of all operands over [0, T+d). With
// UseRepresentationMinimization set the result is optimized.
func Minimum(settings element.Settings, curves ...*Curve) (*Curve, error) {
	const tag = "curve.Minimum"
	switch len(curves) {
	case 0:
		return nil, curveDetailf(ErrEmptyAggregate, tag, "no curve")
	case 1:
		return curves[0], nil
	}

	start := rational.Zero
	var active []*Curve
	for _, c := range curves {
		start = rational.Max(start, c.start)
		if !c.IsUltimatelyPlusInfinite() {
			active = append(active, c)
		}
	}

	length, height := curves[0].length, rational.Zero
	if len(active) > 0 {
		rho := active[0].Slope()
		for _, c := range active[1:] {
			rho = rational.Min(rho, c.Slope())
		}
		var lowest []*Curve
		for _, c := range active {
			if c.Slope().Equal(rho) {
				lowest = append(lowest, c)
			}
		}
		length = lowest[0].length
		for _, c := range lowest[1:] {
			length = rational.LCM(length, c.length)
		}
		height = rho.Mul(length)

		for _, g := range active {
			if g.Slope().Equal(rho) {
				continue
			}
			t, err := dominanceTime(lowest, g, rho)
			if err != nil {
				return nil, curveErrorf(tag, err)
			}
			start = rational.Max(start, t)
		}
	}
	log.Debugf("%s: %d curves (%d not ultimately +∞), T=%s d=%s c=%s",
		tag, len(curves), len(active), start, length, height)

	end := start.Add(length)
	seqs := make([]*Sequence, len(curves))
	for i, c := range curves {
		seqs[i] = &Sequence{elems: c.Cut(rational.Zero, end)}
	}
	env, err := LowerEnvelope(settings, seqs...)
	if err != nil {
		return nil, curveErrorf(tag, err)
	}
	out, err := New(env.elems, start, length, height)
	if err != nil {
		return nil, curveErrorf(tag, err)
	}
	if settings.UseRepresentationMinimization {
		out = out.Optimize()
	}
	return out, nil
}

// dominanceTime returns a time from which g ≥ f for some f in lowest.
func dominanceTime(lowest []*Curve, g *Curve, rho rational.Rational) (rational.Rational, error) {
	var f *Curve
	for _, c := range lowest {
		if c.IsUltimatelyPlain() {
			f = c
			break
		}
	}
	if f == nil {
		return rational.Zero, curveDetailf(ErrNotPseudoPeriodic, "dominanceTime",
			"no plain curve of slope %s dominates slope %s", rho, g.Slope())
	}
	_, hiF, _ := spread(f.periodPart(), rho)
	loG, _, _ := spread(g.periodPart(), g.Slope())
	t := hiF.Sub(loG).Div(g.Slope().Sub(rho))
	return rational.Max(t, f.start, g.start), nil
}

// spread returns the infimum and supremum of e(t) − ρ·t over the finite
// elements of elems, segment limits included. ok is false when no element
// is finite.
func spread(elems []element.Element, rho rational.Rational) (lo, hi rational.Rational, ok bool) {
	lo, hi = rational.PlusInfinity, rational.MinusInfinity
	visit := func(t, v rational.Rational) {
		d := v.Sub(rho.Mul(t))
		lo, hi = rational.Min(lo, d), rational.Max(hi, d)
		ok = true
	}
	for _, e := range elems {
		if !e.IsFinite() {
			continue
		}
		switch x := e.(type) {
		case element.Point:
			visit(x.Time, x.Value)
		case element.Segment:
			visit(x.StartTime(), x.RightLimitAtStartTime())
			visit(x.EndTime(), x.LeftLimitAtEndTime())
		}
	}
	return lo, hi, ok
}
