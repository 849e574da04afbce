// SPDX-License-Identifier: MIT

package curve

import (
	"slices"

	"github.com/katalvlaran/minplus/element"
	"github.com/katalvlaran/minplus/rational"
)

// PeriodicClosure returns the sub-additive closure of h = inf_{k≥0} e
// shifted by (k·length, k·height), that is the closure of an element that
// repeats with the given pseudo-period:
//
//	h* = δ0 ∧ J ⊗ P,   J = e ∧ e⊗e ∧ …,   P = {(k·length, k·height) : k ≥ 0}
//
// Points dispatch on the slope v/a of the point against ρ = height/length
// (A below, B above, C equal). Segments compare ρ with the long-run slope
// ρ_J of J:
//   - A, ρ < ρ_J: J ⊗ P is the minimum of the transversal views x ⊗ P of
//     the elements x of J before TJ + (K0+1)·length, with
//     K0 = ⌊(M − m)/(length·(ρ_J − ρ))⌋ + 1;
//   - D, ρ = ρ_J: the same over TJ + lcm(length, dJ);
//   - B (J of type A) and C (J of type B), ρ > ρ_J: J ⊗ P is the minimum of
//     J shifted by k periods for k < max(K, ⌈TJ/length⌉), K the smallest
//     integer with m + K·length·(ρ − ρ_J) ≥ M.
//
// m and M bound J(t) − ρ_J·t over the whole of J and over its period.
// A non-positive or infinite length, or an infinite height, yields
// ErrUndefinedOperation.
func PeriodicClosure(e element.Element, length, height rational.Rational, opts ...element.Option) (*Curve, error) {
	const tag = "PeriodicClosure"
	settings := element.NewSettings(opts...)
	if !length.IsFinite() || !length.IsPositive() || !height.IsFinite() {
		return nil, curveDetailf(ErrUndefinedOperation, tag, "pseudo-period (%s, %s)", length, height)
	}
	if err := checkClosureOperand(e, tag); err != nil {
		return nil, err
	}
	if e.IsPlusInfinite() {
		return DeltaZero(), nil
	}

	var (
		out *Curve
		err error
	)
	switch x := e.(type) {
	case element.Point:
		out, err = pointPeriodicClosure(x, length, height)
	case element.Segment:
		out, err = segmentPeriodicClosure(x, length, height, settings)
	}
	if err != nil {
		return nil, curveErrorf(tag, err)
	}
	if settings.UseRepresentationMinimization {
		out = out.Optimize()
	}
	return out, nil
}

// pointPeriodicClosure builds the closure of Point(a, v) repeated with
// (d, c): the lattice {(n·a + k·d, n·v + k·c) : n ≥ 1, k ≥ 0} plus δ0.
//
// From L = lcm(a, d) on, the best combinations use fewer than L/d periods
// (A, v/a < c/d: pseudo-period (a, v)) or fewer than L/a points
// (B, v/a > c/d: pseudo-period (d, c)). In case C every combination costs
// ρ·t and every multiple of g = gcd(a, d) from L on is reachable:
// pseudo-period (g, ρ·g).
func pointPeriodicClosure(p element.Point, d, c rational.Rational) (*Curve, error) {
	a, v := p.Time, p.Value
	if a.IsZero() {
		if v.IsNegative() {
			return nil, curveDetailf(ErrUndefinedOperation, "pointPeriodicClosure",
				"%s: repeated negative value at the origin", p)
		}
		// (k·d, v + k·c) for k ≥ 1, 0 at the origin.
		return mustCurve([]element.Element{
			element.Origin(),
			plusInfinite(rational.Zero, d),
			element.NewPoint(d, v.Add(c)),
			plusInfinite(d, d.MulInt(2)),
		}, d, d, c), nil
	}

	rho, sigma := c.Div(d), v.Div(a)
	start := rational.LCM(a, d)
	var length, height rational.Rational
	var name string
	switch sigma.Cmp(rho) {
	case -1:
		name, length, height = "A", a, v
	case 1:
		name, length, height = "B", d, c
	default:
		g := rational.GCD(a, d)
		name, length, height = "C", g, rho.Mul(g)
	}
	end := start.Add(length)
	log.Debugf("PeriodicClosure: %s with (%s, %s) case %s, T=%s d=%s c=%s", p, d, c, name, start, length, height)

	best := make(map[string]element.Point)
	for n := int64(1); a.MulInt(n).Less(end); n++ {
		for k := int64(0); ; k++ {
			t := a.MulInt(n).Add(d.MulInt(k))
			if !t.Less(end) {
				break
			}
			val := v.MulInt(n).Add(c.MulInt(k))
			key := t.String()
			if old, ok := best[key]; !ok || val.Less(old.Value) {
				best[key] = element.NewPoint(t, val)
			}
		}
	}
	points := make([]element.Point, 0, len(best))
	for _, q := range best {
		points = append(points, q)
	}
	slices.SortFunc(points, func(x, y element.Point) int { return x.Time.Cmp(y.Time) })

	base := []element.Element{element.Origin()}
	prev := rational.Zero
	for _, q := range points {
		base = append(base, plusInfinite(prev, q.Time), q)
		prev = q.Time
	}
	base = append(base, plusInfinite(prev, end))
	return New(base, start, length, height)
}

// segmentPeriodicClosure builds δ0 ∧ J ⊗ P for a finite segment.
func segmentPeriodicClosure(s element.Segment, d, c rational.Rational, settings element.Settings) (*Curve, error) {
	j, kind, err := segmentStrictClosure(s, settings)
	if err != nil {
		return nil, err
	}
	rho, rhoJ := c.Div(d), j.Slope()
	m, _, _ := spread(j.base, rhoJ)
	_, mm, _ := spread(j.periodPart(), rhoJ)

	var curves []*Curve
	switch rho.Cmp(rhoJ) {
	case -1:
		k0 := mm.Sub(m).Div(d.Mul(rhoJ.Sub(rho))).Floor().Add(rational.One)
		limit := j.start.Add(k0.Add(rational.One).Mul(d))
		log.Debugf("PeriodicClosure: %s with (%s, %s) case A, K0=%s, views before %s", s, d, c, k0, limit)
		curves = transversalViews(j, limit, d, c)
	case 0:
		limit := j.start.Add(rational.LCM(d, j.length))
		log.Debugf("PeriodicClosure: %s with (%s, %s) case D, views before %s", s, d, c, limit)
		curves = transversalViews(j, limit, d, c)
	default:
		name := "B"
		if kind == typeB {
			name = "C"
		}
		gain := d.Mul(rho.Sub(rhoJ))
		k := int64(1)
		for m.Add(gain.MulInt(k)).Less(mm) {
			k++
		}
		count := j.start.Div(d).Ceil()
		if count.Less(rational.FromInt(k)) {
			count = rational.FromInt(k)
		}
		log.Debugf("PeriodicClosure: %s with (%s, %s) case %s, K=%d, %s shifted copies", s, d, c, name, k, count)
		if curves, err = iteratedConvolutions(j, count.FloorInt64(), d, c); err != nil {
			return nil, err
		}
	}

	h, err := Minimum(settings, curves...)
	if err != nil {
		return nil, err
	}
	return h.withOrigin(rational.Zero), nil
}

// iteratedConvolutions returns J ⊗ Point(k·d, k·c) for k = 0 … count−1.
func iteratedConvolutions(j *Curve, count int64, d, c rational.Rational) ([]*Curve, error) {
	out := make([]*Curve, 0, count)
	for k := int64(0); k < count; k++ {
		shifted, err := j.DelayBy(d.MulInt(k))
		if err != nil {
			return nil, err
		}
		if shifted, err = shifted.ShiftBy(c.MulInt(k)); err != nil {
			return nil, err
		}
		out = append(out, shifted)
	}
	return out, nil
}

// transversalViews returns x ⊗ P for every element x of J before limit.
func transversalViews(j *Curve, limit, d, c rational.Rational) []*Curve {
	elems := j.Cut(rational.Zero, limit)
	out := make([]*Curve, 0, len(elems))
	for _, x := range elems {
		out = append(out, transversalView(x, d, c))
	}
	return out
}
