// SPDX-License-Identifier: MIT

package curve

import (
	"github.com/katalvlaran/minplus/element"
	"github.com/katalvlaran/minplus/rational"
)

// viewKind names the shapes of x ⊗ P for an element x and a period train P.
type viewKind int

const (
	viewPoint     viewKind = iota // x is a point: a point train
	viewInfinite                  // x is +∞: so is the view
	viewDisjoint                  // L < d: copies separated by +∞ gaps
	viewTouching                  // L = d: copies meet at +∞ points
	viewBelow                     // L > d, c < s·d: each copy undercuts the previous one
	viewAbove                     // L > d, c > s·d: each copy continues where the previous ends
	viewCollinear                 // L > d, c = s·d: all copies on one line
)

var viewNames = [...]string{"point", "infinite", "disjoint", "touching", "below", "above", "collinear"}

func (k viewKind) String() string { return viewNames[k] }

// classifyView returns the shape of x ⊗ P for a period (d, c).
func classifyView(x element.Element, d, c rational.Rational) viewKind {
	if x.IsPlusInfinite() {
		return viewInfinite
	}
	s, ok := x.(element.Segment)
	if !ok {
		return viewPoint
	}
	switch s.Length().Cmp(d) {
	case -1:
		return viewDisjoint
	case 0:
		return viewTouching
	}
	switch c.Cmp(s.Slope().Mul(d)) {
	case -1:
		return viewBelow
	case 1:
		return viewAbove
	}
	return viewCollinear
}

// transversalView returns x ⊗ P = inf_{k≥0} x shifted by (k·d, k·c), for a
// finite or +∞ element x at a non-negative time.
//
// With x over (a, b), L = b − a, slope s and right limit r:
//   - disjoint and touching views repeat x from a;
//   - in the below view copy k wins on (a+k·d, a+(k+1)·d]; it repeats from
//     a+d, where copy 0 still holds the point;
//   - in the above view copy k wins on [b+(k−1)·d, b+k·d) and x itself
//     holds (a, b); it repeats from b;
//   - in the collinear view the line through x continues for ever.
func transversalView(x element.Element, d, c rational.Rational) *Curve {
	kind := classifyView(x, d, c)
	if kind == viewInfinite {
		return PlusInfinite()
	}
	a := x.StartTime()
	var base []element.Element
	if a.IsPositive() {
		base = append(base,
			element.NewPoint(rational.Zero, rational.PlusInfinity),
			plusInfinite(rational.Zero, a))
	}
	if kind == viewPoint {
		return mustCurve(append(base, x, plusInfinite(a, a.Add(d))), a, d, c)
	}

	s := x.(element.Segment)
	b, r, slope := s.EndTime(), s.RightLimitAtStartTime(), s.Slope()
	base = append(base, element.NewPoint(a, rational.PlusInfinity))
	switch kind {
	case viewDisjoint:
		base = append(base, s, element.NewPoint(b, rational.PlusInfinity), plusInfinite(b, a.Add(d)))
		return mustCurve(base, a, d, c)

	case viewTouching:
		return mustCurve(append(base, s), a, d, c)

	case viewBelow:
		ad, a2d := a.Add(d), a.Add(d.MulInt(2))
		base = append(base,
			element.MustSegment(a, ad, r, slope),
			element.NewPoint(ad, r.Add(slope.Mul(d))),
			element.MustSegment(ad, a2d, r.Add(c), slope))
		return mustCurve(base, ad, d, c)

	case viewAbove:
		vb := r.Add(slope.Mul(s.Length().Sub(d))).Add(c)
		base = append(base, s, element.NewPoint(b, vb), element.MustSegment(b, b.Add(d), vb, slope))
		return mustCurve(base, b, d, c)
	}

	// viewCollinear
	ad := a.Add(d)
	vd := r.Add(c)
	base = append(base,
		element.MustSegment(a, ad, r, slope),
		element.NewPoint(ad, vd),
		element.MustSegment(ad, ad.Add(d), vd, slope))
	return mustCurve(base, ad, d, c)
}
