// SPDX-License-Identifier: MIT

package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minplus/curve"
	"github.com/katalvlaran/minplus/element"
	"github.com/katalvlaran/minplus/rational"
)

func q(s string) rational.Rational { return rational.MustParse(s) }

func qi(i int64) rational.Rational { return rational.FromInt(i) }

func pt(t, v string) element.Point { return element.NewPoint(q(t), q(v)) }

func seg(start, end, rl, slope string) element.Segment {
	return element.MustSegment(q(start), q(end), q(rl), q(slope))
}

// identity is f(t) = t with pseudo-period (0, 2, 2).
func identity(t *testing.T) *curve.Curve {
	t.Helper()
	c, err := curve.New([]element.Element{pt("0", "0"), seg("0", "2", "0", "1")}, qi(0), qi(2), qi(2))
	require.NoError(t, err)
	return c
}

// affine is f(t) = v + s·t with pseudo-period (0, 1, s).
func affine(t *testing.T, v, s string) *curve.Curve {
	t.Helper()
	c, err := curve.New([]element.Element{pt("0", v), seg("0", "1", v, s)}, qi(0), qi(1), q(s))
	require.NoError(t, err)
	return c
}

// sampleTimes returns 0, 1/6, 2/6, … up to until (inclusive).
func sampleTimes(until rational.Rational) []rational.Rational {
	var out []rational.Rational
	step := rational.New(1, 6)
	for t := rational.Zero; t.LessOrEqual(until); t = t.Add(step) {
		out = append(out, t)
	}
	return out
}

// assertMatches compares c with want on every sample time up to until.
func assertMatches(t *testing.T, c *curve.Curve, until rational.Rational, want func(rational.Rational) rational.Rational) {
	t.Helper()
	for _, x := range sampleTimes(until) {
		w, got := want(x), c.ValueAt(x)
		if !assert.True(t, w.Equal(got), "f(%s): want %s, got %s", x, w, got) {
			t.Logf("curve: %s", c)
			return
		}
	}
}

// assertPseudoPeriodic checks f(t + k·d) = f(t) + k·c for t ≥ T, k = 1..3.
func assertPseudoPeriodic(t *testing.T, c *curve.Curve) {
	t.Helper()
	d, h := c.PseudoPeriodLength(), c.PseudoPeriodHeight()
	for _, x := range sampleTimes(c.FirstPseudoPeriodEnd()) {
		if x.Less(c.PseudoPeriodStart()) {
			continue
		}
		base := c.ValueAt(x)
		for k := int64(1); k <= 3; k++ {
			want := base
			if base.IsFinite() {
				want = base.Add(h.MulInt(k))
			}
			got := c.ValueAt(x.Add(d.MulInt(k)))
			assert.True(t, want.Equal(got), "f(%s + %d·%s): want %s, got %s", x, k, d, want, got)
		}
	}
}

// power returns the n-fold self-convolution of a finite element.
func power(e element.Element, n int64) element.Element {
	switch x := e.(type) {
	case element.Point:
		return element.NewPoint(x.Time.MulInt(n), x.Value.MulInt(n))
	case element.Segment:
		return element.MustSegment(x.StartTime().MulInt(n), x.EndTime().MulInt(n),
			x.RightLimitAtStartTime().MulInt(n), x.Slope())
	}
	panic("unknown element")
}

// maxPower bounds the n worth trying for eⁿ at time u.
func maxPower(e element.Element, u rational.Rational) int64 {
	if e.StartTime().IsPositive() {
		return u.Div(e.StartTime()).FloorInt64()
	}
	if e.Kind() == element.SegmentKind {
		return u.Div(e.EndTime()).FloorInt64() + 1
	}
	return 1
}

// closureOracle evaluates δ0 ∧ inf_{n≥1, k≥0} eⁿ(t − k·d) + k·c by
// enumeration. With periodic false only k = 0 is used.
func closureOracle(e element.Element, d, c rational.Rational, periodic bool) func(rational.Rational) rational.Rational {
	return func(t rational.Rational) rational.Rational {
		if t.IsZero() {
			return rational.Zero
		}
		best := rational.PlusInfinity
		kmax := int64(0)
		if periodic {
			kmax = t.Div(d).FloorInt64()
		}
		for k := int64(0); k <= kmax; k++ {
			u := t.Sub(d.MulInt(k))
			for n := int64(1); n <= maxPower(e, u); n++ {
				if v := power(e, n).ValueAt(u); v.IsFinite() {
					best = rational.Min(best, v.Add(c.MulInt(k)))
				}
			}
		}
		return best
	}
}

// viewOracle evaluates inf_{k≥0} x(t − k·d) + k·c by enumeration.
func viewOracle(x element.Element, d, c rational.Rational) func(rational.Rational) rational.Rational {
	return func(t rational.Rational) rational.Rational {
		best := rational.PlusInfinity
		for k := int64(0); d.MulInt(k).LessOrEqual(t); k++ {
			if v := x.ValueAt(t.Sub(d.MulInt(k))); v.IsFinite() {
				best = rational.Min(best, v.Add(c.MulInt(k)))
			}
		}
		return best
	}
}

// horizon is a sample range covering the prologue and three periods.
func horizon(c *curve.Curve) rational.Rational {
	return c.FirstPseudoPeriodEnd().Add(c.PseudoPeriodLength().MulInt(2))
}
