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

func pointwiseMin(curves ...*curve.Curve) func(rational.Rational) rational.Rational {
	return func(x rational.Rational) rational.Rational {
		v := rational.PlusInfinity
		for _, c := range curves {
			v = rational.Min(v, c.ValueAt(x))
		}
		return v
	}
}

// TestMinimum_EqualSlopes uses the lcm of the periods.
func TestMinimum_EqualSlopes(t *testing.T) {
	f := identity(t)
	g, err := curve.New([]element.Element{pt("0", "1"), seg("0", "3", "1", "1")}, qi(0), qi(3), qi(3))
	require.NoError(t, err)

	m, err := curve.Minimum(element.DefaultSettings(), f, g)
	require.NoError(t, err)
	assert.Equal(t, "6", m.PseudoPeriodLength().String())
	assert.Equal(t, "6", m.PseudoPeriodHeight().String())
	assertMatches(t, m, qi(20), pointwiseMin(f, g))
	assertPseudoPeriodic(t, m)
}

// TestMinimum_Dominance starts the period once the steeper curve is above.
func TestMinimum_Dominance(t *testing.T) {
	f := identity(t)
	g := affine(t, "3", "0")

	m, err := curve.Minimum(element.DefaultSettings(), f, g)
	require.NoError(t, err)
	assert.True(t, m.PseudoPeriodStart().LessOrEqual(qi(3)))
	assert.Equal(t, "0", m.Slope().String())
	assert.Equal(t, "2", m.ValueAt(qi(2)).String())
	assert.Equal(t, "3", m.ValueAt(qi(3)).String())
	assert.Equal(t, "3", m.ValueAt(qi(50)).String())
	assertMatches(t, m, qi(12), pointwiseMin(f, g))
	assertPseudoPeriodic(t, m)

	// Three curves take the general alignment path.
	h := affine(t, "-1", "1/2")
	m3, err := curve.Minimum(element.NewSettings(element.WithRepresentationMinimization(false)), f, g, h)
	require.NoError(t, err)
	assertMatches(t, m3, qi(20), pointwiseMin(f, g, h))
	assertPseudoPeriodic(t, m3)
}

// TestMinimum_Infinite ignores ultimately infinite operands past their start.
func TestMinimum_Infinite(t *testing.T) {
	f := affine(t, "1", "1")
	m, err := curve.Minimum(element.DefaultSettings(), curve.DeltaZero(), f, curve.PlusInfinite())
	require.NoError(t, err)
	assert.Equal(t, "0", m.ValueAt(qi(0)).String())
	assert.Equal(t, "3/2", m.ValueAt(q("1/2")).String())
	assertMatches(t, m, qi(6), pointwiseMin(curve.DeltaZero(), f))
	assertPseudoPeriodic(t, m)

	all, err := curve.Minimum(element.DefaultSettings(), curve.PlusInfinite(), curve.DeltaZero())
	require.NoError(t, err)
	assert.True(t, all.IsUltimatelyPlusInfinite())
	assert.Equal(t, "0", all.ValueAt(qi(0)).String())
}

// TestMinimum_Errors covers the empty aggregate and a non-dominated case.
func TestMinimum_Errors(t *testing.T) {
	_, err := curve.Minimum(element.DefaultSettings())
	assert.ErrorIs(t, err, curve.ErrEmptyAggregate)

	single := identity(t)
	same, err := curve.Minimum(element.DefaultSettings(), single)
	require.NoError(t, err)
	assert.Same(t, single, same)

	// A flat point train never dominates the identity between its points.
	train, err := curve.New([]element.Element{pt("0", "0"), seg("0", "1", "+inf", "0")}, qi(0), qi(1), qi(0))
	require.NoError(t, err)
	_, err = curve.Minimum(element.DefaultSettings(), train, identity(t))
	assert.ErrorIs(t, err, curve.ErrNotPseudoPeriodic)
}
