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

// TestSubAdditiveClosure_Oracle compares every branch with enumeration of
// δ0 ∧ inf eⁿ and checks the pseudo-periodicity law.
func TestSubAdditiveClosure_Oracle(t *testing.T) {
	cases := []struct {
		name string
		e    element.Element
	}{
		{"point at origin", pt("0", "2")},
		{"point train", pt("2", "3")},
		{"negative point train", pt("3/2", "-1")},
		{"segment from origin", seg("0", "2", "1", "1")},
		{"segment from origin, flat", seg("0", "1", "0", "0")},
		{"type A", seg("1", "2", "1", "2")},
		{"type A, zero right limit", seg("3", "4", "0", "1")},
		{"type A, negative", seg("1", "2", "-1", "0")},
		{"type B", seg("1", "3", "1", "0")},
		{"type B, gaps", seg("2", "3", "3", "1")},
		{"type B, decreasing", seg("1", "5/2", "4", "-1")},
	}
	for _, minimize := range []bool{true, false} {
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				c, err := curve.SubAdditiveClosure(tc.e, element.WithRepresentationMinimization(minimize))
				require.NoError(t, err)
				assert.Equal(t, "0", c.ValueAt(qi(0)).String())
				assertMatches(t, c, horizon(c), closureOracle(tc.e, qi(1), qi(0), false))
				assertPseudoPeriodic(t, c)
			})
		}
	}
}

// TestSubAdditiveClosure_Shapes pins the pseudo-periods of each branch.
func TestSubAdditiveClosure_Shapes(t *testing.T) {
	noOpt := element.WithRepresentationMinimization(false)

	c, err := curve.SubAdditiveClosure(pt("2", "3"))
	require.NoError(t, err)
	assert.Equal(t, "0 2 3", period(c))
	assert.Len(t, c.Base(), 2)

	c, err = curve.SubAdditiveClosure(seg("1", "2", "1", "2"), noOpt)
	require.NoError(t, err)
	assert.Equal(t, "3 1 1", period(c), "type A: k = 2, T = (k+1)·a")

	c, err = curve.SubAdditiveClosure(seg("1", "3", "1", "0"), noOpt)
	require.NoError(t, err)
	assert.Equal(t, "3 3 1", period(c), "type B: k = 1, T = k·b")

	c, err = curve.SubAdditiveClosure(seg("0", "2", "1", "1"), noOpt)
	require.NoError(t, err)
	assert.Equal(t, "2 2 3", period(c))

	c, err = curve.SubAdditiveClosure(pt("0", "5"))
	require.NoError(t, err)
	assert.True(t, c.IsUltimatelyPlusInfinite())

	c, err = curve.SubAdditiveClosure(seg("1", "2", "+inf", "0"))
	require.NoError(t, err)
	assert.Equal(t, curve.DeltaZero().String(), c.String())
}

// TestSubAdditiveClosure_Errors rejects closures reaching −∞.
func TestSubAdditiveClosure_Errors(t *testing.T) {
	for _, e := range []element.Element{
		pt("0", "-1"),
		pt("-1", "0"),
		seg("0", "1", "-1", "3"),
		element.NewPoint(qi(1), rational.MinusInfinity),
		seg("1", "2", "-inf", "0"),
	} {
		_, err := curve.SubAdditiveClosure(e)
		assert.ErrorIs(t, err, curve.ErrUndefinedOperation, "%s", e)
	}
}

// TestPeriodicClosure_Oracle runs every case of both variants against
// enumeration of δ0 ∧ inf eⁿ shifted by k periods.
func TestPeriodicClosure_Oracle(t *testing.T) {
	cases := []struct {
		name string
		e    element.Element
		d, c string
	}{
		{"point at origin", pt("0", "1"), "2", "1"},
		{"point at origin, zero", pt("0", "0"), "3/2", "2"},
		{"point A", pt("2", "3"), "3", "5"},
		{"point B", pt("2", "3"), "3", "4"},
		{"point C", pt("2", "3"), "3", "9/2"},
		{"point C, common divisor", pt("2", "2"), "4", "4"},

		{"type A segment, case A", seg("1", "2", "1", "2"), "2", "1"},
		{"type A segment, case D", seg("1", "2", "1", "2"), "2", "2"},
		{"type A segment, case B", seg("1", "2", "1", "2"), "2", "4"},
		{"type B segment, case A", seg("1", "3", "1", "0"), "1", "0"},
		{"type B segment, case D", seg("1", "3", "1", "0"), "3", "1"},
		{"type B segment, case C", seg("1", "3", "1", "0"), "1", "1"},
		{"origin segment, case A", seg("0", "1", "1", "1"), "1", "1"},
		{"origin segment, case D", seg("0", "1", "1", "1"), "1", "2"},
		{"origin segment, case C", seg("0", "1", "1", "1"), "1", "3"},
		{"short period, case A", seg("1", "2", "1", "2"), "1/2", "1/4"},
		{"long period, case A", seg("1", "3", "1", "0"), "5", "1"},
		{"decreasing, case C", seg("1", "5/2", "4", "-1"), "1", "2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, h := q(tc.d), q(tc.c)
			c, err := curve.PeriodicClosure(tc.e, d, h)
			require.NoError(t, err)
			assert.Equal(t, "0", c.ValueAt(qi(0)).String())
			assertMatches(t, c, horizon(c), closureOracle(tc.e, d, h, true))
			assertPseudoPeriodic(t, c)
		})
	}
}

// TestPeriodicClosure_Shapes pins the point-case pseudo-periods.
func TestPeriodicClosure_Shapes(t *testing.T) {
	noOpt := element.WithRepresentationMinimization(false)
	for _, tc := range []struct {
		e    element.Element
		d, c string
		want string
	}{
		{pt("2", "3"), "3", "5", "6 2 3"},
		{pt("2", "3"), "3", "4", "6 3 4"},
		{pt("2", "3"), "3", "9/2", "6 1 3/2"},
		{pt("0", "1"), "2", "1", "2 2 1"},
	} {
		c, err := curve.PeriodicClosure(tc.e, q(tc.d), q(tc.c), noOpt)
		require.NoError(t, err)
		assert.Equal(t, tc.want, period(c), "%s with (%s, %s)", tc.e, tc.d, tc.c)
	}

	c, err := curve.PeriodicClosure(seg("1", "2", "+inf", "0"), qi(1), qi(1))
	require.NoError(t, err)
	assert.True(t, c.IsUltimatelyPlusInfinite())
}

// TestPeriodicClosure_Errors covers invalid periods and operands.
func TestPeriodicClosure_Errors(t *testing.T) {
	e := seg("1", "2", "1", "2")
	for _, p := range [][2]rational.Rational{
		{qi(0), qi(1)},
		{qi(-1), qi(1)},
		{rational.PlusInfinity, qi(1)},
		{qi(1), rational.PlusInfinity},
	} {
		_, err := curve.PeriodicClosure(e, p[0], p[1])
		assert.ErrorIs(t, err, curve.ErrUndefinedOperation, "period (%s, %s)", p[0], p[1])
	}
	_, err := curve.PeriodicClosure(pt("0", "-2"), qi(1), qi(1))
	assert.ErrorIs(t, err, curve.ErrUndefinedOperation)
	_, err = curve.PeriodicClosure(seg("0", "1", "-1", "0"), qi(1), qi(1))
	assert.ErrorIs(t, err, curve.ErrUndefinedOperation)
}

// TestTransversalView_Oracle checks each view shape against enumeration.
func TestTransversalView_Oracle(t *testing.T) {
	cases := []struct {
		name string
		x    element.Element
		d, c string
		kind string
	}{
		{"point", pt("3/2", "2"), "2", "1", "point"},
		{"point at origin", pt("0", "2"), "2", "1", "point"},
		{"infinite", seg("1", "2", "+inf", "0"), "1", "1", "infinite"},
		{"disjoint", seg("1", "2", "1", "1"), "3", "1", "disjoint"},
		{"touching", seg("1", "3", "1", "1"), "2", "1", "touching"},
		{"below", seg("1", "4", "1", "1"), "2", "1", "below"},
		{"above", seg("1", "4", "1", "1"), "2", "3", "above"},
		{"collinear", seg("0", "3", "1", "1"), "1", "1", "collinear"},
		{"below, decreasing", seg("2", "5", "0", "-1"), "1", "-2", "below"},
		{"above, decreasing", seg("2", "5", "0", "-1"), "1", "0", "above"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, h := q(tc.d), q(tc.c)
			v, kind := curve.ExportedTransversalView(tc.x, d, h)
			assert.Equal(t, tc.kind, kind)
			assertMatches(t, v, horizon(v), viewOracle(tc.x, d, h))
			assertPseudoPeriodic(t, v)
		})
	}
}

// period renders "T d c".
func period(c *curve.Curve) string {
	return c.PseudoPeriodStart().String() + " " + c.PseudoPeriodLength().String() + " " + c.PseudoPeriodHeight().String()
}
