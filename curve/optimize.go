// SPDX-License-Identifier: MIT

package curve

import (
	"github.com/katalvlaran/minplus/element"
	"github.com/katalvlaran/minplus/rational"
)

// Optimize returns an equivalent curve with a smaller representation:
// collinear runs of the base are merged, then the pseudo-period start is
// moved back one period at a time while the period before it is an exact
// copy of the period after it.
//
// The pseudo-period length is kept as is.
func (c *Curve) Optimize() *Curve {
	base := element.Merge(c.base)
	start := c.start
	for start.GreaterOrEqual(c.length) {
		before := element.Merge(element.CutElements(base, start.Sub(c.length), start, true, false))
		after := element.Merge(element.CutElements(base, start, start.Add(c.length), true, false))
		if !isNextPeriod(before, after, c.length, c.height) {
			break
		}
		base = element.Merge(element.CutElements(base, rational.Zero, start, true, false))
		start = start.Sub(c.length)
	}
	if len(base) < len(c.base) {
		log.Debugf("Curve.Optimize: %d -> %d elements, start %s -> %s", len(c.base), len(base), c.start, start)
	}
	return mustCurve(base, start, c.length, c.height)
}

// isNextPeriod reports whether after equals before moved by (d, c).
func isNextPeriod(before, after []element.Element, d, c rational.Rational) bool {
	if len(before) != len(after) {
		return false
	}
	for i := range before {
		if !before[i].Delay(d).VerticalShift(c).Equal(after[i]) {
			return false
		}
	}
	return true
}
