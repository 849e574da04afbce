// SPDX-License-Identifier: MIT

package curve_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/minplus/curve"
	"github.com/katalvlaran/minplus/element"
	"github.com/katalvlaran/minplus/rational"
)

// ExampleSubAdditiveClosure closes a single point into a point train.
func ExampleSubAdditiveClosure() {
	star, err := curve.SubAdditiveClosure(element.NewPoint(rational.FromInt(2), rational.FromInt(3)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(star.PseudoPeriodStart(), star.PseudoPeriodLength(), star.PseudoPeriodHeight())
	fmt.Println(star.Base())
	fmt.Println(star.ValueAt(rational.FromInt(6)), star.ValueAt(rational.FromInt(5)))
	// Output:
	// 0 2 3
	// [Point(0, 0) Segment(0, 2, +Inf, 0)]
	// 9 +Inf
}

// ExamplePeriodicClosure closes Point(2, 3) repeating every 3 units for 4.
func ExamplePeriodicClosure() {
	p := element.NewPoint(rational.FromInt(2), rational.FromInt(3))
	star, err := curve.PeriodicClosure(p, rational.FromInt(3), rational.FromInt(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(star.PseudoPeriodStart(), star.PseudoPeriodLength(), star.PseudoPeriodHeight())

	var values []string
	for t := int64(0); t <= 10; t++ {
		values = append(values, star.ValueAt(rational.FromInt(t)).String())
	}
	fmt.Println(strings.Join(values, " "))
	// Output:
	// 6 3 4
	// 0 +Inf 3 +Inf 6 7 9 10 11 13 14
}

// ExampleMinimum takes the minimum of a rate and a constant.
func ExampleMinimum() {
	rate, _ := curve.New([]element.Element{
		element.Origin(),
		element.MustSegment(rational.Zero, rational.One, rational.Zero, rational.One),
	}, rational.Zero, rational.One, rational.One)
	limit, _ := curve.New([]element.Element{
		element.NewPoint(rational.Zero, rational.FromInt(3)),
		element.MustSegment(rational.Zero, rational.One, rational.FromInt(3), rational.Zero),
	}, rational.Zero, rational.One, rational.Zero)

	m, err := curve.Minimum(element.DefaultSettings(), rate, limit)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.ValueAt(rational.FromInt(2)), m.ValueAt(rational.FromInt(10)), m.Slope())
	// Output:
	// 2 3 0
}
