// SPDX-License-Identifier: MIT

package element_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minplus/element"
	"github.com/katalvlaran/minplus/rational"
)

// q parses a rational literal.
func q(s string) rational.Rational { return rational.MustParse(s) }

// qi returns an integer rational.
func qi(i int64) rational.Rational { return rational.FromInt(i) }

func pt(t, v string) element.Point { return element.NewPoint(q(t), q(v)) }

func seg(start, end, rl, slope string) element.Segment {
	return element.MustSegment(q(start), q(end), q(rl), q(slope))
}

// assertElementsEqual compares two element lists with exact equality.
func assertElementsEqual(t *testing.T, want, got []element.Element, msgAndArgs ...interface{}) {
	t.Helper()
	if !assert.Equal(t, len(want), len(got), msgAndArgs...) {
		t.Logf("want %v\n got %v", want, got)
		return
	}
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "index %d: want %s, got %s", i, want[i], got[i])
	}
}

// valueOf evaluates an element list at t (the minimum over defined elements).
func valueOf(elems []element.Element, t rational.Rational) rational.Rational {
	v := rational.PlusInfinity
	for _, e := range elems {
		if e.IsDefinedFor(t) {
			v = rational.Min(v, e.ValueAt(t))
		}
	}
	return v
}

// randomSequence builds an ordered gap-free sequence over [0, end] with
// integer boundaries: Point, Segment, Point, …, Point.
func randomSequence(rng *rand.Rand, end int) []element.Element {
	var out []element.Element
	t := 0
	v := rational.New(int64(rng.Intn(11)-5), int64(rng.Intn(3)+1))
	out = append(out, element.NewPoint(qi(int64(t)), v))
	for t < end {
		step := rng.Intn(3) + 1
		if t+step > end {
			step = end - t
		}
		rl := rational.New(int64(rng.Intn(21)-10), int64(rng.Intn(4)+1))
		slope := rational.New(int64(rng.Intn(9)-4), int64(rng.Intn(3)+1))
		s, err := element.NewSegment(qi(int64(t)), qi(int64(t+step)), rl, slope)
		if err != nil {
			panic(err)
		}
		out = append(out, s)
		t += step
		out = append(out, element.NewPoint(qi(int64(t)), rational.New(int64(rng.Intn(21)-10), 2)))
	}
	return out
}

// requireSequence fails unless elems are in time sequence.
func requireSequence(t *testing.T, elems []element.Element) {
	t.Helper()
	require.True(t, element.AreInTimeSequence(elems), "not in sequence: %v", elems)
}
