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

// TestComputeIntervals_Basic: a point, a segment and a point give three cells.
func TestComputeIntervals_Basic(t *testing.T) {
	p0, s, p2 := pt("0", "1"), seg("0", "2", "1", "1"), pt("2", "5")
	cells, err := element.ComputeIntervals([]element.Element{s, p2, p0}, element.DefaultSettings())
	require.NoError(t, err)
	require.Len(t, cells, 3)

	assert.True(t, cells[0].IsPointInterval())
	assert.True(t, cells[1].IsSegmentInterval())
	assert.True(t, cells[2].IsPointInterval())

	assertElementsEqual(t, []element.Element{p0}, cells[0].Elements())
	assertElementsEqual(t, []element.Element{s}, cells[1].Elements())
	assertElementsEqual(t, []element.Element{p2}, cells[2].Elements())

	var flat []element.Element
	for _, c := range cells {
		flat = append(flat, c.Elements()...)
	}
	requireSequence(t, flat)

	none, err := element.ComputeIntervals(nil, element.DefaultSettings())
	require.NoError(t, err)
	assert.Empty(t, none)
}

// TestComputeIntervals_Overlapping refines overlapping supports and keeps
// input order inside each cell.
func TestComputeIntervals_Overlapping(t *testing.T) {
	a, b := seg("0", "4", "0", "1"), seg("2", "6", "3", "0")
	cells, err := element.ComputeIntervals([]element.Element{a, b, pt("3", "9")}, element.DefaultSettings())
	require.NoError(t, err)

	var spans []string
	for _, c := range cells {
		spans = append(spans, c.String())
	}
	assert.Equal(t, []string{
		"(0, 2) x1", "{2} x1", "(2, 3) x2", "{3} x3", "(3, 4) x2", "{4} x1", "(4, 6) x1",
	}, spans)

	assertElementsEqual(t, []element.Element{pt("3", "3"), pt("3", "3"), pt("3", "9")}, cells[3].Elements())
}

// TestComputeIntervals_Inconsistency exercises the tiling validation with
// boundaries that do not match the element.
func TestComputeIntervals_Inconsistency(t *testing.T) {
	times := []rational.Rational{qi(0), qi(2), qi(4)}

	ranks, err := element.ExportedCover(times, seg("0", "4", "0", "0"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ranks)

	ranks, err = element.ExportedCover(times, pt("2", "0"))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ranks)

	_, err = element.ExportedCover(times, seg("0", "3", "0", "0"))
	assert.ErrorIs(t, err, element.ErrAlignmentInconsistency)
	_, err = element.ExportedCover(times, pt("1", "0"))
	assert.ErrorIs(t, err, element.ErrAlignmentInconsistency)
}

// TestComputeIntervals_ParallelMatchesSerial compares all execution modes
// on random bags below and above the threshold.
func TestComputeIntervals_ParallelMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	serial := element.NewSettings(element.WithParallelComputeIntervals(false))
	modes := []element.Settings{
		element.NewSettings(element.WithParallelThreshold(1)),
		element.NewSettings(element.WithParallelThreshold(1), element.WithParallelInsertion(false)),
		element.NewSettings(element.WithParallelThreshold(100000)),
	}

	for _, n := range []int{1, 7, 60, 400} {
		elems := make([]element.Element, 0, n)
		for len(elems) < n {
			if rng.Intn(3) == 0 {
				elems = append(elems, element.NewPoint(rational.New(int64(rng.Intn(40)), 2), qi(int64(rng.Intn(9)))))
				continue
			}
			elems = append(elems, randomSegment(rng))
		}

		want, err := element.ComputeIntervals(elems, serial)
		require.NoError(t, err)
		for _, mode := range modes {
			got, err := element.ComputeIntervals(elems, mode)
			require.NoError(t, err)
			requireSameCells(t, want, got)
		}
	}
}

// TestComputeIntervals_LinearMatchesGeneral aligns random gap-free pairs
// both ways and compares the cells.
func TestComputeIntervals_LinearMatchesGeneral(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 0; n < 100; n++ {
		a := randomSequence(rng, 1+rng.Intn(12))
		b := randomSequence(rng, 1+rng.Intn(12))

		linear := element.ComputeIntervalsLinear(a, b)
		general, err := element.ComputeIntervals(append(append([]element.Element{}, a...), b...), element.DefaultSettings())
		require.NoError(t, err)
		requireSameCells(t, general, linear)
	}
}

func requireSameCells(t *testing.T, want, got []*element.Interval) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for i := range want {
		require.True(t, want[i].Start().Equal(got[i].Start()), "cell %d start", i)
		require.True(t, want[i].End().Equal(got[i].End()), "cell %d end", i)
		require.Equal(t, want[i].IsPointInterval(), got[i].IsPointInterval(), "cell %d kind", i)
		assertElementsEqual(t, want[i].Elements(), got[i].Elements(), "cell %d", i)
	}
}
