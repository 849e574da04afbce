// SPDX-License-Identifier: MIT

package element

import (
	"runtime"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/minplus/rational"
)

// ComputeIntervals aligns an arbitrary bag of elements: it returns the
// ordered, non-empty cells of the coarsest tiling in which every element is
// defined over whole cells, each cell holding the elements defined over it.
//
// Steps:
//  1. collect the distinct start/end times and sort them;
//  2. build the alternating tiling {t_0}, (t_0, t_1), {t_1}, …, {t_m};
//  3. look up the cells of each element in an interval tree and check that
//     they tile the element exactly (ErrAlignmentInconsistency otherwise);
//  4. insert every element into its cells; drop the empty cells.
//
// Within a cell, elements keep the order of elems. With settings enabling
// the parallel path and len(elems) ≥ ParallelComputeIntervalsThreshold, the
// steps fan out over GOMAXPROCS workers; the output is identical to the
// serial one.
//
// Complexity: O(n log n) time, O(n + k) memory for k element–cell pairs.
func ComputeIntervals(elems []Element, settings Settings) ([]*Interval, error) {
	if len(elems) == 0 {
		return nil, nil
	}
	parallel := settings.useParallel(len(elems))
	log.Debugf("ComputeIntervals: %d elements, parallel=%t, batched=%t",
		len(elems), parallel, parallel && settings.UseParallelInsertionComputeIntervals)

	times, err := collectBoundaries(elems, parallel)
	if err != nil {
		return nil, err
	}
	ix := newTilingIndex(times)

	covers := make([][]int, len(elems))
	locate := func(lo, hi int) error {
		for k := lo; k < hi; k++ {
			ranks, err := ix.cover(elems[k])
			if err != nil {
				return err
			}
			covers[k] = ranks
		}
		return nil
	}
	if parallel {
		err = forEachChunk(len(elems), locate)
	} else {
		err = locate(0, len(elems))
	}
	if err != nil {
		return nil, err
	}

	if parallel && settings.UseParallelInsertionComputeIntervals {
		err = insertBatched(ix.cells, elems, covers)
	} else {
		insertSerial(ix.cells, elems, covers)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*Interval, 0, len(ix.cells))
	for _, c := range ix.cells {
		if !c.IsEmpty() {
			out = append(out, c)
		}
	}
	return out, nil
}

// insertSerial places each element–cell pair in input order.
func insertSerial(cells []*Interval, elems []Element, covers [][]int) {
	for k, e := range elems {
		for _, r := range covers[k] {
			cells[r].AddUnchecked(e)
		}
	}
}

// insertBatched groups the pairs per cell, then appends each group in one
// batch. Groups are disjoint so workers never share a cell.
func insertBatched(cells []*Interval, elems []Element, covers [][]int) error {
	groups := make([][]Element, len(cells))
	for k, e := range elems {
		for _, r := range covers[k] {
			groups[r] = append(groups[r], e)
		}
	}
	return forEachChunk(len(cells), func(lo, hi int) error {
		for r := lo; r < hi; r++ {
			if len(groups[r]) > 0 {
				cells[r].AddUnchecked(groups[r]...)
			}
		}
		return nil
	})
}

// collectBoundaries returns the distinct start/end times, sorted ascending.
func collectBoundaries(elems []Element, parallel bool) ([]rational.Rational, error) {
	var keys mapset.Set[string]
	if parallel {
		parts := make([]mapset.Set[string], workers(len(elems)))
		err := forEachChunkIndexed(len(elems), func(part, lo, hi int) error {
			parts[part] = boundaryKeys(elems[lo:hi])
			return nil
		})
		if err != nil {
			return nil, err
		}
		keys = mapset.NewThreadUnsafeSet[string]()
		for _, p := range parts {
			if p != nil {
				keys = keys.Union(p)
			}
		}
	} else {
		keys = boundaryKeys(elems)
	}

	times := make([]rational.Rational, 0, keys.Cardinality())
	for _, k := range keys.ToSlice() {
		t, err := rational.Parse(k)
		if err != nil {
			return nil, elementDetailf(ErrAlignmentInconsistency, "ComputeIntervals", "boundary %q: %v", k, err)
		}
		times = append(times, t)
	}
	if parallel {
		return sortParallel(times)
	}
	slices.SortFunc(times, rational.Rational.Cmp)
	return times, nil
}

func boundaryKeys(elems []Element) mapset.Set[string] {
	s := mapset.NewThreadUnsafeSet[string]()
	for _, e := range elems {
		s.Add(e.StartTime().String())
		s.Add(e.EndTime().String())
	}
	return s
}

// sortParallel sorts chunks concurrently, then merges them pairwise.
func sortParallel(times []rational.Rational) ([]rational.Rational, error) {
	bounds := chunkBounds(len(times), workers(len(times)))
	err := forEachChunkIndexed(len(times), func(_, lo, hi int) error {
		slices.SortFunc(times[lo:hi], rational.Rational.Cmp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	runs := make([][]rational.Rational, 0, len(bounds))
	for _, b := range bounds {
		runs = append(runs, times[b[0]:b[1]])
	}
	for len(runs) > 1 {
		next := make([][]rational.Rational, 0, (len(runs)+1)/2)
		for k := 0; k+1 < len(runs); k += 2 {
			next = append(next, mergeSorted(runs[k], runs[k+1]))
		}
		if len(runs)%2 == 1 {
			next = append(next, runs[len(runs)-1])
		}
		runs = next
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return runs[0], nil
}

func mergeSorted(a, b []rational.Rational) []rational.Rational {
	out := make([]rational.Rational, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if b[j].Less(a[i]) {
			out = append(out, b[j])
			j++
		} else {
			out = append(out, a[i])
			i++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

// workers returns the number of chunks used for n items.
func workers(n int) int {
	w := runtime.GOMAXPROCS(0)
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

// chunkBounds splits [0, n) into parts contiguous half-open ranges.
func chunkBounds(n, parts int) [][2]int {
	out := make([][2]int, 0, parts)
	size := (n + parts - 1) / parts
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		out = append(out, [2]int{lo, hi})
	}
	return out
}

// forEachChunk runs fn over contiguous chunks of [0, n) concurrently and
// returns the first error.
func forEachChunk(n int, fn func(lo, hi int) error) error {
	return forEachChunkIndexed(n, func(_, lo, hi int) error { return fn(lo, hi) })
}

func forEachChunkIndexed(n int, fn func(part, lo, hi int) error) error {
	var g errgroup.Group
	for part, b := range chunkBounds(n, workers(n)) {
		part, lo, hi := part, b[0], b[1]
		g.Go(func() error { return fn(part, lo, hi) })
	}
	return g.Wait()
}
