// SPDX-License-Identifier: MIT

package element

import (
	"sort"

	"github.com/Workiva/go-datastructures/augmentedtree"

	"github.com/katalvlaran/minplus/rational"
)

// tilingIndex answers "which cells of the tiling does this element cover".
//
// The tiling over sorted boundaries t_0 < … < t_m alternates point and span
// cells: rank 2i is {t_i}, rank 2i+1 is (t_i, t_{i+1}). Cells are stored in an
// augmented interval tree keyed by rank; rank r occupies the integer range
// [4r+1, 4r+2], and a rank range [p, q] is queried as [4p+1, 4q+2], which
// selects exactly the ranks p..q whether the tree treats bounds as open or closed.
type tilingIndex struct {
	times []rational.Rational
	cells []*Interval
	tree  augmentedtree.Tree
}

// rankRange is a closed range of cell ranks.
type rankRange struct {
	lo, hi int64
}

func (r rankRange) LowAtDimension(uint64) int64  { return 4*r.lo + 1 }
func (r rankRange) HighAtDimension(uint64) int64 { return 4*r.hi + 2 }

func (r rankRange) OverlapsAtDimension(other augmentedtree.Interval, d uint64) bool {
	return r.HighAtDimension(d) > other.LowAtDimension(d) &&
		r.LowAtDimension(d) < other.HighAtDimension(d)
}

func (r rankRange) ID() uint64 { return uint64(r.lo) }

// newTilingIndex builds the alternating tiling over sorted distinct times.
func newTilingIndex(times []rational.Rational) *tilingIndex {
	ix := &tilingIndex{
		times: times,
		cells: make([]*Interval, 0, 2*len(times)),
		tree:  augmentedtree.New(1),
	}
	for i, t := range times {
		ix.cells = append(ix.cells, NewPointInterval(t))
		if i+1 < len(times) {
			ix.cells = append(ix.cells, newSegmentInterval(t, times[i+1]))
		}
	}
	entries := make([]augmentedtree.Interval, len(ix.cells))
	for r := range ix.cells {
		entries[r] = rankRange{lo: int64(r), hi: int64(r)}
	}
	ix.tree.Add(entries...)
	return ix
}

// boundary returns the position of t among the boundaries.
func (ix *tilingIndex) boundary(t rational.Rational) (int, bool) {
	i := sort.Search(len(ix.times), func(k int) bool { return !ix.times[k].Less(t) })
	return i, i < len(ix.times) && ix.times[i].Equal(t)
}

// expectedRanks returns the rank range an element must cover.
func (ix *tilingIndex) expectedRanks(e Element) (rankRange, bool) {
	from, ok := ix.boundary(e.StartTime())
	if !ok {
		return rankRange{}, false
	}
	if e.Kind() == PointKind {
		return rankRange{lo: int64(2 * from), hi: int64(2 * from)}, true
	}
	to, ok := ix.boundary(e.EndTime())
	if !ok || to <= from {
		return rankRange{}, false
	}
	return rankRange{lo: int64(2*from + 1), hi: int64(2*to - 1)}, true
}

// query returns the ranks stored in the tree that fall inside q, ascending.
func (ix *tilingIndex) query(q rankRange) []int {
	found := ix.tree.Query(q)
	defer found.Dispose()
	ranks := make([]int, 0, len(found))
	for _, iv := range found {
		ranks = append(ranks, int(iv.(rankRange).lo))
	}
	sort.Ints(ranks)
	return ranks
}

// cover returns the ranks of the cells e is defined over, after checking that
// they tile e exactly: contiguous, alternating, starting and ending on the
// support bounds of e.
func (ix *tilingIndex) cover(e Element) ([]int, error) {
	want, ok := ix.expectedRanks(e)
	if !ok {
		return nil, elementDetailf(ErrAlignmentInconsistency, "ComputeIntervals", "%s: bounds not in tiling", e)
	}
	ranks := ix.query(want)
	if int64(len(ranks)) != want.hi-want.lo+1 {
		return nil, elementDetailf(ErrAlignmentInconsistency, "ComputeIntervals",
			"%s: covers %d cells, want %d", e, len(ranks), want.hi-want.lo+1)
	}
	first, last := ix.cells[ranks[0]], ix.cells[ranks[len(ranks)-1]]
	if !first.start.Equal(e.StartTime()) || !last.end.Equal(e.EndTime()) {
		return nil, elementDetailf(ErrAlignmentInconsistency, "ComputeIntervals",
			"%s: tiling spans [%s, %s]", e, first.start, last.end)
	}
	for k, r := range ranks {
		cell := ix.cells[r]
		if cell.point != (e.Kind() == PointKind) && k%2 == 0 {
			return nil, elementDetailf(ErrAlignmentInconsistency, "ComputeIntervals",
				"%s: cell %s breaks alternation", e, cell)
		}
		if k > 0 {
			prev := ix.cells[ranks[k-1]]
			if prev.point == cell.point || !prev.end.Equal(cell.start) {
				return nil, elementDetailf(ErrAlignmentInconsistency, "ComputeIntervals",
					"%s: gap between %s and %s", e, prev, cell)
			}
		}
	}
	return ranks, nil
}
