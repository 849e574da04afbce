// SPDX-License-Identifier: MIT

package element

import "github.com/katalvlaran/minplus/rational"

// Test bridge: exposes the tiling index to element_test for white-box checks
// of the alignment validation, which valid public inputs never trigger.

// ExportedCover builds the tiling over times and returns the ranks covered by e.
func ExportedCover(times []rational.Rational, e Element) ([]int, error) {
	return newTilingIndex(times).cover(e)
}
