// SPDX-License-Identifier: MIT

package curve

import (
	"github.com/katalvlaran/minplus/element"
	"github.com/katalvlaran/minplus/rational"
)

// Test bridge: exposes the transversal views to curve_test so every shape
// can be checked on its own, not only through the closures that combine them.

// ExportedTransversalView returns x ⊗ P and the name of its shape.
func ExportedTransversalView(x element.Element, d, c rational.Rational) (*Curve, string) {
	return transversalView(x, d, c), classifyView(x, d, c).String()
}
