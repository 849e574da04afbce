// Package minplus is an exact-arithmetic toolkit for min-plus and max-plus
// algebra over piecewise-linear functions.
//
// 🚀 What is minplus?
//
//	A small, deterministic library that brings together:
//		• Exact rationals with ±∞ (rational/)
//		• Points and open segments, the pieces of every curve (element/)
//		• Pointwise sum, minimum, maximum and the (max-)min-plus convolution
//		• Alignment of many elements into disjoint intervals (ComputeIntervals)
//		• Ultimately pseudo-periodic curves with minimum and optimization (curve/)
//		• Sub-additive and periodic closures of single elements
//
// ✨ Why choose minplus?
//
//   - Exact – every breakpoint and value is a rational, never a float
//   - Deterministic – parallel paths return the same elements in the same order
//   - Configurable – Settings from functional options or a YAML document
//
// Packages:
//
//	rational/ - exact rational numbers extended with +∞ and −∞
//	element/  - Point, Segment, the element algebra and interval alignment
//	curve/    - Sequence, Curve, Minimum and the closures
//
// Quick example:
//
//	star, _ := curve.SubAdditiveClosure(element.NewPoint(rational.FromInt(2), rational.FromInt(3)))
//	star.ValueAt(rational.FromInt(6)) // 9
//
// Runnable programs live under examples/.
//
//	go get github.com/katalvlaran/minplus
package minplus
