// SPDX-License-Identifier: MIT

package element

import (
	"github.com/katalvlaran/minplus/rational"
)

// convolutionOptions holds the truncation bounds of a convolution result.
type convolutionOptions struct {
	cutEnd     rational.Rational
	cutCeiling rational.Rational
}

func defaultConvolutionOptions() convolutionOptions {
	return convolutionOptions{cutEnd: rational.PlusInfinity, cutCeiling: rational.PlusInfinity}
}

// ConvolutionOption bounds the output of Convolution.
type ConvolutionOption func(*convolutionOptions)

// WithCutEnd drops every output piece that starts at or after t (points at t are kept).
func WithCutEnd(t rational.Rational) ConvolutionOption {
	return func(o *convolutionOptions) { o.cutEnd = t }
}

// WithCutCeiling drops output pieces above v. Applied only when the output is
// finite and non-decreasing; the cutoff time is derived from the slope.
func WithCutCeiling(v rational.Rational) ConvolutionOption {
	return func(o *convolutionOptions) { o.cutCeiling = v }
}

// MaxPlusOption bounds the output of MaxPlusConvolution.
type MaxPlusOption func(*convolutionOptions)

// WithMaxPlusCutEnd is WithCutEnd for MaxPlusConvolution.
func WithMaxPlusCutEnd(t rational.Rational) MaxPlusOption {
	return func(o *convolutionOptions) { o.cutEnd = t }
}

// Convolution returns the min-plus convolution
//
//	(a ⊗ b)(t) = inf_{s} a(s) + b(t − s)
//
// as an ordered, gap-free list over (a.Start+b.Start, a.End+b.End).
// Two segments produce the shallower slope first, then the steeper one.
func Convolution(a, b Element, opts ...ConvolutionOption) ([]Element, error) {
	o := defaultConvolutionOptions()
	for _, opt := range opts {
		opt(&o)
	}
	pieces, err := convolve(a, b, true, "Convolution")
	if err != nil {
		return nil, err
	}
	return truncate(pieces, o), nil
}

// MaxPlusConvolution returns sup_{s} a(s) + b(t − s). Two segments produce
// the steeper slope first.
func MaxPlusConvolution(a, b Element, opts ...MaxPlusOption) ([]Element, error) {
	o := defaultConvolutionOptions()
	for _, opt := range opts {
		opt(&o)
	}
	pieces, err := convolve(a, b, false, "MaxPlusConvolution")
	if err != nil {
		return nil, err
	}
	return truncate(pieces, o), nil
}

// Deconvolution returns the min-plus deconvolution
//
//	(a ⊘ b)(t) = sup_{s} a(t + s) − b(s),
//
// computed as the max-plus convolution of a with the reflection of b.
// Infinite operands yield ErrUndefinedOperation.
func Deconvolution(a, b Element) ([]Element, error) {
	if a.IsInfinite() || b.IsInfinite() {
		return nil, elementDetailf(ErrUndefinedOperation, "Deconvolution", "infinite operand in %s ⊘ %s", a, b)
	}
	pieces, err := convolve(a, reflect(b), false, "Deconvolution")
	if err != nil {
		return nil, err
	}
	return pieces, nil
}

// reflect returns t ↦ −e(−t).
func reflect(e Element) Element {
	switch x := e.(type) {
	case Point:
		return Point{Time: x.Time.Neg(), Value: x.Value.Neg()}
	case Segment:
		return Segment{
			start:      x.end.Neg(),
			end:        x.start.Neg(),
			rightLimit: x.LeftLimitAtEndTime().Neg(),
			slope:      x.slope,
		}
	}
	return e
}

// convolve computes the untruncated min-plus (lower) or max-plus convolution.
func convolve(a, b Element, lower bool, tag string) ([]Element, error) {
	if a.IsInfinite() && b.IsInfinite() && a.IsPlusInfinite() != b.IsPlusInfinite() {
		return nil, elementDetailf(ErrUndefinedOperation, tag, "opposite infinities in %s, %s", a, b)
	}
	if b.Kind() == PointKind && a.Kind() == SegmentKind {
		a, b = b, a
	}

	if p, ok := a.(Point); ok {
		if q, ok := b.(Point); ok {
			v, _ := addValues(p.Value, q.Value)
			return []Element{Point{Time: p.Time.Add(q.Time), Value: v}}, nil
		}
		s := b.(Segment)
		rl, _ := addValues(p.Value, s.rightLimit)
		return []Element{mustNormalize(s.start.Add(p.Time), s.end.Add(p.Time), rl, s.slope)}, nil
	}

	x, y := a.(Segment), b.(Segment)
	start, end := x.start.Add(y.start), x.end.Add(y.end)
	rl, _ := addValues(x.rightLimit, y.rightLimit)
	if rl.IsInfinite() || x.slope.Equal(y.slope) {
		return []Element{mustNormalize(start, end, rl, x.slope)}, nil
	}

	// Min-plus takes the shallower slope first, max-plus the steeper.
	first, second := x, y
	if better(y.slope, x.slope, lower) {
		first, second = y, x
	}
	mid := start.Add(first.Length())
	midValue := rl.Add(first.slope.Mul(first.Length()))
	return []Element{
		Segment{start: start, end: mid, rightLimit: rl, slope: first.slope},
		Point{Time: mid, Value: midValue},
		Segment{start: mid, end: end, rightLimit: midValue, slope: second.slope},
	}, nil
}

// truncate applies the cut-end and cut-ceiling bounds to ordered pieces.
// Pieces are dropped from the first one that violates a bound onward.
func truncate(pieces []Element, o convolutionOptions) []Element {
	ceilingAt := rational.PlusInfinity
	if o.cutCeiling.IsFinite() && finiteNonDecreasing(pieces) {
		ceilingAt = ceilingTime(pieces, o.cutCeiling)
	}
	if o.cutEnd.IsPlusInfinite() && ceilingAt.IsPlusInfinite() {
		return pieces
	}
	out := pieces[:0:0]
	for _, e := range pieces {
		switch x := e.(type) {
		case Point:
			if x.Time.Greater(o.cutEnd) || x.Time.Greater(ceilingAt) ||
				(x.Time.Equal(ceilingAt) && x.Value.Greater(o.cutCeiling)) {
				return out
			}
		case Segment:
			if !x.start.Less(o.cutEnd) || !x.start.Less(ceilingAt) {
				return out
			}
		}
		out = append(out, e)
	}
	return out
}

func finiteNonDecreasing(pieces []Element) bool {
	for _, e := range pieces {
		if e.IsInfinite() {
			return false
		}
		if s, ok := e.(Segment); ok && s.slope.IsNegative() {
			return false
		}
	}
	return true
}

// ceilingTime returns the infimum of the times at which a finite
// non-decreasing piece list exceeds ceiling, or +∞.
func ceilingTime(pieces []Element, ceiling rational.Rational) rational.Rational {
	for _, e := range pieces {
		switch x := e.(type) {
		case Point:
			if x.Value.Greater(ceiling) {
				return x.Time
			}
		case Segment:
			if x.rightLimit.Greater(ceiling) {
				return x.start
			}
			if x.slope.IsPositive() {
				if t := x.start.Add(ceiling.Sub(x.rightLimit).Div(x.slope)); t.Less(x.end) {
					return t
				}
			}
		}
	}
	return rational.PlusInfinity
}
