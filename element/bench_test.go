// Package element_test provides benchmarks for alignment and envelopes,
// using deterministic random sequences.
package element_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/minplus/element"
)

// benchLengths are the sequence lengths (time units) to benchmark.
var benchLengths = []int{100, 1000, 5000}

// sinks to defeat dead-code elimination
var (
	sinkCells []*element.Interval
	sinkElems []element.Element
)

func benchPair(n int) ([]element.Element, []element.Element) {
	rng := rand.New(rand.NewSource(1337))
	return randomSequence(rng, n), randomSequence(rng, n)
}

func BenchmarkComputeIntervals(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchLengths {
		x, y := benchPair(n)
		all := append(append([]element.Element{}, x...), y...)
		for _, mode := range []struct {
			name     string
			settings element.Settings
		}{
			{"serial", element.NewSettings(element.WithParallelComputeIntervals(false))},
			{"parallel", element.NewSettings(element.WithParallelThreshold(0))},
		} {
			b.Run(fmt.Sprintf("n=%d/%s", n, mode.name), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					cells, err := element.ComputeIntervals(all, mode.settings)
					if err != nil {
						b.Fatal(err)
					}
					sinkCells = cells
				}
			})
		}
		b.Run(fmt.Sprintf("n=%d/linear", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkCells = element.ComputeIntervalsLinear(x, y)
			}
		})
	}
}

func BenchmarkLowerEnvelope(b *testing.B) {
	b.ReportAllocs()
	for _, k := range []int{8, 64, 512} {
		cell, _ := element.NewSegmentInterval(qi(0), qi(1000))
		for tau := int64(0); tau < int64(k); tau++ {
			cell.AddUnchecked(element.MustSegment(qi(0), qi(1000), qi(tau*tau), qi(-2*tau)))
		}
		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				env, err := cell.LowerEnvelope()
				if err != nil {
					b.Fatal(err)
				}
				sinkElems = env
			}
		})
	}
}
