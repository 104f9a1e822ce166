package search_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/valvenet/builder"
	"github.com/katalvlaran/valvenet/matrix"
	"github.com/katalvlaran/valvenet/search"
)

// ringMatrix builds a ring of 2k valves where every other valve has a rate,
// so k valves carry value and travel times grow around the ring.
func ringMatrix(b *testing.B, k int) *matrix.Distances {
	b.Helper()
	rates := 0
	n, err := builder.BuildNetwork([]builder.BuilderOption{
		builder.WithRateFn(func(_ *rand.Rand) int {
			rates++
			if rates%2 == 0 {
				return 3 + (rates*7)%17
			}
			return 0
		}),
	}, builder.Cycle(2*k))
	if err != nil {
		b.Fatal(err)
	}
	d, err := matrix.Build(n, matrix.WithBudget(30))
	if err != nil {
		b.Fatal(err)
	}
	return d
}

// BenchmarkSingle_Ring measures the single-agent walk on 12 value valves.
func BenchmarkSingle_Ring(b *testing.B) {
	d := ringMatrix(b, 12)
	opts := search.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Single(context.Background(), d, opts)
	}
}

// BenchmarkDual_Ring measures walk, subset closure and balanced scoring.
func BenchmarkDual_Ring(b *testing.B) {
	d := ringMatrix(b, 12)
	opts := search.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Dual(context.Background(), d, opts)
	}
}

// BenchmarkDual_RandomAllSizes measures exact splits on a generated network
// with chords.
func BenchmarkDual_RandomAllSizes(b *testing.B) {
	d := randomMatrix(b, 99, 20, false)
	opts := search.DefaultOptions()
	opts.Partition = search.AllSizes
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Dual(context.Background(), d, opts)
	}
}
