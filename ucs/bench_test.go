package ucs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/blindsearch/core"
	"github.com/katalvlaran/blindsearch/problems/route"
	"github.com/katalvlaran/blindsearch/ucs"
)

// BenchmarkSearch_RandomSparse runs UCS on a random sparse weighted graph
// (V=1000, ~5 edges per vertex), seeded for repeatability.
func BenchmarkSearch_RandomSparse(b *testing.B) {
	const V = 1000
	rng := rand.New(rand.NewSource(42))
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < V; i++ {
		_ = g.AddVertex(fmt.Sprintf("v%d", i))
	}
	for i := 0; i < V; i++ {
		for k := 0; k < 5; k++ {
			j := rng.Intn(V)
			if j == i {
				continue
			}
			_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", j), float64(1+rng.Intn(20)))
		}
	}
	p, err := route.New(g, "v0", fmt.Sprintf("v%d", V-1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ucs.Search[string, route.Move](p)
	}
}
