package bidirectional_test

import (
	"fmt"

	"github.com/katalvlaran/blindsearch/bidirectional"
	"github.com/katalvlaran/blindsearch/core"
	"github.com/katalvlaran/blindsearch/problems/route"
)

// ExampleSearch meets in the middle of the line A–B–C–D. The cost is not
// computed by bidirectional search, so CostComputed reports false.
func ExampleSearch() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "D", 0)
	p, _ := route.New(g, "A", "D")

	res, err := bidirectional.Search[string, route.Move](p, "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Actions, res.CostComputed())
	// Output:
	// [A->B B->C C->D] false
}
