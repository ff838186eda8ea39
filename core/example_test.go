package core_test

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/randgraph/core"
)

// ExampleGraph_AddEdge demonstrates boolean edge insertion on a square:
//
//	0───1
//	│   │
//	2───3
func ExampleGraph_AddEdge() {
	g := core.New([]int{0, 1, 2, 3})

	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {1, 0}, {3, 3}} {
		fmt.Println(e, g.AddEdge(e[0], e[1]))
	}
	fmt.Println("edges:", g.EdgeCount(), "complete:", g.IsComplete())

	// Output:
	// [0 1] true
	// [0 2] true
	// [1 3] true
	// [2 3] true
	// [1 0] false
	// [3 3] false
	// edges: 4 complete: false
}

// ExampleGraph_Subgraph extracts the induced subgraph on one side of the square.
func ExampleGraph_Subgraph() {
	g := core.New([]int{0, 1, 2, 3}, core.WithSeedEdges(map[int][]int{
		0: {1, 2},
		3: {1, 2},
	}))

	sub := g.Subgraph(mapset.NewSet(0, 1, 3))
	fmt.Println("vertices:", sub.Vertices())
	fmt.Println("edges:", sub.EdgeCount())

	// Output:
	// vertices: [0 1 3]
	// edges: 2
}

// ExampleGraph_Reverse flips a directed triangle.
func ExampleGraph_Reverse() {
	g := core.New([]string{"a", "b", "c"}, core.WithDirected[string]())
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")

	rev, _ := g.Reverse()
	for _, v := range rev.Vertices() {
		nbs, _ := rev.Neighbors(v)
		fmt.Println(v, "→", nbs)
	}

	// Output:
	// a → [c]
	// b → [a]
	// c → [b]
}
