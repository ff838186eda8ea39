package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/randgraph/core"
	"github.com/katalvlaran/randgraph/matrix"
)

// ExampleAdjacency exports the square 0—1, 0—2, 1—3, 2—3.
func ExampleAdjacency() {
	g := core.New([]int{0, 1, 2, 3}, core.WithSeedEdges(map[int][]int{
		0: {1, 2},
		3: {1, 2},
	}))

	mat, err := matrix.Adjacency(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, row := range mat {
		fmt.Println(row)
	}

	// Output:
	// [0 1 1 0]
	// [1 0 0 1]
	// [1 0 0 1]
	// [0 1 1 0]
}
