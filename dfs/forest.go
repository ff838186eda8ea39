// SPDX-License-Identifier: MIT
// Package: randgraph/dfs
//
// forest.go — spanning forest derived from the traversal's parent links.

package dfs

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/randgraph/core"
)

// SpanningForest runs a full DFS over the undirected graph g and returns
// a new graph on the same vertex catalog containing exactly the tree
// edges — the (parent, child) pairs of every first discovery.
//
// The result is a forest: acyclic, one tree per connected component,
// VertexCount − #components edges. g itself is never mutated.
// Complexity: O(V+E).
func SpanningForest[V comparable](g *core.Graph[V]) (*core.Graph[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	res, err := Run(g)
	if err != nil {
		return nil, errors.Wrap(err, "SpanningForest")
	}

	forest := core.New(g.Vertices())
	// Tree edges in finish order keeps the output reproducible.
	for _, v := range res.Order {
		if p, ok := res.Parent[v]; ok {
			forest.AddEdge(p, v)
		}
	}

	return forest, nil
}
