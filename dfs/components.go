// SPDX-License-Identifier: MIT
// Package: randgraph/dfs
//
// components.go — connected components via DFS interval containment.
//
// Each root's [Pre, Post] interval spans exactly the vertices of its
// tree, and on undirected input a DFS tree is a connected component. The
// root intervals are disjoint and ascend in Pre, so membership is a
// binary search per vertex.

package dfs

import (
	"sort"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/randgraph/core"
)

// ConnectedComponents runs a full DFS over the undirected graph g and
// returns the induced subgraph of each component, in root discovery
// order. The component vertex sets partition g's catalog exactly: every
// vertex appears in exactly one component, and no edge crosses two.
// g itself is never mutated.
// Complexity: O(V log C + E) for C components.
func ConnectedComponents[V comparable](g *core.Graph[V]) ([]*core.Graph[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	res, err := Run(g)
	if err != nil {
		return nil, errors.Wrap(err, "ConnectedComponents")
	}

	// 1. One membership set per root, ascending in the root's Pre.
	rootPre := make([]int, len(res.Roots))
	sets := make([]mapset.Set[V], len(res.Roots))
	for i, r := range res.Roots {
		rootPre[i] = res.PrePost[r].Pre
		sets[i] = mapset.NewThreadUnsafeSet[V]()
	}

	// 2. Assign every vertex to the tree whose interval contains it:
	//    the last root with Pre ≤ vertex Pre.
	for v, iv := range res.PrePost {
		i := sort.SearchInts(rootPre, iv.Pre+1) - 1
		sets[i].Add(v)
	}

	// 3. Materialize induced subgraphs in discovery order.
	comps := make([]*core.Graph[V], len(sets))
	for i, set := range sets {
		comps[i] = g.Subgraph(set)
	}

	return comps, nil
}
