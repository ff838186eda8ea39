// SPDX-License-Identifier: MIT
// Package: randgraph/core
//
// derive.go — operations producing new, independent Graph instances.
//
// Contract (copy-on-derive):
//   • Subgraph, Reverse, and Clone never mutate the receiver and the
//     result shares no mutable state with it.
//   • Derived vertex catalogs preserve the source construction order
//     (filtered, for Subgraph), so downstream traversals stay reproducible.

package core

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Subgraph returns the induced subgraph on subset: vertices are the
// catalog members contained in subset (in source construction order),
// edges are exactly the source edges with both endpoints retained.
// Labels in subset that are not in the catalog are ignored.
// A nil subset yields an empty graph of the same orientation.
// Complexity: O(V + E).
func (g *Graph[V]) Subgraph(subset mapset.Set[V]) *Graph[V] {
	kept := make([]V, 0)
	if subset != nil {
		for _, v := range g.verts {
			if subset.Contains(v) {
				kept = append(kept, v)
			}
		}
	}

	sub := newLike(g, kept)
	for _, v := range kept {
		for _, w := range g.adj[v].order {
			if subset.Contains(w) {
				sub.AddEdge(v, w)
			}
		}
	}

	return sub
}

// Reverse returns a new directed graph over the same catalog with an edge
// v→w exactly where the receiver has w→v. Undirected graphs have no
// orientation to flip: ErrNotDirected.
// Complexity: O(V + E).
func (g *Graph[V]) Reverse() (*Graph[V], error) {
	if !g.directed {
		return nil, ErrNotDirected
	}

	rev := newLike(g, g.verts)
	for _, v := range g.verts {
		for _, w := range g.adj[v].order {
			rev.AddEdge(w, v)
		}
	}

	return rev, nil
}

// Clone returns an independent deep copy: same orientation, same catalog
// order, same edges, separate storage.
// Complexity: O(V + E).
func (g *Graph[V]) Clone() *Graph[V] {
	cp := newLike(g, g.verts)
	for _, v := range g.verts {
		for _, w := range g.adj[v].order {
			// Undirected mirrors visit each edge twice; AddEdge dedupes.
			cp.AddEdge(v, w)
		}
	}

	return cp
}

// newLike allocates an empty graph with the receiver's orientation over
// the given catalog (assumed duplicate-free, as all callers slice the
// receiver's own catalog).
func newLike[V comparable](g *Graph[V], verts []V) *Graph[V] {
	like := &Graph[V]{
		directed: g.directed,
		verts:    make([]V, len(verts)),
		adj:      make(map[V]*neighborhood[V], len(verts)),
		deg:      make(map[V]int, len(verts)),
	}
	copy(like.verts, verts)
	for _, v := range verts {
		like.adj[v] = newNeighborhood[V]()
		like.deg[v] = 0
	}

	return like
}
