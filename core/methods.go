// SPDX-License-Identifier: MIT
// Package: randgraph/core
//
// methods.go — edge insertion and read-only queries.
//
// Determinism:
//   • Vertices() returns the construction order.
//   • Neighbors(v) returns the insertion order.
//   • All counters are maintained incrementally; no method rescans state.
// Mutation:
//   • AddEdge is the ONLY mutator after construction. It is all-or-nothing:
//     a false return guarantees no field changed.

package core

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// AddEdge inserts the edge v→w (directed) or v—w (undirected).
//
// It reports false — leaving the graph byte-for-byte unchanged — when:
//   - v == w (self-loop),
//   - either endpoint is outside the vertex catalog,
//   - the edge already exists.
//
// On success, adjacency (mirrored for undirected graphs), the degree
// counter(s), and the edge count are updated together; no partial update
// is ever observable.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(v, w V) bool {
	// 1. Validate endpoints before touching anything.
	if v == w {
		return false
	}
	nv, ok := g.adj[v]
	if !ok {
		return false
	}
	nw, ok := g.adj[w]
	if !ok {
		return false
	}

	// 2. Duplicate check via set membership.
	if nv.members.Contains(w) {
		return false
	}

	// 3. Commit: adjacency, degree(s), edge count.
	nv.add(w)
	g.deg[v]++
	if !g.directed {
		nw.add(v)
		g.deg[w]++
	}
	g.ne++

	return true
}

// Directed reports whether edges are one-way.
// Complexity: O(1).
func (g *Graph[V]) Directed() bool { return g.directed }

// VertexCount returns the size of the vertex catalog (fixed at New).
// Complexity: O(1).
func (g *Graph[V]) VertexCount() int { return len(g.verts) }

// EdgeCount returns the number of edges; an undirected edge counts once.
// Complexity: O(1).
func (g *Graph[V]) EdgeCount() int { return g.ne }

// Vertices returns the catalog in construction order. The slice is a copy;
// callers may mutate it freely.
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	out := make([]V, len(g.verts))
	copy(out, g.verts)

	return out
}

// HasVertex reports whether v belongs to the catalog.
// Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	_, ok := g.adj[v]

	return ok
}

// HasEdge reports whether the edge v→w exists. For undirected graphs the
// adjacency is mirrored, so HasEdge(v, w) == HasEdge(w, v).
// Complexity: O(1).
func (g *Graph[V]) HasEdge(v, w V) bool {
	n, ok := g.adj[v]
	if !ok {
		return false
	}

	return n.members.Contains(w)
}

// Degree returns v's degree (undirected) or out-degree (directed) and
// whether v is in the catalog.
// Complexity: O(1).
func (g *Graph[V]) Degree(v V) (int, bool) {
	d, ok := g.deg[v]

	return d, ok
}

// Neighbors returns v's neighbors in insertion order, or ErrVertexNotFound.
// The slice is a copy: mutating it cannot bypass the edge-count invariant.
// Complexity: O(deg(v)).
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	n, ok := g.adj[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]V, len(n.order))
	copy(out, n.order)

	return out, nil
}

// NeighborSet returns a detached set of v's neighbors, convenient for
// membership algebra (unions, differences). Mutating the returned set
// does not touch the graph.
// Complexity: O(deg(v)).
func (g *Graph[V]) NeighborSet(v V) (mapset.Set[V], error) {
	n, ok := g.adj[v]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return n.members.Clone(), nil
}

// MaxEdges returns the edge capacity of the catalog:
// nv·(nv−1) directed, nv·(nv−1)/2 undirected.
// Complexity: O(1).
func (g *Graph[V]) MaxEdges() int {
	nv := len(g.verts)
	if g.directed {
		return nv * (nv - 1)
	}

	return nv * (nv - 1) / 2
}

// IsComplete reports whether every admissible edge is present.
// Complexity: O(1).
func (g *Graph[V]) IsComplete() bool { return g.ne == g.MaxEdges() }
