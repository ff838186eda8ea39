// SPDX-License-Identifier: MIT
// Package: randgraph/core
//
// types.go — Graph struct, construction options, and the New constructor.
//
// Design:
//   • One Graph type parameterized by a directed flag replaces separate
//     directed/undirected implementations; only edge symmetry and the
//     degree semantics differ between the two orientations.
//   • The vertex catalog is immutable after New. Duplicate labels in the
//     input sequence collapse to their first occurrence.
//   • Seed edges referencing unknown vertices, self-loops, or duplicates
//     are silently dropped: they route through the same guarded insertion
//     path as AddEdge, so the bookkeeping invariants hold from birth.
//   • Options mutate a config value, never the Graph, so no option can
//     observe or leak partially constructed state.

package core

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// neighborhood stores one vertex's neighbors twice: an insertion-order
// slice for deterministic iteration and a set for O(1) membership.
type neighborhood[V comparable] struct {
	order   []V           // neighbors in insertion order
	members mapset.Set[V] // same neighbors, membership view
}

func newNeighborhood[V comparable]() *neighborhood[V] {
	return &neighborhood[V]{members: mapset.NewThreadUnsafeSet[V]()}
}

// add appends w if absent; reports whether an insertion happened.
func (n *neighborhood[V]) add(w V) bool {
	if !n.members.Add(w) {
		return false
	}
	n.order = append(n.order, w)

	return true
}

// Graph is a simple (loop-free, multi-edge-free, unweighted) graph over
// comparable vertex labels. The zero value is not usable; construct via New.
type Graph[V comparable] struct {
	directed bool

	verts []V                    // catalog in construction order
	adj   map[V]*neighborhood[V] // vertex → neighbors
	deg   map[V]int              // degree (undirected) / out-degree (directed)
	ne    int                    // edge count, incrementally maintained
}

// config collects construction-time knobs before the catalog exists.
type config[V comparable] struct {
	directed bool
	seeds    map[V][]V
}

// Option customizes Graph construction.
// Applying N options costs O(N) time, O(1) space.
type Option[V comparable] func(*config[V])

// WithDirected makes the new graph directed: edges are one-way and the
// per-vertex counter tracks out-degree.
func WithDirected[V comparable]() Option[V] {
	return func(c *config[V]) { c.directed = true }
}

// WithSeedEdges supplies an initial edge mapping (source → targets).
// Entries touching labels outside the vertex catalog, self-loops, and
// duplicates are dropped without error. A nil map is a no-op.
func WithSeedEdges[V comparable](edges map[V][]V) Option[V] {
	return func(c *config[V]) { c.seeds = edges }
}

// New builds a Graph over verts (first occurrence wins on duplicates),
// optionally directed and optionally pre-populated via WithSeedEdges.
// Each call materializes fresh internal maps; nothing is shared between
// instances.
// Complexity: O(V + S) where S is the total seed-edge fan-out.
func New[V comparable](verts []V, opts ...Option[V]) *Graph[V] {
	var cfg config[V]
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph[V]{
		directed: cfg.directed,
		verts:    make([]V, 0, len(verts)),
		adj:      make(map[V]*neighborhood[V], len(verts)),
		deg:      make(map[V]int, len(verts)),
	}

	// 1. Fix the vertex catalog, deduplicating on first occurrence.
	for _, v := range verts {
		if _, dup := g.adj[v]; dup {
			continue
		}
		g.verts = append(g.verts, v)
		g.adj[v] = newNeighborhood[V]()
		g.deg[v] = 0
	}

	// 2. Ingest seed edges through the guarded insertion path, iterating
	//    sources in catalog order so the neighbor order is reproducible.
	if cfg.seeds != nil {
		for _, v := range g.verts {
			for _, w := range cfg.seeds[v] {
				g.AddEdge(v, w)
			}
		}
	}

	return g
}
