// Package core defines the central Graph type: a directed or undirected
// simple graph over an arbitrary comparable label set.
//
// What:
//
//   - Graph[V]: vertex catalog fixed at construction, adjacency stored as
//     insertion-ordered neighbor sets, degree (undirected) or out-degree
//     (directed) and edge count maintained incrementally — never recomputed
//     by scanning.
//   - AddEdge: boolean success/failure, never an error and never a panic.
//     Self-loops, unknown endpoints, and duplicate edges are rejected with
//     zero observable mutation.
//   - Derivations: Subgraph (induced), Reverse (directed only), Clone.
//     Every derivation is a fresh instance sharing no mutable state with
//     its source.
//
// Why:
//   - Feed the traversal engine (dfs/) and the random growth layer
//     (builder/) with one representation that covers both orientations
//   - Keep iteration orders stable (construction order for vertices,
//     insertion order for neighbors) so stochastic pipelines are
//     reproducible under a fixed seed
//
// Invariants (hold after every operation, including failed ones):
//
//   - No vertex has an edge to itself.
//   - Undirected: adjacency is symmetric and EdgeCount == Σdegree/2.
//   - Directed: EdgeCount == Σout-degree.
//   - EdgeCount ≤ MaxEdges, with equality exactly when IsComplete().
//
// Concurrency:
//
//	Instances are single-owner. No internal locking; callers needing
//	concurrent access must serialize externally (one lock per instance).
//
// Errors:
//
//   - ErrVertexNotFound  requested vertex is not in the catalog
//   - ErrNotDirected     Reverse called on an undirected graph
//
// Complexity notes accompany each exported method.
package core
