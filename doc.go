// Package randgraph is an in-memory toolkit for building and exploring
// random graphs — directed or undirected, over any comparable label set.
//
// 🎲 What is randgraph?
//
//	A small, deterministic-by-request library that brings together:
//		• Core primitives: fixed vertex catalogs, incremental edge insertion,
//		  induced subgraphs, edge reversal
//		• Weighted sampling: cumulative-sum choice over explicit key orders
//		• Random growth: degree-balancing edge generation with injectable RNG
//		• Traversal: iterative DFS with pre/post timestamps,
//		  spanning forests and connected components derived from it
//		• Matrix views: dense 0/1 adjacency export for integer labels
//
// ✨ Why choose randgraph?
//
//   - Predictable – every stochastic path takes a seed; every iteration
//     order is the construction order, so tests can assert exact outcomes
//   - Honest failures – strict sentinel errors, boolean edge insertion,
//     no panics on user input, no partial mutation on any failure path
//   - Pure Go – no cgo, no I/O, no background goroutines
//
// Everything is organized under five subpackages:
//
//	core/    — the Graph type: vertices, adjacency, degrees, derivations
//	sampler/ — weighted choice over discrete distributions
//	builder/ — random edge generation and random graph construction
//	dfs/     — depth-first traversal, spanning forests, components
//	matrix/  — dense adjacency export for integer-labeled graphs
//
// Quick ASCII example:
//
//	    0───1       a graph over labels 0..3, grown one random,
//	    │   │       degree-balanced edge at a time until complete
//	    2───3
//
// Instances are single-owner: mutate a graph from one goroutine, or
// serialize access externally. Derived graphs (subgraphs, reversals,
// forests, components) never alias their source.
package randgraph
