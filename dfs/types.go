// SPDX-License-Identifier: MIT
// Package: randgraph/dfs
//
// types.go — options, result types, and sentinel errors for traversal.

package dfs

import (
	"context"

	"github.com/cockroachdb/errors"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Run,
// SpanningForest, or ConnectedComponents.
var ErrGraphNil = errors.New("dfs: graph is nil")

// ErrDirectedGraph is returned when an undirected-only derivation
// (SpanningForest, ConnectedComponents) receives a directed graph.
var ErrDirectedGraph = errors.New("dfs: operation requires an undirected graph")

// Interval is one vertex's DFS visitation window: Pre is assigned on
// first visit, Post after all its neighbors are exhausted, both from one
// shared counter, so Pre < Post always holds.
type Interval struct {
	Pre  int
	Post int
}

// Option configures optional behavior of a traversal.
// Use with Run(g, opts...).
type Option[V comparable] func(*Options[V])

// Options holds configurable parameters for DFS traversal.
// Complexity stays O(V+E) when hooks are O(1).
type Options[V comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the walk with its error.
	Ctx context.Context

	// OnVisit, if non-nil, runs when a vertex is first discovered
	// (pre-order). Returning an error aborts the traversal.
	OnVisit func(v V) error

	// OnExit, if non-nil, runs after a vertex's neighbors are exhausted
	// (post-order), before its Post timestamp is published.
	// Returning an error aborts the traversal.
	OnExit func(v V) error
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit[V comparable](fn func(v V) error) Option[V] {
	return func(o *Options[V]) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit[V comparable](fn func(v V) error) Option[V] {
	return func(o *Options[V]) { o.OnExit = fn }
}

// Result captures the outcome of a full-graph traversal.
type Result[V comparable] struct {
	// PrePost maps every vertex to its visitation interval.
	PrePost map[V]Interval

	// Order records vertices in the sequence they finished (post-order).
	Order []V

	// Parent maps each non-root vertex to the vertex that discovered it.
	Parent map[V]V

	// Roots lists the first vertex of each DFS tree in discovery order —
	// one entry per connected component on undirected input.
	Roots []V
}
