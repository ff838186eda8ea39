// SPDX-License-Identifier: MIT
// Package: randgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context by wrapping; sentinels stay bare.
//   • Algorithms never panic at runtime; validation panics are confined
//     to option constructors (WithX...).

package builder

import "github.com/cockroachdb/errors"

// ErrGraphNil indicates a nil *core.Graph was passed in.
var ErrGraphNil = errors.New("builder: graph is nil")

// ErrNeedRandSource indicates a stochastic operation was invoked without
// a random source (neither WithSeed nor WithRand was supplied).
// Usage: if errors.Is(err, builder.ErrNeedRandSource) { /* add WithSeed */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrGraphComplete indicates the graph has no capacity for another edge.
// It is an explicit stop signal, distinguishable from success, so callers
// that loop over AddRandomEdge know when to stop.
// Usage: if errors.Is(err, builder.ErrGraphComplete) { break }.
var ErrGraphComplete = errors.New("builder: graph complete, no more edges to add")

// ErrTooFewVertices indicates a vertex-count parameter below the minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates an invalid size parameter (e.g., a negative edge
// budget).
var ErrBadSize = errors.New("builder: invalid size")
