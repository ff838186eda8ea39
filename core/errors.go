// SPDX-License-Identifier: MIT
// Package: randgraph/core
//
// errors.go — sentinel errors for the core package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • AddEdge deliberately reports failure as a boolean, not an error:
//     self-loops, unknown endpoints, and duplicates are expected outcomes
//     of normal use, not exceptional conditions.

package core

import "github.com/cockroachdb/errors"

// ErrVertexNotFound indicates an accessor referenced a label outside the
// vertex catalog fixed at construction time.
// Usage: if errors.Is(err, core.ErrVertexNotFound) { /* unknown label */ }.
var ErrVertexNotFound = errors.New("core: vertex not found")

// ErrNotDirected indicates Reverse was called on an undirected graph,
// where edge orientation does not exist.
// Usage: if errors.Is(err, core.ErrNotDirected) { /* skip reversal */ }.
var ErrNotDirected = errors.New("core: graph is not directed")
