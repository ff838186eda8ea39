// SPDX-License-Identifier: MIT
// Package: randgraph/matrix
//
// adjacency.go — checked dense adjacency export.
//
// Error policy: strict sentinels, checked via errors.Is; the label
// precondition fails loudly rather than mapping labels to rows silently.

package matrix

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/randgraph/core"
)

// ErrGraphNil indicates a nil *core.Graph was passed in.
var ErrGraphNil = errors.New("matrix: graph is nil")

// ErrUnsupportedLabel indicates the graph's labels are not the dense
// integer range 0..nv−1, which the dense export requires for its
// label-to-index mapping.
// Usage: if errors.Is(err, matrix.ErrUnsupportedLabel) { /* relabel */ }.
var ErrUnsupportedLabel = errors.New("matrix: labels are not a dense 0..nv-1 integer range")

// Adjacency returns g as an nv×nv dense 0/1 matrix, row = source.
//
// Precondition (checked): every vertex label is an int in [0, nv).
// The catalog is duplicate-free, so nv distinct in-range ints are exactly
// the range 0..nv−1.
// Complexity: O(V²) space and time.
func Adjacency[V comparable](g *core.Graph[V]) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	verts := g.Vertices()
	nv := len(verts)

	// 1. Validate the label set before allocating rows.
	for _, v := range verts {
		i, ok := any(v).(int)
		if !ok {
			return nil, errors.Wrapf(ErrUnsupportedLabel, "label %v (%T)", v, v)
		}
		if i < 0 || i >= nv {
			return nil, errors.Wrapf(ErrUnsupportedLabel, "label %d outside [0,%d)", i, nv)
		}
	}

	// 2. Fill.
	mat := make([][]int, nv)
	for i := range mat {
		mat[i] = make([]int, nv)
	}
	for _, v := range verts {
		row := mat[any(v).(int)]
		nbs, err := g.Neighbors(v)
		if err != nil {
			return nil, errors.Wrapf(err, "matrix: Neighbors(%v)", v)
		}
		for _, w := range nbs {
			row[any(w).(int)] = 1
		}
	}

	return mat, nil
}
