// SPDX-License-Identifier: MIT
// Package: randgraph/builder
//
// random.go — degree-balancing random edge insertion.
//
// Canonical model:
//   - Source pick: weighted by remaining per-vertex capacity,
//     weight(v) = (nv − deg(v) − 1) / norm with norm = nv·(nv−1) − k·ne
//     (k = 2 undirected, 1 directed). Σweights = 1 by construction.
//   - Target pick: uniform over {u : u ≠ source, u ∉ adj(source)}.
//
// Contract:
//   - cfg.rng must be non-nil (else ErrNeedRandSource); no ambient RNG.
//   - ErrGraphComplete when norm == 0; the graph is left untouched.
//   - Stable orders everywhere: vertices are walked in construction order,
//     so outcomes are deterministic for a fixed seed.
//   - Returns only sentinel errors (wrapped); never panics at runtime.
//
// Complexity per edge: O(V) weights + O(V) candidate scan.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/randgraph/core"
	"github.com/katalvlaran/randgraph/sampler"
)

const methodAddRandomEdge = "AddRandomEdge"

// AddRandomEdge inserts one random edge into g, biased toward low-degree
// source vertices to keep the degree sequence balanced.
//
// Failure modes: ErrGraphNil, ErrNeedRandSource, and ErrGraphComplete —
// the last is the loop-termination signal for callers that grow a graph
// edge by edge. On any failure g is unchanged.
func AddRandomEdge[V comparable](g *core.Graph[V], opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return errors.Wrapf(ErrNeedRandSource, "%s", methodAddRandomEdge)
	}

	return addRandomEdge(g, cfg)
}

// addRandomEdge is the config-resolved core shared with Random.
func addRandomEdge[V comparable](g *core.Graph[V], cfg config) error {
	nv := g.VertexCount()

	// 1. Remaining capacity; k·ne edge endpoints are already spent.
	k := 1
	if !g.Directed() {
		k = 2
	}
	norm := nv*(nv-1) - k*g.EdgeCount()
	if norm == 0 {
		return errors.Wrapf(ErrGraphComplete, "%s", methodAddRandomEdge)
	}

	// 2. Capacity-proportional source distribution over construction order.
	verts := g.Vertices()
	weights := make(map[V]float64, nv)
	for _, v := range verts {
		d, _ := g.Degree(v)
		weights[v] = float64(nv-d-1) / float64(norm)
	}
	dist, err := sampler.New(verts, weights)
	if err != nil {
		return errors.Wrapf(err, "%s: source distribution", methodAddRandomEdge)
	}

	src, err := dist.Pick(cfg.rng)
	if err != nil {
		return errors.Wrapf(err, "%s: source pick", methodAddRandomEdge)
	}

	// 3. Uniform target among the source's non-neighbors. A saturated
	//    vertex can slip through Pick when the draw lands exactly on its
	//    zero-width cumulative boundary; norm > 0 guarantees some vertex
	//    still has capacity, so fall back to the first such one.
	cands := openTargets(g, verts, src)
	if len(cands) == 0 {
		for _, v := range verts {
			if d, _ := g.Degree(v); d < nv-1 {
				src = v
				cands = openTargets(g, verts, src)
				break
			}
		}
	}

	dst := cands[cfg.rng.Intn(len(cands))]

	// 4. Commit. The candidate construction makes rejection impossible.
	g.AddEdge(src, dst)

	return nil
}

// openTargets lists, in construction order, every vertex the source could
// gain an edge to.
func openTargets[V comparable](g *core.Graph[V], verts []V, src V) []V {
	out := make([]V, 0, len(verts))
	for _, u := range verts {
		if u != src && !g.HasEdge(src, u) {
			out = append(out, u)
		}
	}

	return out
}

// Random builds a graph over the dense integer labels 0..n−1 and grows it
// with `edges` random insertions (undirected unless WithDirectedGraph).
//
// A budget exceeding the catalog's capacity surfaces ErrGraphComplete —
// the same stop signal AddRandomEdge gives loop callers.
// Complexity: O(n + edges·n).
func Random(n, edges int, opts ...Option) (*core.Graph[int], error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrTooFewVertices, "Random: n=%d", n)
	}
	if edges < 0 {
		return nil, errors.Wrapf(ErrBadSize, "Random: edges=%d", edges)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil && edges > 0 {
		return nil, errors.Wrap(ErrNeedRandSource, "Random")
	}

	verts := make([]int, n)
	for i := range verts {
		verts[i] = i
	}
	var g *core.Graph[int]
	if cfg.directed {
		g = core.New(verts, core.WithDirected[int]())
	} else {
		g = core.New(verts)
	}

	for i := 0; i < edges; i++ {
		if err := addRandomEdge(g, cfg); err != nil {
			return nil, errors.Wrapf(err, "Random: edge %d of %d", i+1, edges)
		}
	}

	return g, nil
}
