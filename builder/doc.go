// Package builder grows graphs with randomly chosen, degree-balancing edges.
//
// What:
//
//   - AddRandomEdge(g, opts...): insert one random edge into an existing
//     core.Graph. The source vertex is drawn from a weighted distribution
//     that favors low-degree vertices; the target is uniform over the
//     source's non-neighbors. ErrGraphComplete when no capacity remains.
//   - Random(n, edges, opts...): convenience constructor — a graph over
//     the dense integer labels 0..n−1 grown by repeated AddRandomEdge.
//
// How the balancing works: with nv vertices, vertex v gets weight
// (nv − deg(v) − 1) / norm, where norm = nv·(nv−1) − k·ne (k = 2
// undirected, 1 directed) is exactly the total remaining capacity, so the
// weights always sum to 1. A vertex at its degree cap gets weight zero; a
// fresh vertex gets the largest share. Repeated calls therefore keep the
// degree sequence flat instead of piling edges onto early picks.
//
// Determinism: stochastic calls REQUIRE a random source — supply
// WithSeed(s) for reproducible growth or WithRand(r) to share a source
// across calls. There is no ambient process-wide fallback; a missing
// source is ErrNeedRandSource, never silent nondeterminism.
//
// Errors:
//
//   - ErrGraphNil         nil graph
//   - ErrNeedRandSource   no WithSeed/WithRand supplied
//   - ErrGraphComplete    no admissible edge remains (callers stop looping)
//   - ErrTooFewVertices   Random(n<1, ...)
//   - ErrBadSize          Random(..., edges<0)
package builder
