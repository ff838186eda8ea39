// Package sampler implements weighted choice over a discrete probability
// distribution with an explicit key order.
//
// What:
//
//   - Weighted[K]: built from an ordered key slice plus a key→weight map,
//     validated once at construction (weights non-negative, every key
//     present, Σ within SumTolerance of 1).
//   - Pick: one uniform draw in [0,1), then cumulative-sum selection in
//     the fixed key order — the first key whose inclusive running total
//     reaches the draw wins.
//
// Why an explicit key order: Go map iteration is deliberately randomized,
// so the classic "iterate the dict, accumulate, stop" selection would not
// be reproducible. The key slice pins the order; given the same order and
// the same RNG draw, Pick always returns the same key. Boundary ties are
// therefore order-dependent but deterministic.
//
// Errors:
//
//   - ErrInvalidDistribution  weights missing, negative, or Σ ≠ 1 ± tolerance
//   - ErrNilRand              Pick called without a random source
package sampler
