// SPDX-License-Identifier: MIT
// Package: randgraph/sampler
//
// sampler.go — Weighted choice: validated construction + cumulative draw.
//
// Contract:
//   • New validates the whole distribution up front; Pick never fails on
//     distribution grounds afterwards.
//   • Pick consumes exactly one rng.Float64() per call.
//   • Zero-weight keys are selectable only when the draw lands exactly on
//     their cumulative boundary (a measure-zero event callers may guard).

package sampler

import (
	"math"
	"math/rand"

	"github.com/cockroachdb/errors"
)

// SumTolerance bounds the accepted floating-point drift of Σweights from 1.
const SumTolerance = 1e-9

// ErrInvalidDistribution indicates the weights are not a probability
// distribution over the given keys: a key has no weight, a weight is
// negative or non-finite, or the sum strays from 1 beyond SumTolerance.
// Usage: if errors.Is(err, sampler.ErrInvalidDistribution) { /* fix input */ }.
var ErrInvalidDistribution = errors.New("sampler: weights do not form a distribution")

// ErrNilRand indicates Pick was called with a nil *rand.Rand.
var ErrNilRand = errors.New("sampler: nil random source")

// Weighted draws keys of type K with probabilities fixed at construction.
type Weighted[K comparable] struct {
	keys    []K       // selection order (copied from the caller)
	weights []float64 // weights aligned with keys
}

// New builds a Weighted sampler over keys in the given order with the
// given weight mapping.
//
// Validation (all failures return ErrInvalidDistribution, wrapped with
// the offending detail):
//   - every key must appear in weights,
//   - every weight must be finite and ≥ 0,
//   - Σweights must equal 1 within SumTolerance.
//
// Complexity: O(len(keys)).
func New[K comparable](keys []K, weights map[K]float64) (*Weighted[K], error) {
	w := &Weighted[K]{
		keys:    make([]K, len(keys)),
		weights: make([]float64, len(keys)),
	}
	copy(w.keys, keys)

	sum := 0.0
	for i, k := range w.keys {
		p, ok := weights[k]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidDistribution, "key %v has no weight", k)
		}
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return nil, errors.Wrapf(ErrInvalidDistribution, "key %v has weight %v", k, p)
		}
		w.weights[i] = p
		sum += p
	}
	if math.Abs(sum-1) > SumTolerance {
		return nil, errors.Wrapf(ErrInvalidDistribution, "weights sum to %v", sum)
	}

	return w, nil
}

// Pick draws one key: a single uniform cutoff in [0,1), then the first
// key whose inclusive cumulative weight reaches or exceeds the cutoff.
// The final key backstops any residual floating-point drift.
// Complexity: O(len(keys)); exactly one RNG draw.
func (w *Weighted[K]) Pick(rng *rand.Rand) (K, error) {
	var zero K
	if rng == nil {
		return zero, ErrNilRand
	}
	if len(w.keys) == 0 {
		return zero, errors.Wrap(ErrInvalidDistribution, "no keys")
	}

	cutoff := rng.Float64()
	threshold := 0.0
	for i, k := range w.keys {
		if threshold+w.weights[i] >= cutoff {
			return k, nil
		}
		threshold += w.weights[i]
	}

	// Drift pushed every cumulative total below the cutoff.
	return w.keys[len(w.keys)-1], nil
}

// Len returns the number of keys in the distribution.
func (w *Weighted[K]) Len() int { return len(w.keys) }
