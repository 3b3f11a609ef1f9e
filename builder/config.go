// SPDX-License-Identifier: MIT
// Package: FlowLM/builder
//
// config.go - internal configuration and deterministic defaults.
//
// builderConfig is the single source of truth for all builder knobs; options
// are applied in order with last-wins semantics, and the resolved config is
// passed to constructors by value.
package builder

import (
	"math/rand"
	"strconv"
)

// Deterministic defaults.
const (
	defaultWeightMin   = int64(1)  // uniform link-weight lower bound
	defaultWeightMax   = int64(5)  // uniform link-weight upper bound
	defaultCapacity    = int64(10) // constant per-link bandwidth budget
	defaultMaxAttempts = 100       // connectivity resampling budget
)

// WeightFn produces a link weight from an optional RNG. It must be
// deterministic for a given RNG state; a nil RNG yields the function's
// deterministic fallback.
type WeightFn func(rng *rand.Rand) int64

// CapacityFn produces a link capacity from an optional RNG, with the same
// determinism contract as WeightFn.
type CapacityFn func(rng *rand.Rand) int64

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	idFn        func(int) string // vertex index → ID
	rng         *rand.Rand       // nil means "no randomness"
	weightFn    WeightFn
	capacityFn  CapacityFn
	maxAttempts int // BuildConnectedGraph resampling budget
}

// newBuilderConfig resolves deterministic defaults and applies opts in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:        decimalID,
		rng:         nil,
		weightFn:    UniformWeightFn(defaultWeightMin, defaultWeightMax),
		capacityFn:  ConstantCapacityFn(defaultCapacity),
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string { return strconv.Itoa(i) }

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max]
// inclusive. Panics if min < 0 or max < min. A nil RNG yields min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic("builder: UniformWeightFn requires 0 <= min <= max")
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// ConstantCapacityFn returns a CapacityFn that always yields value.
// Panics if value <= 0.
func ConstantCapacityFn(value int64) CapacityFn {
	if value <= 0 {
		panic("builder: ConstantCapacityFn requires a positive value")
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformCapacityFn returns a CapacityFn sampling uniformly in [min, max]
// inclusive. Panics if min <= 0 or max < min. A nil RNG yields min.
func UniformCapacityFn(min, max int64) CapacityFn {
	if min <= 0 || max < min {
		panic("builder: UniformCapacityFn requires 0 < min <= max")
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
