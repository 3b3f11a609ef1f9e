// SPDX-License-Identifier: MIT
// Package: FlowLM/builder
//
// options.go - functional options resolving into builderConfig.
//
// Option constructors panic on meaningless arguments (nil functions,
// non-positive budgets); runtime construction never panics.
package builder

import "math/rand"

// Option configures the builder before constructors run.
type Option func(*builderConfig)

// WithSeed installs a deterministic RNG seeded with seed.
// Required by stochastic constructors such as Waxman.
func WithSeed(seed int64) Option {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs an explicit RNG; use when several builders must share
// one stream. Panics on nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("builder: WithRand requires a non-nil rng")
	}

	return func(cfg *builderConfig) { cfg.rng = rng }
}

// WithIDScheme overrides the vertex ID scheme (default decimal "0","1",...).
// Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithIDScheme requires a non-nil function")
	}

	return func(cfg *builderConfig) { cfg.idFn = fn }
}

// WithWeightFn overrides the link-weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn requires a non-nil function")
	}

	return func(cfg *builderConfig) { cfg.weightFn = fn }
}

// WithCapacityFn overrides the link-capacity generator. Panics on nil.
func WithCapacityFn(fn CapacityFn) Option {
	if fn == nil {
		panic("builder: WithCapacityFn requires a non-nil function")
	}

	return func(cfg *builderConfig) { cfg.capacityFn = fn }
}

// WithMaxAttempts bounds the BuildConnectedGraph resampling loop.
// Panics if attempts < 1.
func WithMaxAttempts(attempts int) Option {
	if attempts < 1 {
		panic("builder: WithMaxAttempts requires attempts >= 1")
	}

	return func(cfg *builderConfig) { cfg.maxAttempts = attempts }
}
