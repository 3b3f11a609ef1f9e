// SPDX-License-Identifier: MIT
// Package: FlowLM/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach context via %w wrapping, never by mutating the
//     sentinel message.
//   - Constructors return errors; panics are confined to WithX option
//     constructors receiving meaningless values.
package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n) is below the minimum
// the requested constructor supports.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a Waxman shape parameter (beta or alpha)
// outside its admissible domain.
var ErrInvalidProbability = errors.New("builder: probability parameter out of range")

// ErrNeedRandSource indicates that a stochastic constructor was invoked
// without an RNG; set WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder exhausted its attempt budget
// without producing a graph satisfying the requested invariant
// (typically connectivity).
var ErrConstructFailed = errors.New("builder: construction failed")
