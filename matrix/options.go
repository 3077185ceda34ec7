// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and the
// Jacobi eigen solver. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Constructors (NewDense, NewIdentity, NewRandom, NewDenseFrom) read the
//     numeric policy; Characteristics reads the solver settings. Options that
//     a call site does not read are ignored there.
//   - The numeric policy guards ingestion only (Set, AddAt, Increment).
//     Kernels never check their outputs: NaN/±Inf from degenerate input
//     must reach the caller.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultValidateNaNInf toggles finite-value validation in Set/AddAt.
	// Off by default: degenerate results must be representable in a Dense.
	DefaultValidateNaNInf = false
)

// Jacobi eigen solver.
const (
	// DefaultMaxSweeps caps the number of full off-diagonal sweeps.
	DefaultMaxSweeps = 50

	// DefaultWarmupSweeps is the number of leading sweeps that skip
	// rotations for entries below 0.2·sm/n². Later sweeps rotate every
	// non-zero entry. Negligible-entry zeroing starts once
	// sweep > DefaultWarmupSweeps+1.
	DefaultWarmupSweeps = 3

	// DefaultNegligibleEpsilon scales |d[p]|, |d[q]| when deciding whether
	// 100·|a[p][q]| is negligible and can be zeroed without a rotation.
	DefaultNegligibleEpsilon = 1e-18
)

const (
	warmupThresholdFactor = 0.2   // threshold = factor·sm/n² during warm-up
	negligibleScale       = 100.0 // g = scale·|a[p][q]| in the negligible test
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxSweepsInvalid    = "matrix: WithMaxSweeps: sweeps must be > 0"
	panicWarmupSweepsInvalid = "matrix: WithWarmupSweeps: sweeps must be >= 0"
	panicEpsilonInvalid      = "matrix: WithNegligibleEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	// numeric policy
	validateNaNInf bool // DefaultValidateNaNInf

	// eigen solver
	maxSweeps     int     // > 0; DefaultMaxSweeps
	warmupSweeps  int     // >= 0; DefaultWarmupSweeps
	negligibleEps float64 // >= 0; DefaultNegligibleEpsilon
}

// ---------- Constructors (WithX) ----------

// WithValidateNaNInf sets whether Set/AddAt/Increment reject NaN and ±Inf
// on matrices created with this option. Clone preserves the flag.
//
// AI-Hints:
//   - Enable for ingestion of external data; kernels still produce NaN/Inf
//     on degenerate input regardless of this flag.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}

// WithMaxSweeps caps Jacobi iterations. When the cap is reached the solver
// returns its current estimate without signalling non-convergence.
// Panics when sweeps <= 0.
func WithMaxSweeps(sweeps int) Option {
	if sweeps <= 0 {
		panic(panicMaxSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = sweeps }
}

// WithWarmupSweeps sets how many leading sweeps use the 0.2·sm/n² rotation
// threshold. Panics when sweeps < 0.
func WithWarmupSweeps(sweeps int) Option {
	if sweeps < 0 {
		panic(panicWarmupSweepsInvalid)
	}

	return func(o *Options) { o.warmupSweeps = sweeps }
}

// WithNegligibleEpsilon sets the relative scale under which an off-diagonal
// entry is zeroed instead of rotated. Panics when eps is NaN, ±Inf or negative.
func WithNegligibleEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.negligibleEps = eps }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters run in order; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		maxSweeps:      DefaultMaxSweeps,
		warmupSweeps:   DefaultWarmupSweeps,
		negligibleEps:  DefaultNegligibleEpsilon,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
