// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option (functional option over unexported Options),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion (FromRows, AppendRow) and Set.
	DefaultValidateNaNInf = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf sets the finite-value policy of a new matrix.
// Implementation:
//   - Stage 1: return a setter writing the flag into Options.
//
// Behavior highlights:
//   - true (default): NaN and ±Inf are rejected with ErrNaNInf.
//   - false: any float64 passes through; elimination then propagates
//     NaN/Inf like the arithmetic does.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The policy is captured at creation and inherited by Clone.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}

// gatherOptions applies user options over defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
