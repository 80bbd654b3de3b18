// SPDX-License-Identifier: MIT
// Package anticluster implements the exchange optimizer: a single-pass,
// deterministic local search that maximizes a heterogeneity objective over
// a fixed-size partition by tentatively swapping each element against its
// admissible partners and committing only the single best
// strictly-improving swap.
//
// Design goals:
//   - Mathematical rigor: precise sentinel errors, explicit invariants.
//   - Determinism: fixed initial assignment + fixed partner order ⇒
//     reproducible output. No RNG anywhere in this package.
//   - One pass, not iterated to convergence: callers seeking further
//     improvement invoke Variance/Diversity again with the previous
//     output as the new initial assignment.
package anticluster

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors. Never wrapped with fmt.Errorf where a sentinel suffices.
var (
	// ErrOutOfMemory is returned when a caller-controlled size would
	// overflow platform int before any allocation is attempted — the one
	// allocation failure a Go program can predict ahead of time.
	ErrOutOfMemory = errors.New("anticluster: allocation would overflow")

	// ErrDimensionMismatch indicates a caller-supplied slice length does
	// not match the declared element/feature/cluster count.
	ErrDimensionMismatch = errors.New("anticluster: dimension mismatch")

	// ErrInvalidFrequencies indicates frequencies do not sum to N, or a
	// cluster id in clusters is out of [0,K).
	ErrInvalidFrequencies = errors.New("anticluster: invalid cluster frequencies")

	// ErrInvalidCategories indicates cat_frequencies does not sum to N,
	// or a category id is out of range, when categorical constraints are
	// enabled.
	ErrInvalidCategories = errors.New("anticluster: invalid category frequencies")
)

// Result wraps the optimized assignment with run diagnostics. Clusters is
// also written back into the caller's clusters slice in place; Result is
// returned in addition for callers who want the final objective value
// without recomputing it, and for the CLI to report.
type Result struct {
	// Clusters is the optimized cluster assignment. It is a fresh slice;
	// its contents are also copied into the clusters argument passed in.
	Clusters []int

	// Objective is the final Σ_c v_c after the single pass.
	Objective float64

	// SwapsCommitted counts how many of the N outer-loop steps committed
	// an improving swap.
	SwapsCommitted int

	// CandidatesEvaluated counts tentative swaps scored across the whole
	// pass (diagnostic only; not used by the algorithm).
	CandidatesEvaluated int
}

// DiversityOptions configures the Diversity entry point's optional
// categorical exchange constraints.
type DiversityOptions struct {
	// UseCategories toggles categorical exchange constraints: when false,
	// Categories/CategoryFrequencies are ignored and every element is
	// treated as belonging to a single admissible-partner pool.
	UseCategories bool

	// Categories holds each element's category label in [0,C); ignored
	// when UseCategories is false.
	Categories []int

	// CategoryFrequencies holds per-category element counts, summing to
	// N; ignored when UseCategories is false.
	CategoryFrequencies []int

	// Logger receives structured progress output (one debug line per
	// committed swap, one info line summarizing the call). Nil disables
	// logging entirely; this has zero effect on Result.
	Logger *logrus.Logger
}
