// SPDX-License-Identifier: MIT
// Package objective maintains, incrementally, the scalar heterogeneity
// objective S = Σ_c v_c across tentative and committed swaps. Two
// implementations share one Cache interface: Variance (centroid +
// within-cluster squared distance) and Diversity (pairwise distances from
// a supplied matrix).
package objective

// Cache maintains per-cluster objective contributions v_c and their sum S.
//
// TentativeSwap applies the swap of elements i (currently in cluster a)
// and j (currently in cluster b) to both the live membership index and
// this cache's internal buffers, and returns the resulting Δ to S along
// with an undo closure that restores every byte TentativeSwap touched.
// There is no separate commit step: leaving the undo closure uncalled
// keeps the swap; calling it restores the pre-swap state exactly,
// including the membership index.
type Cache interface {
	// Total returns the current Σ_c v_c.
	Total() float64

	// TentativeSwap performs the swap of i and j now, returning the delta
	// to Total() and an undo closure. Callers MUST either call the
	// returned undo closure or leave it uncalled (to keep the swap) before
	// the next call to TentativeSwap.
	TentativeSwap(i, j int) (delta float64, undo func())
}
