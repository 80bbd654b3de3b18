// SPDX-License-Identifier: MIT
// Package matrix provides a dense, row-major float64 matrix used by the
// anticlust core to hold the diversity objective's precomputed N×N
// distance matrix. Per-element feature vectors live in package point.
//
// Dense is intentionally small: anticlust needs storage, bounds-checked
// access, and one column-major ingestion helper — not a general linear
// algebra suite.
package matrix
