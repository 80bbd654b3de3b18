// SPDX-License-Identifier: MIT
package anticluster

import (
	"github.com/katalvlaran/anticlust/category"
	"github.com/katalvlaran/anticlust/objective"
	"github.com/katalvlaran/anticlust/partition"
	"github.com/katalvlaran/anticlust/point"
	"github.com/sirupsen/logrus"
)

// Variance runs the exchange optimizer under the variance objective: the
// sum, over clusters, of squared Euclidean distances from each member to
// its cluster's centroid. data is N·M doubles, column-major (element (i,j)
// at data[j*n+i]). clusters is overwritten in place with the optimized
// assignment; cluster sizes are preserved. logger may be nil to disable
// structured logging.
//
// Complexity: Θ(L̄ · m) per candidate pair scored, where L̄ is the average
// cluster size; Θ(n²) candidates in the unconstrained (no-category) case.
func Variance(data []float64, n, m, k int, frequencies []int, clusters []int, logger *logrus.Logger) (Result, error) {
	if n <= 0 || m <= 0 || k <= 0 {
		return Result{}, ErrDimensionMismatch
	}
	if n > 0 && m > (1<<62)/n {
		return Result{}, ErrOutOfMemory
	}
	if len(frequencies) != k || len(clusters) != n || len(data) != n*m {
		return Result{}, ErrDimensionMismatch
	}

	store, err := point.NewStore(data, n, m, clusters, nil)
	if err != nil {
		return Result{}, ErrDimensionMismatch
	}

	idx, err := partition.NewIndex(store, frequencies)
	if err != nil {
		return Result{}, ErrInvalidFrequencies
	}

	cache := objective.NewVarianceCache(store, idx, m)
	partners := category.Degenerate(n)

	result := runExchange(n, store, idx, cache, partners, logger)
	copy(clusters, result.Clusters)

	return result, nil
}
