// SPDX-License-Identifier: MIT
package anticluster

import (
	"github.com/katalvlaran/anticlust/category"
	"github.com/katalvlaran/anticlust/matrix"
	"github.com/katalvlaran/anticlust/objective"
	"github.com/katalvlaran/anticlust/partition"
	"github.com/katalvlaran/anticlust/point"
)

// Diversity runs the exchange optimizer under the diversity objective: the
// sum, over clusters, of pairwise distances between its members, read from
// a supplied distance matrix. dist is N·N doubles, column-major,
// interpreted as a symmetric distance matrix with zero diagonal (not
// re-validated here — callers own that precondition). clusters is
// overwritten in place with the optimized assignment.
//
// When opts.UseCategories is true, the invariant
// #{i : categories[i]=c AND clusters[i]=k} is preserved: swap only ever
// exchanges same-category elements, so per-category distribution across
// clusters is stable.
//
// Complexity: Θ(L̄) per candidate pair scored, where L̄ is the average
// cluster size.
func Diversity(dist []float64, n, k int, frequencies []int, clusters []int, opts DiversityOptions) (Result, error) {
	if n <= 0 || k <= 0 {
		return Result{}, ErrDimensionMismatch
	}
	if n > 0 && n > (1<<62)/n {
		return Result{}, ErrOutOfMemory
	}
	if len(frequencies) != k || len(clusters) != n || len(dist) != n*n {
		return Result{}, ErrDimensionMismatch
	}

	var categories []int
	if opts.UseCategories {
		if len(opts.Categories) != n {
			return Result{}, ErrDimensionMismatch
		}
		categories = opts.Categories
	}

	store, err := point.NewStoreNoFeatures(n, clusters, categories)
	if err != nil {
		return Result{}, ErrDimensionMismatch
	}

	idx, err := partition.NewIndex(store, frequencies)
	if err != nil {
		return Result{}, ErrInvalidFrequencies
	}

	distMat, err := matrix.NewDenseColumnMajor(dist, n, n)
	if err != nil {
		return Result{}, ErrDimensionMismatch
	}
	cache := objective.NewDiversityCache(distMat, idx)

	var partners *category.Index
	if opts.UseCategories {
		partners, err = category.NewIndex(opts.Categories, opts.CategoryFrequencies)
		if err != nil {
			return Result{}, ErrInvalidCategories
		}
	} else {
		partners = category.Degenerate(n)
	}

	result := runExchange(n, store, idx, cache, partners, opts.Logger)
	copy(clusters, result.Clusters)

	return result, nil
}
