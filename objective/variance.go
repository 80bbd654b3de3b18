// SPDX-License-Identifier: MIT
package objective

import (
	"github.com/katalvlaran/anticlust/partition"
	"github.com/katalvlaran/anticlust/point"
)

// VarianceCache implements Cache for the variance objective: a K×M
// matrix of cluster centroids plus a K-vector of per-cluster within-
// cluster squared-distance sums, maintained incrementally across swaps.
type VarianceCache struct {
	store    *point.Store
	idx      *partition.Index
	m        int
	centroid [][]float64
	v        []float64
	total    float64
}

// NewVarianceCache computes initial centroids and v_c directly from
// store/idx's current membership. Complexity: O(n*m).
func NewVarianceCache(store *point.Store, idx *partition.Index, m int) *VarianceCache {
	k := idx.K()
	c := &VarianceCache{store: store, idx: idx, m: m, centroid: make([][]float64, k), v: make([]float64, k)}

	for cl := 0; cl < k; cl++ {
		c.centroid[cl] = centroidOf(store, idx.Members(cl), m)
		c.v[cl] = withinSumOf(store, idx.Members(cl), c.centroid[cl])
		c.total += c.v[cl]
	}

	return c
}

// Total returns Σ_c v_c.
func (c *VarianceCache) Total() float64 { return c.total }

// TentativeSwap shifts both centroids by the feature delta scaled by
// 1/freq, physically swaps membership, then recomputes v_a and v_b from
// members (O(|a|·m + |b|·m)). Complexity: O(|cluster a| + |cluster b|) in
// m-scaled feature-vector work.
func (c *VarianceCache) TentativeSwap(i, j int) (float64, func()) {
	a, b := c.idx.ClusterOf(i), c.idx.ClusterOf(j)
	if a == b {
		return 0, func() {}
	}

	freqA := float64(c.idx.Size(a))
	freqB := float64(c.idx.Size(b))
	fi := c.store.At(i).Features
	fj := c.store.At(j).Features

	oldCentroidA := append([]float64(nil), c.centroid[a]...)
	oldCentroidB := append([]float64(nil), c.centroid[b]...)
	oldVA, oldVB := c.v[a], c.v[b]
	oldTotal := c.total

	for t := 0; t < c.m; t++ {
		c.centroid[a][t] += (fj[t] - fi[t]) / freqA
		c.centroid[b][t] += (fi[t] - fj[t]) / freqB
	}

	c.idx.Swap(i, j)

	newVA := withinSumOf(c.store, c.idx.Members(a), c.centroid[a])
	newVB := withinSumOf(c.store, c.idx.Members(b), c.centroid[b])
	delta := (newVA + newVB) - (oldVA + oldVB)

	c.v[a], c.v[b] = newVA, newVB
	c.total += delta

	undo := func() {
		c.idx.Swap(i, j)
		c.centroid[a] = oldCentroidA
		c.centroid[b] = oldCentroidB
		c.v[a], c.v[b] = oldVA, oldVB
		c.total = oldTotal
	}

	return delta, undo
}

// centroidOf computes the mean feature vector over members. Complexity: O(|members|*m).
func centroidOf(store *point.Store, members []int, m int) []float64 {
	sum := make([]float64, m)
	for _, id := range members {
		f := store.At(id).Features
		for t := 0; t < m; t++ {
			sum[t] += f[t]
		}
	}
	n := float64(len(members))
	if n > 0 {
		for t := 0; t < m; t++ {
			sum[t] /= n
		}
	}

	return sum
}

// withinSumOf computes Σ_{e ∈ members} ‖e.features − centroid‖². Complexity: O(|members|*m).
func withinSumOf(store *point.Store, members []int, centroid []float64) float64 {
	var sum float64
	for _, id := range members {
		f := store.At(id).Features
		var d float64
		for t := range centroid {
			diff := f[t] - centroid[t]
			d += diff * diff
		}
		sum += d
	}

	return sum
}
