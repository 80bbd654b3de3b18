// SPDX-License-Identifier: MIT
package objective

import (
	"github.com/katalvlaran/anticlust/matrix"
	"github.com/katalvlaran/anticlust/partition"
)

// DiversityCache implements Cache for the diversity objective: a
// K-vector of per-cluster pairwise-distance sums against a supplied N×N
// distance matrix, maintained incrementally across swaps.
type DiversityCache struct {
	dist  *matrix.Dense
	idx   *partition.Index
	v     []float64
	total float64
}

// NewDiversityCache computes initial v_c = Σ_{e,e' ∈ c, e before e'} D[e,e']
// directly from idx's current membership. Complexity: O(Σ_c |c|²).
func NewDiversityCache(dist *matrix.Dense, idx *partition.Index) *DiversityCache {
	k := idx.K()
	c := &DiversityCache{dist: dist, idx: idx, v: make([]float64, k)}

	for cl := 0; cl < k; cl++ {
		c.v[cl] = pairwiseSum(dist, idx.Members(cl))
		c.total += c.v[cl]
	}

	return c
}

// Total returns Σ_c v_c.
func (c *DiversityCache) Total() float64 { return c.total }

// TentativeSwap applies a three-phase subtract/swap/add sequence: subtract
// i's and j's contributions from their current clusters, physically swap
// membership, then add back
// the now-relocated elements' contributions to their new clusters. The
// self-distance D[x,x] is never consulted (x is always excluded from its
// own sum) and the cross-pair D[i,j] is naturally excluded at each phase
// because the element being added is not yet a member when its
// contribution is summed. Complexity: O(|cluster a| + |cluster b|).
func (c *DiversityCache) TentativeSwap(i, j int) (float64, func()) {
	a, b := c.idx.ClusterOf(i), c.idx.ClusterOf(j)
	if a == b {
		return 0, func() {}
	}

	oldVA, oldVB := c.v[a], c.v[b]
	oldTotal := c.total

	c.v[a] -= sumDistTo(c.dist, i, c.idx.Members(a), i)
	c.v[b] -= sumDistTo(c.dist, j, c.idx.Members(b), j)

	c.idx.Swap(i, j)

	c.v[a] += sumDistTo(c.dist, j, c.idx.Members(a), j)
	c.v[b] += sumDistTo(c.dist, i, c.idx.Members(b), i)

	delta := (c.v[a] + c.v[b]) - (oldVA + oldVB)
	c.total += delta

	undo := func() {
		c.idx.Swap(i, j)
		c.v[a], c.v[b] = oldVA, oldVB
		c.total = oldTotal
	}

	return delta, undo
}

// sumDistTo sums D[x, e] over members, skipping e==exclude. Complexity: O(|members|).
func sumDistTo(dist *matrix.Dense, x int, members []int, exclude int) float64 {
	var sum float64
	for _, e := range members {
		if e == exclude {
			continue
		}
		w, _ := dist.At(x, e)
		sum += w
	}

	return sum
}

// pairwiseSum sums D[e,e'] over unordered pairs of members, each counted
// once. Complexity: O(|members|²).
func pairwiseSum(dist *matrix.Dense, members []int) float64 {
	var sum float64
	for p := 0; p < len(members); p++ {
		for q := p + 1; q < len(members); q++ {
			w, _ := dist.At(members[p], members[q])
			sum += w
		}
	}

	return sum
}
