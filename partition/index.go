// SPDX-License-Identifier: MIT
// Package partition implements the cluster membership index: for each
// cluster, a contiguous vector of member element ids, plus a parallel
// back-reference array mapping element id to its current position within
// that vector. This arena+index layout trades pointer chasing for
// cache-friendly slices and removes the allocation-failure path from Swap
// entirely, compared to a linked, sentinel-headed membership structure.
//
// Ownership is strict: the element's cluster label is owned by package
// point's Store; Index holds only back-references (members, handleOf),
// never a shadow copy of the cluster label.
package partition

import (
	"errors"

	"github.com/katalvlaran/anticlust/point"
)

// ErrInvalidFrequencies indicates frequencies do not sum to N, contain a
// negative entry, or a cluster id is out of [0,K).
var ErrInvalidFrequencies = errors.New("partition: invalid cluster frequencies")

// Index is the cluster membership index. members[c] holds the ids of
// cluster c's elements in arbitrary but stable order; handleOf[id] is
// id's current position within members[store.ClusterOf(id)].
type Index struct {
	store    *point.Store
	members  [][]int
	handleOf []int
}

// NewIndex builds the membership index from store's current cluster
// assignment. frequencies[c] must equal the number of elements already
// assigned to c in store; the O(n) bucketing pass this constructor
// performs anyway makes that mismatch free to detect and report as
// ErrInvalidFrequencies rather than silently producing garbage.
// Complexity: O(n).
func NewIndex(store *point.Store, frequencies []int) (*Index, error) {
	n := store.N()
	k := len(frequencies)

	var sum int
	for c := 0; c < k; c++ {
		if frequencies[c] < 0 {
			return nil, ErrInvalidFrequencies
		}
		sum += frequencies[c]
	}
	if sum != n {
		return nil, ErrInvalidFrequencies
	}

	members := make([][]int, k)
	for c := 0; c < k; c++ {
		members[c] = make([]int, 0, frequencies[c])
	}
	handleOf := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		c := store.ClusterOf(i)
		if c < 0 || c >= k {
			return nil, ErrInvalidFrequencies
		}
		handleOf[i] = len(members[c])
		members[c] = append(members[c], i)
	}

	for c := 0; c < k; c++ {
		if len(members[c]) != frequencies[c] {
			return nil, ErrInvalidFrequencies
		}
	}

	return &Index{store: store, members: members, handleOf: handleOf}, nil
}

// K returns the number of clusters. Complexity: O(1).
func (ix *Index) K() int { return len(ix.members) }

// ClusterOf returns element i's current cluster, delegating to the
// backing Store (the sole owner of the cluster label). Complexity: O(1).
func (ix *Index) ClusterOf(i int) int { return ix.store.ClusterOf(i) }

// Members returns cluster c's member ids. The returned slice is owned by
// the index; callers must not mutate it directly — use Swap. Complexity: O(1).
func (ix *Index) Members(c int) []int { return ix.members[c] }

// Size returns the number of elements currently in cluster c. Complexity: O(1).
func (ix *Index) Size(c int) int { return len(ix.members[c]) }

// Swap exchanges the cluster affiliation of elements i and j in O(1),
// updating the Store's cluster labels and this index's handleOf/members
// consistently for both. It is self-inverse: Swap(i,j) followed by
// Swap(i,j) restores the Store's cluster labels, handleOf, and every
// member slice bit-for-bit. Element ids are never written here — only
// cluster labels and slice positions move.
func (ix *Index) Swap(i, j int) {
	a, b := ix.store.ClusterOf(i), ix.store.ClusterOf(j)
	hi, hj := ix.handleOf[i], ix.handleOf[j]

	ix.members[a][hi] = j
	ix.members[b][hj] = i

	ix.store.SetCluster(i, b)
	ix.store.SetCluster(j, a)
	ix.handleOf[i] = hj
	ix.handleOf[j] = hi
}
