// SPDX-License-Identifier: MIT
// Package category implements the category partner index: for each
// category, the ordered list of element ids belonging to it, enabling the
// exchange optimizer to iterate only over admissible swap partners. Built
// once from caller input; immutable thereafter.
package category

import "errors"

// ErrInvalidCategories indicates cat_frequencies does not sum to N, a
// negative frequency, or a category id out of [0,C).
var ErrInvalidCategories = errors.New("category: invalid category frequencies")

// Index holds, per category, the ordered list of element ids sharing that
// category label.
type Index struct {
	partners [][]int
}

// NewIndex builds the category partner index from per-element category
// labels and the caller's category frequency table. Complexity: O(n).
func NewIndex(categories []int, catFrequencies []int) (*Index, error) {
	n := len(categories)
	c := len(catFrequencies)

	var sum int
	for cat := 0; cat < c; cat++ {
		if catFrequencies[cat] < 0 {
			return nil, ErrInvalidCategories
		}
		sum += catFrequencies[cat]
	}
	if sum != n {
		return nil, ErrInvalidCategories
	}

	partners := make([][]int, c)
	for cat := 0; cat < c; cat++ {
		partners[cat] = make([]int, 0, catFrequencies[cat])
	}

	for i := 0; i < n; i++ {
		cat := categories[i]
		if cat < 0 || cat >= c {
			return nil, ErrInvalidCategories
		}
		partners[cat] = append(partners[cat], i)
	}

	for cat := 0; cat < c; cat++ {
		if len(partners[cat]) != catFrequencies[cat] {
			return nil, ErrInvalidCategories
		}
	}

	return &Index{partners: partners}, nil
}

// Degenerate builds the C=1 index used when categorical constraints are
// disabled: a single category containing every element [0,n).
// Complexity: O(n).
func Degenerate(n int) *Index {
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}

	return &Index{partners: [][]int{all}}
}

// Partners returns the ordered element ids sharing category c. Complexity: O(1).
func (ix *Index) Partners(c int) []int { return ix.partners[c] }

// C returns the number of categories. Complexity: O(1).
func (ix *Index) C() int { return len(ix.partners) }
