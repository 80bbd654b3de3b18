package category_test

import (
	"testing"

	"github.com/katalvlaran/anticlust/category"
	"github.com/stretchr/testify/require"
)

func TestNewIndexBuildsPartnerLists(t *testing.T) {
	// categories=[A,A,B,B,C,C] -> [0,0,1,1,2,2]
	ix, err := category.NewIndex([]int{0, 0, 1, 1, 2, 2}, []int{2, 2, 2})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, ix.Partners(0))
	require.Equal(t, []int{2, 3}, ix.Partners(1))
	require.Equal(t, []int{4, 5}, ix.Partners(2))
}

func TestNewIndexRejectsMismatchedFrequencies(t *testing.T) {
	_, err := category.NewIndex([]int{0, 0, 1, 1}, []int{3, 1})
	require.ErrorIs(t, err, category.ErrInvalidCategories)
}

func TestDegenerateIndexIsSingleCategory(t *testing.T) {
	ix := category.Degenerate(5)
	require.Equal(t, 1, ix.C())
	require.Equal(t, []int{0, 1, 2, 3, 4}, ix.Partners(0))
}
