package objective_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/anticlust/matrix"
	"github.com/katalvlaran/anticlust/objective"
	"github.com/katalvlaran/anticlust/partition"
	"github.com/katalvlaran/anticlust/point"
	"github.com/stretchr/testify/require"
)

// buildLineDist builds the pairwise-distance matrix for points on a line.
func buildLineDist(t *testing.T, pts []float64) *matrix.Dense {
	t.Helper()
	n := len(pts)
	d, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, d.Set(i, j, math.Abs(pts[i]-pts[j])))
		}
	}

	return d
}

func TestDiversityCacheOnFourPoints(t *testing.T) {
	// points [0,10,11,21], clusters=[0,0,1,1]: within-sums = 10+10 = 20.
	dist := buildLineDist(t, []float64{0, 10, 11, 21})
	s, err := point.NewStoreNoFeatures(4, []int{0, 0, 1, 1}, nil)
	require.NoError(t, err)
	idx, err := partition.NewIndex(s, []int{2, 2})
	require.NoError(t, err)

	c := objective.NewDiversityCache(dist, idx)
	require.InDelta(t, 20.0, c.Total(), 1e-9)
}

func TestDiversityCacheTentativeSwapMatchesFullRecompute(t *testing.T) {
	dist := buildLineDist(t, []float64{0, 10, 11, 21})
	s, err := point.NewStoreNoFeatures(4, []int{0, 0, 1, 1}, nil)
	require.NoError(t, err)
	idx, err := partition.NewIndex(s, []int{2, 2})
	require.NoError(t, err)
	c := objective.NewDiversityCache(dist, idx)

	before := c.Total()
	delta, undo := c.TentativeSwap(1, 2) // swap 10 <-> 11
	require.InDelta(t, before+delta, c.Total(), 1e-9)

	var full float64
	for cl := 0; cl < idx.K(); cl++ {
		members := idx.Members(cl)
		for p := 0; p < len(members); p++ {
			for q := p + 1; q < len(members); q++ {
				w, _ := dist.At(members[p], members[q])
				full += w
			}
		}
	}
	require.InDelta(t, full, c.Total(), 1e-9)
	require.InDelta(t, 22.0, c.Total(), 1e-9) // [0,11,10,21] -> {0,11},{10,21} = 11+11=22

	undo()
	require.InDelta(t, before, c.Total(), 1e-9)
}
