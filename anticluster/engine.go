// SPDX-License-Identifier: MIT
package anticluster

import (
	"github.com/katalvlaran/anticlust/category"
	"github.com/katalvlaran/anticlust/objective"
	"github.com/katalvlaran/anticlust/partition"
	"github.com/katalvlaran/anticlust/point"
	"github.com/sirupsen/logrus"
)

// runExchange implements the two-level search loop shared by the variance
// and diversity variants (they differ only in which objective.Cache
// implementation is plugged in and which partner index is used).
//
// Outer loop visits every element in id order. For each element i, the
// inner loop scores every admissible partner by tentatively swapping,
// tracks the single best strictly-improving candidate (ties go to the
// first occurrence), undoes every probe, then — only if the best
// candidate's resulting total strictly exceeds the pre-iteration total —
// commits that one swap.
//
// Complexity: Θ(n · p · cost-of-TentativeSwap), where p is the average
// number of admissible partners per element.
func runExchange(n int, store *point.Store, idx *partition.Index, cache objective.Cache, partners *category.Index, log *logrus.Logger) Result {
	var swapsCommitted, candidatesEvaluated int

	for i := 0; i < n; i++ {
		cat := store.CategoryOf(i)
		candidates := partners.Partners(cat)

		currentS := cache.Total()
		bestObjective := 0.0
		bestJ := -1

		for _, j := range candidates {
			if j == i {
				continue
			}
			if idx.ClusterOf(i) == idx.ClusterOf(j) {
				continue
			}

			delta, undo := cache.TentativeSwap(i, j)
			candidatesEvaluated++
			tentativeS := currentS + delta
			if tentativeS > bestObjective {
				bestObjective = tentativeS
				bestJ = j
			}
			undo()
		}

		if bestJ != -1 && bestObjective > currentS {
			cache.TentativeSwap(i, bestJ)
			swapsCommitted++

			if log != nil {
				log.WithFields(logrus.Fields{
					"element": i,
					"partner": bestJ,
					"total":   cache.Total(),
				}).Debug("anticluster: committed swap")
			}
		}
	}

	out := make([]int, n)
	store.Clusters(out)

	if log != nil {
		log.WithFields(logrus.Fields{
			"elements":             n,
			"swaps_committed":      swapsCommitted,
			"candidates_evaluated": candidatesEvaluated,
			"objective":            cache.Total(),
		}).Info("anticluster: pass complete")
	}

	return Result{
		Clusters:            out,
		Objective:           cache.Total(),
		SwapsCommitted:      swapsCommitted,
		CandidatesEvaluated: candidatesEvaluated,
	}
}
