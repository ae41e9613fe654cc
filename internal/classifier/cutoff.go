package classifier

import (
	"fmt"

	"filmlens/internal/services"
)

// ChooseRatioCutoff walks the descending cutoff ladder and returns the first
// revenue-to-budget ratio cutoff that leaves at least minPerClass examples on
// BOTH sides of the split. A movie counts as a hit when its ratio strictly
// exceeds the cutoff.
//
// The ladder is an ordered policy, not a search: earlier (stricter) cutoffs
// are preferred, and relaxation stops at the first balanced split. When no
// rung balances the classes the training run fails with ErrTrainingData.
func ChooseRatioCutoff(ratios []float64, ladder []float64, minPerClass int) (float64, error) {
	if len(ratios) == 0 {
		return 0, services.Wrap(services.ErrTrainingData, "classifier", "choose cutoff", "no training ratios", nil)
	}
	if len(ladder) == 0 {
		return 0, services.Wrap(services.ErrTrainingData, "classifier", "choose cutoff", "empty cutoff ladder", nil)
	}
	if minPerClass < 1 {
		minPerClass = 1
	}

	for _, cutoff := range ladder {
		hits, misses := splitCounts(ratios, cutoff)
		if hits >= minPerClass && misses >= minPerClass {
			return cutoff, nil
		}
	}
	return 0, services.Wrap(services.ErrTrainingData, "classifier", "choose cutoff",
		fmt.Sprintf("no ladder cutoff yields %d examples of both classes over %d movies", minPerClass, len(ratios)), nil)
}

func splitCounts(ratios []float64, cutoff float64) (hits, misses int) {
	for _, ratio := range ratios {
		if ratio > cutoff {
			hits++
		} else {
			misses++
		}
	}
	return hits, misses
}
