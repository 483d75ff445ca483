package engine

import (
	"math"

	"ascend/internal/domain"
)

// levelBands maps a current score to a mastery level. A score sitting
// exactly on a threshold classifies at the higher level.
var levelBands = []struct {
	min   float64
	level domain.Level
}{
	{9, domain.LevelMaster},
	{7, domain.LevelExpert},
	{5, domain.LevelAdvanced},
	{3, domain.LevelDeveloping},
	{math.Inf(-1), domain.LevelNovice},
}

// ClassifyLevel is a total threshold function over all reals.
func ClassifyLevel(score float64) domain.Level {
	for _, b := range levelBands {
		if score >= b.min {
			return b.level
		}
	}
	return domain.LevelNovice
}

// levelThresholds are the upward milestones used for quick-win proximity.
var levelThresholds = []float64{3, 5, 7, 9, 10}

// nextThreshold returns the first milestone strictly above score.
func nextThreshold(score float64) float64 {
	for _, t := range levelThresholds {
		if score < t {
			return t
		}
	}
	return 10
}
