package engine

import (
	"math"

	"ascend/internal/domain"
)

// scoreDimension computes the weighted current and potential score for the
// items of a single dimension. The potential score models headroom as a
// flat ceiling-bounded bonus per item, not a statistical projection.
func (e *Engine) scoreDimension(items []domain.AssessmentItem) (current, potential float64) {
	if len(items) == 0 {
		// Neutral midpoint and full headroom when a dimension arrives
		// with no submitted items.
		return 5.0, 10.0
	}

	var weightSum, currentSum, potentialSum float64
	for _, it := range items {
		w := it.Weight
		if w <= 0 {
			w = 1
		}
		response := float64(it.Response)
		weightSum += w
		currentSum += response * w
		potentialSum += math.Min(10, response+e.params.PotentialBonus) * w
	}
	if weightSum == 0 {
		return 5.0, 10.0
	}

	return round1(currentSum / weightSum), round1(potentialSum / weightSum)
}

// round1 redondea a un decimal.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
