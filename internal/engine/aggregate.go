package engine

import (
	"math"

	"ascend/internal/domain"
)

// aggregate reduces per-dimension scores into the 0-100 ascension score and
// picks the strongest dimension and the biggest opportunity. It computes
// over whatever subset of dimensions is present in scores, so a malformed
// catalog still yields a result instead of an error. Ties resolve to the
// first dimension in catalog order.
func aggregate(order []domain.Dimension, scores map[domain.Dimension]domain.DimensionScore) (ascension int, strongest, opportunity domain.Dimension) {
	var (
		sum     float64
		count   int
		bestCur = math.Inf(-1)
		bestGap = math.Inf(-1)
	)
	for _, dim := range order {
		ds, ok := scores[dim]
		if !ok {
			continue
		}
		sum += ds.CurrentScore
		count++
		if ds.CurrentScore > bestCur {
			bestCur = ds.CurrentScore
			strongest = dim
		}
		if ds.Gap > bestGap {
			bestGap = ds.Gap
			opportunity = dim
		}
	}
	if count == 0 {
		return 0, "", ""
	}

	ascension = int(math.Round(sum / float64(count) * 10))
	if ascension < 0 {
		ascension = 0
	}
	if ascension > 100 {
		ascension = 100
	}
	return ascension, strongest, opportunity
}

// scoreSpread devuelve max-min de los current scores presentes.
func scoreSpread(order []domain.Dimension, scores map[domain.Dimension]domain.DimensionScore) float64 {
	min, max := math.Inf(1), math.Inf(-1)
	for _, dim := range order {
		ds, ok := scores[dim]
		if !ok {
			continue
		}
		if ds.CurrentScore < min {
			min = ds.CurrentScore
		}
		if ds.CurrentScore > max {
			max = ds.CurrentScore
		}
	}
	if max < min {
		return 0
	}
	return max - min
}
