package engine

import (
	"fmt"
	"math"
	"sort"

	"ascend/internal/domain"
)

const maxFocusDimensions = 3

// quickWinDimensions selects dimensions sitting within the configured margin
// of their next level threshold, ordered by proximity, capped at three. A
// dimension already at the ceiling has no threshold left to cross.
func (e *Engine) quickWinDimensions(order []domain.Dimension, scores map[domain.Dimension]domain.DimensionScore) []domain.Dimension {
	type candidate struct {
		dim      domain.Dimension
		distance float64
	}
	var candidates []candidate
	for _, dim := range order {
		ds, ok := scores[dim]
		if !ok || ds.CurrentScore >= 10 {
			continue
		}
		distance := nextThreshold(ds.CurrentScore) - ds.CurrentScore
		if distance <= e.params.QuickWinMargin {
			candidates = append(candidates, candidate{dim: dim, distance: distance})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	var out []domain.Dimension
	for _, c := range candidates {
		if len(out) >= maxFocusDimensions {
			break
		}
		out = append(out, c.dim)
	}
	return out
}

// longTermFocus returns the three dimensions with the largest gaps,
// descending, ties broken by catalog order.
func longTermFocus(order []domain.Dimension, scores map[domain.Dimension]domain.DimensionScore) []domain.Dimension {
	present := make([]domain.Dimension, 0, len(order))
	for _, dim := range order {
		if _, ok := scores[dim]; ok {
			present = append(present, dim)
		}
	}
	sort.SliceStable(present, func(i, j int) bool {
		return scores[present[i]].Gap > scores[present[j]].Gap
	})
	if len(present) > maxFocusDimensions {
		present = present[:maxFocusDimensions]
	}
	return present
}

type overallBand struct {
	min  int
	text string
}

var overallInsightBands = []overallBand{
	{80, "You are operating at an elite level across your life. The work now is protecting what you have built and optimizing at the margins."},
	{60, "You have strong momentum across most areas of your life. Targeted effort on a small number of dimensions will compound quickly from here."},
	{40, "You have a real base to build from and significant headroom above you. Consistency will move your score far faster than intensity."},
	{math.MinInt, "You are at the start of a meaningful transformation. Small repeated actions in one or two areas will be enough to start the flywheel."},
}

const (
	spreadImbalanced = "Your dimensions are imbalanced: your strongest area far outpaces your weakest, so energy is best spent on the lagging ones."
	spreadModerate   = "Your dimensions show moderate balance, with room to bring the lower areas up toward your strengths."
	spreadBalanced   = "Your dimensions are well-balanced, which makes compounding improvements across all of them easier."
)

// overallInsights produces the composite narrative: the ascension-score band
// text plus one sentence about the spread between best and worst dimension.
func overallInsights(ascension int, order []domain.Dimension, scores map[domain.Dimension]domain.DimensionScore) []string {
	var insights []string
	for _, b := range overallInsightBands {
		if ascension >= b.min {
			insights = append(insights, b.text)
			break
		}
	}

	spread := scoreSpread(order, scores)
	switch {
	case spread > 4:
		insights = append(insights, spreadImbalanced)
	case spread > 2:
		insights = append(insights, spreadModerate)
	default:
		insights = append(insights, spreadBalanced)
	}
	return insights
}

// personalizedRecommendations builds the fixed-structure action list. The
// spiritual-foundation sentence goes first when that dimension is weak.
func personalizedRecommendations(strongest, opportunity domain.Dimension, scores map[domain.Dimension]domain.DimensionScore) []string {
	recs := []string{
		fmt.Sprintf("Leverage your %s: use it as the engine that funds progress everywhere else.", strongest.Label()),
		fmt.Sprintf("Direct your primary energy toward %s; it carries your largest untapped gains.", opportunity.Label()),
		"Limit your initial focus to two or three dimensions; spreading effort across all seven dilutes it.",
		"Anchor one small daily ritual that touches several dimensions at once, like a morning walk with a guided reflection.",
		"Recruit an accountability partner and review your progress together every week.",
	}
	if sc, ok := scores[domain.DimensionSpiritualConnection]; ok && sc.CurrentScore < 7 {
		recs = append([]string{
			"Address your Spiritual Connection first: it is the foundation the other six dimensions stand on.",
		}, recs...)
	}
	return recs
}
