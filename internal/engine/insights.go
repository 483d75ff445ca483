package engine

import (
	"fmt"
	"math"
	"strings"

	"ascend/internal/domain"
)

const (
	maxImprovementAreas = 5
	maxQuickWins        = 3
)

// Band boundaries live in data so each threshold stays independently
// testable instead of being buried in nested conditionals.

type insightBand struct {
	min  float64
	text string // fmt template with one %s for the dimension label
}

var scoreInsightBands = []insightBand{
	{8, "Your %s is exceptional and is one of your greatest assets."},
	{6, "Your %s is solid, with clear room to reach the next level."},
	{4, "Your %s holds real untapped potential waiting to be developed."},
	{math.Inf(-1), "Your %s is your biggest opportunity for immediate growth."},
}

var gapInsightBands = []insightBand{
	{3, "There is substantial headroom in your %s; focused effort here will pay off quickly."},
	{2, "There is moderate headroom in your %s for steady improvement."},
	{math.Inf(-1), "You are operating close to your current potential in your %s."},
}

// foundationNotes fire only when a dimension scores below 6; each one
// frames that dimension as a multiplier for the other six.
var foundationNotes = map[domain.Dimension]string{
	domain.DimensionPhysicalVitality:    "Physical vitality is the battery every other dimension draws from; raising it raises everything.",
	domain.DimensionMentalClarity:       "Mental clarity multiplies every other area: a focused mind makes progress in all seven dimensions cheaper.",
	domain.DimensionEmotionalMastery:    "Emotional mastery is the stabilizer; without it, gains in the other dimensions leak away under stress.",
	domain.DimensionSpiritualConnection: "Spiritual connection gives the other six dimensions their direction; without it, effort scatters.",
	domain.DimensionRelationships:       "Relationships are the support structure that keeps growth in the other dimensions sustainable.",
	domain.DimensionCareerPurpose:       "Career and purpose fund and focus the rest of your life; drift here drags on every other dimension.",
	domain.DimensionFinancialAbundance:  "Financial abundance buys the time and calm the other dimensions need room to grow in.",
}

func bandText(bands []insightBand, value float64, label string) string {
	for _, b := range bands {
		if value >= b.min {
			return fmt.Sprintf(b.text, label)
		}
	}
	return ""
}

// dimensionInsights builds the ordered insight sentences for one dimension:
// a score-band sentence, a gap-band sentence, and the foundation note when
// the current score is below 6.
func (e *Engine) dimensionInsights(dim domain.Dimension, current, gap float64) []string {
	label := dim.Label()
	insights := []string{
		bandText(scoreInsightBands, current, label),
		bandText(gapInsightBands, gap, label),
	}
	if current < 6 {
		if note, ok := foundationNotes[dim]; ok {
			insights = append(insights, note)
		}
	}
	return insights
}

// improvementAreas lists the low-scoring items of a dimension, capped at
// five, plus two generic entries when the dimension itself is weak.
func (e *Engine) improvementAreas(dim domain.Dimension, items []domain.AssessmentItem, current float64) []string {
	var areas []string
	for _, it := range items {
		if it.Response > 5 {
			continue
		}
		if len(areas) >= maxImprovementAreas {
			break
		}
		areas = append(areas, fmt.Sprintf("%s: %s", it.Category, strings.ToLower(it.Question)))
	}
	if current < 6 {
		label := strings.ToLower(dim.Label())
		areas = append(areas,
			fmt.Sprintf("build consistent daily habits in %s", label),
			fmt.Sprintf("seek guidance and resources for %s", label),
		)
	}
	return capList(areas, maxImprovementAreas)
}

// quickWinSuggestions flags items sitting just under the next response
// milestone. Near-threshold items need the smallest marginal improvement to
// cross a visible line, which is what makes them motivating targets.
func (e *Engine) quickWinSuggestions(dim domain.Dimension, items []domain.AssessmentItem, current float64) []string {
	var wins []string
	for _, it := range items {
		if it.Response < 6 || it.Response >= 8 {
			continue
		}
		if len(wins) >= maxQuickWins {
			break
		}
		wins = append(wins, fmt.Sprintf("%s: you are close in \"%s\", one small push moves this up a level", it.Category, strings.ToLower(it.Question)))
	}
	if current < 7 {
		label := strings.ToLower(dim.Label())
		wins = append(wins,
			fmt.Sprintf("set one specific, measurable goal for %s this week", label),
			fmt.Sprintf("find an accountability partner for your %s habits", label),
		)
	}
	return capList(wins, maxQuickWins)
}

// capList trims a list to its documented maximum length.
func capList(list []string, max int) []string {
	if len(list) > max {
		return list[:max]
	}
	return list
}
