package engine

import (
	"fmt"
	"math"

	"ascend/internal/domain"
)

type forecastBand struct {
	min            int
	currentState   string
	potentialState string
	horizon        string
	outcomes       []string
}

var forecastBands = []forecastBand{
	{
		min:            80,
		currentState:   "You are already performing near the top of the scale, with mature systems carrying most areas of your life.",
		potentialState: "Full integration: all seven dimensions reinforcing each other at a standard most people never reach.",
		horizon:        "3-6 months",
		outcomes: []string{
			"Your strongest dimensions stay strong with less deliberate effort.",
			"The remaining gaps close through refinement rather than overhaul.",
			"You become a reference point for the people around you.",
			"Your systems survive disruption without losing momentum.",
		},
	},
	{
		min:            60,
		currentState:   "You are performing well, with solid habits in most areas and a few dimensions lagging behind the rest.",
		potentialState: "An integrated life where your strong areas pull the lagging ones up instead of compensating for them.",
		horizon:        "6-12 months",
		outcomes: []string{
			"Your lagging dimensions climb a full level.",
			"Daily execution stops depending on motivation.",
			"Energy freed from firefighting flows into growth.",
			"Your composite score moves firmly into the top band.",
		},
	},
	{
		min:            40,
		currentState:   "You have a workable foundation, but most dimensions run on effort rather than systems.",
		potentialState: "A structured life where consistent routines carry you and progress no longer resets every few weeks.",
		horizon:        "12-18 months",
		outcomes: []string{
			"Two or three priority dimensions rise visibly within the first quarter.",
			"Keystone habits take root and stop requiring willpower.",
			"Setbacks cost days instead of months.",
			"Your sense of direction sharpens as early wins accumulate.",
		},
	},
	{
		min:            math.MinInt,
		currentState:   "You are at the start of the climb, with most dimensions waiting on their first consistent habits.",
		potentialState: "A transformed baseline: stable routines, recovered energy, and a clear direction across every area.",
		horizon:        "18-24 months",
		outcomes: []string{
			"The first foundational habits lock in within weeks, not months.",
			"Quick wins generate the momentum the bigger changes need.",
			"Your weakest dimension stops draining the others.",
			"Each quarter ends measurably ahead of the one before it.",
		},
	},
}

// dimensionActionBands choose the per-dimension key-action phrasing by a
// secondary threshold on that dimension's current score.
var dimensionActionBands = []insightBand{
	{6, "refine what already works and turn it into a system"},
	{4, "commit to one consistent daily practice and measure it weekly"},
	{math.Inf(-1), "start with the smallest foundational habit you can repeat every day"},
}

// buildForecast classifies the ascension score into one of four bands and
// templates the key actions from the long-term-focus dimensions.
func buildForecast(ascension int, focus []domain.Dimension, scores map[domain.Dimension]domain.DimensionScore) domain.TransformationForecast {
	band := forecastBands[len(forecastBands)-1]
	for _, b := range forecastBands {
		if ascension >= b.min {
			band = b
			break
		}
	}

	actions := make([]string, 0, len(focus))
	for _, dim := range focus {
		ds := scores[dim]
		action := ""
		for _, ab := range dimensionActionBands {
			if ds.CurrentScore >= ab.min {
				action = ab.text
				break
			}
		}
		actions = append(actions, fmt.Sprintf("Focus on %s: %s", dim.Label(), action))
	}

	outcomes := make([]string, len(band.outcomes))
	copy(outcomes, band.outcomes)

	return domain.TransformationForecast{
		CurrentState:     band.currentState,
		PotentialState:   band.potentialState,
		TimeToTransform:  band.horizon,
		KeyActions:       actions,
		ExpectedOutcomes: outcomes,
	}
}
