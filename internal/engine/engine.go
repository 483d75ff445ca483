// Package engine computes a calibrated seven-dimension life analysis from
// questionnaire responses: per-dimension scores and insights, a composite
// ascension score, prioritized recommendations, a transformation forecast
// and a daily/weekly/monthly protocol. The engine performs no I/O and keeps
// no state between calls; persistence belongs to the caller.
package engine

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ascend/internal/domain"
)

// ErrInvalidInput is returned only when the item batch is absent entirely.
// Partial data (empty or missing dimensions) degrades to documented
// fallbacks instead of failing, so the caller always gets a usable plan.
var ErrInvalidInput = errors.New("assessment items required")

// Params holds the product-tuning constants of the engine. They are
// calibrated values, not derived ones, so they stay configurable.
type Params struct {
	// PotentialBonus is the flat ceiling-bounded headroom added to each
	// response when computing a dimension's potential score.
	PotentialBonus float64
	// QuickWinMargin is how close a dimension's current score must be to
	// its next level threshold to count as a quick win.
	QuickWinMargin float64
}

// DefaultParams returns the production tuning.
func DefaultParams() Params {
	return Params{PotentialBonus: 2.5, QuickWinMargin: 1.0}
}

// Engine is stateless and side-effect free; one instance is safe for any
// number of concurrent callers.
type Engine struct {
	catalog *Catalog
	params  Params
	logger  *zap.Logger
}

// New builds an engine. A nil catalog means the default questionnaire; zero
// params fields fall back to the defaults.
func New(catalog *Catalog, params Params, logger *zap.Logger) *Engine {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	defaults := DefaultParams()
	if params.PotentialBonus <= 0 {
		params.PotentialBonus = defaults.PotentialBonus
	}
	if params.QuickWinMargin <= 0 {
		params.QuickWinMargin = defaults.QuickWinMargin
	}
	return &Engine{catalog: catalog, params: params, logger: logger}
}

// Catalog expone el cuestionario estatico del engine.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Analyze converts a batch of answered items into the full composite
// analysis. Every dimension key is always present in the result; dimensions
// with no items fall back to the neutral midpoint.
func (e *Engine) Analyze(items []domain.AssessmentItem) (domain.CompositeAnalysis, error) {
	if items == nil {
		return domain.CompositeAnalysis{}, ErrInvalidInput
	}

	byDimension := make(map[domain.Dimension][]domain.AssessmentItem)
	for _, it := range items {
		byDimension[it.Dimension] = append(byDimension[it.Dimension], it)
	}

	order := domain.AllDimensions()
	scores := make(map[domain.Dimension]domain.DimensionScore, len(order))
	for _, dim := range order {
		dimItems := byDimension[dim]
		current, potential := e.scoreDimension(dimItems)
		ds := domain.DimensionScore{
			Dimension:      dim,
			CurrentScore:   current,
			PotentialScore: potential,
			Gap:            round1(potential - current),
			Level:          ClassifyLevel(current),
		}
		ds.Insights = e.dimensionInsights(dim, current, ds.Gap)
		ds.ImprovementAreas = e.improvementAreas(dim, dimItems, current)
		ds.QuickWins = e.quickWinSuggestions(dim, dimItems, current)
		scores[dim] = ds
	}

	ascension, strongest, opportunity := aggregate(order, scores)
	focus := longTermFocus(order, scores)

	analysis := domain.CompositeAnalysis{
		AscensionScore:              ascension,
		DimensionScores:             scores,
		StrongestDimension:          strongest,
		BiggestOpportunity:          opportunity,
		QuickWinDimensions:          e.quickWinDimensions(order, scores),
		LongTermFocusDimensions:     focus,
		OverallInsights:             overallInsights(ascension, order, scores),
		PersonalizedRecommendations: personalizedRecommendations(strongest, opportunity, scores),
		TransformationForecast:      buildForecast(ascension, focus, scores),
	}

	if e.logger != nil {
		e.logger.Info("assessment analyzed",
			zap.Int("ascension_score", ascension),
			zap.String("strongest_dimension", string(strongest)),
			zap.String("biggest_opportunity", string(opportunity)),
			zap.Int("items", len(items)),
		)
	}
	return analysis, nil
}

// CreateAssessmentRecord runs Analyze and shapes the result as a persistable
// record. It does not store anything; the ID and timestamp are the only
// non-deterministic fields in the whole engine.
func (e *Engine) CreateAssessmentRecord(userID string, items []domain.AssessmentItem) (domain.Assessment, error) {
	analysis, err := e.Analyze(items)
	if err != nil {
		return domain.Assessment{}, err
	}
	return domain.Assessment{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     items,
		Analysis:  analysis,
		CreatedAt: time.Now().UTC(),
	}, nil
}
