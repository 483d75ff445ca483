package engine

import (
	"testing"

	"ascend/internal/domain"
)

func score(dim domain.Dimension, current, gap float64) domain.DimensionScore {
	return domain.DimensionScore{Dimension: dim, CurrentScore: current, Gap: gap}
}

func TestAggregate(t *testing.T) {
	order := domain.AllDimensions()
	scores := map[domain.Dimension]domain.DimensionScore{
		domain.DimensionPhysicalVitality:    score(domain.DimensionPhysicalVitality, 8.0, 1.0),
		domain.DimensionMentalClarity:       score(domain.DimensionMentalClarity, 6.0, 2.5),
		domain.DimensionEmotionalMastery:    score(domain.DimensionEmotionalMastery, 4.0, 2.5),
		domain.DimensionSpiritualConnection: score(domain.DimensionSpiritualConnection, 5.0, 2.0),
		domain.DimensionRelationships:       score(domain.DimensionRelationships, 7.0, 1.5),
		domain.DimensionCareerPurpose:       score(domain.DimensionCareerPurpose, 6.0, 2.0),
		domain.DimensionFinancialAbundance:  score(domain.DimensionFinancialAbundance, 3.0, 3.0),
	}

	ascension, strongest, opportunity := aggregate(order, scores)
	// mean = 39/7 = 5.571..., x10 = 55.71 -> 56
	if ascension != 56 {
		t.Fatalf("expected ascension 56, got %d", ascension)
	}
	if strongest != domain.DimensionPhysicalVitality {
		t.Fatalf("expected physical_vitality strongest, got %s", strongest)
	}
	if opportunity != domain.DimensionFinancialAbundance {
		t.Fatalf("expected financial_abundance as opportunity, got %s", opportunity)
	}
}

func TestAggregate_TieBreaksByCatalogOrder(t *testing.T) {
	order := domain.AllDimensions()
	scores := make(map[domain.Dimension]domain.DimensionScore)
	for _, dim := range order {
		scores[dim] = score(dim, 6.0, 2.0)
	}

	_, strongest, opportunity := aggregate(order, scores)
	if strongest != order[0] {
		t.Fatalf("expected first catalog dimension on tie, got %s", strongest)
	}
	if opportunity != order[0] {
		t.Fatalf("expected first catalog dimension on tie, got %s", opportunity)
	}
}

func TestAggregate_SubsetStillProduces(t *testing.T) {
	order := domain.AllDimensions()
	scores := map[domain.Dimension]domain.DimensionScore{
		domain.DimensionMentalClarity: score(domain.DimensionMentalClarity, 8.0, 1.0),
		domain.DimensionRelationships: score(domain.DimensionRelationships, 4.0, 3.0),
	}

	ascension, strongest, opportunity := aggregate(order, scores)
	if ascension != 60 {
		t.Fatalf("expected ascension 60 over the subset, got %d", ascension)
	}
	if strongest != domain.DimensionMentalClarity || opportunity != domain.DimensionRelationships {
		t.Fatalf("unexpected picks: %s / %s", strongest, opportunity)
	}
}

func TestAggregate_Empty(t *testing.T) {
	ascension, strongest, opportunity := aggregate(domain.AllDimensions(), nil)
	if ascension != 0 || strongest != "" || opportunity != "" {
		t.Fatalf("expected zero result for empty scores, got %d/%s/%s", ascension, strongest, opportunity)
	}
}

func TestScoreSpread(t *testing.T) {
	order := domain.AllDimensions()
	scores := map[domain.Dimension]domain.DimensionScore{
		domain.DimensionMentalClarity: score(domain.DimensionMentalClarity, 9.0, 0),
		domain.DimensionRelationships: score(domain.DimensionRelationships, 3.5, 0),
	}
	if got := scoreSpread(order, scores); got != 5.5 {
		t.Fatalf("expected spread 5.5, got %v", got)
	}
	if got := scoreSpread(order, nil); got != 0 {
		t.Fatalf("expected zero spread for empty scores, got %v", got)
	}
}
