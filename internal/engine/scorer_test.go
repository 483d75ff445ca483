package engine

import (
	"testing"

	"ascend/internal/domain"
)

func item(response int, weight float64) domain.AssessmentItem {
	return domain.AssessmentItem{
		Dimension: domain.DimensionPhysicalVitality,
		Response:  response,
		Weight:    weight,
	}
}

func TestScoreDimension_WeightedMean(t *testing.T) {
	e := New(nil, DefaultParams(), nil)

	// (4*2 + 8*1) / 3 = 5.333... -> 5.3
	current, _ := e.scoreDimension([]domain.AssessmentItem{item(4, 2), item(8, 1)})
	if current != 5.3 {
		t.Fatalf("expected 5.3, got %v", current)
	}
}

func TestScoreDimension_PotentialIsCeilingBounded(t *testing.T) {
	e := New(nil, DefaultParams(), nil)

	current, potential := e.scoreDimension([]domain.AssessmentItem{item(9, 1)})
	if current != 9.0 {
		t.Fatalf("expected current 9.0, got %v", current)
	}
	if potential != 10.0 {
		t.Fatalf("expected potential capped at 10.0, got %v", potential)
	}

	// Below the ceiling the full bonus applies: 5 + 2.5 = 7.5.
	_, potential = e.scoreDimension([]domain.AssessmentItem{item(5, 1)})
	if potential != 7.5 {
		t.Fatalf("expected potential 7.5, got %v", potential)
	}
}

func TestScoreDimension_ConfigurableBonus(t *testing.T) {
	e := New(nil, Params{PotentialBonus: 1.0, QuickWinMargin: 1.0}, nil)
	_, potential := e.scoreDimension([]domain.AssessmentItem{item(5, 1)})
	if potential != 6.0 {
		t.Fatalf("expected potential 6.0 with bonus 1.0, got %v", potential)
	}
}

func TestScoreDimension_EmptyFallback(t *testing.T) {
	e := New(nil, DefaultParams(), nil)
	current, potential := e.scoreDimension(nil)
	if current != 5.0 || potential != 10.0 {
		t.Fatalf("expected 5.0/10.0 fallback, got %v/%v", current, potential)
	}
}

func TestScoreDimension_NonPositiveWeightDefaultsToOne(t *testing.T) {
	e := New(nil, DefaultParams(), nil)
	current, _ := e.scoreDimension([]domain.AssessmentItem{item(4, 0), item(8, 0)})
	if current != 6.0 {
		t.Fatalf("expected 6.0 with defaulted weights, got %v", current)
	}
}

func TestScoreDimension_Monotone(t *testing.T) {
	e := New(nil, DefaultParams(), nil)
	base := []domain.AssessmentItem{item(3, 1.2), item(6, 0.8), item(8, 1.0)}

	for i := range base {
		if base[i].Response >= 10 {
			continue
		}
		bumped := make([]domain.AssessmentItem, len(base))
		copy(bumped, base)
		bumped[i].Response++

		before, _ := e.scoreDimension(base)
		after, _ := e.scoreDimension(bumped)
		if after < before {
			t.Fatalf("raising item %d lowered the score: %v -> %v", i, before, after)
		}
	}
}
