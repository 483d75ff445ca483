package domain

// Dimension identifies one of the seven life areas covered by the
// assessment questionnaire.
type Dimension string

const (
	DimensionPhysicalVitality    Dimension = "physical_vitality"
	DimensionMentalClarity       Dimension = "mental_clarity"
	DimensionEmotionalMastery    Dimension = "emotional_mastery"
	DimensionSpiritualConnection Dimension = "spiritual_connection"
	DimensionRelationships       Dimension = "relationships"
	DimensionCareerPurpose       Dimension = "career_purpose"
	DimensionFinancialAbundance  Dimension = "financial_abundance"
)

// AllDimensions returns the seven dimensions in catalog order. This order is
// the tie-break order everywhere a single dimension must be picked from
// equals, so it must stay stable.
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionPhysicalVitality,
		DimensionMentalClarity,
		DimensionEmotionalMastery,
		DimensionSpiritualConnection,
		DimensionRelationships,
		DimensionCareerPurpose,
		DimensionFinancialAbundance,
	}
}

var dimensionLabels = map[Dimension]string{
	DimensionPhysicalVitality:    "Physical Vitality",
	DimensionMentalClarity:       "Mental Clarity",
	DimensionEmotionalMastery:    "Emotional Mastery",
	DimensionSpiritualConnection: "Spiritual Connection",
	DimensionRelationships:       "Relationships",
	DimensionCareerPurpose:       "Career & Purpose",
	DimensionFinancialAbundance:  "Financial Abundance",
}

// Label devuelve el nombre legible de la dimension para texto narrativo.
func (d Dimension) Label() string {
	if label, ok := dimensionLabels[d]; ok {
		return label
	}
	return string(d)
}

// Valid reports whether d is one of the seven known dimensions.
func (d Dimension) Valid() bool {
	_, ok := dimensionLabels[d]
	return ok
}

// Level is the ordinal mastery classification of a dimension score.
type Level string

const (
	LevelNovice     Level = "novice"
	LevelDeveloping Level = "developing"
	LevelAdvanced   Level = "advanced"
	LevelExpert     Level = "expert"
	LevelMaster     Level = "master"
)
