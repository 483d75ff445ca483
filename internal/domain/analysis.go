package domain

// DimensionScore is one dimension's computed result. Scores carry one
// decimal of precision and stay within [1.0, 10.0].
type DimensionScore struct {
	Dimension        Dimension `json:"dimension"`
	CurrentScore     float64   `json:"current_score"`
	PotentialScore   float64   `json:"potential_score"`
	Gap              float64   `json:"gap"`
	Level            Level     `json:"level"`
	Insights         []string  `json:"insights"`
	ImprovementAreas []string  `json:"improvement_areas"` // at most 5
	QuickWins        []string  `json:"quick_wins"`        // at most 3
}

// CompositeAnalysis is the full result of one assessment run. It owns all
// seven DimensionScore values; every dimension key is always present.
type CompositeAnalysis struct {
	AscensionScore              int                           `json:"ascension_score"` // 0-100
	DimensionScores             map[Dimension]DimensionScore  `json:"dimension_scores"`
	StrongestDimension          Dimension                     `json:"strongest_dimension"`
	BiggestOpportunity          Dimension                     `json:"biggest_opportunity"`
	QuickWinDimensions          []Dimension                   `json:"quick_win_dimensions"`           // at most 3
	LongTermFocusDimensions     []Dimension                   `json:"long_term_focus_dimensions"`     // at most 3
	OverallInsights             []string                      `json:"overall_insights"`
	PersonalizedRecommendations []string                      `json:"personalized_recommendations"`
	TransformationForecast      TransformationForecast        `json:"transformation_forecast"`
}

// TransformationForecast narra el estado actual y el potencial segun la
// banda del ascension score.
type TransformationForecast struct {
	CurrentState     string   `json:"current_state"`
	PotentialState   string   `json:"potential_state"`
	TimeToTransform  string   `json:"time_to_transform"`
	KeyActions       []string `json:"key_actions"`       // 3 entries
	ExpectedOutcomes []string `json:"expected_outcomes"` // 4 entries
}
