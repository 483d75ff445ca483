package domain

import "time"

// AssessmentItem es una respuesta individual del cuestionario, ya
// denormalizada con los datos de catalogo que el scoring necesita.
type AssessmentItem struct {
	Dimension  Dimension `json:"dimension"`
	QuestionID string    `json:"question_id"`
	Question   string    `json:"question"`
	Category   string    `json:"category"`
	Response   int       `json:"response"` // 1-10
	Weight     float64   `json:"weight"`   // importance multiplier, ~0.8-1.4
}

// Assessment is the persistable record of one completed questionnaire:
// the raw items plus the analysis computed from them.
type Assessment struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Items     []AssessmentItem  `json:"items"`
	Analysis  CompositeAnalysis `json:"analysis"`
	CreatedAt time.Time         `json:"created_at"`
}
