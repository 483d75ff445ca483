package engine

import (
	"sort"

	"ascend/internal/domain"
)

// Question is one catalog entry: a questionnaire item with its dimension,
// category label and importance weight.
type Question struct {
	ID        string           `json:"id"`
	Dimension domain.Dimension `json:"dimension"`
	Text      string           `json:"text"`
	Category  string           `json:"category"`
	Weight    float64          `json:"weight"`
}

// Catalog is the static questionnaire: seven dimensions, eleven weighted
// questions each, in a fixed order. Read-only after construction, safe to
// share across calls.
type Catalog struct {
	questions []Question
	byID      map[string]Question
}

// NewCatalog builds a catalog from an explicit question list. Order is
// preserved; it defines the iteration order of scoring and tie-breaks.
func NewCatalog(questions []Question) *Catalog {
	c := &Catalog{
		questions: make([]Question, len(questions)),
		byID:      make(map[string]Question, len(questions)),
	}
	copy(c.questions, questions)
	for _, q := range c.questions {
		c.byID[q.ID] = q
	}
	return c
}

// DefaultCatalog returns the production questionnaire.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultQuestions)
}

// Questions returns a copy of the full ordered question list.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// QuestionsFor returns the ordered questions of a single dimension.
func (c *Catalog) QuestionsFor(dim domain.Dimension) []Question {
	var out []Question
	for _, q := range c.questions {
		if q.Dimension == dim {
			out = append(out, q)
		}
	}
	return out
}

// Lookup busca una pregunta por su ID.
func (c *Catalog) Lookup(id string) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// ItemsFromResponses denormalizes a {questionID: response} submission into
// assessment items carrying the catalog's text, category and weight. Unknown
// question IDs are returned separately so the caller can decide whether to
// reject the submission.
func (c *Catalog) ItemsFromResponses(responses map[string]int) ([]domain.AssessmentItem, []string) {
	ids := make([]string, 0, len(responses))
	for id := range responses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var items []domain.AssessmentItem
	var unknown []string
	for _, id := range ids {
		q, ok := c.byID[id]
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		items = append(items, domain.AssessmentItem{
			Dimension:  q.Dimension,
			QuestionID: q.ID,
			Question:   q.Text,
			Category:   q.Category,
			Response:   responses[id],
			Weight:     q.Weight,
		})
	}
	return items, unknown
}

var defaultQuestions = []Question{
	// Physical Vitality
	{ID: "pv01", Dimension: domain.DimensionPhysicalVitality, Text: "How consistently do you get seven to eight hours of restful sleep?", Category: "sleep", Weight: 1.3},
	{ID: "pv02", Dimension: domain.DimensionPhysicalVitality, Text: "How refreshed do you feel when you wake up in the morning?", Category: "sleep", Weight: 1.0},
	{ID: "pv03", Dimension: domain.DimensionPhysicalVitality, Text: "How often do you train your strength with intention?", Category: "exercise", Weight: 1.2},
	{ID: "pv04", Dimension: domain.DimensionPhysicalVitality, Text: "How regularly do you move your body every single day?", Category: "exercise", Weight: 1.1},
	{ID: "pv05", Dimension: domain.DimensionPhysicalVitality, Text: "How well do you nourish yourself with whole, unprocessed foods?", Category: "nutrition", Weight: 1.2},
	{ID: "pv06", Dimension: domain.DimensionPhysicalVitality, Text: "How mindful are you of your hydration throughout the day?", Category: "nutrition", Weight: 0.9},
	{ID: "pv07", Dimension: domain.DimensionPhysicalVitality, Text: "How stable is your energy across a full working day?", Category: "energy", Weight: 1.4},
	{ID: "pv08", Dimension: domain.DimensionPhysicalVitality, Text: "How capable do you feel when facing physically demanding tasks?", Category: "energy", Weight: 1.0},
	{ID: "pv09", Dimension: domain.DimensionPhysicalVitality, Text: "How deliberately do you build rest and recovery into your week?", Category: "recovery", Weight: 0.9},
	{ID: "pv10", Dimension: domain.DimensionPhysicalVitality, Text: "How often do you spend time outdoors in natural light?", Category: "recovery", Weight: 0.8},
	{ID: "pv11", Dimension: domain.DimensionPhysicalVitality, Text: "How satisfied are you with your overall physical condition?", Category: "vitality", Weight: 1.1},

	// Mental Clarity
	{ID: "mc01", Dimension: domain.DimensionMentalClarity, Text: "How deeply can you focus on one task without distraction?", Category: "focus", Weight: 1.4},
	{ID: "mc02", Dimension: domain.DimensionMentalClarity, Text: "How often do you finish your most important work before reacting to demands?", Category: "focus", Weight: 1.1},
	{ID: "mc03", Dimension: domain.DimensionMentalClarity, Text: "How much control do you keep over your digital distractions?", Category: "attention", Weight: 1.0},
	{ID: "mc04", Dimension: domain.DimensionMentalClarity, Text: "How consistently do you study something genuinely challenging?", Category: "learning", Weight: 1.0},
	{ID: "mc05", Dimension: domain.DimensionMentalClarity, Text: "How often do you read material that stretches your thinking?", Category: "learning", Weight: 0.9},
	{ID: "mc06", Dimension: domain.DimensionMentalClarity, Text: "How decisively do you act once you have enough information?", Category: "decisions", Weight: 1.2},
	{ID: "mc07", Dimension: domain.DimensionMentalClarity, Text: "How clear are you on your top priorities each morning?", Category: "decisions", Weight: 1.0},
	{ID: "mc08", Dimension: domain.DimensionMentalClarity, Text: "How organized does your mind stay under pressure?", Category: "composure", Weight: 1.1},
	{ID: "mc09", Dimension: domain.DimensionMentalClarity, Text: "How often do you set aside time to think with no inputs at all?", Category: "reflection", Weight: 0.8},
	{ID: "mc10", Dimension: domain.DimensionMentalClarity, Text: "How reliably do you capture and review your ideas and commitments?", Category: "systems", Weight: 0.9},
	{ID: "mc11", Dimension: domain.DimensionMentalClarity, Text: "How clear is your long-term vision for your life?", Category: "vision", Weight: 1.2},

	// Emotional Mastery
	{ID: "em01", Dimension: domain.DimensionEmotionalMastery, Text: "How quickly do you notice what you are feeling as it happens?", Category: "awareness", Weight: 1.3},
	{ID: "em02", Dimension: domain.DimensionEmotionalMastery, Text: "How precisely can you name your emotions beyond good or bad?", Category: "awareness", Weight: 1.0},
	{ID: "em03", Dimension: domain.DimensionEmotionalMastery, Text: "How composed do you stay when provoked or criticized?", Category: "regulation", Weight: 1.4},
	{ID: "em04", Dimension: domain.DimensionEmotionalMastery, Text: "How quickly do you recover after an emotional setback?", Category: "regulation", Weight: 1.1},
	{ID: "em05", Dimension: domain.DimensionEmotionalMastery, Text: "How well do you handle uncertainty without spiraling?", Category: "resilience", Weight: 1.2},
	{ID: "em06", Dimension: domain.DimensionEmotionalMastery, Text: "How effectively do you discharge stress before it accumulates?", Category: "stress", Weight: 1.1},
	{ID: "em07", Dimension: domain.DimensionEmotionalMastery, Text: "How honestly do you express difficult feelings to the people involved?", Category: "expression", Weight: 0.9},
	{ID: "em08", Dimension: domain.DimensionEmotionalMastery, Text: "How comfortable are you sitting with discomfort instead of numbing it?", Category: "expression", Weight: 0.8},
	{ID: "em09", Dimension: domain.DimensionEmotionalMastery, Text: "How often does gratitude outweigh complaint in your inner dialogue?", Category: "resilience", Weight: 1.0},
	{ID: "em10", Dimension: domain.DimensionEmotionalMastery, Text: "How well do you recognize your recurring emotional triggers?", Category: "awareness", Weight: 0.9},
	{ID: "em11", Dimension: domain.DimensionEmotionalMastery, Text: "How steady does your mood stay across an ordinary week?", Category: "regulation", Weight: 1.0},

	// Spiritual Connection
	{ID: "sc01", Dimension: domain.DimensionSpiritualConnection, Text: "How consistent is your daily meditation or prayer practice?", Category: "practice", Weight: 1.3},
	{ID: "sc02", Dimension: domain.DimensionSpiritualConnection, Text: "How often do you create intentional stillness with no agenda?", Category: "practice", Weight: 1.0},
	{ID: "sc03", Dimension: domain.DimensionSpiritualConnection, Text: "How connected do you feel to a purpose larger than yourself?", Category: "meaning", Weight: 1.4},
	{ID: "sc04", Dimension: domain.DimensionSpiritualConnection, Text: "How aligned are your daily actions with your deepest values?", Category: "meaning", Weight: 1.1},
	{ID: "sc05", Dimension: domain.DimensionSpiritualConnection, Text: "How present are you in the ordinary moments of your day?", Category: "presence", Weight: 1.1},
	{ID: "sc06", Dimension: domain.DimensionSpiritualConnection, Text: "How often do you experience awe or deep appreciation?", Category: "presence", Weight: 0.9},
	{ID: "sc07", Dimension: domain.DimensionSpiritualConnection, Text: "How comfortable are you being alone with your own thoughts?", Category: "stillness", Weight: 0.9},
	{ID: "sc08", Dimension: domain.DimensionSpiritualConnection, Text: "How much do you trust the direction your life is unfolding?", Category: "alignment", Weight: 1.0},
	{ID: "sc09", Dimension: domain.DimensionSpiritualConnection, Text: "How regularly do you reflect through journaling or contemplation?", Category: "practice", Weight: 0.8},
	{ID: "sc10", Dimension: domain.DimensionSpiritualConnection, Text: "How often do you ask what truly matters before committing to something?", Category: "meaning", Weight: 1.0},
	{ID: "sc11", Dimension: domain.DimensionSpiritualConnection, Text: "How at peace do you feel with who you are becoming?", Category: "alignment", Weight: 1.2},

	// Relationships
	{ID: "re01", Dimension: domain.DimensionRelationships, Text: "How deeply connected do you feel to your closest person?", Category: "intimacy", Weight: 1.3},
	{ID: "re02", Dimension: domain.DimensionRelationships, Text: "How safe do you feel being fully yourself with the people you love?", Category: "intimacy", Weight: 1.0},
	{ID: "re03", Dimension: domain.DimensionRelationships, Text: "How honestly do you communicate your needs and boundaries?", Category: "communication", Weight: 1.2},
	{ID: "re04", Dimension: domain.DimensionRelationships, Text: "How well do you listen without preparing your reply?", Category: "communication", Weight: 1.1},
	{ID: "re05", Dimension: domain.DimensionRelationships, Text: "How many friendships do you actively invest in?", Category: "friendship", Weight: 1.0},
	{ID: "re06", Dimension: domain.DimensionRelationships, Text: "How quickly do you repair conflicts instead of letting them fester?", Category: "friendship", Weight: 0.9},
	{ID: "re07", Dimension: domain.DimensionRelationships, Text: "How nourishing is your relationship with your family?", Category: "family", Weight: 1.0},
	{ID: "re08", Dimension: domain.DimensionRelationships, Text: "How connected do you feel to a community beyond work and family?", Category: "community", Weight: 0.8},
	{ID: "re09", Dimension: domain.DimensionRelationships, Text: "How often do you give appreciation and affection unprompted?", Category: "intimacy", Weight: 1.1},
	{ID: "re10", Dimension: domain.DimensionRelationships, Text: "How often do you contribute to others without expecting anything back?", Category: "community", Weight: 0.9},
	{ID: "re11", Dimension: domain.DimensionRelationships, Text: "How supported do you feel by the people around you?", Category: "connection", Weight: 1.2},

	// Career & Purpose
	{ID: "cp01", Dimension: domain.DimensionCareerPurpose, Text: "How aligned is your daily work with your long-term mission?", Category: "direction", Weight: 1.4},
	{ID: "cp02", Dimension: domain.DimensionCareerPurpose, Text: "How clear are you on what you want your work to stand for?", Category: "direction", Weight: 1.1},
	{ID: "cp03", Dimension: domain.DimensionCareerPurpose, Text: "How deliberately do you sharpen the core skills of your craft?", Category: "craft", Weight: 1.2},
	{ID: "cp04", Dimension: domain.DimensionCareerPurpose, Text: "How proud are you of the quality of your recent work?", Category: "craft", Weight: 1.0},
	{ID: "cp05", Dimension: domain.DimensionCareerPurpose, Text: "How much of your work creates value you can see in other people's lives?", Category: "impact", Weight: 1.1},
	{ID: "cp06", Dimension: domain.DimensionCareerPurpose, Text: "How consistently do you seek feedback and act on it?", Category: "growth", Weight: 1.0},
	{ID: "cp07", Dimension: domain.DimensionCareerPurpose, Text: "How often do you take on challenges slightly beyond your ability?", Category: "growth", Weight: 0.9},
	{ID: "cp08", Dimension: domain.DimensionCareerPurpose, Text: "How willing are you to lead when nobody else steps up?", Category: "leadership", Weight: 0.9},
	{ID: "cp09", Dimension: domain.DimensionCareerPurpose, Text: "How energized do you feel by your work on most days?", Category: "energy", Weight: 1.0},
	{ID: "cp10", Dimension: domain.DimensionCareerPurpose, Text: "How well do you protect deep work time from busywork?", Category: "boundaries", Weight: 0.8},
	{ID: "cp11", Dimension: domain.DimensionCareerPurpose, Text: "How confident are you that you are building toward something meaningful?", Category: "purpose", Weight: 1.2},

	// Financial Abundance
	{ID: "fa01", Dimension: domain.DimensionFinancialAbundance, Text: "How precisely do you know your monthly income and expenses?", Category: "awareness", Weight: 1.2},
	{ID: "fa02", Dimension: domain.DimensionFinancialAbundance, Text: "How regularly do you review your full financial position?", Category: "awareness", Weight: 1.0},
	{ID: "fa03", Dimension: domain.DimensionFinancialAbundance, Text: "How consistently do you save or invest before spending?", Category: "saving", Weight: 1.3},
	{ID: "fa04", Dimension: domain.DimensionFinancialAbundance, Text: "How large is your buffer for unexpected expenses?", Category: "saving", Weight: 1.0},
	{ID: "fa05", Dimension: domain.DimensionFinancialAbundance, Text: "How actively do you grow your capacity to earn?", Category: "earning", Weight: 1.1},
	{ID: "fa06", Dimension: domain.DimensionFinancialAbundance, Text: "How diversified are your sources of income?", Category: "earning", Weight: 0.9},
	{ID: "fa07", Dimension: domain.DimensionFinancialAbundance, Text: "How confident are you in your long-term investment plan?", Category: "investing", Weight: 1.1},
	{ID: "fa08", Dimension: domain.DimensionFinancialAbundance, Text: "How well do you understand where your money is working?", Category: "investing", Weight: 0.9},
	{ID: "fa09", Dimension: domain.DimensionFinancialAbundance, Text: "How calm do you feel when you think about money?", Category: "mindset", Weight: 1.0},
	{ID: "fa10", Dimension: domain.DimensionFinancialAbundance, Text: "How generous are you able to be without anxiety?", Category: "mindset", Weight: 0.8},
	{ID: "fa11", Dimension: domain.DimensionFinancialAbundance, Text: "How clear is your plan for financial independence?", Category: "planning", Weight: 1.2},
}
