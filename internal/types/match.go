package types

// MatchType describes how a résumé element satisfied a job element.
type MatchType string

// Match types, from strongest to weakest form of correspondence.
const (
	MatchExact    MatchType = "exact"
	MatchSynonym  MatchType = "synonym"
	MatchRelated  MatchType = "related"
	MatchSemantic MatchType = "semantic"
)

// ValidMatchType reports whether m is one of the known match types.
func ValidMatchType(m MatchType) bool {
	switch m {
	case MatchExact, MatchSynonym, MatchRelated, MatchSemantic:
		return true
	}
	return false
}

// SemanticMatch pairs a résumé element with the job element it satisfies.
// Matches are produced by an external matching step and consumed by the scorer.
type SemanticMatch struct {
	ResumeElement TaggedElement `json:"resume_element"`
	JobElement    TaggedElement `json:"job_element"`
	MatchType     MatchType     `json:"match_type"`
	Confidence    float64       `json:"confidence"`
}

// Gap is a job requirement with no (or insufficiently confident) match in the
// résumé. Impact is the marginal score contribution closing the gap would
// recover; Importance is inherited from the job element.
type Gap struct {
	Element    TaggedElement `json:"element"`
	Importance float64       `json:"importance"`
	Category   Category      `json:"category"`
	Impact     float64       `json:"impact"`
}

// Strength is a résumé-side element that matched a job requirement.
// Contribution feeds directly into the score breakdown.
type Strength struct {
	Element      TaggedElement `json:"element"`
	MatchType    MatchType     `json:"match_type"`
	Contribution float64       `json:"contribution"`
}

// DimensionWeights holds the weight applied to each scoring dimension.
// Weights must sum to 1.0 within ±0.01.
type DimensionWeights struct {
	Keyword    float64 `json:"keyword"`
	Skills     float64 `json:"skills"`
	Attributes float64 `json:"attributes"`
	Experience float64 `json:"experience"`
	Level      float64 `json:"level"`
}

// Sum returns the total of all dimension weights.
func (w DimensionWeights) Sum() float64 {
	return w.Keyword + w.Skills + w.Attributes + w.Experience + w.Level
}

// ForCategory returns the weight of the dimension an element category feeds.
func (w DimensionWeights) ForCategory(c Category) float64 {
	switch c {
	case CategoryKeyword:
		return w.Keyword
	case CategorySkill:
		return w.Skills
	case CategoryAttribute:
		return w.Attributes
	case CategoryExperience:
		return w.Experience
	case CategoryConcept:
		return w.Level
	}
	return 0
}

// ScoreBreakdown holds the five per-dimension scores and the weights that
// produced the overall score.
type ScoreBreakdown struct {
	KeywordScore    float64          `json:"keyword_score"`
	SkillsScore     float64          `json:"skills_score"`
	AttributesScore float64          `json:"attributes_score"`
	ExperienceScore float64          `json:"experience_score"`
	LevelScore      float64          `json:"level_score"`
	Weights         DimensionWeights `json:"weights"`
}

// MatchResult is the scorer's full output for one document pair.
// Gaps are ordered by importance descending (impact descending on ties);
// consumers may rely on that ordering.
type MatchResult struct {
	OverallScore float64        `json:"overall_score"`
	Breakdown    ScoreBreakdown `json:"breakdown"`
	Gaps         []Gap          `json:"gaps"`
	Strengths    []Strength     `json:"strengths"`
}
