package types

// RecommendationType identifies the kind of change a recommendation asks for.
type RecommendationType string

// Recommendation types. Additive types come from gaps; rewording types come
// from partial or under-leveraged matches.
const (
	RecommendAddSkill      RecommendationType = "add_skill"
	RecommendAddExperience RecommendationType = "add_experience"
	RecommendReword        RecommendationType = "reword"
	RecommendReframe       RecommendationType = "reframe"
	RecommendEmphasize     RecommendationType = "emphasize"
	RecommendDeemphasize   RecommendationType = "deemphasize"
	RecommendQuantify      RecommendationType = "quantify"
)

// Recommendation is one prioritized, explained suggestion handed to the
// rewriting collaborator. JobRequirementReference and Explanation always
// contain Element as a case-insensitive substring.
type Recommendation struct {
	Type                    RecommendationType `json:"type"`
	Element                 string             `json:"element"`
	Importance              float64            `json:"importance"`
	Suggestion              string             `json:"suggestion"`
	Example                 string             `json:"example,omitempty"`
	JobRequirementReference string             `json:"job_requirement_reference"`
	Explanation             string             `json:"explanation"`
}

// Theme is a job-posting theme used to bias recommendation ordering.
type Theme struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords,omitempty"`
}

// RecommendationMetadata records the round context a recommendation set was
// generated in.
type RecommendationMetadata struct {
	IterationRound int      `json:"iteration_round"`
	CurrentScore   float64  `json:"current_score"`
	TargetScore    float64  `json:"target_score"`
	Themes         []string `json:"themes,omitempty"`
}

// Recommendations is the generator's full output for one round.
type Recommendations struct {
	Summary   string                 `json:"summary"`
	Priority  []Recommendation       `json:"priority"`
	Optional  []Recommendation       `json:"optional"`
	Rewording []Recommendation       `json:"rewording"`
	Metadata  RecommendationMetadata `json:"metadata"`
}

// Total returns the number of recommendations across all three lists.
func (r *Recommendations) Total() int {
	return len(r.Priority) + len(r.Optional) + len(r.Rewording)
}
