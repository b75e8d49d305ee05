package recommend

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func element(text string, importance float64, category types.Category) types.TaggedElement {
	return types.TaggedElement{
		Element:    types.NewElement(text, nil, "", types.Position{}),
		Importance: importance,
		Category:   category,
	}
}

func resultWithGaps(score float64, gaps ...types.Gap) types.MatchResult {
	return types.MatchResult{OverallScore: score, Gaps: gaps}
}

func allRecommendations(recs types.Recommendations) []types.Recommendation {
	all := make([]types.Recommendation, 0, recs.Total())
	all = append(all, recs.Priority...)
	all = append(all, recs.Optional...)
	all = append(all, recs.Rewording...)
	return all
}

func TestGenerate_HighGapsBecomePriority(t *testing.T) {
	g := NewGenerator()
	result := resultWithGaps(0.4,
		gap("Python", 0.9, 0.27, types.CategorySkill),
		gap("team leadership", 0.85, 0.13, types.CategoryAttribute),
		gap("cloud migration", 0.6, 0.15, types.CategoryExperience),
	)

	recs := g.Generate(result, nil, 1, 0.8, nil, nil)

	require.Len(t, recs.Priority, 2)
	for _, rec := range recs.Priority {
		assert.GreaterOrEqual(t, rec.Importance, 0.8)
	}

	// Every high gap appears by element text in the priority list.
	texts := []string{recs.Priority[0].Element, recs.Priority[1].Element}
	assert.Contains(t, texts, "Python")
	assert.Contains(t, texts, "team leadership")
}

func TestGenerate_SkillGapTypeAddSkill(t *testing.T) {
	g := NewGenerator()
	result := resultWithGaps(0.4,
		gap("Go", 0.9, 0.27, types.CategorySkill),
		gap("mentoring", 0.85, 0.13, types.CategoryAttribute),
	)

	recs := g.Generate(result, nil, 1, 0.8, nil, nil)

	require.Len(t, recs.Priority, 2)
	byElement := map[string]types.Recommendation{}
	for _, rec := range recs.Priority {
		byElement[rec.Element] = rec
	}
	assert.Equal(t, types.RecommendAddSkill, byElement["Go"].Type)
	assert.Equal(t, types.RecommendAddExperience, byElement["mentoring"].Type)
}

func TestGenerate_ReferenceCarriesCategoryAndImportance(t *testing.T) {
	g := NewGenerator()
	result := resultWithGaps(0.4, gap("Terraform", 0.92, 0.27, types.CategorySkill))

	recs := g.Generate(result, nil, 1, 0.8, nil, nil)

	require.Len(t, recs.Priority, 1)
	ref := recs.Priority[0].JobRequirementReference
	assert.Contains(t, ref, "Terraform")
	assert.Contains(t, ref, "skill")
	assert.Contains(t, ref, "0.92")
}

func TestGenerate_ExplanationTierPhrases(t *testing.T) {
	g := NewGenerator()
	result := resultWithGaps(0.4,
		gap("Rust", 0.95, 0.3, types.CategorySkill),
		gap("Kafka", 0.82, 0.25, types.CategorySkill),
	)

	recs := g.Generate(result, nil, 1, 0.8, nil, nil)

	require.Len(t, recs.Priority, 2)
	byElement := map[string]types.Recommendation{}
	for _, rec := range recs.Priority {
		byElement[rec.Element] = rec
	}
	assert.Contains(t, byElement["Rust"].Explanation, "critical")
	assert.Contains(t, byElement["Kafka"].Explanation, "high-priority")
}

func TestGenerate_MediumGapsBecomeOptional(t *testing.T) {
	g := NewGenerator()
	result := resultWithGaps(0.5, gap("leadership", 0.6, 0.09, types.CategoryAttribute))

	recs := g.Generate(result, nil, 1, 0.8, nil, nil)

	assert.Empty(t, recs.Priority)
	require.Len(t, recs.Optional, 1)
	assert.Equal(t, types.RecommendAddExperience, recs.Optional[0].Type)
	assert.Equal(t, "leadership", recs.Optional[0].Element)
}

func TestGenerate_PartialMatchYieldsReframe(t *testing.T) {
	g := NewGenerator()
	job := element("distributed systems", 0.7, types.CategoryExperience)
	resume := element("batch pipelines", 0.5, types.CategoryExperience)
	matches := []types.SemanticMatch{
		{ResumeElement: resume, JobElement: job, MatchType: types.MatchRelated, Confidence: 0.5},
	}

	recs := g.Generate(resultWithGaps(0.5), matches, 1, 0.8, nil, nil)

	require.Len(t, recs.Rewording, 1)
	assert.Equal(t, types.RecommendReframe, recs.Rewording[0].Type)
	assert.Equal(t, "distributed systems", recs.Rewording[0].Element)
	assert.Contains(t, recs.Rewording[0].JobRequirementReference, "distributed systems")
}

func TestGenerate_QuantifyWhenResumeTextHasNoDigit(t *testing.T) {
	g := NewGenerator()
	job := element("performance tuning", 0.8, types.CategoryExperience)
	resume := element("tuned database queries", 0.6, types.CategoryExperience)
	matches := []types.SemanticMatch{
		{ResumeElement: resume, JobElement: job, MatchType: types.MatchSemantic, Confidence: 0.9},
	}

	recs := g.Generate(resultWithGaps(0.7), matches, 1, 0.8, nil, nil)

	require.Len(t, recs.Rewording, 1)
	assert.Equal(t, types.RecommendQuantify, recs.Rewording[0].Type)
}

func TestGenerate_EmphasizeWhenResumeTextQuantified(t *testing.T) {
	g := NewGenerator()
	job := element("performance tuning", 0.8, types.CategoryExperience)
	resume := element("cut query latency by 40ms", 0.6, types.CategoryExperience)
	matches := []types.SemanticMatch{
		{ResumeElement: resume, JobElement: job, MatchType: types.MatchSemantic, Confidence: 0.9},
	}

	recs := g.Generate(resultWithGaps(0.7), matches, 1, 0.8, nil, nil)

	require.Len(t, recs.Rewording, 1)
	assert.Equal(t, types.RecommendEmphasize, recs.Rewording[0].Type)
}

func TestGenerate_StrongMatchLowImportanceNotReworded(t *testing.T) {
	g := NewGenerator()
	job := element("shell scripting", 0.4, types.CategorySkill)
	resume := element("bash automation", 0.5, types.CategorySkill)
	matches := []types.SemanticMatch{
		{ResumeElement: resume, JobElement: job, MatchType: types.MatchSynonym, Confidence: 0.9},
	}

	recs := g.Generate(resultWithGaps(0.7), matches, 1, 0.8, nil, nil)

	assert.Empty(t, recs.Rewording)
}

func TestGenerate_DeemphasizeOffThemeUnmatchedContent(t *testing.T) {
	g := NewGenerator()
	themes := []types.Theme{{Name: "cloud infrastructure", Keywords: []string{"kubernetes", "aws"}}}
	resumeElements := []types.TaggedElement{
		element("stamp collecting club", 0.2, types.CategoryExperience),
		element("aws deployments", 0.7, types.CategorySkill), // on-theme, kept
	}

	recs := g.Generate(resultWithGaps(0.5), nil, 1, 0.8, themes, resumeElements)

	require.Len(t, recs.Optional, 1)
	assert.Equal(t, types.RecommendDeemphasize, recs.Optional[0].Type)
	assert.Equal(t, "stamp collecting club", recs.Optional[0].Element)
}

func TestGenerate_DeemphasizeCappedAtThree(t *testing.T) {
	g := NewGenerator()
	themes := []types.Theme{{Name: "cloud"}}
	resumeElements := []types.TaggedElement{
		element("pottery", 0.1, types.CategoryExperience),
		element("woodworking", 0.1, types.CategoryExperience),
		element("calligraphy", 0.1, types.CategoryExperience),
		element("juggling", 0.1, types.CategoryExperience),
	}

	recs := g.Generate(resultWithGaps(0.5), nil, 1, 0.8, themes, resumeElements)

	deemphasize := 0
	for _, rec := range recs.Optional {
		if rec.Type == types.RecommendDeemphasize {
			deemphasize++
		}
	}
	assert.Equal(t, 3, deemphasize)
}

func TestGenerate_MatchedContentNotDeemphasized(t *testing.T) {
	g := NewGenerator()
	themes := []types.Theme{{Name: "cloud"}}
	offTheme := element("legacy mainframe work", 0.3, types.CategoryExperience)
	job := element("COBOL", 0.5, types.CategorySkill)
	matches := []types.SemanticMatch{
		{ResumeElement: offTheme, JobElement: job, MatchType: types.MatchRelated, Confidence: 0.8},
	}

	recs := g.Generate(resultWithGaps(0.5), matches, 1, 0.8, themes, []types.TaggedElement{offTheme})

	for _, rec := range recs.Optional {
		assert.NotEqual(t, types.RecommendDeemphasize, rec.Type)
	}
}

func TestGenerate_ExplanationInvariantAllLists(t *testing.T) {
	g := NewGenerator()
	themes := []types.Theme{{Name: "platform engineering"}}
	job := element("observability", 0.65, types.CategoryConcept)
	resume := element("dashboard maintenance", 0.4, types.CategoryExperience)
	matches := []types.SemanticMatch{
		{ResumeElement: resume, JobElement: job, MatchType: types.MatchRelated, Confidence: 0.5},
	}
	result := resultWithGaps(0.4,
		gap("Python", 0.9, 0.27, types.CategorySkill),
		gap("leadership", 0.6, 0.09, types.CategoryAttribute),
		gap("CI/CD", 0.3, 0.06, types.CategoryKeyword),
	)
	resumeElements := []types.TaggedElement{element("volunteer bake sales", 0.1, types.CategoryExperience)}

	recs := g.Generate(result, matches, 2, 0.8, themes, resumeElements)

	require.NotZero(t, recs.Total())
	for _, rec := range allRecommendations(recs) {
		require.NotEmpty(t, rec.JobRequirementReference, "rec for %q", rec.Element)
		require.NotEmpty(t, rec.Explanation, "rec for %q", rec.Element)
		lowered := strings.ToLower(rec.Element)
		assert.Contains(t, strings.ToLower(rec.JobRequirementReference), lowered)
		assert.Contains(t, strings.ToLower(rec.Explanation), lowered)
	}
}

func TestGenerate_ThemeAlignedSortsFirst(t *testing.T) {
	g := NewGenerator()
	themes := []types.Theme{{Name: "machine learning", Keywords: []string{"pytorch"}}}
	result := resultWithGaps(0.4,
		gap("technical writing", 0.95, 0.3, types.CategorySkill),
		gap("pytorch", 0.85, 0.25, types.CategorySkill),
	)

	recs := g.Generate(result, nil, 1, 0.8, themes, nil)

	require.Len(t, recs.Priority, 2)
	// Theme-aligned element sorts first despite lower importance.
	assert.Equal(t, "pytorch", recs.Priority[0].Element)
	assert.Equal(t, "technical writing", recs.Priority[1].Element)
}

func TestGenerate_SummaryContents(t *testing.T) {
	g := NewGenerator()
	themes := []types.Theme{{Name: "reliability"}, {Name: "scale"}}
	result := resultWithGaps(0.62,
		gap("incident response", 0.9, 0.2, types.CategoryExperience),
		gap("SLOs", 0.85, 0.2, types.CategoryConcept),
	)

	recs := g.Generate(result, nil, 1, 0.8, themes, nil)

	assert.Contains(t, recs.Summary, "62%")
	assert.Contains(t, recs.Summary, "80%")
	assert.Contains(t, recs.Summary, "18 percentage points")
	assert.Contains(t, recs.Summary, "2 critical requirements")
	assert.Contains(t, recs.Summary, "Add ")
	assert.Contains(t, recs.Summary, "Key themes: reliability, scale")
}

func TestGenerate_SummaryTargetAchieved(t *testing.T) {
	g := NewGenerator()

	recs := g.Generate(resultWithGaps(0.9), nil, 3, 0.8, nil, nil)

	assert.Contains(t, recs.Summary, "Target achieved!")
	assert.Equal(t, 3, recs.Metadata.IterationRound)
}

func TestGenerate_EmptyResultProducesEmptyLists(t *testing.T) {
	g := NewGenerator()

	recs := g.Generate(types.MatchResult{}, nil, 1, 0.8, nil, nil)

	assert.Empty(t, recs.Priority)
	assert.Empty(t, recs.Optional)
	assert.Empty(t, recs.Rewording)
	assert.NotEmpty(t, recs.Summary)
}
