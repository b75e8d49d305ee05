package scoring

import (
	"testing"

	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWeights() types.DimensionWeights {
	return types.DimensionWeights{
		Keyword:    0.20,
		Skills:     0.30,
		Attributes: 0.15,
		Experience: 0.25,
		Level:      0.10,
	}
}

func jobElement(text string, importance float64, category types.Category) types.TaggedElement {
	return types.TaggedElement{
		Element:    types.NewElement(text, nil, "", types.Position{}),
		Importance: importance,
		Category:   category,
	}
}

func match(resume, job types.TaggedElement, mt types.MatchType, confidence float64) types.SemanticMatch {
	return types.SemanticMatch{
		ResumeElement: resume,
		JobElement:    job,
		MatchType:     mt,
		Confidence:    confidence,
	}
}

func TestScore_PythonLeadershipScenario(t *testing.T) {
	python := jobElement("Python", 0.9, types.CategorySkill)
	leadership := jobElement("leadership", 0.6, types.CategoryAttribute)
	resumePython := jobElement("Python", 0.9, types.CategorySkill)

	scorer := NewScorer(testWeights())
	result := scorer.Score(
		[]types.TaggedElement{resumePython},
		[]types.TaggedElement{python, leadership},
		[]types.SemanticMatch{match(resumePython, python, types.MatchExact, 1.0)},
	)

	// Full skills-dimension credit, zero attributes-dimension credit.
	assert.InDelta(t, 1.0, result.Breakdown.SkillsScore, 0.001)
	assert.Equal(t, 0.0, result.Breakdown.AttributesScore)
	assert.InDelta(t, 0.30, result.OverallScore, 0.001)

	require.Len(t, result.Gaps, 1)
	assert.Equal(t, "leadership", result.Gaps[0].Element.Text)
	assert.Equal(t, 0.6, result.Gaps[0].Importance)
	assert.Equal(t, types.CategoryAttribute, result.Gaps[0].Category)

	require.Len(t, result.Strengths, 1)
	assert.Equal(t, "Python", result.Strengths[0].Element.Text)
	assert.Equal(t, types.MatchExact, result.Strengths[0].MatchType)
}

func TestScore_WeightsSumToOne(t *testing.T) {
	scorer := NewScorer(testWeights())
	result := scorer.Score(nil, []types.TaggedElement{jobElement("Go", 0.8, types.CategorySkill)}, nil)

	assert.InDelta(t, 1.0, result.Breakdown.Weights.Sum(), 0.01)
	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 1.0)
}

func TestScore_EmptyInputsDegradeToZero(t *testing.T) {
	scorer := NewScorer(testWeights())

	result := scorer.Score(nil, nil, nil)

	assert.Equal(t, 0.0, result.OverallScore)
	assert.Empty(t, result.Gaps)
	assert.Empty(t, result.Strengths)
}

func TestScore_EmptyResumeAllJobElementsBecomeGaps(t *testing.T) {
	jobs := []types.TaggedElement{
		jobElement("Python", 0.9, types.CategorySkill),
		jobElement("AWS", 0.7, types.CategoryKeyword),
	}

	scorer := NewScorer(testWeights())
	result := scorer.Score(nil, jobs, nil)

	assert.Equal(t, 0.0, result.OverallScore)
	assert.Len(t, result.Gaps, 2)
	assert.Empty(t, result.Strengths)
}

func TestScore_BelowThresholdMatchLeavesGap(t *testing.T) {
	job := jobElement("Kubernetes", 0.8, types.CategorySkill)
	resume := jobElement("container tooling", 0.5, types.CategorySkill)

	scorer := NewScorer(testWeights())
	result := scorer.Score(
		[]types.TaggedElement{resume},
		[]types.TaggedElement{job},
		[]types.SemanticMatch{match(resume, job, types.MatchRelated, 0.4)},
	)

	require.Len(t, result.Gaps, 1)
	assert.Equal(t, "Kubernetes", result.Gaps[0].Element.Text)
	assert.Empty(t, result.Strengths)
	assert.Equal(t, 0.0, result.Breakdown.SkillsScore)
}

func TestScore_BestMatchPerJobElementWins(t *testing.T) {
	job := jobElement("Go", 0.9, types.CategorySkill)
	weak := jobElement("Golang scripting", 0.5, types.CategorySkill)
	strong := jobElement("Go", 0.9, types.CategorySkill)

	scorer := NewScorer(testWeights())
	result := scorer.Score(
		[]types.TaggedElement{weak, strong},
		[]types.TaggedElement{job},
		[]types.SemanticMatch{
			match(weak, job, types.MatchRelated, 0.6),
			match(strong, job, types.MatchExact, 1.0),
		},
	)

	require.Len(t, result.Strengths, 1)
	assert.Equal(t, "Go", result.Strengths[0].Element.Text)
	assert.InDelta(t, 1.0, result.Breakdown.SkillsScore, 0.001)
}

func TestScore_GapImpactIsImportanceTimesDimensionWeight(t *testing.T) {
	job := jobElement("mentoring", 0.8, types.CategoryAttribute)

	scorer := NewScorer(testWeights())
	result := scorer.Score(nil, []types.TaggedElement{job}, nil)

	require.Len(t, result.Gaps, 1)
	assert.InDelta(t, 0.8*0.15, result.Gaps[0].Impact, 0.001)
}

func TestScore_GapsSortedByImportanceThenImpact(t *testing.T) {
	jobs := []types.TaggedElement{
		jobElement("a", 0.5, types.CategoryKeyword),    // impact 0.10
		jobElement("b", 0.9, types.CategorySkill),      // impact 0.27
		jobElement("c", 0.9, types.CategoryExperience), // impact 0.225
		jobElement("d", 0.7, types.CategoryAttribute),
	}

	scorer := NewScorer(testWeights())
	result := scorer.Score(nil, jobs, nil)

	require.Len(t, result.Gaps, 4)
	assert.Equal(t, "b", result.Gaps[0].Element.Text)
	assert.Equal(t, "c", result.Gaps[1].Element.Text)
	assert.Equal(t, "d", result.Gaps[2].Element.Text)
	assert.Equal(t, "a", result.Gaps[3].Element.Text)
	for i := 1; i < len(result.Gaps); i++ {
		assert.GreaterOrEqual(t, result.Gaps[i-1].Importance, result.Gaps[i].Importance)
	}
}

func TestScore_StrengthContributionUsesConfidenceAndWeight(t *testing.T) {
	job := jobElement("distributed systems", 0.9, types.CategoryExperience)
	resume := jobElement("built distributed pipelines", 0.8, types.CategoryExperience)

	scorer := NewScorer(testWeights())
	result := scorer.Score(
		[]types.TaggedElement{resume},
		[]types.TaggedElement{job},
		[]types.SemanticMatch{match(resume, job, types.MatchSemantic, 0.8)},
	)

	require.Len(t, result.Strengths, 1)
	assert.InDelta(t, 0.8*0.25, result.Strengths[0].Contribution, 0.001)
}
