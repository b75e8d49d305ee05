// Package scoring computes weighted multi-dimension match scores between
// résumé elements and job posting elements.
package scoring

import (
	"sort"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// acceptanceConfidenceThreshold is the minimum match confidence for a job
// element to count as satisfied. Weaker matches still leave a gap.
const acceptanceConfidenceThreshold = 0.5

// Scorer computes MatchResults using a fixed set of dimension weights.
// It is pure and safe for concurrent use.
type Scorer struct {
	weights types.DimensionWeights
}

// NewScorer creates a Scorer with the given dimension weights. The weights
// are validated at configuration construction time and used as-is here.
func NewScorer(weights types.DimensionWeights) *Scorer {
	return &Scorer{weights: weights}
}

// Score evaluates how well the résumé elements satisfy the job elements given
// the semantic matches between them. Empty inputs degrade to an overall score
// of 0 with every job element reported as a gap; no input errors.
func (s *Scorer) Score(resumeElements, jobElements []types.TaggedElement, matches []types.SemanticMatch) types.MatchResult {
	best := bestMatches(jobElements, matches)

	type dimensionTally struct {
		totalImportance float64
		matchedWeight   float64
	}
	tallies := make(map[types.Category]*dimensionTally, 5)
	tallyFor := func(c types.Category) *dimensionTally {
		t, ok := tallies[c]
		if !ok {
			t = &dimensionTally{}
			tallies[c] = t
		}
		return t
	}

	gaps := make([]types.Gap, 0)
	strengths := make([]types.Strength, 0)

	for _, job := range jobElements {
		tally := tallyFor(job.Category)
		tally.totalImportance += job.Importance

		match, matched := best[job.NormalizedText]
		if !matched || match.Confidence < acceptanceConfidenceThreshold {
			gaps = append(gaps, types.Gap{
				Element:    job,
				Importance: job.Importance,
				Category:   job.Category,
				Impact:     clamp01(job.Importance * s.weights.ForCategory(job.Category)),
			})
			continue
		}

		tally.matchedWeight += job.Importance * match.Confidence
		strengths = append(strengths, types.Strength{
			Element:      match.ResumeElement,
			MatchType:    match.MatchType,
			Contribution: clamp01(match.Confidence * s.weights.ForCategory(job.Category)),
		})
	}

	dimensionScore := func(c types.Category) float64 {
		t, ok := tallies[c]
		if !ok || t.totalImportance == 0 {
			return 0
		}
		return clamp01(t.matchedWeight / t.totalImportance)
	}

	breakdown := types.ScoreBreakdown{
		KeywordScore:    dimensionScore(types.CategoryKeyword),
		SkillsScore:     dimensionScore(types.CategorySkill),
		AttributesScore: dimensionScore(types.CategoryAttribute),
		ExperienceScore: dimensionScore(types.CategoryExperience),
		LevelScore:      dimensionScore(types.CategoryConcept),
		Weights:         s.weights,
	}

	overall := (s.weights.Keyword * breakdown.KeywordScore) +
		(s.weights.Skills * breakdown.SkillsScore) +
		(s.weights.Attributes * breakdown.AttributesScore) +
		(s.weights.Experience * breakdown.ExperienceScore) +
		(s.weights.Level * breakdown.LevelScore)

	// Gap ordering is a contract: importance descending, impact breaks ties.
	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].Importance != gaps[j].Importance {
			return gaps[i].Importance > gaps[j].Importance
		}
		return gaps[i].Impact > gaps[j].Impact
	})

	return types.MatchResult{
		OverallScore: clamp01(overall),
		Breakdown:    breakdown,
		Gaps:         gaps,
		Strengths:    strengths,
	}
}

// bestMatches returns the highest-confidence match per job element,
// keyed by the job element's normalized text.
func bestMatches(jobElements []types.TaggedElement, matches []types.SemanticMatch) map[string]types.SemanticMatch {
	known := make(map[string]bool, len(jobElements))
	for _, job := range jobElements {
		known[job.NormalizedText] = true
	}

	best := make(map[string]types.SemanticMatch, len(matches))
	for _, m := range matches {
		key := m.JobElement.NormalizedText
		if key == "" {
			key = types.NormalizeText(m.JobElement.Text)
		}
		if !known[key] {
			continue
		}
		if existing, ok := best[key]; !ok || m.Confidence > existing.Confidence {
			best[key] = m
		}
	}
	return best
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
