package recommend

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Rewording thresholds. A match in the partial band is confident enough to be
// related but not confident enough to count as satisfied.
const (
	partialMatchLow        = 0.3
	partialMatchHigh       = 0.7
	emphasizeImportanceMin = 0.6
)

// maxDeemphasize caps how many de-emphasis suggestions a round may carry.
const maxDeemphasize = 3

// Generator produces recommendation sets from match results. It is stateless
// and safe for concurrent use.
type Generator struct{}

// NewGenerator creates a recommendation generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the full recommendation set for one round: priority
// recommendations for high-importance gaps, optional ones for medium gaps and
// off-theme résumé content, and rewording ones for partial or under-leveraged
// matches. Every recommendation carries a requirement reference and an
// explanation that contain its element text.
func (g *Generator) Generate(
	result types.MatchResult,
	matches []types.SemanticMatch,
	iterationRound int,
	targetScore float64,
	themes []types.Theme,
	resumeElements []types.TaggedElement,
) types.Recommendations {
	prioritized := PrioritizeGaps(result.Gaps)

	priority := make([]types.Recommendation, 0, len(prioritized.High))
	for _, gap := range prioritized.High {
		priority = append(priority, gapRecommendation(gap))
	}

	optional := make([]types.Recommendation, 0, len(prioritized.Medium))
	for _, gap := range prioritized.Medium {
		optional = append(optional, gapRecommendation(gap))
	}
	optional = append(optional, deemphasizeRecommendations(resumeElements, matches, themes)...)

	rewording := rewordingRecommendations(matches)

	sortByThemeAlignment(priority, themes)
	sortByThemeAlignment(optional, themes)
	sortByThemeAlignment(rewording, themes)

	themeNames := make([]string, 0, len(themes))
	for _, theme := range themes {
		themeNames = append(themeNames, theme.Name)
	}

	recs := types.Recommendations{
		Priority:  priority,
		Optional:  optional,
		Rewording: rewording,
		Metadata: types.RecommendationMetadata{
			IterationRound: iterationRound,
			CurrentScore:   result.OverallScore,
			TargetScore:    targetScore,
			Themes:         themeNames,
		},
	}
	recs.Summary = buildSummary(&recs, result.Gaps)
	return recs
}

// gapRecommendation turns one gap into an additive recommendation with
// category-specific phrasing.
func gapRecommendation(gap types.Gap) types.Recommendation {
	element := gap.Element.Text

	recType := types.RecommendAddExperience
	if gap.Category == types.CategorySkill {
		recType = types.RecommendAddSkill
	}

	var suggestion, example string
	switch gap.Category {
	case types.CategorySkill:
		suggestion = fmt.Sprintf("Add %q to your skills section and back it with at least one accomplishment that used it.", element)
		example = fmt.Sprintf("Built and shipped production services using %s.", element)
	case types.CategoryExperience:
		suggestion = fmt.Sprintf("Describe hands-on work involving %s, including scope and outcome.", element)
		example = fmt.Sprintf("Delivered a project centered on %s, owning it from design through rollout.", element)
	case types.CategoryAttribute:
		suggestion = fmt.Sprintf("Demonstrate %s through a concrete accomplishment rather than naming it as a trait.", element)
		example = fmt.Sprintf("Showed %s by coordinating a cross-team release under a fixed deadline.", element)
	case types.CategoryKeyword:
		suggestion = fmt.Sprintf("Work the term %q into a relevant bullet so automated screening registers it.", element)
		example = fmt.Sprintf("Improved reliability of the %s pipeline by 30%%.", element)
	case types.CategoryConcept:
		suggestion = fmt.Sprintf("Show familiarity with %s in your summary or a project description.", element)
		example = fmt.Sprintf("Applied %s principles when scaling the ingestion layer.", element)
	default:
		suggestion = fmt.Sprintf("Address the job requirement %q in your résumé.", element)
		example = fmt.Sprintf("Added coverage of %s to a relevant role.", element)
	}

	return types.Recommendation{
		Type:       recType,
		Element:    element,
		Importance: gap.Importance,
		Suggestion: suggestion,
		Example:    example,
		JobRequirementReference: fmt.Sprintf("Job requirement %q (category: %s, importance: %.2f)",
			element, gap.Category, gap.Importance),
		Explanation: fmt.Sprintf("The job posting treats %q as a %s requirement that your résumé does not currently satisfy.",
			element, importanceTier(gap.Importance)),
	}
}

// importanceTier maps an importance value to the phrase used in explanations.
func importanceTier(importance float64) string {
	switch {
	case importance >= 0.9:
		return "critical"
	case importance >= 0.8:
		return "high-priority"
	case importance >= mediumImportanceThreshold:
		return "valuable"
	default:
		return "minor"
	}
}

// deemphasizeRecommendations suggests shrinking résumé content that neither
// matched a job element nor shares a token with any job theme. Capped to
// avoid overwhelming the reader.
func deemphasizeRecommendations(resumeElements []types.TaggedElement, matches []types.SemanticMatch, themes []types.Theme) []types.Recommendation {
	if len(resumeElements) == 0 {
		return nil
	}

	matched := make(map[string]bool, len(matches))
	for _, m := range matches {
		key := m.ResumeElement.NormalizedText
		if key == "" {
			key = types.NormalizeText(m.ResumeElement.Text)
		}
		matched[key] = true
	}

	tokens := themeTokens(themes)

	recs := make([]types.Recommendation, 0, maxDeemphasize)
	for _, el := range resumeElements {
		if len(recs) == maxDeemphasize {
			break
		}
		if matched[el.NormalizedText] {
			continue
		}
		if alignsWithThemes(el.Text, tokens) {
			continue
		}
		recs = append(recs, types.Recommendation{
			Type:       types.RecommendDeemphasize,
			Element:    el.Text,
			Importance: el.Importance,
			Suggestion: fmt.Sprintf("Reduce the space given to %q; it does not support this application.", el.Text),
			JobRequirementReference: fmt.Sprintf("Résumé content %q matches no job requirement or theme.",
				el.Text),
			Explanation: fmt.Sprintf("%q does not align with the job's themes, so de-emphasizing it frees room for content that does.",
				el.Text),
		})
	}
	return recs
}

// rewordingRecommendations covers two cases: partial matches that should be
// reframed toward the requirement, and strong matches on important
// requirements that deserve quantification or emphasis.
func rewordingRecommendations(matches []types.SemanticMatch) []types.Recommendation {
	recs := make([]types.Recommendation, 0)

	for _, m := range matches {
		element := m.JobElement.Text
		resumeText := m.ResumeElement.Text

		switch {
		case m.Confidence >= partialMatchLow && m.Confidence <= partialMatchHigh:
			recs = append(recs, types.Recommendation{
				Type:       types.RecommendReframe,
				Element:    element,
				Importance: m.JobElement.Importance,
				Suggestion: fmt.Sprintf("Reframe %q so it speaks directly to the requirement %q.", resumeText, element),
				Example:    fmt.Sprintf("Rewrote %q to name %s explicitly.", resumeText, element),
				JobRequirementReference: fmt.Sprintf("Job requirement %q is only partially addressed (match confidence %.2f).",
					element, m.Confidence),
				Explanation: fmt.Sprintf("Your mention of %q is related to %q but not stated strongly enough to count as satisfying it.",
					resumeText, element),
			})
		case m.Confidence > partialMatchHigh && m.JobElement.Importance >= emphasizeImportanceMin:
			if containsDigit(resumeText) {
				recs = append(recs, types.Recommendation{
					Type:       types.RecommendEmphasize,
					Element:    element,
					Importance: m.JobElement.Importance,
					Suggestion: fmt.Sprintf("Move the work covering %q earlier in its section so it is seen first.", element),
					Example:    fmt.Sprintf("Promoted the %s bullet to the top of the most recent role.", element),
					JobRequirementReference: fmt.Sprintf("Job requirement %q is well matched and worth emphasizing (importance %.2f).",
						element, m.JobElement.Importance),
					Explanation: fmt.Sprintf("You already cover %q convincingly; giving it more prominence strengthens the match further.",
						element),
				})
			} else {
				recs = append(recs, types.Recommendation{
					Type:       types.RecommendQuantify,
					Element:    element,
					Importance: m.JobElement.Importance,
					Suggestion: fmt.Sprintf("Add a concrete metric to the bullet covering %q.", element),
					Example:    fmt.Sprintf("Quantified the %s work: cut processing time by 40%%.", element),
					JobRequirementReference: fmt.Sprintf("Job requirement %q matches but carries no measurable outcome (importance %.2f).",
						element, m.JobElement.Importance),
					Explanation: fmt.Sprintf("Your coverage of %q lacks numbers; quantified results are weighted more heavily by reviewers.",
						element),
				})
			}
		}
	}

	return recs
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
