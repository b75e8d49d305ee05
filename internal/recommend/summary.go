package recommend

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// criticalGapThreshold marks gaps called out explicitly in the summary.
const criticalGapThreshold = 0.8

// maxSummaryItems caps top recommendations and themes named in the summary.
const maxSummaryItems = 3

// buildSummary writes the one-paragraph round summary: scores as percentages,
// the distance to target (or its achievement), the critical-gap count, the
// top recommendations, and the key themes.
func buildSummary(recs *types.Recommendations, gaps []types.Gap) string {
	var sb strings.Builder

	current := recs.Metadata.CurrentScore
	target := recs.Metadata.TargetScore
	sb.WriteString(fmt.Sprintf("Current match score is %.0f%% against a target of %.0f%%.",
		current*100, target*100))

	if current >= target {
		sb.WriteString(" Target achieved!")
	} else {
		sb.WriteString(fmt.Sprintf(" You are %.0f percentage points from the target.",
			(target-current)*100))
	}

	critical := 0
	for _, gap := range gaps {
		if gap.Importance > criticalGapThreshold {
			critical++
		}
	}
	if critical == 1 {
		sb.WriteString(" 1 critical requirement is not yet addressed.")
	} else if critical > 1 {
		sb.WriteString(fmt.Sprintf(" %d critical requirements are not yet addressed.", critical))
	}

	if top := topRecommendationPhrases(recs); len(top) > 0 {
		sb.WriteString(" Top recommendations: ")
		sb.WriteString(strings.Join(top, "; "))
		sb.WriteString(".")
	}

	if len(recs.Metadata.Themes) > 0 {
		themes := recs.Metadata.Themes
		if len(themes) > maxSummaryItems {
			themes = themes[:maxSummaryItems]
		}
		sb.WriteString(" Key themes: ")
		sb.WriteString(strings.Join(themes, ", "))
		sb.WriteString(".")
	}

	return sb.String()
}

// topRecommendationPhrases picks up to three recommendations across the
// lists, phrased as "Add X" for additive types and "Improve X" otherwise.
func topRecommendationPhrases(recs *types.Recommendations) []string {
	phrases := make([]string, 0, maxSummaryItems)

	appendFrom := func(list []types.Recommendation) {
		for _, rec := range list {
			if len(phrases) == maxSummaryItems {
				return
			}
			switch rec.Type {
			case types.RecommendAddSkill, types.RecommendAddExperience:
				phrases = append(phrases, fmt.Sprintf("Add %s", rec.Element))
			default:
				phrases = append(phrases, fmt.Sprintf("Improve %s", rec.Element))
			}
		}
	}

	appendFrom(recs.Priority)
	appendFrom(recs.Optional)
	appendFrom(recs.Rewording)
	return phrases
}
