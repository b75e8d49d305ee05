// Package recommend turns score gaps and partial matches into prioritized,
// explained, example-bearing recommendations.
package recommend

import (
	"math"
	"sort"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Importance bands for gap prioritization.
const (
	highImportanceThreshold   = 0.8
	mediumImportanceThreshold = 0.5
)

// Prioritized groups gaps into fixed importance bands. Within each band gaps
// are ordered by impact descending.
type Prioritized struct {
	High   []types.Gap
	Medium []types.Gap
	Low    []types.Gap
}

// PrioritizeGaps assigns each gap to its importance band: high ≥ 0.8,
// medium in [0.5, 0.8), low < 0.5. Gaps with importance outside [0,1] or NaN
// are silently dropped.
func PrioritizeGaps(gaps []types.Gap) Prioritized {
	var p Prioritized

	for _, gap := range gaps {
		if math.IsNaN(gap.Importance) || gap.Importance < 0 || gap.Importance > 1 {
			continue
		}
		switch {
		case gap.Importance >= highImportanceThreshold:
			p.High = append(p.High, gap)
		case gap.Importance >= mediumImportanceThreshold:
			p.Medium = append(p.Medium, gap)
		default:
			p.Low = append(p.Low, gap)
		}
	}

	byImpactDesc(p.High)
	byImpactDesc(p.Medium)
	byImpactDesc(p.Low)

	return p
}

func byImpactDesc(gaps []types.Gap) {
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Impact > gaps[j].Impact
	})
}
