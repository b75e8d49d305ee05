package semantic

import (
	"sort"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Theme derivation knobs: a tag must recur to count as a theme, and the list
// is capped so recommendation ordering stays focused.
const (
	themeMinOccurrences = 2
	maxThemes           = 5
)

// DeriveThemes finds the recurring semantic tags of a job posting's elements
// and returns them as themes, most frequent first. Each theme carries the
// element texts it covers as keywords.
func DeriveThemes(jobElements []types.TaggedElement) []types.Theme {
	counts := make(map[string]int)
	keywords := make(map[string][]string)

	for _, el := range jobElements {
		seen := make(map[string]bool, len(el.SemanticTags)+len(el.Tags))
		for _, tag := range append(append([]string{}, el.SemanticTags...), el.Tags...) {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			counts[tag]++
			keywords[tag] = append(keywords[tag], el.Text)
		}
	}

	names := make([]string, 0, len(counts))
	for tag, n := range counts {
		if n >= themeMinOccurrences {
			names = append(names, tag)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > maxThemes {
		names = names[:maxThemes]
	}

	themes := make([]types.Theme, 0, len(names))
	for _, name := range names {
		themes = append(themes, types.Theme{Name: name, Keywords: keywords[name]})
	}
	return themes
}
