package recommend

import (
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// tokenize splits text into lowercase alphanumeric tokens.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// themeTokens collects the token set of every theme name and keyword.
func themeTokens(themes []types.Theme) map[string]bool {
	tokens := make(map[string]bool)
	for _, theme := range themes {
		for _, tok := range tokenize(theme.Name) {
			tokens[tok] = true
		}
		for _, kw := range theme.Keywords {
			for _, tok := range tokenize(kw) {
				tokens[tok] = true
			}
		}
	}
	return tokens
}

// alignsWithThemes reports whether any token of text appears in the theme
// token set.
func alignsWithThemes(text string, tokens map[string]bool) bool {
	if len(tokens) == 0 {
		return false
	}
	for _, tok := range tokenize(text) {
		if tokens[tok] {
			return true
		}
	}
	return false
}

// sortByThemeAlignment orders recommendations theme-alignment-first,
// importance-second. Without themes the list keeps importance ordering only.
func sortByThemeAlignment(recs []types.Recommendation, themes []types.Theme) {
	tokens := themeTokens(themes)
	sort.SliceStable(recs, func(i, j int) bool {
		if len(tokens) > 0 {
			ai := alignsWithThemes(recs[i].Element, tokens)
			aj := alignsWithThemes(recs[j].Element, tokens)
			if ai != aj {
				return ai
			}
		}
		return recs[i].Importance > recs[j].Importance
	})
}
