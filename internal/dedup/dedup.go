// Package dedup merges duplicate extracted elements while preserving all
// context and the strongest importance signal.
package dedup

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const contextSeparator = " | "

// Elements returns one element per distinct normalized text. Tags are the
// union across duplicates, contexts are joined in first-to-last order, and
// the first occurrence's position is kept. The input is never mutated and the
// operation is idempotent.
func Elements(elements []types.Element) []types.Element {
	if len(elements) == 0 {
		return nil
	}

	result := make([]types.Element, 0, len(elements))
	index := make(map[string]int) // normalized text -> index in result

	for _, el := range elements {
		key := normalizedKey(el)
		if key == "" {
			continue
		}

		idx, seen := index[key]
		if !seen {
			merged := el
			merged.NormalizedText = key
			merged.Context = strings.TrimSpace(el.Context)
			merged.Tags = appendDistinct(nil, el.Tags)
			result = append(result, merged)
			index[key] = len(result) - 1
			continue
		}

		existing := &result[idx]
		existing.Tags = appendDistinct(existing.Tags, el.Tags)
		existing.Context = mergeContext(existing.Context, el.Context)
	}

	return result
}

// Tagged deduplicates tagged elements with the same rules as Elements, plus:
// semantic tags are unioned and the merged importance is the maximum across
// duplicates. A requirement mentioned as both "required" and "nice to have"
// must keep the stronger mention.
func Tagged(elements []types.TaggedElement) []types.TaggedElement {
	if len(elements) == 0 {
		return nil
	}

	result := make([]types.TaggedElement, 0, len(elements))
	index := make(map[string]int)

	for _, el := range elements {
		key := normalizedKey(el.Element)
		if key == "" {
			continue
		}

		idx, seen := index[key]
		if !seen {
			merged := el
			merged.NormalizedText = key
			merged.Context = strings.TrimSpace(el.Context)
			merged.Tags = appendDistinct(nil, el.Tags)
			merged.SemanticTags = appendDistinct(nil, el.SemanticTags)
			result = append(result, merged)
			index[key] = len(result) - 1
			continue
		}

		existing := &result[idx]
		existing.Tags = appendDistinct(existing.Tags, el.Tags)
		existing.SemanticTags = appendDistinct(existing.SemanticTags, el.SemanticTags)
		existing.Context = mergeContext(existing.Context, el.Context)
		if el.Importance > existing.Importance {
			existing.Importance = el.Importance
		}
	}

	return result
}

// normalizedKey returns the dedup key for an element, recomputing the
// normalized form when extraction did not populate it.
func normalizedKey(el types.Element) string {
	if el.NormalizedText != "" {
		return types.NormalizeText(el.NormalizedText)
	}
	return types.NormalizeText(el.Text)
}

// appendDistinct appends values not already present, preserving first-seen
// order. It always returns a slice distinct from both inputs.
func appendDistinct(dst []string, values []string) []string {
	out := make([]string, 0, len(dst)+len(values))
	seen := make(map[string]bool, len(dst)+len(values))
	for _, v := range dst {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// mergeContext joins distinct non-empty contexts in first-to-last order.
// A single context carries no separator.
func mergeContext(existing, incoming string) string {
	incoming = strings.TrimSpace(incoming)
	if incoming == "" {
		return existing
	}
	if existing == "" {
		return incoming
	}
	for _, part := range strings.Split(existing, contextSeparator) {
		if part == incoming {
			return existing
		}
	}
	return existing + contextSeparator + incoming
}
