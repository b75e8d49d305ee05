// Package types provides type definitions for structured data used throughout the resume-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Category classifies what kind of requirement or content an element represents.
type Category string

// Element categories. The scorer maps each category onto one scoring dimension.
const (
	CategoryKeyword    Category = "keyword"
	CategorySkill      Category = "skill"
	CategoryAttribute  Category = "attribute"
	CategoryExperience Category = "experience"
	CategoryConcept    Category = "concept"
)

// ValidCategory reports whether c is one of the known element categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryKeyword, CategorySkill, CategoryAttribute, CategoryExperience, CategoryConcept:
		return true
	}
	return false
}

// Position marks the character span of an element in its source text.
type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Element is a tagged span of source text (job posting or résumé).
// NormalizedText is the case-folded, whitespace-trimmed form and is the
// equality key for deduplication. Elements are immutable once produced
// by extraction.
type Element struct {
	Text           string   `json:"text"`
	NormalizedText string   `json:"normalized_text"`
	Tags           []string `json:"tags,omitempty"`
	Context        string   `json:"context,omitempty"`
	Position       Position `json:"position"`
}

// TaggedElement is an Element enriched with an importance score and a
// category. Importance reflects how strongly a job posting requires it.
type TaggedElement struct {
	Element
	Importance   float64  `json:"importance"`
	SemanticTags []string `json:"semantic_tags,omitempty"`
	Category     Category `json:"category"`
}

// NormalizeText returns the canonical comparison form of element text:
// lowercased with surrounding whitespace removed.
func NormalizeText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// NewElement constructs an Element with its normalized form populated.
func NewElement(text string, tags []string, context string, pos Position) Element {
	return Element{
		Text:           text,
		NormalizedText: NormalizeText(text),
		Tags:           tags,
		Context:        context,
		Position:       pos,
	}
}
