package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimensionWeights_Sum(t *testing.T) {
	w := DimensionWeights{Keyword: 0.20, Skills: 0.30, Attributes: 0.15, Experience: 0.25, Level: 0.10}

	assert.InDelta(t, 1.0, w.Sum(), 1e-9)
}

func TestDimensionWeights_ForCategory(t *testing.T) {
	w := DimensionWeights{Keyword: 0.1, Skills: 0.2, Attributes: 0.3, Experience: 0.25, Level: 0.15}

	assert.Equal(t, 0.1, w.ForCategory(CategoryKeyword))
	assert.Equal(t, 0.2, w.ForCategory(CategorySkill))
	assert.Equal(t, 0.3, w.ForCategory(CategoryAttribute))
	assert.Equal(t, 0.25, w.ForCategory(CategoryExperience))
	assert.Equal(t, 0.15, w.ForCategory(CategoryConcept), "concept elements feed the level dimension")
	assert.Equal(t, 0.0, w.ForCategory("unknown"))
}

func TestValidMatchType(t *testing.T) {
	for _, m := range []MatchType{MatchExact, MatchSynonym, MatchRelated, MatchSemantic} {
		assert.True(t, ValidMatchType(m))
	}
	assert.False(t, ValidMatchType("fuzzy"))
}
