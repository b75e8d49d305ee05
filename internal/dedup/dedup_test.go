package dedup

import (
	"testing"

	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagged(text string, importance float64, tags []string, context string, start int) types.TaggedElement {
	return types.TaggedElement{
		Element:    types.NewElement(text, tags, context, types.Position{Start: start, End: start + len(text)}),
		Importance: importance,
		Category:   types.CategorySkill,
	}
}

func TestTagged_MaxImportanceKept(t *testing.T) {
	input := []types.TaggedElement{
		tagged("Python", 0.9, nil, "", 0),
		tagged("python", 0.5, nil, "", 40),
		tagged(" Python ", 0.3, nil, "", 90),
	}

	result := Tagged(input)

	require.Len(t, result, 1)
	assert.Equal(t, 0.9, result[0].Importance)
	assert.Equal(t, "python", result[0].NormalizedText)
}

func TestTagged_TagUnion(t *testing.T) {
	input := []types.TaggedElement{
		tagged("Go", 0.8, []string{"required", "backend"}, "", 0),
		tagged("go", 0.6, []string{"backend", "language"}, "", 30),
	}

	result := Tagged(input)

	require.Len(t, result, 1)
	assert.ElementsMatch(t, []string{"required", "backend", "language"}, result[0].Tags)
}

func TestTagged_ContextJoinedFirstToLast(t *testing.T) {
	input := []types.TaggedElement{
		tagged("Kubernetes", 0.7, nil, "requirements section", 0),
		tagged("kubernetes", 0.7, nil, "", 50),
		tagged("Kubernetes", 0.7, nil, "nice to have section", 120),
	}

	result := Tagged(input)

	require.Len(t, result, 1)
	assert.Equal(t, "requirements section | nice to have section", result[0].Context)
}

func TestTagged_ContextTrimmedBeforeComparison(t *testing.T) {
	input := []types.TaggedElement{
		tagged("Docker", 0.5, nil, "tooling ", 0),
		tagged("docker", 0.4, nil, "tooling", 60),
	}

	result := Tagged(input)

	require.Len(t, result, 1)
	assert.Equal(t, "tooling", result[0].Context, "padded and unpadded contexts are the same context")
}

func TestTagged_SingleContextNoSeparator(t *testing.T) {
	input := []types.TaggedElement{
		tagged("Docker", 0.5, nil, "tooling", 0),
		tagged("docker", 0.4, nil, "tooling", 60),
	}

	result := Tagged(input)

	require.Len(t, result, 1)
	assert.Equal(t, "tooling", result[0].Context)
}

func TestTagged_FirstPositionKept(t *testing.T) {
	input := []types.TaggedElement{
		tagged("Terraform", 0.6, nil, "", 100),
		tagged("terraform", 0.9, nil, "", 10),
	}

	result := Tagged(input)

	require.Len(t, result, 1)
	assert.Equal(t, 100, result[0].Position.Start)
	assert.Equal(t, 0.9, result[0].Importance)
}

func TestTagged_Idempotent(t *testing.T) {
	input := []types.TaggedElement{
		tagged("Python", 0.9, []string{"required"}, "requirements", 0),
		tagged("python", 0.5, []string{"scripting"}, "tools", 40),
		tagged("Leadership", 0.6, nil, "soft skills", 80),
	}

	once := Tagged(input)
	twice := Tagged(once)

	assert.Equal(t, once, twice)
}

func TestTagged_DoesNotMutateInput(t *testing.T) {
	input := []types.TaggedElement{
		tagged("Go", 0.3, []string{"a"}, "first", 0),
		tagged("go", 0.8, []string{"b"}, "second", 20),
	}
	originalTags := input[0].Tags
	originalContext := input[0].Context

	_ = Tagged(input)

	assert.Equal(t, []string{"a"}, originalTags)
	assert.Equal(t, "first", originalContext)
	assert.Equal(t, 0.3, input[0].Importance)
}

func TestTagged_SkipsEmptyText(t *testing.T) {
	input := []types.TaggedElement{
		tagged("   ", 0.9, nil, "", 0),
		tagged("Rust", 0.7, nil, "", 10),
	}

	result := Tagged(input)

	require.Len(t, result, 1)
	assert.Equal(t, "rust", result[0].NormalizedText)
}

func TestElements_DistinctEntriesPreserved(t *testing.T) {
	input := []types.Element{
		types.NewElement("Python", nil, "", types.Position{}),
		types.NewElement("Go", nil, "", types.Position{Start: 10}),
	}

	result := Elements(input)

	require.Len(t, result, 2)
	assert.Equal(t, "python", result[0].NormalizedText)
	assert.Equal(t, "go", result[1].NormalizedText)
}

func TestElements_Empty(t *testing.T) {
	assert.Nil(t, Elements(nil))
	assert.Nil(t, Elements([]types.Element{}))
}
