package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"elements\": []}\n```"

	assert.Equal(t, `{"elements": []}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFenceWithLanguageTag(t *testing.T) {
	input := "```javascript\n{\"a\": 1}\n```"

	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_FenceWithInlineBrace(t *testing.T) {
	input := "```{\"a\": 1}```"

	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_BareJSONUntouched(t *testing.T) {
	input := `{"matches": []}`

	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestModelSet_FallbackChain(t *testing.T) {
	models := ModelSet{TierLite: "lite-model"}

	assert.Equal(t, "lite-model", models.For(TierAdvanced))

	models[TierStandard] = "standard-model"
	assert.Equal(t, "standard-model", models.For(TierAdvanced))

	assert.Equal(t, "", ModelSet{}.For(TierLite))
}
