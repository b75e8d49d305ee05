package llm

// ModelTier selects how much model capability a call needs.
type ModelTier string

const (
	// TierLite covers extraction and classification.
	TierLite ModelTier = "lite"
	// TierStandard covers structured matching output.
	TierStandard ModelTier = "standard"
	// TierAdvanced covers multi-step reasoning.
	TierAdvanced ModelTier = "advanced"
)

// ModelSet maps tiers to concrete model names.
type ModelSet map[ModelTier]string

// DefaultModels returns the Gemini model set used when nothing is configured.
func DefaultModels() ModelSet {
	return ModelSet{
		TierLite:     "gemini-2.5-flash-lite",
		TierStandard: "gemini-2.5-flash",
		TierAdvanced: "gemini-2.5-pro",
	}
}

// For returns the model name for a tier, falling back to standard and then
// lite when the tier is unmapped.
func (m ModelSet) For(tier ModelTier) string {
	if model, ok := m[tier]; ok {
		return model
	}
	if model, ok := m[TierStandard]; ok {
		return model
	}
	if model, ok := m[TierLite]; ok {
		return model
	}
	return ""
}
