package semantic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const matchingPrompt = `You are matching resume content against job requirements.

Resume elements:
%s

Job requirements:
%s

For each job requirement that the resume addresses, produce a match:
- resume_text: the resume element text, exactly as listed
- job_text: the job requirement text, exactly as listed
- match_type: exact, synonym, related, or semantic
- confidence: 0.0 to 1.0

Only match against the listed texts. Return JSON: {"matches": [...]}`

// wireMatch mirrors the semantic_matches schema.
type wireMatch struct {
	ResumeText string  `json:"resume_text"`
	JobText    string  `json:"job_text"`
	MatchType  string  `json:"match_type"`
	Confidence float64 `json:"confidence"`
}

type wireMatches struct {
	Matches []wireMatch `json:"matches"`
}

// Matcher pairs résumé elements with the job requirements they satisfy.
type Matcher struct {
	client llm.Client
	logger *zap.Logger
}

// NewMatcher creates a Matcher backed by the given completion client.
func NewMatcher(client llm.Client, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{client: client, logger: logger}
}

// Match produces semantic matches between the two element sets. Matches that
// reference texts not present in either set are dropped rather than trusted.
func (m *Matcher) Match(ctx context.Context, resumeElements, jobElements []types.TaggedElement) ([]types.SemanticMatch, error) {
	if len(resumeElements) == 0 || len(jobElements) == 0 {
		return nil, nil
	}

	prompt := fmt.Sprintf(matchingPrompt, elementList(resumeElements), elementList(jobElements))
	raw, err := m.client.CompleteJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("matching completion failed: %w", err)
	}

	if err := schemas.Validate(schemas.SemanticMatches, raw); err != nil {
		return nil, fmt.Errorf("matching output failed validation: %w", err)
	}

	var wire wireMatches
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, fmt.Errorf("failed to parse matching output: %w", err)
	}

	resumeByKey := indexByNormalizedText(resumeElements)
	jobByKey := indexByNormalizedText(jobElements)

	matches := make([]types.SemanticMatch, 0, len(wire.Matches))
	for _, w := range wire.Matches {
		resumeEl, okResume := resumeByKey[types.NormalizeText(w.ResumeText)]
		jobEl, okJob := jobByKey[types.NormalizeText(w.JobText)]
		if !okResume || !okJob {
			m.logger.Warn("dropping match referencing unknown element",
				zap.String("resume_text", w.ResumeText),
				zap.String("job_text", w.JobText))
			continue
		}
		matchType := types.MatchType(w.MatchType)
		if !types.ValidMatchType(matchType) {
			continue
		}
		matches = append(matches, types.SemanticMatch{
			ResumeElement: resumeEl,
			JobElement:    jobEl,
			MatchType:     matchType,
			Confidence:    clamp01(w.Confidence),
		})
	}
	return matches, nil
}

func indexByNormalizedText(elements []types.TaggedElement) map[string]types.TaggedElement {
	index := make(map[string]types.TaggedElement, len(elements))
	for _, el := range elements {
		index[el.NormalizedText] = el
	}
	return index
}

func elementList(elements []types.TaggedElement) string {
	var b strings.Builder
	for _, el := range elements {
		fmt.Fprintf(&b, "- %s (%s)\n", el.Text, el.Category)
	}
	return b.String()
}
